// Package cases loads hitassert case files.
//
// A case file is YAML:
//
//	location: Europe/Berlin
//	cases:
//	  - name: order created in the same minute
//	    subject: "2000-01-01T23:51:00Z"
//	    reference: "now()"
//	    check: equalIgnoringSeconds
//	    tags: [smoke]
//	  - name: payload timestamp
//	    subject: { file: payload.json, path: data.createdAt }
//	    reference: "2000-01-01T23:51:00Z"
//	    check: equalIgnoringNanos
//
// A value is a timestamp (RFC 3339, or a zone-less layout read in the file's
// location), a builtin call such as now(-5m), null, or a gjson path into a
// JSON file next to the case file. {{name}} placeholders are filled from the
// file's variables block and {{$NAME}} from the environment.
package cases
