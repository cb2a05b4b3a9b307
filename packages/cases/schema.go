package cases

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["cases"],
  "additionalProperties": false,
  "properties": {
    "location": {"type": "string"},
    "variables": {"type": "object", "additionalProperties": {"type": "string"}},
    "cases": {"type": "array", "items": {"$ref": "#/definitions/case"}}
  },
  "definitions": {
    "value": {
      "oneOf": [
        {"type": "string", "minLength": 1},
        {"type": "null"},
        {
          "type": "object",
          "required": ["file", "path"],
          "additionalProperties": false,
          "properties": {
            "file": {"type": "string", "minLength": 1},
            "path": {"type": "string", "minLength": 1}
          }
        }
      ]
    },
    "case": {
      "type": "object",
      "required": ["name", "subject", "reference", "check"],
      "additionalProperties": false,
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "subject": {"$ref": "#/definitions/value"},
        "reference": {"$ref": "#/definitions/value"},
        "check": {"type": "string"},
        "description": {"type": "string"},
        "expectFailure": {"type": "boolean"},
        "tags": {"type": "array", "items": {"type": "string"}},
        "skip": {"type": "string"}
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// Validate checks the structure of case file content against the case schema.
func Validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("empty case file")
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errors []string
	for _, desc := range result.Errors() {
		errors = append(errors, desc.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(errors, "; "))
}
