// Package errmsg builds assertion failure messages.
//
// A Factory holds a message format and the values it mentions; Create renders
// those values through a Representation and prefixes the optional Description:
//
//	msg := errmsg.ShouldBeEqualIgnoringSeconds(actual, other).
//		Create(errmsg.Description("created at"), errmsg.StandardRepresentation{})
//	// [created at] \nExpecting:\n  <2000-01-01T23:51Z>\nto have same year, ...
//
// Factories never fail and never format eagerly, so building one is cheap even
// when the assertion passes.
package errmsg
