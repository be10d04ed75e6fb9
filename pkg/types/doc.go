// Package types defines the Book and Rectangle entities, the Store interface,
// configuration, and the standard error values for the shelf inventory manager.
//
// Entities are built through validating constructors that draw their ID from
// an explicit Sequence; a constructor either returns a fully valid entity or a
// *ValidationError and consumes no ID.
package types
