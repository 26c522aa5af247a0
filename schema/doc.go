// Package schema declares and checks the shape of dotconf documents.
//
// # Overview
//
// A schema is itself a dotconf document whose values are type names:
//
//	net.port = integer
//	net.host = string
//	debug = bool
//	limits.cpu = float
//
// Parsing such a document yields a Schema, a tree mirroring the
// shape of conforming configs. Checking a config against it walks
// both trees together:
//
//   - every config key must be declared, either as a typed leaf or
//     as an object with nested declarations
//   - every leaf value must be a valid rendering of its declared
//     type
//   - declared keys missing from the config are fine; a schema says
//     what may exist, not what must
//
// # Types
//
// Four leaf types exist. Type names are case-insensitive and have
// aliases:
//
//	string
//	bool (boolean): strictly "true" or "false", case-insensitive
//	integer (int):  64-bit signed decimal
//	float (number): anything strconv.ParseFloat accepts
//
// # Ignore-failure marker
//
// A marked schema line ("-key = sometypo") whose value is not a
// recognized type name is dropped from the schema instead of
// failing the schema parse. Unmarked lines fail with ErrUnknownType.
package schema
