// Package attr decodes attribute containers into typed records.
//
// Every modifier and element view declares a Schema: an ordered list of
// fields with a key, a kind, and either a required flag or a default. A
// single Decoder interprets any schema against any Container, producing a
// Record or one of two errors: MissingFieldError when a required key is
// absent, BadValueError when a present value cannot be converted.
package attr
