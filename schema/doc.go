// Package schema models the wire shape of protocol types.
//
// A Schema is derived once per Go type by reflection and describes the
// type's field set (names, required-ness), value kinds, and, for closed
// enumerations, the fixed set of discriminants published by the protocol
// specification. Decoded structured data (the generic tree a JSON decoder
// produces) is checked against the schema before it is bound to a typed
// value, so every decode failure carries the JSON path of the offending
// field.
//
// # Deriving a schema
//
// Schemas follow the json struct tags of the target type:
//
//	type Item struct {
//	    Label  string  `json:"label"`            // required
//	    Detail *string `json:"detail,omitempty"` // optional
//	}
//
//	s, err := schema.For(reflect.TypeOf(Item{}))
//
// A field without the omitempty option is required; its absence from the
// wire form is a Mismatch. Unknown keys in incoming data are ignored for
// forward compatibility.
//
// # Closed enumerations
//
// Types implementing Enumerated expose their discriminant set:
//
//	func (DiagnosticSeverity) EnumValues() []any {
//	    return []any{SeverityError, SeverityWarning, SeverityInformation, SeverityHint}
//	}
//
// Checking a value outside the set is a Mismatch. String types that do not
// implement Enumerated are open: any value is accepted.
//
// # Opaque types
//
// Types with their own MarshalJSON/UnmarshalJSON methods (unions, raw
// messages) are opaque to the structural check; their methods enforce shape
// when the value is bound.
package schema
