// Package protocol defines the Language Server Protocol payload types and
// their JSON wire mapping.
//
// The package is a catalog of the request, response, and notification
// payloads, enumerations, and structural records published by LSP versions
// 3.13 and 3.16, plus the 3.17/3.18 proposed surface behind the "proposed"
// build tag. It contains no transport, dispatch, or protocol state machine;
// clients and servers layer those on top of these types.
//
// # Encoding and decoding
//
// Encode and Decode map catalog values to and from their wire form:
//
//	params := protocol.CompletionParams{...}
//	data, err := protocol.Encode(params)
//
//	var got protocol.CompletionParams
//	err = protocol.Decode(data, &got)
//
// Decode is strict about the declared field set: a missing required field, a
// value of the wrong kind, or an unrecognized closed-enum discriminant fails
// with a schema.Mismatch naming the offending path. Unknown extra fields are
// ignored for forward compatibility, and absent optional fields are omitted
// from encoded output rather than written as null.
//
// # Method catalog
//
// Method name constants cover every request and notification, and
// RequestTypes/NotificationType expose the params/result types registered
// for a method:
//
//	params, result, ok := protocol.RequestTypes(protocol.MethodCompletion)
//
// # Proposed surface
//
// Types from the proposed/experimental specification surface (notebook
// documents, the semantic highlighting push notification, extended window
// capabilities) compile only with the "proposed" build tag; without it,
// referencing them is a build error. The tag never changes the encoding of
// stable types.
package protocol
