package protocol

import "github.com/segmentio/encoding/json"

// Registration is a general parameter to register for a capability.
type Registration struct {
	// The id used to register the request, also used to unregister again.
	ID string `json:"id"`

	// The method / capability to register for.
	Method string `json:"method"`

	// Options necessary for the registration.
	RegisterOptions json.RawMessage `json:"registerOptions,omitempty"`
}

// RegistrationParams is the payload of the client/registerCapability request.
type RegistrationParams struct {
	Registrations []Registration `json:"registrations"`
}

// Unregistration is a general parameter to unregister a capability.
type Unregistration struct {
	// The id used to unregister the request or notification.
	ID string `json:"id"`

	// The method / capability to unregister for.
	Method string `json:"method"`
}

// UnregistrationParams is the payload of the client/unregisterCapability
// request.
type UnregistrationParams struct {
	// The key is misspelled in the published specification and must stay
	// that way on the wire.
	Unregisterations []Unregistration `json:"unregisterations"`
}

// TextDocumentRegistrationOptions is mixed into registration options that
// scope a capability to a set of documents.
type TextDocumentRegistrationOptions struct {
	// A document selector to identify the scope of the registration. Null
	// means the selector provided on the client side is used.
	DocumentSelector DocumentSelector `json:"documentSelector"`
}

// StaticRegistrationOptions is mixed into options that can be registered
// statically in the initialize result.
type StaticRegistrationOptions struct {
	// The id used to register the request, to unregister it again later.
	ID *string `json:"id,omitempty"`
}

// DynamicRegistrationClientCapabilities is the common capability record of
// features whose only client option is dynamic registration.
type DynamicRegistrationClientCapabilities struct {
	// Whether the feature supports dynamic registration.
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
}
