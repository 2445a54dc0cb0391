package protocol

// CodeLensOptions is the server capability for the code lens request.
type CodeLensOptions struct {
	WorkDoneProgressOptions

	// Code lens has a resolve provider as well.
	ResolveProvider *bool `json:"resolveProvider,omitempty"`
}

// CodeLensParams is the payload of the textDocument/codeLens request.
type CodeLensParams struct {
	WorkDoneProgressParams
	PartialResultParams

	// The document to request code lenses for.
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// CodeLens represents a command that should be shown along with source
// text, like the number of references or a way to run tests.
//
// A code lens is unresolved when no command is associated with it; for
// performance reasons creation and resolving are done in two stages.
type CodeLens struct {
	// The range in which this code lens is valid. Should only span a
	// single line.
	Range Range `json:"range"`

	// The command this code lens represents.
	Command *Command `json:"command,omitempty"`

	// A data entry preserved between a codeLens and a codeLens/resolve
	// request.
	Data any `json:"data,omitempty"`
}

// CodeLensRegistrationOptions scopes a dynamic code lens registration.
type CodeLensRegistrationOptions struct {
	TextDocumentRegistrationOptions
	CodeLensOptions
}
