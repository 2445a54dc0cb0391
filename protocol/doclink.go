package protocol

// DocumentLinkClientCapabilities describes the client's document link
// support.
type DocumentLinkClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`

	// Whether the client supports the tooltip property.
	//
	// @since 3.15.0
	TooltipSupport *bool `json:"tooltipSupport,omitempty"`
}

// DocumentLinkOptions is the server capability for the document link
// request.
type DocumentLinkOptions struct {
	WorkDoneProgressOptions

	// Document links have a resolve provider as well.
	ResolveProvider *bool `json:"resolveProvider,omitempty"`
}

// DocumentLinkParams is the payload of the textDocument/documentLink
// request.
type DocumentLinkParams struct {
	WorkDoneProgressParams
	PartialResultParams

	// The document to provide document links for.
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// DocumentLink is a range in a text document that links to an internal or
// external resource, like another text document or a web site.
type DocumentLink struct {
	// The range this link applies to.
	Range Range `json:"range"`

	// The URI this link points to. Absent on an unresolved link.
	Target *URI `json:"target,omitempty"`

	// The tooltip text shown when hovering over this link.
	//
	// @since 3.15.0
	Tooltip *string `json:"tooltip,omitempty"`

	// A data entry preserved between a documentLink and a
	// documentLink/resolve request.
	Data any `json:"data,omitempty"`
}
