package protocol

import (
	"github.com/segmentio/encoding/json"

	"github.com/lspkit/lsp-go/schema"
)

// HoverClientCapabilities describes the client's hover support.
type HoverClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`

	// Content formats the client supports for hover content, in order of
	// preference.
	ContentFormat []MarkupKind `json:"contentFormat,omitempty"`
}

// HoverOptions is the options form of the hover server capability.
type HoverOptions struct {
	WorkDoneProgressOptions
}

// HoverParams is the payload of the textDocument/hover request.
type HoverParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
}

// Hover is the result of a hover request.
type Hover struct {
	// The hover's content.
	Contents MarkupContent `json:"contents"`

	// The range the hover applies to, e.g. used to highlight the hovered
	// word.
	Range *Range `json:"range,omitempty"`
}

// ParameterLabel is a signature parameter label, which the specification
// types as string | [uinteger, uinteger]. The offset form is inclusive
// start / exclusive end within the signature label, based on UTF-16 code
// units.
//
// @since 3.14.0 offset form
type ParameterLabel struct {
	Text    *string
	Offsets *[2]uint32
}

func (l ParameterLabel) MarshalJSON() ([]byte, error) {
	if l.Offsets != nil {
		return json.Marshal(*l.Offsets)
	}
	if l.Text != nil {
		return json.Marshal(*l.Text)
	}
	return []byte(`""`), nil
}

func (l *ParameterLabel) UnmarshalJSON(data []byte) error {
	*l = ParameterLabel{}
	switch sniff(data) {
	case '"':
		l.Text = new(string)
		return json.Unmarshal(data, l.Text)
	case '[':
		l.Offsets = new([2]uint32)
		return json.Unmarshal(data, l.Offsets)
	default:
		return &schema.Mismatch{Message: "expected string or offset pair"}
	}
}

// ParameterInformation represents a parameter of a callable signature.
type ParameterInformation struct {
	// The label of this parameter: either the literal substring of the
	// signature label or an offset pair into it.
	Label ParameterLabel `json:"label"`

	// A human-readable doc-comment for this parameter.
	Documentation *MarkupContent `json:"documentation,omitempty"`
}

// SignatureInformation represents the signature of something callable.
type SignatureInformation struct {
	// The label of this signature, shown in the UI.
	Label string `json:"label"`

	// A human-readable doc-comment for this signature.
	Documentation *MarkupContent `json:"documentation,omitempty"`

	// The parameters of this signature.
	Parameters []ParameterInformation `json:"parameters,omitempty"`
}

// SignatureHelp represents the signatures of something callable, with an
// active signature and an active parameter.
type SignatureHelp struct {
	// One or more signatures. Empty means the request succeeded but no
	// signatures were found; clients should hide the UI.
	Signatures []SignatureInformation `json:"signatures"`

	// The active signature. Defaults to 0 when omitted.
	ActiveSignature *uint32 `json:"activeSignature,omitempty"`

	// The active parameter of the active signature. Defaults to 0.
	ActiveParameter *uint32 `json:"activeParameter,omitempty"`
}

// SignatureHelpTriggerKind describes how a signature help was triggered.
//
// @since 3.15.0
type SignatureHelpTriggerKind int32

const (
	SignatureTriggerInvoked       SignatureHelpTriggerKind = 1
	SignatureTriggerCharacter     SignatureHelpTriggerKind = 2
	SignatureTriggerContentChange SignatureHelpTriggerKind = 3
)

// EnumValues implements schema.Enumerated.
func (SignatureHelpTriggerKind) EnumValues() []any {
	return []any{SignatureTriggerInvoked, SignatureTriggerCharacter, SignatureTriggerContentChange}
}

// SignatureHelpContext carries additional information about the context of
// a signature help request.
//
// @since 3.15.0
type SignatureHelpContext struct {
	// What caused signature help to be triggered.
	TriggerKind SignatureHelpTriggerKind `json:"triggerKind"`

	// The character that caused signature help to be triggered. Absent
	// when TriggerKind is not SignatureTriggerCharacter.
	TriggerCharacter *string `json:"triggerCharacter,omitempty"`

	// Whether signature help was already showing when it was triggered.
	IsRetrigger bool `json:"isRetrigger"`

	// The currently active SignatureHelp, if any.
	ActiveSignatureHelp *SignatureHelp `json:"activeSignatureHelp,omitempty"`
}

// SignatureHelpClientCapabilities describes the client's signature help
// support.
type SignatureHelpClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`

	// The client supports the following SignatureInformation specific
	// properties.
	SignatureInformation *SignatureInformationCapability `json:"signatureInformation,omitempty"`

	// The client supports sending additional context information.
	//
	// @since 3.15.0
	ContextSupport *bool `json:"contextSupport,omitempty"`
}

// SignatureInformationCapability describes client support for signature
// information details.
type SignatureInformationCapability struct {
	// Content formats the client supports for documentation, in order of
	// preference.
	DocumentationFormat []MarkupKind `json:"documentationFormat,omitempty"`

	// Client capabilities specific to parameter information.
	ParameterInformation *ParameterInformationCapability `json:"parameterInformation,omitempty"`
}

// ParameterInformationCapability describes client support for parameter
// information details.
type ParameterInformationCapability struct {
	// The client supports processing label offsets instead of a simple
	// label string.
	//
	// @since 3.14.0
	LabelOffsetSupport *bool `json:"labelOffsetSupport,omitempty"`
}

// SignatureHelpOptions is the server capability for the signature help
// request.
type SignatureHelpOptions struct {
	WorkDoneProgressOptions

	// The characters that trigger signature help automatically.
	TriggerCharacters []string `json:"triggerCharacters,omitempty"`

	// Characters that re-trigger signature help while it is showing.
	//
	// @since 3.15.0
	RetriggerCharacters []string `json:"retriggerCharacters,omitempty"`
}

// SignatureHelpParams is the payload of the textDocument/signatureHelp
// request.
type SignatureHelpParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams

	// The signature help context. Only present if the client announces
	// contextSupport.
	//
	// @since 3.15.0
	Context *SignatureHelpContext `json:"context,omitempty"`
}

// GotoClientCapabilities is the common capability record of the goto
// definition / type definition / implementation requests.
type GotoClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`

	// The client supports additional metadata in the form of location
	// links.
	//
	// @since 3.14.0
	LinkSupport *bool `json:"linkSupport,omitempty"`
}

// DefinitionParams is the payload of the textDocument/definition request.
// Its result is a Locations value: a single location or an array.
type DefinitionParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}

// TypeDefinitionParams is the payload of textDocument/typeDefinition.
type TypeDefinitionParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}

// ImplementationParams is the payload of textDocument/implementation.
type ImplementationParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}

// ReferenceContext controls reference resolution.
type ReferenceContext struct {
	// Include the declaration of the symbol under the position.
	IncludeDeclaration bool `json:"includeDeclaration"`
}

// ReferenceParams is the payload of the textDocument/references request.
type ReferenceParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams

	Context ReferenceContext `json:"context"`
}

// DocumentHighlightKind is the kind of a document highlight.
type DocumentHighlightKind int32

const (
	// HighlightText is a textual occurrence.
	HighlightText DocumentHighlightKind = 1

	// HighlightRead is read access of a symbol, like reading a variable.
	HighlightRead DocumentHighlightKind = 2

	// HighlightWrite is write access of a symbol, like writing to a
	// variable.
	HighlightWrite DocumentHighlightKind = 3
)

// EnumValues implements schema.Enumerated.
func (DocumentHighlightKind) EnumValues() []any {
	return []any{HighlightText, HighlightRead, HighlightWrite}
}

// DocumentHighlightParams is the payload of the
// textDocument/documentHighlight request.
type DocumentHighlightParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}

// DocumentHighlight is a range inside a text document which deserves
// special attention, usually visualized by changing the background color
// of its range.
type DocumentHighlight struct {
	// The range this highlight applies to.
	Range Range `json:"range"`

	// The highlight kind. Defaults to HighlightText.
	Kind *DocumentHighlightKind `json:"kind,omitempty"`
}
