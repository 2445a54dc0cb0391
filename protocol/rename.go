package protocol

import (
	"github.com/segmentio/encoding/json"

	"github.com/lspkit/lsp-go/schema"
)

// RenameClientCapabilities describes the client's rename support.
type RenameClientCapabilities struct {
	// Whether rename supports dynamic registration.
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`

	// Client supports testing for validity of rename operations before
	// execution via textDocument/prepareRename.
	//
	// @since 3.12.0
	PrepareSupport *bool `json:"prepareSupport,omitempty"`
}

// RenameOptions is the server capability for the rename request.
type RenameOptions struct {
	WorkDoneProgressOptions

	// Renames should be checked and tested before being executed.
	PrepareProvider *bool `json:"prepareProvider,omitempty"`
}

// RenameParams is the payload of the textDocument/rename request.
type RenameParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams

	// The new name of the symbol. If the given name is not valid the
	// request must return a ResponseError with an appropriate message.
	NewName string `json:"newName"`
}

// PrepareRenameParams is the payload of the textDocument/prepareRename
// request.
//
// @since 3.12.0
type PrepareRenameParams struct {
	TextDocumentPositionParams
}

// PrepareRenameResponse is the result of a prepare rename request, which
// the specification types as Range | { range, placeholder }.
type PrepareRenameResponse struct {
	// The range of the string to rename.
	Range Range

	// The placeholder text to use in the rename UI. Empty when the bare
	// range form was sent.
	Placeholder string
}

func (r PrepareRenameResponse) MarshalJSON() ([]byte, error) {
	if r.Placeholder != "" {
		return json.Marshal(struct {
			Range       Range  `json:"range"`
			Placeholder string `json:"placeholder"`
		}{r.Range, r.Placeholder})
	}
	return json.Marshal(r.Range)
}

func (r *PrepareRenameResponse) UnmarshalJSON(data []byte) error {
	*r = PrepareRenameResponse{}
	if sniff(data) != '{' {
		return &schema.Mismatch{Message: "expected range or placeholder object"}
	}
	// Both forms are objects; the placeholder form nests the range under
	// a "range" key.
	var wire struct {
		Range       *Range `json:"range"`
		Placeholder string `json:"placeholder"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Range != nil {
		r.Range = *wire.Range
		r.Placeholder = wire.Placeholder
		return nil
	}
	return json.Unmarshal(data, &r.Range)
}

// LinkedEditingRangeOptions is the server capability for the linked
// editing range request.
//
// @since 3.16.0
type LinkedEditingRangeOptions struct {
	WorkDoneProgressOptions
}

// LinkedEditingRangeRegistrationOptions scopes a dynamic linked editing
// range registration.
//
// @since 3.16.0
type LinkedEditingRangeRegistrationOptions struct {
	TextDocumentRegistrationOptions
	LinkedEditingRangeOptions
	StaticRegistrationOptions
}

// LinkedEditingRangeParams is the payload of the
// textDocument/linkedEditingRange request.
//
// @since 3.16.0
type LinkedEditingRangeParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
}

// LinkedEditingRanges is the result of a linked editing range request.
//
// @since 3.16.0
type LinkedEditingRanges struct {
	// Ranges that can be renamed together. The ranges must have identical
	// length, contain identical text content, and cannot overlap.
	Ranges []Range `json:"ranges"`

	// An optional word pattern (regular expression) describing valid
	// contents for the ranges. Falls back to the client configuration's
	// word pattern.
	WordPattern *string `json:"wordPattern,omitempty"`
}
