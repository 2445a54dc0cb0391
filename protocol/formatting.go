package protocol

// FormattingOptions is the value-set used by formatting requests. The
// specification allows further client-defined keys; they are ignored here.
type FormattingOptions struct {
	// Size of a tab in spaces.
	TabSize uint32 `json:"tabSize"`

	// Prefer spaces over tabs.
	InsertSpaces bool `json:"insertSpaces"`

	// Trim trailing whitespace on a line.
	//
	// @since 3.15.0
	TrimTrailingWhitespace *bool `json:"trimTrailingWhitespace,omitempty"`

	// Insert a newline character at the end of the file if absent.
	//
	// @since 3.15.0
	InsertFinalNewline *bool `json:"insertFinalNewline,omitempty"`

	// Trim all newlines after the final newline at the end of the file.
	//
	// @since 3.15.0
	TrimFinalNewlines *bool `json:"trimFinalNewlines,omitempty"`
}

// DocumentFormattingParams is the payload of the textDocument/formatting
// request.
type DocumentFormattingParams struct {
	WorkDoneProgressParams

	// The document to format.
	TextDocument TextDocumentIdentifier `json:"textDocument"`

	// The format options.
	Options FormattingOptions `json:"options"`
}

// DocumentRangeFormattingParams is the payload of the
// textDocument/rangeFormatting request.
type DocumentRangeFormattingParams struct {
	WorkDoneProgressParams

	// The document to format.
	TextDocument TextDocumentIdentifier `json:"textDocument"`

	// The range to format.
	Range Range `json:"range"`

	// The format options.
	Options FormattingOptions `json:"options"`
}

// DocumentOnTypeFormattingOptions is the server capability for on-type
// formatting.
type DocumentOnTypeFormattingOptions struct {
	// A character on which formatting should be triggered, like `{`.
	FirstTriggerCharacter string `json:"firstTriggerCharacter"`

	// More trigger characters.
	MoreTriggerCharacter []string `json:"moreTriggerCharacter,omitempty"`
}

// DocumentOnTypeFormattingParams is the payload of the
// textDocument/onTypeFormatting request.
type DocumentOnTypeFormattingParams struct {
	TextDocumentPositionParams

	// The character that was typed.
	Ch string `json:"ch"`

	// The format options.
	Options FormattingOptions `json:"options"`
}
