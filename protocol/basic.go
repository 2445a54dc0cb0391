package protocol

// Position in a text document expressed as zero-based line and character
// offset. Offsets are based on a UTF-16 string representation.
type Position struct {
	// Line position in a document (zero-based).
	Line uint32 `json:"line"`

	// Character offset on a line in a document (zero-based). If the value
	// is greater than the line length it defaults back to the line length.
	Character uint32 `json:"character"`
}

// Range in a text document expressed as (zero-based) start and end
// positions. A range is comparable to a selection in an editor; the end
// position is exclusive.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Location represents a location inside a resource, such as a line inside a
// text file.
type Location struct {
	URI   DocumentURI `json:"uri"`
	Range Range       `json:"range"`
}

// LocationLink represents a link between a source and a target location.
type LocationLink struct {
	// Span of the origin of this link, used as the underlined span for
	// mouse interaction. Defaults to the word range at the mouse position.
	OriginSelectionRange *Range `json:"originSelectionRange,omitempty"`

	// The target resource identifier of this link.
	TargetURI DocumentURI `json:"targetUri"`

	// The full target range of this link.
	TargetRange Range `json:"targetRange"`

	// The range that should be selected and revealed when this link is
	// being followed, e.g. the name of a function. Must be contained by
	// TargetRange.
	TargetSelectionRange Range `json:"targetSelectionRange"`
}

// Command represents a reference to a command. The protocol currently does
// not specify a set of well-known commands.
type Command struct {
	// Title of the command, like `save`.
	Title string `json:"title"`

	// The identifier of the actual command handler.
	Command string `json:"command"`

	// Arguments that the command handler should be invoked with.
	Arguments []any `json:"arguments,omitempty"`
}

// TextEdit is a textual edit applicable to a text document.
type TextEdit struct {
	// The range of the text document to be manipulated. To insert text
	// into a document create a range where start == end.
	Range Range `json:"range"`

	// The string to be inserted. For delete operations use an empty string.
	NewText string `json:"newText"`
}

// TextDocumentEdit describes textual changes on a single text document. The
// document is referred to with a versioned identifier so the editor can
// detect state drift before applying the edits.
type TextDocumentEdit struct {
	TextDocument VersionedTextDocumentIdentifier `json:"textDocument"`
	Edits        []TextEdit                      `json:"edits"`
}

// WorkspaceEdit represents changes to many resources managed in the
// workspace. A client capability decides whether the flat Changes form or
// the versioned DocumentChanges form is used.
type WorkspaceEdit struct {
	// Holds changes to existing resources keyed by document URI.
	Changes map[DocumentURI][]TextEdit `json:"changes,omitempty"`

	// Versioned document edits. Preferred over Changes when the client
	// announces support via workspace.workspaceEdit.documentChanges.
	DocumentChanges []TextDocumentEdit `json:"documentChanges,omitempty"`
}

// TextDocumentIdentifier identifies a document by its URI.
type TextDocumentIdentifier struct {
	URI DocumentURI `json:"uri"`
}

// TextDocumentItem is an item to transfer a text document from the client
// to the server.
type TextDocumentItem struct {
	URI DocumentURI `json:"uri"`

	// The text document's language identifier.
	LanguageID string `json:"languageId"`

	// The version number of this document (it will increase after each
	// change, including undo/redo).
	Version int32 `json:"version"`

	// The content of the opened text document.
	Text string `json:"text"`
}

// VersionedTextDocumentIdentifier is a text document identifier denoting a
// specific version of a document.
type VersionedTextDocumentIdentifier struct {
	TextDocumentIdentifier
	Version int32 `json:"version"`
}

// TextDocumentPositionParams is the parameter literal shared by requests
// addressing a position inside a document.
type TextDocumentPositionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
}

// DocumentFilter denotes a document through properties like language,
// scheme, or pattern. All properties are optional but at least one should
// be provided.
type DocumentFilter struct {
	// A language id, like `typescript`.
	Language string `json:"language,omitempty"`

	// A URI scheme, like `file` or `untitled`.
	Scheme string `json:"scheme,omitempty"`

	// A glob pattern, like `*.{ts,js}`.
	Pattern string `json:"pattern,omitempty"`
}

// DocumentSelector is the combination of one or more document filters.
type DocumentSelector []DocumentFilter

// MarkupKind describes the content type that a client supports in various
// result literals like Hover.
type MarkupKind string

const (
	// PlainText is rendered as-is.
	PlainText MarkupKind = "plaintext"

	// Markdown is rendered using a markdown engine, with the same quirks
	// as the VS Code renderer.
	Markdown MarkupKind = "markdown"
)

// EnumValues implements schema.Enumerated.
func (MarkupKind) EnumValues() []any {
	return []any{PlainText, Markdown}
}

// MarkupContent represents a string value which content can be represented
// in different formats.
type MarkupContent struct {
	Kind  MarkupKind `json:"kind"`
	Value string     `json:"value"`
}
