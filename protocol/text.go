package protocol

// TextDocumentSyncKind defines how the host (editor) should sync document
// changes to the language server.
type TextDocumentSyncKind int32

const (
	// SyncNone means documents should not be synced at all.
	SyncNone TextDocumentSyncKind = 0

	// SyncFull means documents are synced by always sending the full
	// content of the document.
	SyncFull TextDocumentSyncKind = 1

	// SyncIncremental means documents are synced by sending incremental
	// updates to the full document after it is opened.
	SyncIncremental TextDocumentSyncKind = 2
)

// EnumValues implements schema.Enumerated.
func (TextDocumentSyncKind) EnumValues() []any {
	return []any{SyncNone, SyncFull, SyncIncremental}
}

// TextDocumentSaveReason represents why a text document is saved.
type TextDocumentSaveReason int32

const (
	// SaveManual means the save was manually triggered, e.g. by the user
	// pressing save or by an API call.
	SaveManual TextDocumentSaveReason = 1

	// SaveAfterDelay means the save was automatic after a delay.
	SaveAfterDelay TextDocumentSaveReason = 2

	// SaveFocusOut means the editor lost focus.
	SaveFocusOut TextDocumentSaveReason = 3
)

// EnumValues implements schema.Enumerated.
func (TextDocumentSaveReason) EnumValues() []any {
	return []any{SaveManual, SaveAfterDelay, SaveFocusOut}
}

// SaveOptions configures the didSave notification.
type SaveOptions struct {
	// The client is supposed to include the content on save.
	IncludeText *bool `json:"includeText,omitempty"`
}

// TextDocumentSyncOptions is the options form of the textDocumentSync
// server capability.
type TextDocumentSyncOptions struct {
	// Open and close notifications are sent to the server.
	OpenClose *bool `json:"openClose,omitempty"`

	// Change notifications are sent to the server.
	Change *TextDocumentSyncKind `json:"change,omitempty"`

	// Will-save notifications are sent to the server.
	WillSave *bool `json:"willSave,omitempty"`

	// Will-save-wait-until requests are sent to the server.
	WillSaveWaitUntil *bool `json:"willSaveWaitUntil,omitempty"`

	// Save notifications are sent to the server.
	Save *SaveOptions `json:"save,omitempty"`
}

// TextDocumentSyncClientCapabilities describes the synchronization support
// of the client.
type TextDocumentSyncClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`

	// The client supports sending will-save notifications.
	WillSave *bool `json:"willSave,omitempty"`

	// The client supports sending a will-save request and waits for edits
	// before saving.
	WillSaveWaitUntil *bool `json:"willSaveWaitUntil,omitempty"`

	// The client supports did-save notifications.
	DidSave *bool `json:"didSave,omitempty"`
}

// DidOpenTextDocumentParams is the payload of textDocument/didOpen. After
// this notification the document's truth is managed by the client.
type DidOpenTextDocumentParams struct {
	// The document that was opened.
	TextDocument TextDocumentItem `json:"textDocument"`
}

// TextDocumentContentChangeEvent describes a change to a text document. If
// Range is omitted the event describes a full replacement of the document.
type TextDocumentContentChangeEvent struct {
	// The range of the document that changed.
	Range *Range `json:"range,omitempty"`

	// The optional length of the range that got replaced. Deprecated in
	// favor of Range but still sent by older clients.
	RangeLength *uint32 `json:"rangeLength,omitempty"`

	// The new text for the provided range, or the whole document.
	Text string `json:"text"`
}

// DidChangeTextDocumentParams is the payload of textDocument/didChange.
type DidChangeTextDocumentParams struct {
	// The document that did change. The version number points to the
	// version after all provided content changes have been applied.
	TextDocument VersionedTextDocumentIdentifier `json:"textDocument"`

	// The content changes, in the order they apply.
	ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
}

// WillSaveTextDocumentParams is the payload of textDocument/willSave and
// textDocument/willSaveWaitUntil.
type WillSaveTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`

	// The reason why the document will be saved.
	Reason TextDocumentSaveReason `json:"reason"`
}

// DidSaveTextDocumentParams is the payload of textDocument/didSave.
type DidSaveTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`

	// The content when saved, if requested via SaveOptions.
	Text *string `json:"text,omitempty"`
}

// DidCloseTextDocumentParams is the payload of textDocument/didClose. The
// document's truth now exists where its URI points.
type DidCloseTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}
