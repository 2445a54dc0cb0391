//go:build proposed

package protocol

import (
	"github.com/segmentio/encoding/json"

	"github.com/lspkit/lsp-go/schema"
)

// NotebookCellKind identifies what a notebook cell contains.
//
// @since 3.17.0
type NotebookCellKind int32

const (
	// CellMarkup is formatted source used for display.
	CellMarkup NotebookCellKind = 1

	// CellCode is source code.
	CellCode NotebookCellKind = 2
)

// EnumValues implements schema.Enumerated.
func (NotebookCellKind) EnumValues() []any {
	return []any{CellMarkup, CellCode}
}

// ExecutionSummary reports how a cell was last executed, if the client
// knows.
type ExecutionSummary struct {
	// A strict monotonically increasing value indicating the execution
	// order of a cell inside a notebook.
	ExecutionOrder uint32 `json:"executionOrder"`

	// Whether the execution was successful.
	Success *bool `json:"success,omitempty"`
}

// NotebookCell is a single cell of a notebook document. A cell's document
// URI is unique across all notebook cells, so it identifies both the cell
// and the cell's text document.
//
// @since 3.17.0
type NotebookCell struct {
	// The cell's kind.
	Kind NotebookCellKind `json:"kind"`

	// The URI of the cell's text document content.
	Document DocumentURI `json:"document"`

	// Additional metadata stored with the cell.
	Metadata map[string]any `json:"metadata,omitempty"`

	// Additional execution summary information if supported by the client.
	ExecutionSummary *ExecutionSummary `json:"executionSummary,omitempty"`
}

// NotebookDocument is a collection of cells backed by cell text documents.
//
// @since 3.17.0
type NotebookDocument struct {
	// The notebook document's URI.
	URI DocumentURI `json:"uri"`

	// The type of the notebook.
	NotebookType string `json:"notebookType"`

	// The version number of this document. It increases after each change,
	// including undo and redo.
	Version int32 `json:"version"`

	// Additional metadata stored with the notebook document.
	Metadata map[string]any `json:"metadata,omitempty"`

	// The cells of the notebook.
	Cells []NotebookCell `json:"cells"`
}

// NotebookDocumentSyncClientCapabilities describes notebook
// synchronization support on the client.
//
// @since 3.17.0
type NotebookDocumentSyncClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`

	// The client supports sending execution summary data per cell.
	ExecutionSummaryReport *bool `json:"executionSummarySupport,omitempty"`
}

// NotebookDocumentClientCapabilities groups notebook document client
// capabilities.
//
// @since 3.17.0
type NotebookDocumentClientCapabilities struct {
	// Capabilities specific to notebook document synchronization.
	Synchronization NotebookDocumentSyncClientCapabilities `json:"synchronization"`
}

// NotebookDocumentFilter selects notebook documents by type, URI scheme,
// or glob pattern. At least one property must be set.
//
// @since 3.17.0
type NotebookDocumentFilter struct {
	// The type of the enclosing notebook.
	NotebookType *string `json:"notebookType,omitempty"`

	// A URI scheme, like "file" or "untitled".
	Scheme *string `json:"scheme,omitempty"`

	// A glob pattern.
	Pattern *string `json:"pattern,omitempty"`
}

// Notebook matches a notebook document either by bare notebook type, where
// "*" matches every notebook, or by a document filter.
type Notebook struct {
	Type   *string
	Filter *NotebookDocumentFilter
}

// MarshalJSON implements json.Marshaler.
func (n Notebook) MarshalJSON() ([]byte, error) {
	if n.Type != nil {
		return json.Marshal(*n.Type)
	}
	return json.Marshal(n.Filter)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Notebook) UnmarshalJSON(data []byte) error {
	*n = Notebook{}
	if sniff(data) == '"' {
		n.Type = new(string)
		return json.Unmarshal(data, n.Type)
	}
	if sniff(data) != '{' {
		return &schema.Mismatch{Message: "expected notebook type or filter"}
	}
	n.Filter = new(NotebookDocumentFilter)
	return json.Unmarshal(data, n.Filter)
}

// NotebookCellSelector selects cells by the language of their text
// document.
type NotebookCellSelector struct {
	Language string `json:"language"`
}

// NotebookSelector names the notebooks and cells to sync. A selector with
// a notebook filter but no cell selector syncs all cells of matching
// notebooks; one with only a cell selector syncs every notebook containing
// at least one matching cell. At least one of the two must be set.
//
// @since 3.17.0
type NotebookSelector struct {
	// The notebook to be synced.
	Notebook *Notebook `json:"notebook,omitempty"`

	// The cells of the matching notebook to be synced.
	Cells []NotebookCellSelector `json:"cells,omitempty"`
}

// NotebookDocumentSyncOptions is the notebookDocumentSync server
// capability.
//
// @since 3.17.0
type NotebookDocumentSyncOptions struct {
	// The notebooks to be synced.
	NotebookSelector []NotebookSelector `json:"notebookSelector"`

	// Whether save notifications should be forwarded to the server.
	Save *bool `json:"save,omitempty"`
}

// NotebookDocumentSyncRegistrationOptions describes dynamic registration
// of notebook synchronization.
//
// @since 3.17.0
type NotebookDocumentSyncRegistrationOptions struct {
	NotebookDocumentSyncOptions
	StaticRegistrationOptions
}

// NotebookCellTextDocumentFilter denotes a cell text document by the
// notebook containing it and optionally the cell's language.
//
// @since 3.17.0
type NotebookCellTextDocumentFilter struct {
	// A filter matched against the containing notebook.
	Notebook Notebook `json:"notebook"`

	// A language id like "python", matched against the language of the
	// cell's document. "*" matches every language.
	Language *string `json:"language,omitempty"`
}

// NotebookDocumentIdentifier identifies a notebook document in the client.
//
// @since 3.17.0
type NotebookDocumentIdentifier struct {
	// The notebook document's URI.
	URI DocumentURI `json:"uri"`
}

// VersionedNotebookDocumentIdentifier identifies a specific version of a
// notebook document.
//
// @since 3.17.0
type VersionedNotebookDocumentIdentifier struct {
	// The version number of this notebook document.
	Version int32 `json:"version"`

	// The notebook document's URI.
	URI DocumentURI `json:"uri"`
}

// NotebookCellArrayChange describes how to move a notebook's cell array
// from one state to the next.
//
// @since 3.17.0
type NotebookCellArrayChange struct {
	// The start offset of the cell that changed.
	Start uint32 `json:"start"`

	// The number of deleted cells.
	DeleteCount uint32 `json:"deleteCount"`

	// The new cells, if any.
	Cells []NotebookCell `json:"cells,omitempty"`
}

// NotebookDocumentCellChangeStructure describes cells added to or removed
// from a notebook.
type NotebookDocumentCellChangeStructure struct {
	// The change to the cell array.
	Array NotebookCellArrayChange `json:"array"`

	// Additional opened cell text documents.
	DidOpen []TextDocumentItem `json:"didOpen,omitempty"`

	// Additional closed cell text documents.
	DidClose []TextDocumentIdentifier `json:"didClose,omitempty"`
}

// NotebookDocumentChangeTextContent carries text changes of a single cell
// document.
type NotebookDocumentChangeTextContent struct {
	Document VersionedTextDocumentIdentifier  `json:"document"`
	Changes  []TextDocumentContentChangeEvent `json:"changes"`
}

// NotebookDocumentCellChange groups all cell-level changes of a notebook
// change event.
type NotebookDocumentCellChange struct {
	// Changes to the cell structure, adding or removing cells.
	Structure *NotebookDocumentCellChangeStructure `json:"structure,omitempty"`

	// Changes to cell properties like kind, execution summary or metadata.
	Data []NotebookCell `json:"data,omitempty"`

	// Changes to the text content of notebook cells.
	TextContent []NotebookDocumentChangeTextContent `json:"textContent,omitempty"`
}

// NotebookDocumentChangeEvent describes a single state change of a
// notebook document, moving the notebook, its cells and its cell text
// documents from state S to S'.
//
// @since 3.17.0
type NotebookDocumentChangeEvent struct {
	// The changed metadata, if any.
	Metadata map[string]any `json:"metadata,omitempty"`

	// Changes to cells.
	Cells *NotebookDocumentCellChange `json:"cells,omitempty"`
}

// DidOpenNotebookDocumentParams is the payload of
// notebookDocument/didOpen.
//
// @since 3.17.0
type DidOpenNotebookDocumentParams struct {
	// The notebook document that got opened.
	NotebookDocument NotebookDocument `json:"notebookDocument"`

	// The text documents that represent the content of the notebook's
	// cells.
	CellTextDocuments []TextDocumentItem `json:"cellTextDocuments"`
}

// DidChangeNotebookDocumentParams is the payload of
// notebookDocument/didChange. Applying the received change events in order
// to the same initial content mirrors the notebook.
//
// @since 3.17.0
type DidChangeNotebookDocumentParams struct {
	// The notebook document that did change. The version number points to
	// the version after all provided changes have been applied.
	NotebookDocument VersionedNotebookDocumentIdentifier `json:"notebookDocument"`

	// The actual changes to the notebook document.
	Change NotebookDocumentChangeEvent `json:"change"`
}

// DidSaveNotebookDocumentParams is the payload of
// notebookDocument/didSave.
//
// @since 3.17.0
type DidSaveNotebookDocumentParams struct {
	// The notebook document that got saved.
	NotebookDocument NotebookDocumentIdentifier `json:"notebookDocument"`
}

// DidCloseNotebookDocumentParams is the payload of
// notebookDocument/didClose.
//
// @since 3.17.0
type DidCloseNotebookDocumentParams struct {
	// The notebook document that got closed.
	NotebookDocument NotebookDocumentIdentifier `json:"notebookDocument"`

	// The text documents that represent the content of the closed cells.
	CellTextDocuments []TextDocumentIdentifier `json:"cellTextDocuments"`
}

// Notebook document notification methods.
const (
	MethodDidOpenNotebookDocument   = "notebookDocument/didOpen"
	MethodDidChangeNotebookDocument = "notebookDocument/didChange"
	MethodDidSaveNotebookDocument   = "notebookDocument/didSave"
	MethodDidCloseNotebookDocument  = "notebookDocument/didClose"
)

func init() {
	notificationShapes[MethodDidOpenNotebookDocument] = typeOf[DidOpenNotebookDocumentParams]()
	notificationShapes[MethodDidChangeNotebookDocument] = typeOf[DidChangeNotebookDocumentParams]()
	notificationShapes[MethodDidSaveNotebookDocument] = typeOf[DidSaveNotebookDocumentParams]()
	notificationShapes[MethodDidCloseNotebookDocument] = typeOf[DidCloseNotebookDocumentParams]()
}
