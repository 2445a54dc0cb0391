package protocol

import (
	"github.com/segmentio/encoding/json"

	"github.com/lspkit/lsp-go/schema"
)

// SymbolKind is the kind of a document or workspace symbol.
type SymbolKind int32

const (
	SymbolFile          SymbolKind = 1
	SymbolModule        SymbolKind = 2
	SymbolNamespace     SymbolKind = 3
	SymbolPackage       SymbolKind = 4
	SymbolClass         SymbolKind = 5
	SymbolMethod        SymbolKind = 6
	SymbolProperty      SymbolKind = 7
	SymbolField         SymbolKind = 8
	SymbolConstructor   SymbolKind = 9
	SymbolEnum          SymbolKind = 10
	SymbolInterface     SymbolKind = 11
	SymbolFunction      SymbolKind = 12
	SymbolVariable      SymbolKind = 13
	SymbolConstant      SymbolKind = 14
	SymbolString        SymbolKind = 15
	SymbolNumber        SymbolKind = 16
	SymbolBoolean       SymbolKind = 17
	SymbolArray         SymbolKind = 18
	SymbolObject        SymbolKind = 19
	SymbolKey           SymbolKind = 20
	SymbolNull          SymbolKind = 21
	SymbolEnumMember    SymbolKind = 22
	SymbolStruct        SymbolKind = 23
	SymbolEvent         SymbolKind = 24
	SymbolOperator      SymbolKind = 25
	SymbolTypeParameter SymbolKind = 26
)

// EnumValues implements schema.Enumerated.
func (SymbolKind) EnumValues() []any {
	return []any{
		SymbolFile, SymbolModule, SymbolNamespace, SymbolPackage, SymbolClass,
		SymbolMethod, SymbolProperty, SymbolField, SymbolConstructor,
		SymbolEnum, SymbolInterface, SymbolFunction, SymbolVariable,
		SymbolConstant, SymbolString, SymbolNumber, SymbolBoolean,
		SymbolArray, SymbolObject, SymbolKey, SymbolNull, SymbolEnumMember,
		SymbolStruct, SymbolEvent, SymbolOperator, SymbolTypeParameter,
	}
}

// SymbolTag adds extra annotations that tweak the rendering of a symbol.
//
// @since 3.16.0
type SymbolTag int32

// SymbolTagDeprecated renders a symbol obsolete, usually with a
// strike-through.
const SymbolTagDeprecated SymbolTag = 1

// EnumValues implements schema.Enumerated.
func (SymbolTag) EnumValues() []any {
	return []any{SymbolTagDeprecated}
}

// SymbolKindCapability lists the symbol kinds the client supports. Absent,
// the client only supports the kinds from File to Array of the initial
// protocol version.
type SymbolKindCapability struct {
	ValueSet []SymbolKind `json:"valueSet,omitempty"`
}

// DocumentSymbolClientCapabilities describes the client's document symbol
// support.
type DocumentSymbolClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`

	SymbolKind *SymbolKindCapability `json:"symbolKind,omitempty"`

	// The client supports hierarchical document symbols.
	HierarchicalDocumentSymbolSupport *bool `json:"hierarchicalDocumentSymbolSupport,omitempty"`

	// The client supports tags on SymbolInformation and DocumentSymbol.
	//
	// @since 3.16.0
	TagSupport *TagSupport[SymbolTag] `json:"tagSupport,omitempty"`
}

// WorkspaceSymbolClientCapabilities describes the client's workspace
// symbol support.
type WorkspaceSymbolClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`

	SymbolKind *SymbolKindCapability `json:"symbolKind,omitempty"`

	// The client supports tags on SymbolInformation.
	//
	// @since 3.16.0
	TagSupport *TagSupport[SymbolTag] `json:"tagSupport,omitempty"`
}

// DocumentSymbolParams is the payload of the textDocument/documentSymbol
// request.
type DocumentSymbolParams struct {
	WorkDoneProgressParams
	PartialResultParams

	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// DocumentSymbol represents programming constructs like variables, classes,
// and interfaces that appear in a document. Document symbols are
// hierarchical and carry two ranges: one enclosing their definition and one
// pointing to their most interesting part, e.g. the name.
type DocumentSymbol struct {
	// The name of this symbol, shown in the UI. Must not be empty or
	// whitespace-only.
	Name string `json:"name"`

	// More detail for this symbol, e.g. the signature of a function.
	Detail *string `json:"detail,omitempty"`

	// The kind of this symbol.
	Kind SymbolKind `json:"kind"`

	// Tags for this symbol.
	//
	// @since 3.16.0
	Tags []SymbolTag `json:"tags,omitempty"`

	// Indicates if this symbol is deprecated. Deprecated in favor of Tags.
	Deprecated *bool `json:"deprecated,omitempty"`

	// The range enclosing this symbol, including leading/trailing
	// whitespace and everything else like comments.
	Range Range `json:"range"`

	// The range to reveal when this symbol is selected, e.g. the symbol
	// name. Must be contained by Range.
	SelectionRange Range `json:"selectionRange"`

	// Children of this symbol, e.g. properties of a class.
	Children []DocumentSymbol `json:"children,omitempty"`
}

// SymbolInformation represents information about a programming construct in
// the flat, non-hierarchical form.
type SymbolInformation struct {
	// The name of this symbol.
	Name string `json:"name"`

	// The kind of this symbol.
	Kind SymbolKind `json:"kind"`

	// Tags for this symbol.
	//
	// @since 3.16.0
	Tags []SymbolTag `json:"tags,omitempty"`

	// Indicates if this symbol is deprecated. Deprecated in favor of Tags.
	Deprecated *bool `json:"deprecated,omitempty"`

	// The location of this symbol, used to reveal it in the editor. The
	// range normally spans more than the symbol name itself.
	Location Location `json:"location"`

	// The name of the symbol containing this symbol, for UI labeling only;
	// it does not imply hierarchy.
	ContainerName *string `json:"containerName,omitempty"`
}

// DocumentSymbolResponse is the result of a document symbol request, which
// the specification types as DocumentSymbol[] | SymbolInformation[].
type DocumentSymbolResponse struct {
	Symbols []DocumentSymbol
	Flat    []SymbolInformation
}

func (r DocumentSymbolResponse) MarshalJSON() ([]byte, error) {
	if r.Flat != nil {
		return json.Marshal(r.Flat)
	}
	return json.Marshal(r.Symbols)
}

func (r *DocumentSymbolResponse) UnmarshalJSON(data []byte) error {
	*r = DocumentSymbolResponse{}
	switch sniff(data) {
	case 'n':
		return nil
	case '[':
	default:
		return &schema.Mismatch{Message: "expected symbol array"}
	}

	// The two array forms are distinguished by the shape of their
	// elements: only SymbolInformation carries a location.
	var probe []struct {
		Location *Location `json:"location"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if len(probe) > 0 && probe[0].Location != nil {
		return json.Unmarshal(data, &r.Flat)
	}
	return json.Unmarshal(data, &r.Symbols)
}

// WorkspaceSymbolParams is the payload of the workspace/symbol request.
type WorkspaceSymbolParams struct {
	WorkDoneProgressParams
	PartialResultParams

	// A query string to filter symbols by. An empty string matches all
	// symbols.
	Query string `json:"query"`
}
