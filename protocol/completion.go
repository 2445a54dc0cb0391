package protocol

import (
	"github.com/segmentio/encoding/json"

	"github.com/lspkit/lsp-go/schema"
)

// InsertTextFormat defines how to interpret the insert text in a completion
// item.
type InsertTextFormat int32

const (
	// InsertPlainText is inserted as a normal text string.
	InsertPlainText InsertTextFormat = 1

	// InsertSnippet is interpreted as a snippet: tab stops and
	// placeholders with `$1`, `$2` and `${3:foo}`; `$0` is the final tab
	// stop.
	InsertSnippet InsertTextFormat = 2
)

// EnumValues implements schema.Enumerated.
func (InsertTextFormat) EnumValues() []any {
	return []any{InsertPlainText, InsertSnippet}
}

// CompletionItemKind is the kind of a completion entry; editors pick an
// icon based on it.
type CompletionItemKind int32

const (
	KindText          CompletionItemKind = 1
	KindMethod        CompletionItemKind = 2
	KindFunction      CompletionItemKind = 3
	KindConstructor   CompletionItemKind = 4
	KindField         CompletionItemKind = 5
	KindVariable      CompletionItemKind = 6
	KindClass         CompletionItemKind = 7
	KindInterface     CompletionItemKind = 8
	KindModule        CompletionItemKind = 9
	KindProperty      CompletionItemKind = 10
	KindUnit          CompletionItemKind = 11
	KindValue         CompletionItemKind = 12
	KindEnum          CompletionItemKind = 13
	KindKeyword       CompletionItemKind = 14
	KindSnippet       CompletionItemKind = 15
	KindColor         CompletionItemKind = 16
	KindFile          CompletionItemKind = 17
	KindReference     CompletionItemKind = 18
	KindFolder        CompletionItemKind = 19
	KindEnumMember    CompletionItemKind = 20
	KindConstant      CompletionItemKind = 21
	KindStruct        CompletionItemKind = 22
	KindEvent         CompletionItemKind = 23
	KindOperator      CompletionItemKind = 24
	KindTypeParameter CompletionItemKind = 25
)

// EnumValues implements schema.Enumerated.
func (CompletionItemKind) EnumValues() []any {
	return []any{
		KindText, KindMethod, KindFunction, KindConstructor, KindField,
		KindVariable, KindClass, KindInterface, KindModule, KindProperty,
		KindUnit, KindValue, KindEnum, KindKeyword, KindSnippet, KindColor,
		KindFile, KindReference, KindFolder, KindEnumMember, KindConstant,
		KindStruct, KindEvent, KindOperator, KindTypeParameter,
	}
}

// CompletionItemTag adds extra annotations that tweak the rendering of a
// completion item.
//
// @since 3.15.0
type CompletionItemTag int32

// CompletionTagDeprecated renders the item obsolete, usually with a
// strike-through.
const CompletionTagDeprecated CompletionItemTag = 1

// EnumValues implements schema.Enumerated.
func (CompletionItemTag) EnumValues() []any {
	return []any{CompletionTagDeprecated}
}

// InsertTextMode describes how whitespace and indentation are handled
// during completion item insertion.
//
// @since 3.16.0
type InsertTextMode int32

const (
	// InsertAsIs takes the insert string as it is; the client applies no
	// adjustments.
	InsertAsIs InsertTextMode = 1

	// InsertAdjustIndentation adjusts leading whitespace of new lines to
	// the indentation of the line the item is accepted on.
	InsertAdjustIndentation InsertTextMode = 2
)

// EnumValues implements schema.Enumerated.
func (InsertTextMode) EnumValues() []any {
	return []any{InsertAsIs, InsertAdjustIndentation}
}

// CompletionTriggerKind describes how a completion was triggered.
type CompletionTriggerKind int32

const (
	// TriggerInvoked: completion was triggered by typing an identifier,
	// manual invocation, or via API.
	TriggerInvoked CompletionTriggerKind = 1

	// TriggerCharacter: completion was triggered by a trigger character.
	TriggerCharacter CompletionTriggerKind = 2

	// TriggerForIncompleteCompletions: the current completion list is
	// incomplete and further typing occurred.
	TriggerForIncompleteCompletions CompletionTriggerKind = 3
)

// EnumValues implements schema.Enumerated.
func (CompletionTriggerKind) EnumValues() []any {
	return []any{TriggerInvoked, TriggerCharacter, TriggerForIncompleteCompletions}
}

// CompletionItemCapabilityResolveSupport lists the completion item
// properties a client can resolve lazily.
//
// @since 3.16.0
type CompletionItemCapabilityResolveSupport struct {
	Properties []string `json:"properties"`
}

// InsertTextModeSupport lists the insert text modes a client supports on a
// completion item.
//
// @since 3.16.0
type InsertTextModeSupport struct {
	ValueSet []InsertTextMode `json:"valueSet"`
}

// CompletionItemCapability describes the client's completion item support.
type CompletionItemCapability struct {
	// Client supports snippets as insert text.
	SnippetSupport *bool `json:"snippetSupport,omitempty"`

	// Client supports commit characters on a completion item.
	CommitCharactersSupport *bool `json:"commitCharactersSupport,omitempty"`

	// Content formats the client supports for the documentation property,
	// in order of preference.
	DocumentationFormat []MarkupKind `json:"documentationFormat,omitempty"`

	// Client supports the deprecated property on a completion item.
	DeprecatedSupport *bool `json:"deprecatedSupport,omitempty"`

	// Client supports the preselect property on a completion item.
	PreselectSupport *bool `json:"preselectSupport,omitempty"`

	// Client supports the tag property on a completion item. Unknown tags
	// must be handled gracefully and preserved through a resolve round
	// trip.
	//
	// @since 3.15.0
	TagSupport *TagSupport[CompletionItemTag] `json:"tagSupport,omitempty"`

	// Client supports insert replace edits.
	//
	// @since 3.16.0
	InsertReplaceSupport *bool `json:"insertReplaceSupport,omitempty"`

	// Which properties a client can resolve lazily on a completion item.
	//
	// @since 3.16.0
	ResolveSupport *CompletionItemCapabilityResolveSupport `json:"resolveSupport,omitempty"`

	// The client supports the insertTextMode property on a completion
	// item.
	//
	// @since 3.16.0
	InsertTextModeSupport *InsertTextModeSupport `json:"insertTextModeSupport,omitempty"`
}

// CompletionItemKindCapability lists the completion item kinds the client
// supports. Absent, the client only supports the kinds from Text to
// Reference of the initial protocol version.
type CompletionItemKindCapability struct {
	ValueSet []CompletionItemKind `json:"valueSet,omitempty"`
}

// CompletionClientCapabilities describes the client's completion support.
type CompletionClientCapabilities struct {
	// Whether completion supports dynamic registration.
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`

	CompletionItem     *CompletionItemCapability     `json:"completionItem,omitempty"`
	CompletionItemKind *CompletionItemKindCapability `json:"completionItemKind,omitempty"`

	// The client supports sending additional context information in a
	// textDocument/completion request.
	ContextSupport *bool `json:"contextSupport,omitempty"`
}

// InsertReplaceEdit is a special text edit providing both an insert and a
// replace operation.
//
// @since 3.16.0
type InsertReplaceEdit struct {
	// The string to be inserted.
	NewText string `json:"newText"`

	// The range if the insert is requested.
	Insert Range `json:"insert"`

	// The range if the replace is requested.
	Replace Range `json:"replace"`
}

// CompletionTextEdit holds a completion item's edit, which the
// specification types as TextEdit | InsertReplaceEdit. Exactly one side is
// set.
type CompletionTextEdit struct {
	Edit             *TextEdit
	InsertAndReplace *InsertReplaceEdit
}

func (e CompletionTextEdit) MarshalJSON() ([]byte, error) {
	if e.InsertAndReplace != nil {
		return json.Marshal(e.InsertAndReplace)
	}
	return json.Marshal(e.Edit)
}

func (e *CompletionTextEdit) UnmarshalJSON(data []byte) error {
	*e = CompletionTextEdit{}
	if sniff(data) != '{' {
		return &schema.Mismatch{Message: "expected text edit object"}
	}
	var probe struct {
		Insert *Range `json:"insert"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Insert != nil {
		e.InsertAndReplace = &InsertReplaceEdit{}
		return json.Unmarshal(data, e.InsertAndReplace)
	}
	e.Edit = &TextEdit{}
	return json.Unmarshal(data, e.Edit)
}

// CompletionOptions is the server capability for the completion request.
type CompletionOptions struct {
	WorkDoneProgressOptions

	// The server provides support to resolve additional information for a
	// completion item.
	ResolveProvider *bool `json:"resolveProvider,omitempty"`

	// The characters that trigger completion automatically.
	TriggerCharacters []string `json:"triggerCharacters,omitempty"`

	// The list of all possible commit characters.
	//
	// @since 3.2.0
	AllCommitCharacters []string `json:"allCommitCharacters,omitempty"`
}

// CompletionRegistrationOptions scopes a dynamic completion registration.
type CompletionRegistrationOptions struct {
	TextDocumentRegistrationOptions
	CompletionOptions
}

// CompletionContext carries additional information about the context in
// which a completion request is triggered.
type CompletionContext struct {
	// How the completion was triggered.
	TriggerKind CompletionTriggerKind `json:"triggerKind"`

	// The trigger character (a single character) that triggered code
	// completion. Absent unless TriggerKind is TriggerCharacter.
	TriggerCharacter *string `json:"triggerCharacter,omitempty"`
}

// CompletionParams is the payload of the textDocument/completion request.
type CompletionParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams

	// The completion context. Only present if the client announces
	// contextSupport.
	Context *CompletionContext `json:"context,omitempty"`
}

// CompletionItem is one proposal in a completion list.
type CompletionItem struct {
	// The label of this completion item; by default also the text
	// inserted when selecting it.
	Label string `json:"label"`

	// The kind of this completion item.
	Kind *CompletionItemKind `json:"kind,omitempty"`

	// Tags for this completion item.
	//
	// @since 3.15.0
	Tags []CompletionItemTag `json:"tags,omitempty"`

	// A human-readable string with additional information, like type or
	// symbol information.
	Detail *string `json:"detail,omitempty"`

	// A human-readable doc-comment.
	Documentation *MarkupContent `json:"documentation,omitempty"`

	// Indicates if this item is deprecated. Deprecated in favor of Tags.
	Deprecated *bool `json:"deprecated,omitempty"`

	// Select this item when showing.
	Preselect *bool `json:"preselect,omitempty"`

	// A string used when comparing this item with other items. Falls back
	// to the label.
	SortText *string `json:"sortText,omitempty"`

	// A string used when filtering. Falls back to the label.
	FilterText *string `json:"filterText,omitempty"`

	// A string inserted when selecting this completion. Falls back to the
	// label.
	InsertText *string `json:"insertText,omitempty"`

	// The format of the insert text, applying to both InsertText and the
	// newText of TextEdit.
	InsertTextFormat *InsertTextFormat `json:"insertTextFormat,omitempty"`

	// How whitespace and indentation are handled during insertion.
	//
	// @since 3.16.0
	InsertTextMode *InsertTextMode `json:"insertTextMode,omitempty"`

	// An edit applied when selecting this completion; InsertText is
	// ignored when present. The edit range must be single-line and must
	// contain the requested position.
	//
	// @since 3.16.0 additional type InsertReplaceEdit
	TextEdit *CompletionTextEdit `json:"textEdit,omitempty"`

	// Additional text edits applied when selecting this completion. Must
	// not overlap with the main edit nor with themselves.
	AdditionalTextEdits []TextEdit `json:"additionalTextEdits,omitempty"`

	// Characters that commit the completion when typed while it is
	// active.
	CommitCharacters []string `json:"commitCharacters,omitempty"`

	// A command executed after inserting this completion.
	Command *Command `json:"command,omitempty"`

	// A data entry preserved between a completion and a resolve request.
	Data any `json:"data,omitempty"`
}

// NewSimpleCompletionItem creates a CompletionItem with the minimum
// possible information: label and detail.
func NewSimpleCompletionItem(label, detail string) CompletionItem {
	return CompletionItem{Label: label, Detail: &detail}
}

// CompletionList is a collection of completion items to be presented in
// the editor.
type CompletionList struct {
	// The list is not complete; further typing should recompute it.
	IsIncomplete bool `json:"isIncomplete"`

	// The completion items.
	Items []CompletionItem `json:"items"`
}

// CompletionResponse is the result of a completion request, which the
// specification types as CompletionItem[] | CompletionList.
type CompletionResponse struct {
	Items []CompletionItem
	List  *CompletionList
}

func (r CompletionResponse) MarshalJSON() ([]byte, error) {
	if r.List != nil {
		return json.Marshal(r.List)
	}
	return json.Marshal(r.Items)
}

func (r *CompletionResponse) UnmarshalJSON(data []byte) error {
	*r = CompletionResponse{}
	switch sniff(data) {
	case '[':
		return json.Unmarshal(data, &r.Items)
	case '{':
		r.List = &CompletionList{}
		return json.Unmarshal(data, r.List)
	case 'n':
		return nil
	default:
		return &schema.Mismatch{Message: "expected completion item array or completion list"}
	}
}
