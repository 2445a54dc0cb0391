package protocol

// CodeActionKind identifies a kind of code action. Kinds are a hierarchical
// list of identifiers separated by `.`, e.g. `refactor.extract.function`.
// The set is open; clients announce the kinds they support during
// initialization, so unknown kinds decode without failure.
type CodeActionKind string

const (
	// ActionEmpty is the empty kind.
	ActionEmpty CodeActionKind = ""

	// ActionQuickFix is the base kind for quickfix actions.
	ActionQuickFix CodeActionKind = "quickfix"

	// ActionRefactor is the base kind for refactoring actions.
	ActionRefactor CodeActionKind = "refactor"

	// ActionRefactorExtract covers extraction actions, e.g. extract
	// method or extract variable.
	ActionRefactorExtract CodeActionKind = "refactor.extract"

	// ActionRefactorInline covers inlining actions, e.g. inline function
	// or inline variable.
	ActionRefactorInline CodeActionKind = "refactor.inline"

	// ActionRefactorRewrite covers rewrite actions, e.g. making a method
	// static.
	ActionRefactorRewrite CodeActionKind = "refactor.rewrite"

	// ActionSource covers whole-document actions, e.g. organize imports.
	ActionSource CodeActionKind = "source"

	// ActionSourceOrganizeImports is the organize imports source action.
	ActionSourceOrganizeImports CodeActionKind = "source.organizeImports"

	// ActionSourceFixAll is the automatic-fix source action.
	//
	// @since 3.17.0
	ActionSourceFixAll CodeActionKind = "source.fixAll"
)

// CodeActionKindCapability lists the code action kinds the client supports;
// kinds outside the set must be handled gracefully.
type CodeActionKindCapability struct {
	ValueSet []CodeActionKind `json:"valueSet"`
}

// CodeActionLiteralSupport announces that the client supports CodeAction
// literals as a code action response.
type CodeActionLiteralSupport struct {
	// The code action kinds the client supports.
	CodeActionKind CodeActionKindCapability `json:"codeActionKind"`
}

// CodeActionClientCapabilities describes the client's code action support.
type CodeActionClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`

	// The client supports code action literals as a valid response.
	//
	// @since 3.8.0
	CodeActionLiteralSupport *CodeActionLiteralSupport `json:"codeActionLiteralSupport,omitempty"`

	// Whether the client honors the isPreferred property.
	//
	// @since 3.15.0
	IsPreferredSupport *bool `json:"isPreferredSupport,omitempty"`

	// Whether the client honors the disabled property.
	//
	// @since 3.16.0
	DisabledSupport *bool `json:"disabledSupport,omitempty"`

	// Whether the client preserves the data property between a code
	// action and a codeAction/resolve request.
	//
	// @since 3.16.0
	DataSupport *bool `json:"dataSupport,omitempty"`
}

// CodeActionOptions is the server capability for the code action request.
type CodeActionOptions struct {
	WorkDoneProgressOptions

	// The kinds the server may return; servers may still list out-of-set
	// kinds.
	CodeActionKinds []CodeActionKind `json:"codeActionKinds,omitempty"`

	// The server resolves additional information lazily via
	// codeAction/resolve.
	//
	// @since 3.16.0
	ResolveProvider *bool `json:"resolveProvider,omitempty"`
}

// CodeActionContext carries additional diagnostic information about the
// context in which a code action is run.
type CodeActionContext struct {
	// The diagnostics known on the client side overlapping the request
	// range.
	Diagnostics []Diagnostic `json:"diagnostics"`

	// Requested kinds of actions to return; out-of-set actions are
	// filtered by the client.
	Only []CodeActionKind `json:"only,omitempty"`
}

// CodeActionParams is the payload of the textDocument/codeAction request.
type CodeActionParams struct {
	WorkDoneProgressParams
	PartialResultParams

	// The document in which the command was invoked.
	TextDocument TextDocumentIdentifier `json:"textDocument"`

	// The range for which the command was invoked.
	Range Range `json:"range"`

	// Context carrying additional information.
	Context CodeActionContext `json:"context"`
}

// CodeActionDisabled explains why a code action is not applicable.
//
// @since 3.16.0
type CodeActionDisabled struct {
	// Human-readable description of why the action is disabled, shown in
	// the UI.
	Reason string `json:"reason"`
}

// CodeAction represents a change that can be performed in code: a kind, an
// edit, and/or a command. When both an edit and a command are supplied the
// edit is applied first.
type CodeAction struct {
	// A short, human-readable title for this code action.
	Title string `json:"title"`

	// The kind of the code action, used to filter actions.
	Kind *CodeActionKind `json:"kind,omitempty"`

	// The diagnostics this code action resolves.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`

	// Marks this as a preferred action, e.g. the clear fix for an error.
	//
	// @since 3.15.0
	IsPreferred *bool `json:"isPreferred,omitempty"`

	// Marks the action as disabled in the UI.
	//
	// @since 3.16.0
	Disabled *CodeActionDisabled `json:"disabled,omitempty"`

	// The workspace edit this code action performs.
	Edit *WorkspaceEdit `json:"edit,omitempty"`

	// The command this code action executes.
	Command *Command `json:"command,omitempty"`

	// A data entry preserved between a codeAction and a codeAction/resolve
	// request.
	//
	// @since 3.16.0
	Data any `json:"data,omitempty"`
}
