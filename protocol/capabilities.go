package protocol

// ResourceOperationKind identifies a resource operation in a workspace
// edit: "create", "rename", or "delete". The set is treated as open so
// newer operations decode without failure.
type ResourceOperationKind string

const (
	ResourceOperationCreate ResourceOperationKind = "create"
	ResourceOperationRename ResourceOperationKind = "rename"
	ResourceOperationDelete ResourceOperationKind = "delete"
)

// FailureHandlingKind describes how the client deals with a workspace edit
// failing mid-application. Treated as open for forward compatibility.
type FailureHandlingKind string

const (
	FailureHandlingAbort                 FailureHandlingKind = "abort"
	FailureHandlingTransactional         FailureHandlingKind = "transactional"
	FailureHandlingTextOnlyTransactional FailureHandlingKind = "textOnlyTransactional"
	FailureHandlingUndo                  FailureHandlingKind = "undo"
)

// WorkspaceEditClientCapabilities describes what workspace edit shapes the
// client can apply.
type WorkspaceEditClientCapabilities struct {
	// The client supports versioned document changes in WorkspaceEdit.
	DocumentChanges *bool `json:"documentChanges,omitempty"`

	// The resource operations the client supports.
	//
	// @since 3.13.0
	ResourceOperations []ResourceOperationKind `json:"resourceOperations,omitempty"`

	// The failure handling strategy of the client.
	//
	// @since 3.13.0
	FailureHandling *FailureHandlingKind `json:"failureHandling,omitempty"`
}

// WorkspaceClientCapabilities groups workspace-scoped client capabilities.
type WorkspaceClientCapabilities struct {
	// The client supports applying batch edits via workspace/applyEdit.
	ApplyEdit *bool `json:"applyEdit,omitempty"`

	WorkspaceEdit          *WorkspaceEditClientCapabilities       `json:"workspaceEdit,omitempty"`
	DidChangeConfiguration *DynamicRegistrationClientCapabilities `json:"didChangeConfiguration,omitempty"`
	DidChangeWatchedFiles  *DynamicRegistrationClientCapabilities `json:"didChangeWatchedFiles,omitempty"`
	Symbol                 *WorkspaceSymbolClientCapabilities     `json:"symbol,omitempty"`
	ExecuteCommand         *DynamicRegistrationClientCapabilities `json:"executeCommand,omitempty"`

	// The client has support for workspace folders.
	//
	// @since 3.6.0
	WorkspaceFolders *bool `json:"workspaceFolders,omitempty"`

	// The client supports workspace/configuration requests.
	//
	// @since 3.6.0
	Configuration *bool `json:"configuration,omitempty"`
}

// TextDocumentClientCapabilities groups capabilities of the text document
// feature family.
type TextDocumentClientCapabilities struct {
	Synchronization    *TextDocumentSyncClientCapabilities    `json:"synchronization,omitempty"`
	Completion         *CompletionClientCapabilities          `json:"completion,omitempty"`
	Hover              *HoverClientCapabilities               `json:"hover,omitempty"`
	SignatureHelp      *SignatureHelpClientCapabilities       `json:"signatureHelp,omitempty"`
	References         *DynamicRegistrationClientCapabilities `json:"references,omitempty"`
	DocumentHighlight  *DynamicRegistrationClientCapabilities `json:"documentHighlight,omitempty"`
	DocumentSymbol     *DocumentSymbolClientCapabilities      `json:"documentSymbol,omitempty"`
	Formatting         *DynamicRegistrationClientCapabilities `json:"formatting,omitempty"`
	RangeFormatting    *DynamicRegistrationClientCapabilities `json:"rangeFormatting,omitempty"`
	OnTypeFormatting   *DynamicRegistrationClientCapabilities `json:"onTypeFormatting,omitempty"`
	Definition         *GotoClientCapabilities                `json:"definition,omitempty"`
	TypeDefinition     *GotoClientCapabilities                `json:"typeDefinition,omitempty"`
	Implementation     *GotoClientCapabilities                `json:"implementation,omitempty"`
	CodeAction         *CodeActionClientCapabilities          `json:"codeAction,omitempty"`
	CodeLens           *DynamicRegistrationClientCapabilities `json:"codeLens,omitempty"`
	DocumentLink       *DocumentLinkClientCapabilities        `json:"documentLink,omitempty"`
	Rename             *RenameClientCapabilities              `json:"rename,omitempty"`
	PublishDiagnostics *PublishDiagnosticsClientCapabilities  `json:"publishDiagnostics,omitempty"`

	// Capabilities specific to the textDocument/linkedEditingRange request.
	//
	// @since 3.16.0
	LinkedEditingRange *DynamicRegistrationClientCapabilities `json:"linkedEditingRange,omitempty"`
}

// ClientCapabilities defines the capabilities the client announces in the
// initialize request.
type ClientCapabilities struct {
	Workspace    *WorkspaceClientCapabilities    `json:"workspace,omitempty"`
	TextDocument *TextDocumentClientCapabilities `json:"textDocument,omitempty"`

	// Window specific client capabilities.
	Window *WindowClientCapabilities `json:"window,omitempty"`

	// Experimental client capabilities.
	Experimental any `json:"experimental,omitempty"`
}

// WorkspaceFolderCapability announces server-side workspace folder support.
type WorkspaceFolderCapability struct {
	Supported *bool `json:"supported,omitempty"`

	// Whether the server wants change notifications. A string value is an
	// id the notification registration can be unregistered with.
	ChangeNotifications *ChangeNotifications `json:"changeNotifications,omitempty"`
}

// ServerWorkspaceCapabilities groups workspace-scoped server capabilities.
type ServerWorkspaceCapabilities struct {
	// The server supports workspace folders.
	//
	// @since 3.6.0
	WorkspaceFolders *WorkspaceFolderCapability `json:"workspaceFolders,omitempty"`
}

// ServerCapabilities defines the capabilities the server announces in the
// initialize result. Fields the specification types as boolean | options
// hold either form; decode preserves whichever shape was sent.
type ServerCapabilities struct {
	// How text document synchronization works: either a
	// TextDocumentSyncOptions literal or a bare TextDocumentSyncKind.
	TextDocumentSync any `json:"textDocumentSync,omitempty"`

	CompletionProvider *CompletionOptions `json:"completionProvider,omitempty"`

	HoverProvider any `json:"hoverProvider,omitempty"`

	SignatureHelpProvider *SignatureHelpOptions `json:"signatureHelpProvider,omitempty"`

	DefinitionProvider     any `json:"definitionProvider,omitempty"`
	TypeDefinitionProvider any `json:"typeDefinitionProvider,omitempty"`
	ImplementationProvider any `json:"implementationProvider,omitempty"`

	ReferencesProvider        any `json:"referencesProvider,omitempty"`
	DocumentHighlightProvider any `json:"documentHighlightProvider,omitempty"`
	DocumentSymbolProvider    any `json:"documentSymbolProvider,omitempty"`
	WorkspaceSymbolProvider   any `json:"workspaceSymbolProvider,omitempty"`

	CodeActionProvider any              `json:"codeActionProvider,omitempty"`
	CodeLensProvider   *CodeLensOptions `json:"codeLensProvider,omitempty"`

	DocumentFormattingProvider       any                              `json:"documentFormattingProvider,omitempty"`
	DocumentRangeFormattingProvider  any                              `json:"documentRangeFormattingProvider,omitempty"`
	DocumentOnTypeFormattingProvider *DocumentOnTypeFormattingOptions `json:"documentOnTypeFormattingProvider,omitempty"`

	RenameProvider any `json:"renameProvider,omitempty"`

	DocumentLinkProvider *DocumentLinkOptions `json:"documentLinkProvider,omitempty"`

	ExecuteCommandProvider *ExecuteCommandOptions `json:"executeCommandProvider,omitempty"`

	// The server provides linked editing range support.
	//
	// @since 3.16.0
	LinkedEditingRangeProvider any `json:"linkedEditingRangeProvider,omitempty"`

	Workspace *ServerWorkspaceCapabilities `json:"workspace,omitempty"`

	// Experimental server capabilities.
	Experimental any `json:"experimental,omitempty"`
}
