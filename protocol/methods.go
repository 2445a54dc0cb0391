package protocol

// Request methods.
const (
	MethodInitialize               = "initialize"
	MethodShutdown                 = "shutdown"
	MethodShowMessageRequest       = "window/showMessageRequest"
	MethodShowDocument             = "window/showDocument"
	MethodRegisterCapability       = "client/registerCapability"
	MethodUnregisterCapability     = "client/unregisterCapability"
	MethodWorkspaceFolders         = "workspace/workspaceFolders"
	MethodWorkspaceConfiguration   = "workspace/configuration"
	MethodWorkspaceSymbol          = "workspace/symbol"
	MethodWorkspaceExecuteCommand  = "workspace/executeCommand"
	MethodWorkspaceApplyEdit       = "workspace/applyEdit"
	MethodWillSaveWaitUntil        = "textDocument/willSaveWaitUntil"
	MethodCompletion               = "textDocument/completion"
	MethodCompletionItemResolve    = "completionItem/resolve"
	MethodHover                    = "textDocument/hover"
	MethodSignatureHelp            = "textDocument/signatureHelp"
	MethodDefinition               = "textDocument/definition"
	MethodTypeDefinition           = "textDocument/typeDefinition"
	MethodImplementation           = "textDocument/implementation"
	MethodReferences               = "textDocument/references"
	MethodDocumentHighlight        = "textDocument/documentHighlight"
	MethodDocumentSymbol           = "textDocument/documentSymbol"
	MethodCodeAction               = "textDocument/codeAction"
	MethodCodeLens                 = "textDocument/codeLens"
	MethodCodeLensResolve          = "codeLens/resolve"
	MethodDocumentLink             = "textDocument/documentLink"
	MethodDocumentLinkResolve      = "documentLink/resolve"
	MethodDocumentFormatting       = "textDocument/formatting"
	MethodDocumentRangeFormatting  = "textDocument/rangeFormatting"
	MethodDocumentOnTypeFormatting = "textDocument/onTypeFormatting"
	MethodRename                   = "textDocument/rename"
	MethodPrepareRename            = "textDocument/prepareRename"
	MethodLinkedEditingRange       = "textDocument/linkedEditingRange"
)

// Notification methods.
const (
	MethodCancelRequest             = "$/cancelRequest"
	MethodProgress                  = "$/progress"
	MethodSetTrace                  = "$/setTrace"
	MethodLogTrace                  = "$/logTrace"
	MethodInitialized               = "initialized"
	MethodExit                      = "exit"
	MethodShowMessage               = "window/showMessage"
	MethodLogMessage                = "window/logMessage"
	MethodTelemetryEvent            = "telemetry/event"
	MethodDidOpenTextDocument       = "textDocument/didOpen"
	MethodDidChangeTextDocument     = "textDocument/didChange"
	MethodWillSaveTextDocument      = "textDocument/willSave"
	MethodDidSaveTextDocument       = "textDocument/didSave"
	MethodDidCloseTextDocument      = "textDocument/didClose"
	MethodPublishDiagnostics        = "textDocument/publishDiagnostics"
	MethodDidChangeConfiguration    = "workspace/didChangeConfiguration"
	MethodDidChangeWatchedFiles     = "workspace/didChangeWatchedFiles"
	MethodDidChangeWorkspaceFolders = "workspace/didChangeWorkspaceFolders"
)
