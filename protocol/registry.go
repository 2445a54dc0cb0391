package protocol

import (
	"reflect"
	"sort"
)

// methodShape records the parameter and result types a method carries on
// the wire. A nil type means the method has no payload in that position.
type methodShape struct {
	params reflect.Type
	result reflect.Type
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

var requestShapes = map[string]methodShape{
	MethodInitialize:               {typeOf[InitializeParams](), typeOf[InitializeResult]()},
	MethodShutdown:                 {nil, nil},
	MethodShowMessageRequest:       {typeOf[ShowMessageRequestParams](), typeOf[MessageActionItem]()},
	MethodShowDocument:             {typeOf[ShowDocumentParams](), typeOf[ShowDocumentResult]()},
	MethodRegisterCapability:       {typeOf[RegistrationParams](), nil},
	MethodUnregisterCapability:     {typeOf[UnregistrationParams](), nil},
	MethodWorkspaceFolders:         {nil, typeOf[[]WorkspaceFolder]()},
	MethodWorkspaceConfiguration:   {typeOf[ConfigurationParams](), typeOf[[]any]()},
	MethodWorkspaceSymbol:          {typeOf[WorkspaceSymbolParams](), typeOf[[]SymbolInformation]()},
	MethodWorkspaceExecuteCommand:  {typeOf[ExecuteCommandParams](), typeOf[any]()},
	MethodWorkspaceApplyEdit:       {typeOf[ApplyWorkspaceEditParams](), typeOf[ApplyWorkspaceEditResponse]()},
	MethodWillSaveWaitUntil:        {typeOf[WillSaveTextDocumentParams](), typeOf[[]TextEdit]()},
	MethodCompletion:               {typeOf[CompletionParams](), typeOf[CompletionResponse]()},
	MethodCompletionItemResolve:    {typeOf[CompletionItem](), typeOf[CompletionItem]()},
	MethodHover:                    {typeOf[HoverParams](), typeOf[Hover]()},
	MethodSignatureHelp:            {typeOf[SignatureHelpParams](), typeOf[SignatureHelp]()},
	MethodDefinition:               {typeOf[DefinitionParams](), typeOf[Locations]()},
	MethodTypeDefinition:           {typeOf[TypeDefinitionParams](), typeOf[Locations]()},
	MethodImplementation:           {typeOf[ImplementationParams](), typeOf[Locations]()},
	MethodReferences:               {typeOf[ReferenceParams](), typeOf[[]Location]()},
	MethodDocumentHighlight:        {typeOf[DocumentHighlightParams](), typeOf[[]DocumentHighlight]()},
	MethodDocumentSymbol:           {typeOf[DocumentSymbolParams](), typeOf[DocumentSymbolResponse]()},
	MethodCodeAction:               {typeOf[CodeActionParams](), typeOf[[]CodeAction]()},
	MethodCodeLens:                 {typeOf[CodeLensParams](), typeOf[[]CodeLens]()},
	MethodCodeLensResolve:          {typeOf[CodeLens](), typeOf[CodeLens]()},
	MethodDocumentLink:             {typeOf[DocumentLinkParams](), typeOf[[]DocumentLink]()},
	MethodDocumentLinkResolve:      {typeOf[DocumentLink](), typeOf[DocumentLink]()},
	MethodDocumentFormatting:       {typeOf[DocumentFormattingParams](), typeOf[[]TextEdit]()},
	MethodDocumentRangeFormatting:  {typeOf[DocumentRangeFormattingParams](), typeOf[[]TextEdit]()},
	MethodDocumentOnTypeFormatting: {typeOf[DocumentOnTypeFormattingParams](), typeOf[[]TextEdit]()},
	MethodRename:                   {typeOf[RenameParams](), typeOf[WorkspaceEdit]()},
	MethodPrepareRename:            {typeOf[PrepareRenameParams](), typeOf[PrepareRenameResponse]()},
	MethodLinkedEditingRange:       {typeOf[LinkedEditingRangeParams](), typeOf[LinkedEditingRanges]()},
}

var notificationShapes = map[string]reflect.Type{
	MethodCancelRequest:             typeOf[CancelParams](),
	MethodProgress:                  typeOf[ProgressParams](),
	MethodSetTrace:                  typeOf[SetTraceParams](),
	MethodLogTrace:                  typeOf[LogTraceParams](),
	MethodInitialized:               typeOf[InitializedParams](),
	MethodExit:                      nil,
	MethodShowMessage:               typeOf[ShowMessageParams](),
	MethodLogMessage:                typeOf[LogMessageParams](),
	MethodTelemetryEvent:            typeOf[any](),
	MethodDidOpenTextDocument:       typeOf[DidOpenTextDocumentParams](),
	MethodDidChangeTextDocument:     typeOf[DidChangeTextDocumentParams](),
	MethodWillSaveTextDocument:      typeOf[WillSaveTextDocumentParams](),
	MethodDidSaveTextDocument:       typeOf[DidSaveTextDocumentParams](),
	MethodDidCloseTextDocument:      typeOf[DidCloseTextDocumentParams](),
	MethodPublishDiagnostics:        typeOf[PublishDiagnosticsParams](),
	MethodDidChangeConfiguration:    typeOf[DidChangeConfigurationParams](),
	MethodDidChangeWatchedFiles:     typeOf[DidChangeWatchedFilesParams](),
	MethodDidChangeWorkspaceFolders: typeOf[DidChangeWorkspaceFoldersParams](),
}

// RequestTypes reports the parameter and result types of a request method.
// Either type may be nil for methods that carry no payload in that
// position. ok is false for unknown methods.
func RequestTypes(method string) (params, result reflect.Type, ok bool) {
	s, ok := requestShapes[method]
	return s.params, s.result, ok
}

// NotificationType reports the parameter type of a notification method. The
// type may be nil for notifications without parameters. ok is false for
// unknown methods.
func NotificationType(method string) (params reflect.Type, ok bool) {
	t, ok := notificationShapes[method]
	return t, ok
}

// RequestMethods returns the known request methods, sorted.
func RequestMethods() []string {
	out := make([]string, 0, len(requestShapes))
	for m := range requestShapes {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// NotificationMethods returns the known notification methods, sorted.
func NotificationMethods() []string {
	out := make([]string, 0, len(notificationShapes))
	for m := range notificationShapes {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// DecodeParams decodes raw request or notification parameters for a known
// method into a freshly allocated value of the method's parameter type.
func DecodeParams(method string, data []byte) (any, error) {
	t, ok := notificationShapes[method]
	if !ok {
		s, found := requestShapes[method]
		if !found {
			return nil, NewMethodNotFound(method)
		}
		t = s.params
	}
	if t == nil {
		return nil, nil
	}
	v := reflect.New(t)
	if err := Decode(data, v.Interface()); err != nil {
		return nil, err
	}
	return v.Elem().Interface(), nil
}
