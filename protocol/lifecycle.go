package protocol

// CancelParams is the payload of the $/cancelRequest notification. A
// cancelled request still returns a response, normally with error code
// CodeRequestCancelled.
type CancelParams struct {
	// The request id to cancel.
	ID IntOrString `json:"id"`
}

// TraceValue controls how verbosely the server traces its work via
// $/logTrace.
type TraceValue string

const (
	TraceOff      TraceValue = "off"
	TraceMessages TraceValue = "messages"
	TraceVerbose  TraceValue = "verbose"
)

// EnumValues implements schema.Enumerated.
func (TraceValue) EnumValues() []any {
	return []any{TraceOff, TraceMessages, TraceVerbose}
}

// ClientInfo identifies the connecting client.
//
// @since 3.15.0
type ClientInfo struct {
	Name    string  `json:"name"`
	Version *string `json:"version,omitempty"`
}

// ServerInfo identifies the responding server.
//
// @since 3.15.0
type ServerInfo struct {
	Name    string  `json:"name"`
	Version *string `json:"version,omitempty"`
}

// InitializeParams is the payload of the first request from the client to
// the server. Requests arriving before initialize must be answered with
// error code CodeServerNotInitialized; notifications are dropped.
type InitializeParams struct {
	WorkDoneProgressParams

	// The process id of the parent process that started the server. Null
	// if the process has not been started by another process.
	ProcessID *int32 `json:"processId"`

	// Information about the client.
	//
	// @since 3.15.0
	ClientInfo *ClientInfo `json:"clientInfo,omitempty"`

	// The root URI of the workspace. Null if no folder is open. Takes
	// precedence over the deprecated rootPath.
	RootURI *DocumentURI `json:"rootUri"`

	// User provided initialization options.
	InitializationOptions any `json:"initializationOptions,omitempty"`

	// The capabilities provided by the client (editor or tool).
	Capabilities ClientCapabilities `json:"capabilities"`

	// The initial trace setting. Defaults to off when omitted.
	Trace *TraceValue `json:"trace,omitempty"`

	// The workspace folders configured in the client when the server
	// starts. Null or absent when the client supports none or has none
	// open.
	//
	// @since 3.6.0
	WorkspaceFolders []WorkspaceFolder `json:"workspaceFolders,omitempty"`
}

// InitializeResult is the response payload of the initialize request.
type InitializeResult struct {
	// The capabilities the language server provides.
	Capabilities ServerCapabilities `json:"capabilities"`

	// Information about the server.
	//
	// @since 3.15.0
	ServerInfo *ServerInfo `json:"serverInfo,omitempty"`
}

// InitializeError is the error data an initialize request may attach.
type InitializeError struct {
	// Indicates whether the client should retry the initialize request
	// after showing the error message to the user.
	Retry bool `json:"retry"`
}

// InitializedParams is the (empty) payload of the initialized notification.
type InitializedParams struct{}

// SetTraceParams is the payload of the $/setTrace notification.
type SetTraceParams struct {
	// The new value that should be assigned to the trace setting.
	Value TraceValue `json:"value"`
}

// LogTraceParams is the payload of the $/logTrace notification.
type LogTraceParams struct {
	// The message to be logged.
	Message string `json:"message"`

	// Additional information, only logged under TraceVerbose.
	Verbose *string `json:"verbose,omitempty"`
}
