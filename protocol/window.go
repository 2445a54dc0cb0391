package protocol

// MessageType indicates the severity of a window/showMessage or
// window/logMessage notification.
type MessageType int32

const (
	// MessageError is an error message.
	MessageError MessageType = 1

	// MessageWarning is a warning message.
	MessageWarning MessageType = 2

	// MessageInfo is an information message.
	MessageInfo MessageType = 3

	// MessageLog is a log message.
	MessageLog MessageType = 4
)

// EnumValues implements schema.Enumerated.
func (MessageType) EnumValues() []any {
	return []any{MessageError, MessageWarning, MessageInfo, MessageLog}
}

// ShowMessageParams is the payload of the window/showMessage notification,
// which asks the client to display a message in the user interface.
type ShowMessageParams struct {
	// The message type.
	Type MessageType `json:"type"`

	// The actual message.
	Message string `json:"message"`
}

// LogMessageParams is the payload of the window/logMessage notification,
// which asks the client to log a message.
type LogMessageParams struct {
	// The message type.
	Type MessageType `json:"type"`

	// The actual message.
	Message string `json:"message"`
}

// ShowMessageRequestParams is the payload of the window/showMessageRequest
// request. Unlike window/showMessage the client is expected to answer with
// the action the user selected, or null.
type ShowMessageRequestParams struct {
	// The message type.
	Type MessageType `json:"type"`

	// The actual message.
	Message string `json:"message"`

	// The message action items to present.
	Actions []MessageActionItem `json:"actions,omitempty"`
}

// ShowDocumentParams is the payload of the window/showDocument request,
// which asks the client to display a particular document.
//
// @since 3.16.0
type ShowDocumentParams struct {
	// The document to show.
	URI URI `json:"uri"`

	// Indicates to show the resource in an external program, for example
	// opening an http URL in the default browser.
	External *bool `json:"external,omitempty"`

	// An optional indication that the document should be opened without
	// taking focus. Clients may ignore this property if an external program
	// is started.
	TakeFocus *bool `json:"takeFocus,omitempty"`

	// An optional selection inside the document. Clients may ignore this
	// property if an external program is started.
	Selection *Range `json:"selection,omitempty"`
}

// ShowDocumentResult is the answer to a window/showDocument request.
//
// @since 3.16.0
type ShowDocumentResult struct {
	// Whether the show was successful.
	Success bool `json:"success"`
}

// ShowDocumentClientCapabilities describes client support for the
// window/showDocument request.
//
// @since 3.16.0
type ShowDocumentClientCapabilities struct {
	// The client has support for the request.
	Support bool `json:"support"`
}
