package protocol

import "fmt"

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// LSP-specific error codes.
const (
	CodeServerNotInitialized = -32002
	CodeUnknownError         = -32001

	// CodeRequestCancelled signals that the request was cancelled via
	// $/cancelRequest before a result was produced.
	CodeRequestCancelled = -32800

	// CodeContentModified signals that the content a result depends on
	// changed, invalidating it.
	//
	// @since 3.16.0
	CodeContentModified = -32801

	// CodeServerCancelled signals that the server cancelled the request
	// and the client may re-send it.
	//
	// @since 3.17.0
	CodeServerCancelled = -32802

	// CodeRequestFailed signals a request that failed even though it was
	// syntactically correct.
	//
	// @since 3.17.0
	CodeRequestFailed = -32803
)

// ResponseError carries failure information in a ResponseMessage.
type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("lsp: %s (code: %d)", e.Message, e.Code)
}

// Is implements errors.Is comparison by error code.
func (e *ResponseError) Is(target error) bool {
	t, ok := target.(*ResponseError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithData returns a copy of the error with additional data attached.
func (e *ResponseError) WithData(data any) *ResponseError {
	return &ResponseError{
		Code:    e.Code,
		Message: e.Message,
		Data:    data,
	}
}

// NewParseError creates a parse error (-32700).
func NewParseError(msg string) *ResponseError {
	return &ResponseError{Code: CodeParseError, Message: msg}
}

// NewInvalidRequest creates an invalid request error (-32600).
func NewInvalidRequest(msg string) *ResponseError {
	return &ResponseError{Code: CodeInvalidRequest, Message: msg}
}

// NewMethodNotFound creates a method not found error (-32601).
func NewMethodNotFound(msg string) *ResponseError {
	return &ResponseError{Code: CodeMethodNotFound, Message: msg}
}

// NewInvalidParams creates an invalid params error (-32602).
func NewInvalidParams(msg string) *ResponseError {
	return &ResponseError{Code: CodeInvalidParams, Message: msg}
}

// NewInternalError creates an internal error (-32603).
func NewInternalError(msg string) *ResponseError {
	return &ResponseError{Code: CodeInternalError, Message: msg}
}

// NewRequestCancelled creates a request cancelled error (-32800).
func NewRequestCancelled(msg string) *ResponseError {
	return &ResponseError{Code: CodeRequestCancelled, Message: msg}
}

// NewContentModified creates a content modified error (-32801).
func NewContentModified(msg string) *ResponseError {
	return &ResponseError{Code: CodeContentModified, Message: msg}
}
