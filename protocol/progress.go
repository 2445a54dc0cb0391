package protocol

// ProgressToken is provided by the client or server to associate partial
// result and progress notifications with a request. The specification types
// it as integer | string.
type ProgressToken = IntOrString

// WorkDoneProgressParams is mixed into request params that may report work
// done progress.
type WorkDoneProgressParams struct {
	// An optional token that a server can use to report work done progress.
	WorkDoneToken *ProgressToken `json:"workDoneToken,omitempty"`
}

// WorkDoneProgressOptions is mixed into server capability options for
// requests that may report work done progress.
type WorkDoneProgressOptions struct {
	WorkDoneProgress *bool `json:"workDoneProgress,omitempty"`
}

// PartialResultParams is mixed into request params that support streaming
// partial results.
type PartialResultParams struct {
	// An optional token that a server can use to report partial results
	// (e.g. streaming) to the client.
	PartialResultToken *ProgressToken `json:"partialResultToken,omitempty"`
}

// ProgressParams carries one $/progress payload.
type ProgressParams struct {
	// The progress token provided by the client or server.
	Token ProgressToken `json:"token"`

	// The progress data.
	Value any `json:"value"`
}

// WorkDoneProgressBegin starts reporting progress for a token.
type WorkDoneProgressBegin struct {
	// Must be "begin".
	Kind string `json:"kind"`

	// Mandatory title of the progress operation, shown in the UI.
	Title string `json:"title"`

	// Controls whether a cancel button should be shown.
	Cancellable *bool `json:"cancellable,omitempty"`

	// Optional, more detailed associated progress message.
	Message *string `json:"message,omitempty"`

	// Optional progress percentage to display, 0-100.
	Percentage *uint32 `json:"percentage,omitempty"`
}

// WorkDoneProgressReport updates progress for a token.
type WorkDoneProgressReport struct {
	// Must be "report".
	Kind string `json:"kind"`

	Cancellable *bool   `json:"cancellable,omitempty"`
	Message     *string `json:"message,omitempty"`
	Percentage  *uint32 `json:"percentage,omitempty"`
}

// WorkDoneProgressEnd signals the end of progress reporting for a token.
type WorkDoneProgressEnd struct {
	// Must be "end".
	Kind string `json:"kind"`

	// Optional final message, e.g. indicating the outcome of the operation.
	Message *string `json:"message,omitempty"`
}
