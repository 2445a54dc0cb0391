//go:build !proposed

package protocol

// MessageActionItem is a single action offered through a
// window/showMessageRequest request.
type MessageActionItem struct {
	// A short title like "Retry" or "Open Log".
	Title string `json:"title"`
}

// WindowClientCapabilities describes window specific client capabilities.
type WindowClientCapabilities struct {
	// The client supports handling progress notifications. If set servers
	// are allowed to report a workDoneProgress token in request specific
	// server capabilities.
	//
	// @since 3.15.0
	WorkDoneProgress *bool `json:"workDoneProgress,omitempty"`
}
