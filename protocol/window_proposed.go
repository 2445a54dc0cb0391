//go:build proposed

package protocol

import (
	"github.com/segmentio/encoding/json"

	"github.com/lspkit/lsp-go/schema"
)

// MessageActionItem is a single action offered through a
// window/showMessageRequest request. Additional attributes beyond the title
// are preserved and sent back to the server when the client advertises
// window.messageActionItem.additionalPropertiesSupport.
type MessageActionItem struct {
	// A short title like "Retry" or "Open Log".
	Title string `json:"title"`

	// Additional attributes the client preserves and sends back to the
	// server. Values are strings, booleans, numbers or JSON objects.
	Properties map[string]any `json:"-"`
}

// MarshalJSON flattens Properties next to the title.
func (m MessageActionItem) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(m.Properties)+1)
	for k, v := range m.Properties {
		obj[k] = v
	}
	obj["title"] = m.Title
	return json.Marshal(obj)
}

// UnmarshalJSON collects every attribute besides the title into Properties.
func (m *MessageActionItem) UnmarshalJSON(data []byte) error {
	*m = MessageActionItem{}
	if sniff(data) != '{' {
		return &schema.Mismatch{Message: "expected message action item object"}
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	title, ok := obj["title"].(string)
	if !ok {
		return &schema.Mismatch{Path: "title", Message: "required field is missing"}
	}
	m.Title = title
	delete(obj, "title")
	if len(obj) > 0 {
		m.Properties = obj
	}
	return nil
}

// MessageActionItemCapabilities describes client support for the
// MessageActionItem type.
//
// @since 3.16.0 - proposed state
type MessageActionItemCapabilities struct {
	// The client supports additional attributes which are preserved and
	// sent back to the server in the request's response.
	AdditionalPropertiesSupport *bool `json:"additionalPropertiesSupport,omitempty"`
}

// ShowMessageRequestClientCapabilities describes client support for the
// window/showMessageRequest request.
//
// @since 3.16.0 - proposed state
type ShowMessageRequestClientCapabilities struct {
	// Capabilities specific to the MessageActionItem type.
	MessageActionItem *MessageActionItemCapabilities `json:"messageActionItem,omitempty"`
}

// WindowClientCapabilities describes window specific client capabilities.
type WindowClientCapabilities struct {
	// The client supports handling progress notifications. If set servers
	// are allowed to report a workDoneProgress token in request specific
	// server capabilities.
	//
	// @since 3.15.0
	WorkDoneProgress *bool `json:"workDoneProgress,omitempty"`

	// Capabilities specific to the showMessage request.
	//
	// @since 3.16.0 - proposed state
	ShowMessage *ShowMessageRequestClientCapabilities `json:"showMessage,omitempty"`
}
