package protocol

import "github.com/segmentio/encoding/json"

// JSONRPCVersion is the JSON-RPC protocol version the base protocol mandates.
const JSONRPCVersion = "2.0"

// RequestMessage is the base-protocol envelope of a request.
type RequestMessage struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// NotificationMessage is the base-protocol envelope of a notification. It
// differs from a request only in carrying no ID, so no response is expected.
type NotificationMessage struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// ResponseMessage is the base-protocol envelope of a response. Exactly one
// of Result and Error is set.
type ResponseMessage struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *ResponseError  `json:"error,omitempty"`
}

// NewRequestMessage builds a request envelope with encoded params.
func NewRequestMessage(id json.RawMessage, method string, params any) (*RequestMessage, error) {
	raw, err := encodeParams(params)
	if err != nil {
		return nil, err
	}
	return &RequestMessage{JSONRPC: JSONRPCVersion, ID: id, Method: method, Params: raw}, nil
}

// NewNotificationMessage builds a notification envelope with encoded params.
func NewNotificationMessage(method string, params any) (*NotificationMessage, error) {
	raw, err := encodeParams(params)
	if err != nil {
		return nil, err
	}
	return &NotificationMessage{JSONRPC: JSONRPCVersion, Method: method, Params: raw}, nil
}

func encodeParams(params any) (json.RawMessage, error) {
	if params == nil {
		return nil, nil
	}
	return Encode(params)
}
