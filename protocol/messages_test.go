package protocol

import (
	"reflect"
	"testing"

	"github.com/segmentio/encoding/json"
)

func TestRequestMessage_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RequestMessage
		wantErr bool
	}{
		{
			name:  "request with params",
			input: `{"jsonrpc":"2.0","id":1,"method":"textDocument/hover","params":{"position":{"line":1,"character":2}}}`,
			want: RequestMessage{
				JSONRPC: "2.0",
				ID:      json.RawMessage(`1`),
				Method:  "textDocument/hover",
				Params:  json.RawMessage(`{"position":{"line":1,"character":2}}`),
			},
		},
		{
			name:  "request with string id",
			input: `{"jsonrpc":"2.0","id":"abc-123","method":"shutdown"}`,
			want: RequestMessage{
				JSONRPC: "2.0",
				ID:      json.RawMessage(`"abc-123"`),
				Method:  "shutdown",
			},
		},
		{
			name:    "invalid json",
			input:   `{invalid}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got RequestMessage
			err := json.Unmarshal([]byte(tt.input), &got)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewRequestMessage(t *testing.T) {
	req, err := NewRequestMessage(json.RawMessage(`7`), MethodHover, HoverParams{
		TextDocumentPositionParams: TextDocumentPositionParams{
			TextDocument: TextDocumentIdentifier{URI: DocumentURI("file:///main.go")},
			Position:     Position{Line: 4, Character: 11},
		},
	})
	if err != nil {
		t.Fatalf("NewRequestMessage() error: %v", err)
	}

	if req.JSONRPC != JSONRPCVersion {
		t.Errorf("JSONRPC = %q, want %q", req.JSONRPC, JSONRPCVersion)
	}
	if req.Method != MethodHover {
		t.Errorf("Method = %q, want %q", req.Method, MethodHover)
	}
	if len(req.Params) == 0 {
		t.Error("Params should be encoded")
	}
}

func TestNewNotificationMessage(t *testing.T) {
	t.Run("with params", func(t *testing.T) {
		n, err := NewNotificationMessage(MethodDidCloseTextDocument, DidCloseTextDocumentParams{
			TextDocument: TextDocumentIdentifier{URI: DocumentURI("file:///main.go")},
		})
		if err != nil {
			t.Fatalf("NewNotificationMessage() error: %v", err)
		}
		want := `{"textDocument":{"uri":"file:///main.go"}}`
		if string(n.Params) != want {
			t.Errorf("Params = %s, want %s", n.Params, want)
		}
	})

	t.Run("without params", func(t *testing.T) {
		n, err := NewNotificationMessage(MethodExit, nil)
		if err != nil {
			t.Fatalf("NewNotificationMessage() error: %v", err)
		}
		if n.Params != nil {
			t.Errorf("Params = %s, want none", n.Params)
		}
	})
}

func TestResponseMessage_RoundTrip(t *testing.T) {
	t.Run("error response omits result", func(t *testing.T) {
		msg := ResponseMessage{
			JSONRPC: JSONRPCVersion,
			ID:      json.RawMessage(`3`),
			Error:   NewMethodNotFound("workspace/unknown"),
		}
		data, err := json.Marshal(msg)
		if err != nil {
			t.Fatalf("Marshal() error: %v", err)
		}

		var got ResponseMessage
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal() error: %v", err)
		}
		if got.Error == nil || got.Error.Code != CodeMethodNotFound {
			t.Errorf("Error = %+v, want method-not-found", got.Error)
		}
		if got.Result != nil {
			t.Errorf("Result = %s, want none", got.Result)
		}
	})
}
