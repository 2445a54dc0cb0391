package protocol

import (
	"errors"
	"testing"
)

func TestResponseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ResponseError
		want string
	}{
		{
			name: "internal error",
			err:  &ResponseError{Code: CodeInternalError, Message: "something went wrong"},
			want: "lsp: something went wrong (code: -32603)",
		},
		{
			name: "parse error",
			err:  &ResponseError{Code: CodeParseError, Message: "invalid JSON"},
			want: "lsp: invalid JSON (code: -32700)",
		},
		{
			name: "request cancelled",
			err:  NewRequestCancelled("client gave up"),
			want: "lsp: client gave up (code: -32800)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResponseError_Is(t *testing.T) {
	err1 := NewInternalError("test")
	err2 := NewInternalError("different message")
	err3 := NewInvalidParams("test")

	if !errors.Is(err1, err2) {
		t.Error("errors with same code should match with errors.Is")
	}

	if errors.Is(err1, err3) {
		t.Error("errors with different codes should not match with errors.Is")
	}

	if errors.Is(err1, errors.New("test")) {
		t.Error("plain errors should not match")
	}
}

func TestResponseError_Constructors(t *testing.T) {
	tests := []struct {
		name string
		err  *ResponseError
		code int
	}{
		{"parse error", NewParseError("x"), CodeParseError},
		{"invalid request", NewInvalidRequest("x"), CodeInvalidRequest},
		{"method not found", NewMethodNotFound("x"), CodeMethodNotFound},
		{"invalid params", NewInvalidParams("x"), CodeInvalidParams},
		{"internal error", NewInternalError("x"), CodeInternalError},
		{"request cancelled", NewRequestCancelled("x"), CodeRequestCancelled},
		{"content modified", NewContentModified("x"), CodeContentModified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.code)
			}
			if tt.err.Message != "x" {
				t.Errorf("Message = %q, want %q", tt.err.Message, "x")
			}
		})
	}
}

func TestResponseError_WithData(t *testing.T) {
	base := NewInvalidParams("bad position")
	withData := base.WithData(map[string]any{"line": 12})

	if base.Data != nil {
		t.Error("WithData should not mutate the receiver")
	}
	if withData.Data == nil {
		t.Error("WithData should attach data")
	}
	if withData.Code != base.Code || withData.Message != base.Message {
		t.Error("WithData should preserve code and message")
	}
}

func TestResponseError_WireForm(t *testing.T) {
	err := NewRequestCancelled("cancelled")
	data, encErr := Encode(err)
	if encErr != nil {
		t.Fatalf("Encode() error: %v", encErr)
	}
	want := `{"code":-32800,"message":"cancelled"}`
	if string(data) != want {
		t.Errorf("Encode() = %s, want %s", data, want)
	}
}
