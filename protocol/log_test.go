package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMarshalLogObject(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	severity := SeverityError
	logger.Debug("diagnostic published",
		zap.Object("diagnostic", Diagnostic{
			Range: Range{
				Start: Position{Line: 3, Character: 0},
				End:   Position{Line: 3, Character: 10},
			},
			Severity: &severity,
			Message:  "undefined: foo",
		}),
	)

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	diag, ok := fields["diagnostic"].(map[string]any)
	require.True(t, ok, "diagnostic field = %T", fields["diagnostic"])
	assert.Equal(t, "undefined: foo", diag["message"])
	assert.Equal(t, int32(1), diag["severity"])

	rng, ok := diag["range"].(map[string]any)
	require.True(t, ok)
	start := rng["start"].(map[string]any)
	assert.Equal(t, uint32(3), start["line"])
}

func TestMarshalLogObject_Location(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	logger.Debug("definition found",
		zap.Object("location", Location{
			URI: DocumentURI("file:///src/main.go"),
			Range: Range{
				Start: Position{Line: 12, Character: 4},
				End:   Position{Line: 12, Character: 9},
			},
		}),
	)

	entries := logs.All()
	require.Len(t, entries, 1)

	loc, ok := entries[0].ContextMap()["location"].(map[string]any)
	require.True(t, ok, "location field = %T", entries[0].ContextMap()["location"])
	assert.Equal(t, "file:///src/main.go", loc["uri"])
	rng := loc["range"].(map[string]any)
	assert.Equal(t, uint32(12), rng["start"].(map[string]any)["line"])
}

func TestMarshalLogObject_Envelopes(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	req, err := NewRequestMessage([]byte(`9`), MethodDefinition, TextDocumentPositionParams{
		TextDocument: TextDocumentIdentifier{URI: DocumentURI("file:///a.go")},
		Position:     Position{Line: 0, Character: 0},
	})
	require.NoError(t, err)

	logger.Info("sending", zap.Object("request", req))

	entries := logs.All()
	require.Len(t, entries, 1)
	msg, ok := entries[0].ContextMap()["request"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, MethodDefinition, msg["method"])
}
