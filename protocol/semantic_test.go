//go:build proposed

package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemanticHighlightingInformation_WireForm(t *testing.T) {
	tests := []struct {
		name  string
		value SemanticHighlightingInformation
		wire  string
	}{
		{
			name: "tokens pack to base64",
			value: SemanticHighlightingInformation{
				Line: 10,
				Tokens: SemanticHighlightingTokens{
					{Character: 0x00000001, Length: 0x0002, Scope: 0x0003},
					{Character: 0x00112222, Length: 0x0FF0, Scope: 0x0202},
				},
			},
			wire: `{"line":10,"tokens":"AAAAAQACAAMAESIiD/ACAg=="}`,
		},
		{
			name:  "line without tokens",
			value: SemanticHighlightingInformation{Line: 22},
			wire:  `{"line":22}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.wire, string(data))

			var got SemanticHighlightingInformation
			require.NoError(t, Decode([]byte(tt.wire), &got))
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestSemanticHighlightingTokens_RejectsBadBase64(t *testing.T) {
	var toks SemanticHighlightingTokens
	assert.Error(t, toks.UnmarshalJSON([]byte(`"not-base64!!!"`)))
	assert.Error(t, toks.UnmarshalJSON([]byte(`42`)))
}

func TestSemanticHighlightingParams_Decode(t *testing.T) {
	wire := `{"textDocument":{"uri":"file:///main.go","version":4},` +
		`"lines":[{"line":2,"tokens":"AAAAAQACAAM="}]}`

	var p SemanticHighlightingParams
	require.NoError(t, Decode([]byte(wire), &p))
	require.Len(t, p.Lines, 1)
	require.Len(t, p.Lines[0].Tokens, 1)
	assert.Equal(t, uint16(3), p.Lines[0].Tokens[0].Scope)
}
