//go:build proposed

package protocol

import (
	"encoding/base64"
	"encoding/binary"

	"github.com/segmentio/encoding/json"

	"github.com/lspkit/lsp-go/schema"
)

// SemanticHighlightingClientCapability announces client support for
// semantic highlighting of text documents.
type SemanticHighlightingClientCapability struct {
	// True if the client supports semantic highlighting for text
	// documents. False by default.
	SemanticHighlighting bool `json:"semanticHighlighting"`
}

// SemanticHighlightingServerCapability advertises the lookup table of
// TextMate scopes the server highlights with. An absent or empty table
// means the server does not support the feature; clients reuse the table
// when receiving highlighting notifications.
type SemanticHighlightingServerCapability struct {
	Scopes [][]string `json:"scopes,omitempty"`
}

// SemanticHighlightingToken is a single highlighted span on a line: its
// start character, length, and the scope lookup-table index.
type SemanticHighlightingToken struct {
	Character uint32
	Length    uint16
	Scope     uint16
}

// SemanticHighlightingTokens is the packed wire form of a line's tokens:
// each token is eight bytes (big-endian character, length, scope) and the
// whole sequence travels as a standard base64 string.
type SemanticHighlightingTokens []SemanticHighlightingToken

// MarshalJSON implements json.Marshaler.
func (t SemanticHighlightingTokens) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, len(t)*8)
	for _, tok := range t {
		buf = binary.BigEndian.AppendUint32(buf, tok.Character)
		buf = binary.BigEndian.AppendUint16(buf, tok.Length)
		buf = binary.BigEndian.AppendUint16(buf, tok.Scope)
	}
	return json.Marshal(base64.StdEncoding.EncodeToString(buf))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *SemanticHighlightingTokens) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &schema.Mismatch{Message: "expected base64 token string"}
	}
	buf, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return &schema.Mismatch{Message: "malformed base64 token string"}
	}
	toks := make(SemanticHighlightingTokens, 0, len(buf)/8)
	for len(buf) >= 8 {
		toks = append(toks, SemanticHighlightingToken{
			Character: binary.BigEndian.Uint32(buf[0:4]),
			Length:    binary.BigEndian.Uint16(buf[4:6]),
			Scope:     binary.BigEndian.Uint16(buf[6:8]),
		})
		buf = buf[8:]
	}
	*t = toks
	return nil
}

// SemanticHighlightingInformation is the highlighting to apply on a single
// line of a text document.
type SemanticHighlightingInformation struct {
	// The zero-based line position in the text document.
	Line int32 `json:"line"`

	// The highlighted spans on the line. Empty or absent means the line
	// has no highlighted positions.
	Tokens SemanticHighlightingTokens `json:"tokens,omitempty"`
}

// SemanticHighlightingParams is the payload of the server-side semantic
// highlighting push notification.
type SemanticHighlightingParams struct {
	// The text document to decorate with the highlighting information.
	TextDocument VersionedTextDocumentIdentifier `json:"textDocument"`

	// Highlighting information, one entry per affected line.
	Lines []SemanticHighlightingInformation `json:"lines"`
}

// MethodSemanticHighlighting is the semantic highlighting push
// notification.
const MethodSemanticHighlighting = "textDocument/semanticHighlighting"

func init() {
	notificationShapes[MethodSemanticHighlighting] = typeOf[SemanticHighlightingParams]()
}
