package protocol_test

import (
	"errors"
	"fmt"

	"github.com/lspkit/lsp-go/protocol"
	"github.com/lspkit/lsp-go/schema"
)

// Example demonstrates decoding a notification payload and reacting to a
// schema mismatch.
func Example() {
	wire := []byte(`{
		"uri": "file:///src/main.go",
		"diagnostics": [{
			"range": {
				"start": {"line": 10, "character": 4},
				"end": {"line": 10, "character": 9}
			},
			"severity": 2,
			"message": "unused variable"
		}]
	}`)

	var params protocol.PublishDiagnosticsParams
	if err := protocol.Decode(wire, &params); err != nil {
		panic(err)
	}
	fmt.Println(params.Diagnostics[0].Message)

	// A payload missing a required field is rejected before binding.
	var rng protocol.Range
	err := protocol.Decode([]byte(`{"start":{"line":5},"end":{"line":6,"character":0}}`), &rng)

	var m *schema.Mismatch
	if errors.As(err, &m) {
		fmt.Println(m.Path)
	}

	// Output:
	// unused variable
	// start.character
}

// ExampleEncode shows that absent optional fields never reach the wire.
func ExampleEncode() {
	item := protocol.CompletionItem{Label: "fmt.Println"}

	data, err := protocol.Encode(item)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))

	// Output:
	// {"label":"fmt.Println"}
}
