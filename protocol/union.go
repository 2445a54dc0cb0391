package protocol

import (
	"github.com/segmentio/encoding/json"

	"github.com/lspkit/lsp-go/schema"
)

// IntOrString holds a wire value the specification types as integer | string,
// such as a diagnostic code or a progress token. Exactly one side is set.
type IntOrString struct {
	Int *int32
	Str *string
}

// NewInt returns an IntOrString holding an integer.
func NewInt(v int32) IntOrString { return IntOrString{Int: &v} }

// NewString returns an IntOrString holding a string.
func NewString(v string) IntOrString { return IntOrString{Str: &v} }

func (v IntOrString) MarshalJSON() ([]byte, error) {
	if v.Str != nil {
		return json.Marshal(*v.Str)
	}
	if v.Int != nil {
		return json.Marshal(*v.Int)
	}
	return []byte("null"), nil
}

func (v *IntOrString) UnmarshalJSON(data []byte) error {
	*v = IntOrString{}
	switch sniff(data) {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v.Str = &s
		return nil
	case 'n':
		return nil
	default:
		var n int32
		if err := json.Unmarshal(data, &n); err != nil {
			return &schema.Mismatch{Message: "expected integer or string"}
		}
		v.Int = &n
		return nil
	}
}

// Locations holds a response the specification types as
// Location | Location[], as returned by the goto family of requests.
type Locations []Location

func (l Locations) MarshalJSON() ([]byte, error) {
	if len(l) == 1 {
		return json.Marshal(l[0])
	}
	return json.Marshal([]Location(l))
}

func (l *Locations) UnmarshalJSON(data []byte) error {
	switch sniff(data) {
	case '[':
		return json.Unmarshal(data, (*[]Location)(l))
	case '{':
		var loc Location
		if err := json.Unmarshal(data, &loc); err != nil {
			return err
		}
		*l = Locations{loc}
		return nil
	case 'n':
		*l = nil
		return nil
	default:
		return &schema.Mismatch{Message: "expected location or location array"}
	}
}

// sniff returns the first byte of the JSON value in data, skipping
// insignificant whitespace. It returns 0 for empty input.
func sniff(data []byte) byte {
	for _, c := range data {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return c
	}
	return 0
}
