package protocol

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/segmentio/encoding/json"

	"github.com/lspkit/lsp-go/schema"
)

// Encode marshals a catalog value to its wire form. Absent optional fields
// are omitted entirely, never written as null. Encoding a well-formed
// catalog value does not fail.
func Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Decode binds wire data to the catalog type v points at, after checking
// the data against the type's declared field set. A missing required field,
// a value of the wrong kind, or an unrecognized closed-enum discriminant
// fails with a *schema.Mismatch (or schema.Mismatches) naming the offending
// path. Unknown extra fields are ignored.
func Decode(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("protocol: decode target must be a non-nil pointer, got %T", v)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return &schema.Mismatch{Message: fmt.Sprintf("invalid JSON: %v", err)}
	}

	s, err := schema.For(rv.Elem().Type())
	if err != nil {
		return err
	}
	if err := s.Check(raw); err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		// Union types enforce their own shape while binding; surface their
		// mismatches as-is.
		var single *schema.Mismatch
		var many schema.Mismatches
		if errors.As(err, &single) || errors.As(err, &many) {
			return err
		}
		return &schema.Mismatch{Message: err.Error()}
	}
	return nil
}
