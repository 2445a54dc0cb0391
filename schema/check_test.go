package schema

import (
	"errors"
	"strings"
	"testing"
)

func TestSchema_Check(t *testing.T) {
	t.Run("reports missing required fields", func(t *testing.T) {
		schema := &Schema{
			Type: "object",
			Properties: map[string]*Schema{
				"line":      {Type: "integer"},
				"character": {Type: "integer"},
			},
			Required: []string{"line", "character"},
		}

		if err := schema.CheckJSON([]byte(`{"line":1,"character":2}`)); err != nil {
			t.Errorf("expected valid, got error: %v", err)
		}

		err := schema.CheckJSON([]byte(`{"line":1}`))
		if err == nil {
			t.Fatal("expected mismatch")
		}
		var m *Mismatch
		if !errors.As(err, &m) {
			t.Fatalf("error type = %T, want *Mismatch", err)
		}
		if m.Path != "character" {
			t.Errorf("Path = %q, want %q", m.Path, "character")
		}
		if !strings.Contains(m.Message, "required") {
			t.Errorf("Message = %q, want required-field message", m.Message)
		}
	})

	t.Run("checks value kinds", func(t *testing.T) {
		schema := &Schema{
			Type: "object",
			Properties: map[string]*Schema{
				"name":   {Type: "string"},
				"count":  {Type: "integer"},
				"weight": {Type: "number"},
				"open":   {Type: "boolean"},
			},
		}

		err := schema.CheckJSON([]byte(`{"name":1,"count":"x","weight":true,"open":0}`))
		if err == nil {
			t.Fatal("expected mismatches")
		}
		var many Mismatches
		if !errors.As(err, &many) {
			t.Fatalf("error type = %T, want Mismatches", err)
		}
		if len(many) != 4 {
			t.Errorf("len(mismatches) = %d, want 4", len(many))
		}
	})

	t.Run("rejects fractional integers", func(t *testing.T) {
		schema := &Schema{
			Type:       "object",
			Properties: map[string]*Schema{"line": {Type: "integer"}},
		}

		if err := schema.CheckJSON([]byte(`{"line":3}`)); err != nil {
			t.Errorf("whole number should pass: %v", err)
		}
		if err := schema.CheckJSON([]byte(`{"line":3.5}`)); err == nil {
			t.Error("fractional number should fail an integer check")
		}
	})

	t.Run("ignores unknown keys", func(t *testing.T) {
		schema := &Schema{
			Type:       "object",
			Properties: map[string]*Schema{"name": {Type: "string"}},
			Required:   []string{"name"},
		}

		if err := schema.CheckJSON([]byte(`{"name":"x","futureField":{"deep":1}}`)); err != nil {
			t.Errorf("unknown keys should be ignored: %v", err)
		}
	})

	t.Run("accepts null anywhere", func(t *testing.T) {
		schema := &Schema{
			Type:       "object",
			Properties: map[string]*Schema{"name": {Type: "string"}},
			Required:   []string{"name"},
		}

		if err := schema.CheckJSON([]byte(`{"name":null}`)); err != nil {
			t.Errorf("null should satisfy a present field: %v", err)
		}
	})

	t.Run("checks closed enumerations", func(t *testing.T) {
		schema := &Schema{
			Type: "object",
			Properties: map[string]*Schema{
				"severity": {Type: "integer", Enum: []any{float64(1), float64(2)}},
			},
		}

		if err := schema.CheckJSON([]byte(`{"severity":2}`)); err != nil {
			t.Errorf("member value should pass: %v", err)
		}

		err := schema.CheckJSON([]byte(`{"severity":9}`))
		if err == nil {
			t.Fatal("expected mismatch for out-of-set value")
		}
		var m *Mismatch
		if !errors.As(err, &m) {
			t.Fatalf("error type = %T, want *Mismatch", err)
		}
		if m.Path != "severity" {
			t.Errorf("Path = %q, want %q", m.Path, "severity")
		}
		if !strings.Contains(m.Message, "unrecognized enumeration value") {
			t.Errorf("Message = %q, want enumeration message", m.Message)
		}
	})

	t.Run("walks arrays with element paths", func(t *testing.T) {
		schema := &Schema{
			Type: "object",
			Properties: map[string]*Schema{
				"tags": {Type: "array", Items: &Schema{Type: "string"}},
			},
		}

		err := schema.CheckJSON([]byte(`{"tags":["a",1,"c"]}`))
		if err == nil {
			t.Fatal("expected mismatch")
		}
		var m *Mismatch
		if !errors.As(err, &m) {
			t.Fatalf("error type = %T, want *Mismatch", err)
		}
		if m.Path != "tags[1]" {
			t.Errorf("Path = %q, want %q", m.Path, "tags[1]")
		}
	})

	t.Run("skips opaque subtrees", func(t *testing.T) {
		schema := &Schema{
			Type:       "object",
			Properties: map[string]*Schema{"data": {Opaque: true}},
		}

		if err := schema.CheckJSON([]byte(`{"data":{"anything":[1,"x"]}}`)); err != nil {
			t.Errorf("opaque property should accept any value: %v", err)
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		schema := &Schema{Type: "object"}
		if err := schema.CheckJSON([]byte(`{broken`)); err == nil {
			t.Error("expected error for malformed input")
		}
	})
}
