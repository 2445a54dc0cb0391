package schema

import (
	"reflect"
	"testing"
)

type syncKind int32

const (
	syncNone syncKind = 0
	syncFull syncKind = 1
)

func (syncKind) EnumValues() []any {
	return []any{syncNone, syncFull}
}

type markupKind string

const (
	plainText markupKind = "plaintext"
	markdown  markupKind = "markdown"
)

func (markupKind) EnumValues() []any {
	return []any{plainText, markdown}
}

type opaqueValue struct{}

func (opaqueValue) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

type point struct {
	Line      uint32 `json:"line"`
	Character uint32 `json:"character"`
}

type span struct {
	Start point `json:"start"`
	End   point `json:"end"`
}

type annotated struct {
	span

	Message  string  `json:"message"`
	Source   *string `json:"source,omitempty"`
	Internal string  `json:"-"`
}

type node struct {
	Name     string `json:"name"`
	Children []node `json:"children,omitempty"`
}

func TestFor_StructFields(t *testing.T) {
	s, err := For(reflect.TypeOf(span{}))
	if err != nil {
		t.Fatalf("For() error: %v", err)
	}

	if s.Type != "object" {
		t.Errorf("Type = %q, want %q", s.Type, "object")
	}
	if len(s.Properties) != 2 {
		t.Errorf("len(Properties) = %d, want 2", len(s.Properties))
	}
	if got := s.Properties["start"]; got == nil || got.Type != "object" {
		t.Errorf("Properties[start] = %+v, want object schema", got)
	}
	if !reflect.DeepEqual(s.Required, []string{"start", "end"}) {
		t.Errorf("Required = %v, want [start end]", s.Required)
	}
}

func TestFor_OptionalAndIgnoredFields(t *testing.T) {
	s, err := For(reflect.TypeOf(annotated{}))
	if err != nil {
		t.Fatalf("For() error: %v", err)
	}

	// Embedded fields are flattened next to the declared ones.
	for _, name := range []string{"start", "end", "message", "source"} {
		if s.Properties[name] == nil {
			t.Errorf("Properties[%s] missing", name)
		}
	}
	if s.Properties["Internal"] != nil || s.Properties["-"] != nil {
		t.Error("json:\"-\" field should not appear in properties")
	}

	if !reflect.DeepEqual(s.Required, []string{"start", "end", "message"}) {
		t.Errorf("Required = %v, want [start end message]", s.Required)
	}
}

type weight int

type decorated struct {
	span
	weight

	Label  string `json:"label"`
	hidden string
}

func TestFor_UnexportedFields(t *testing.T) {
	s, err := For(reflect.TypeOf(decorated{}))
	if err != nil {
		t.Fatalf("For() error: %v", err)
	}

	// An unexported embedded struct still promotes its exported fields.
	for _, name := range []string{"start", "end", "label"} {
		if s.Properties[name] == nil {
			t.Errorf("Properties[%s] missing", name)
		}
	}

	// Unexported non-struct embeds and plain unexported fields stay out.
	for _, name := range []string{"weight", "hidden"} {
		if s.Properties[name] != nil {
			t.Errorf("Properties[%s] = %+v, want absent", name, s.Properties[name])
		}
	}
	if !reflect.DeepEqual(s.Required, []string{"start", "end", "label"}) {
		t.Errorf("Required = %v, want [start end label]", s.Required)
	}
}

func TestFor_Enumerations(t *testing.T) {
	intSchema, err := For(reflect.TypeOf(syncKind(0)))
	if err != nil {
		t.Fatalf("For() error: %v", err)
	}
	if intSchema.Type != "integer" {
		t.Errorf("Type = %q, want %q", intSchema.Type, "integer")
	}
	if !reflect.DeepEqual(intSchema.Enum, []any{float64(0), float64(1)}) {
		t.Errorf("Enum = %v, want [0 1]", intSchema.Enum)
	}

	strSchema, err := For(reflect.TypeOf(markupKind("")))
	if err != nil {
		t.Fatalf("For() error: %v", err)
	}
	if strSchema.Type != "string" {
		t.Errorf("Type = %q, want %q", strSchema.Type, "string")
	}
	if !reflect.DeepEqual(strSchema.Enum, []any{"plaintext", "markdown"}) {
		t.Errorf("Enum = %v, want [plaintext markdown]", strSchema.Enum)
	}
}

func TestFor_OpaqueTypes(t *testing.T) {
	s, err := For(reflect.TypeOf(opaqueValue{}))
	if err != nil {
		t.Fatalf("For() error: %v", err)
	}
	if !s.Opaque {
		t.Error("type with custom MarshalJSON should derive as opaque")
	}

	ifaceField := struct {
		Data any `json:"data"`
	}{}
	s, err = For(reflect.TypeOf(ifaceField))
	if err != nil {
		t.Fatalf("For() error: %v", err)
	}
	if !s.Properties["data"].Opaque {
		t.Error("interface field should derive as opaque")
	}
}

func TestFor_RecursiveType(t *testing.T) {
	s, err := For(reflect.TypeOf(node{}))
	if err != nil {
		t.Fatalf("For() error: %v", err)
	}

	children := s.Properties["children"]
	if children == nil || children.Type != "array" {
		t.Fatalf("Properties[children] = %+v, want array schema", children)
	}
	if children.Items != s {
		t.Error("recursive element schema should reuse the enclosing schema")
	}
}

func TestFor_CachesDerivedSchemas(t *testing.T) {
	first, err := For(reflect.TypeOf(span{}))
	if err != nil {
		t.Fatalf("For() error: %v", err)
	}
	second, err := For(reflect.TypeOf(&span{}))
	if err != nil {
		t.Fatalf("For() error: %v", err)
	}
	if first != second {
		t.Error("For should return the cached schema for pointer and value targets")
	}
}
