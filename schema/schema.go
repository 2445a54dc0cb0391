package schema

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Value kind names used in schemas and mismatch messages.
const (
	typeObject  = "object"
	typeArray   = "array"
	typeString  = "string"
	typeInteger = "integer"
	typeNumber  = "number"
	typeBoolean = "boolean"
)

// Enumerated is implemented by closed protocol enumerations to expose the
// discriminant set fixed by the specification. Values outside the set are
// rejected during Check; enumerations that are open by specification simply
// do not implement it.
type Enumerated interface {
	EnumValues() []any
}

// Schema describes the wire shape of one protocol type.
type Schema struct {
	Type       string             `json:"type,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
	Enum       []any              `json:"enum,omitempty"`
	Items      *Schema            `json:"items,omitempty"`

	// Opaque marks types that carry their own JSON (un)marshaling; the
	// structural check accepts any value for them.
	Opaque bool `json:"-"`
}

var cache sync.Map // reflect.Type -> *Schema

// For returns the wire schema for t, deriving and caching it on first use.
// Pointer targets are dereferenced.
func For(t reflect.Type) (*Schema, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if s, ok := cache.Load(t); ok {
		return s.(*Schema), nil
	}
	s, err := derive(t, make(map[reflect.Type]*Schema))
	if err != nil {
		return nil, err
	}
	cache.Store(t, s)
	return s, nil
}

var (
	jsonMarshalerType   = reflect.TypeOf((*interface{ MarshalJSON() ([]byte, error) })(nil)).Elem()
	jsonUnmarshalerType = reflect.TypeOf((*interface{ UnmarshalJSON([]byte) error })(nil)).Elem()
	textMarshalerType   = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	enumeratedType      = reflect.TypeOf((*Enumerated)(nil)).Elem()
)

func derive(t reflect.Type, seen map[reflect.Type]*Schema) (*Schema, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	// Recursive types (DocumentSymbol children, nested selectors) reuse the
	// schema that is still being filled in.
	if s, ok := seen[t]; ok {
		return s, nil
	}

	s := &Schema{}
	seen[t] = s

	switch {
	case t.Implements(jsonMarshalerType), reflect.PointerTo(t).Implements(jsonUnmarshalerType):
		s.Opaque = true
		return s, nil
	case t.Implements(enumeratedType):
		return deriveEnum(t, s)
	case t.Implements(textMarshalerType):
		s.Type = typeString
		return s, nil
	}

	switch t.Kind() {
	case reflect.Struct:
		return deriveStruct(t, s, seen)
	case reflect.String:
		s.Type = typeString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		s.Type = typeInteger
	case reflect.Float32, reflect.Float64:
		s.Type = typeNumber
	case reflect.Bool:
		s.Type = typeBoolean
	case reflect.Slice, reflect.Array:
		items, err := derive(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		s.Type = typeArray
		s.Items = items
	case reflect.Map:
		s.Type = typeObject
	case reflect.Interface:
		s.Opaque = true
	default:
		return nil, fmt.Errorf("schema: unsupported kind %s for %s", t.Kind(), t)
	}
	return s, nil
}

func deriveEnum(t reflect.Type, s *Schema) (*Schema, error) {
	switch t.Kind() {
	case reflect.String:
		s.Type = typeString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		s.Type = typeInteger
	default:
		return nil, fmt.Errorf("schema: enumeration %s must have string or integer kind, has %s", t, t.Kind())
	}
	for _, v := range reflect.Zero(t).Interface().(Enumerated).EnumValues() {
		s.Enum = append(s.Enum, normalizeEnum(v))
	}
	return s, nil
}

// normalizeEnum maps a typed discriminant to the representation a generic
// JSON decoder produces, so membership checks compare like with like.
func normalizeEnum(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	default:
		return v
	}
}

func deriveStruct(t reflect.Type, s *Schema, seen map[reflect.Type]*Schema) (*Schema, error) {
	s.Type = typeObject
	s.Properties = make(map[string]*Schema)
	if err := addStructFields(t, s, seen); err != nil {
		return nil, err
	}
	return s, nil
}

func addStructFields(t reflect.Type, s *Schema, seen map[reflect.Type]*Schema) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")

		if !field.IsExported() {
			// Unexported embedded structs still promote their exported
			// fields, as in encoding/json; any other unexported field is
			// ignored.
			if !field.Anonymous || name != "" || field.Type.Kind() != reflect.Struct {
				continue
			}
		}

		// Embedded structs without their own key are flattened into the
		// enclosing object, matching encoding/json promotion.
		if field.Anonymous && name == "" {
			ft := field.Type
			for ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct && !ft.Implements(jsonMarshalerType) {
				if err := addStructFields(ft, s, seen); err != nil {
					return err
				}
				continue
			}
		}

		if name == "" {
			name = field.Name
		}

		fs, err := derive(field.Type, seen)
		if err != nil {
			return err
		}
		s.Properties[name] = fs

		if !hasOption(opts, "omitempty") {
			s.Required = append(s.Required, name)
		}
	}
	return nil
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == want {
			return true
		}
	}
	return false
}
