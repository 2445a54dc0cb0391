package schema

import (
	"fmt"
	"math"

	"github.com/segmentio/encoding/json"
)

// CheckJSON decodes data to a generic value tree and checks it against the
// schema. It returns nil, a *Mismatch, or Mismatches.
func (s *Schema) CheckJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return &Mismatch{Message: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return s.Check(value)
}

// Check verifies that a decoded value tree fits the schema. Keys the schema
// does not know are ignored; null is accepted everywhere, matching the
// protocol convention that absent and null are equivalent for readers.
func (s *Schema) Check(value any) error {
	var errs Mismatches
	s.check("", value, &errs)
	return combine(errs)
}

func (s *Schema) check(path string, value any, errs *Mismatches) {
	if value == nil || s.Opaque {
		return
	}

	if len(s.Enum) > 0 {
		s.checkEnum(path, value, errs)
		return
	}

	switch s.Type {
	case typeObject:
		s.checkObject(path, value, errs)
	case typeArray:
		s.checkArray(path, value, errs)
	case typeString:
		if _, ok := value.(string); !ok {
			mismatch(errs, path, typeString, value)
		}
	case typeInteger:
		n, ok := value.(float64)
		if !ok || n != math.Trunc(n) {
			mismatch(errs, path, typeInteger, value)
		}
	case typeNumber:
		if _, ok := value.(float64); !ok {
			mismatch(errs, path, typeNumber, value)
		}
	case typeBoolean:
		if _, ok := value.(bool); !ok {
			mismatch(errs, path, typeBoolean, value)
		}
	}
}

func (s *Schema) checkObject(path string, value any, errs *Mismatches) {
	obj, ok := value.(map[string]any)
	if !ok {
		mismatch(errs, path, typeObject, value)
		return
	}

	for _, req := range s.Required {
		if _, present := obj[req]; !present {
			*errs = append(*errs, &Mismatch{
				Path:    joinPath(path, req),
				Message: "required field is missing",
			})
		}
	}

	for key, val := range obj {
		prop, known := s.Properties[key]
		if !known {
			continue
		}
		prop.check(joinPath(path, key), val, errs)
	}
}

func (s *Schema) checkArray(path string, value any, errs *Mismatches) {
	arr, ok := value.([]any)
	if !ok {
		mismatch(errs, path, typeArray, value)
		return
	}
	if s.Items == nil {
		return
	}
	for i, item := range arr {
		s.Items.check(fmt.Sprintf("%s[%d]", path, i), item, errs)
	}
}

func (s *Schema) checkEnum(path string, value any, errs *Mismatches) {
	switch s.Type {
	case typeString:
		if _, ok := value.(string); !ok {
			mismatch(errs, path, typeString, value)
			return
		}
	case typeInteger:
		if n, ok := value.(float64); !ok || n != math.Trunc(n) {
			mismatch(errs, path, typeInteger, value)
			return
		}
	}
	for _, allowed := range s.Enum {
		if value == allowed {
			return
		}
	}
	*errs = append(*errs, &Mismatch{
		Path:    path,
		Message: fmt.Sprintf("unrecognized enumeration value %v", value),
	})
}

func mismatch(errs *Mismatches, path, want string, got any) {
	*errs = append(*errs, &Mismatch{
		Path:    path,
		Message: fmt.Sprintf("expected %s, got %s", want, kindName(got)),
	})
}

func kindName(v any) string {
	switch v.(type) {
	case string:
		return typeString
	case float64:
		return typeNumber
	case bool:
		return typeBoolean
	case map[string]any:
		return typeObject
	case []any:
		return typeArray
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func joinPath(base, field string) string {
	if base == "" {
		return field
	}
	return base + "." + field
}
