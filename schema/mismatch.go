package schema

import (
	"fmt"
	"strings"
)

// Mismatch describes a single point at which structured data does not fit
// the wire shape of a protocol type: a missing required field, a value of
// the wrong kind, or an unrecognized enumeration discriminant.
type Mismatch struct {
	Path    string // JSON path to the offending field, e.g. "textDocument.uri"
	Message string
}

func (e *Mismatch) Error() string {
	if e.Path == "" {
		return "schema mismatch: " + e.Message
	}
	return fmt.Sprintf("schema mismatch at %s: %s", e.Path, e.Message)
}

// Mismatches collects every mismatch found in one check.
type Mismatches []*Mismatch

func (e Mismatches) Error() string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString("schema mismatch:")
	for _, m := range e {
		sb.WriteString("\n  - ")
		if m.Path != "" {
			sb.WriteString(m.Path)
			sb.WriteString(": ")
		}
		sb.WriteString(m.Message)
	}
	return sb.String()
}

// Unwrap exposes the individual mismatches to errors.Is and errors.As.
func (e Mismatches) Unwrap() []error {
	out := make([]error, len(e))
	for i, m := range e {
		out[i] = m
	}
	return out
}

// combine returns nil, the sole mismatch, or the full list.
func combine(errs Mismatches) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errs
	}
}
