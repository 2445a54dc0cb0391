package protocol

import "github.com/segmentio/encoding/json"

// DiagnosticSeverity reports the severity of a diagnostic. The integer
// codes are fixed by the specification and never change meaning.
type DiagnosticSeverity int32

const (
	SeverityError       DiagnosticSeverity = 1
	SeverityWarning     DiagnosticSeverity = 2
	SeverityInformation DiagnosticSeverity = 3
	SeverityHint        DiagnosticSeverity = 4
)

// EnumValues implements schema.Enumerated.
func (DiagnosticSeverity) EnumValues() []any {
	return []any{SeverityError, SeverityWarning, SeverityInformation, SeverityHint}
}

// DiagnosticTag adds non-severity metadata about a diagnostic.
//
// @since 3.15.0
type DiagnosticTag int32

const (
	// TagUnnecessary marks unused or unnecessary code; clients render it
	// faded out rather than underlined.
	TagUnnecessary DiagnosticTag = 1

	// TagDeprecated marks deprecated or obsolete code; clients render it
	// with a strike-through.
	TagDeprecated DiagnosticTag = 2
)

// EnumValues implements schema.Enumerated.
func (DiagnosticTag) EnumValues() []any {
	return []any{TagUnnecessary, TagDeprecated}
}

// DiagnosticRelatedInformation represents a related message and source code
// location for a diagnostic, e.g. the spot a symbol was first declared when
// reporting a duplicate.
type DiagnosticRelatedInformation struct {
	// The location of this related diagnostic information.
	Location Location `json:"location"`

	// The message of this related diagnostic information.
	Message string `json:"message"`
}

// CodeDescription captures a URI with more information about a diagnostic
// code.
//
// @since 3.16.0
type CodeDescription struct {
	// A URI to open with more information about the diagnostic error.
	Href URI `json:"href"`
}

// Diagnostic represents one reported problem, such as a compiler error or
// warning. Diagnostics are only valid in the scope of a resource.
type Diagnostic struct {
	// The range at which the message applies.
	Range Range `json:"range"`

	// The diagnostic's severity. Omitting it leaves the interpretation to
	// the client; most treat it as an error.
	Severity *DiagnosticSeverity `json:"severity,omitempty"`

	// The diagnostic's code, which might appear in the user interface.
	Code *IntOrString `json:"code,omitempty"`

	// An optional property to describe the error code.
	//
	// @since 3.16.0
	CodeDescription *CodeDescription `json:"codeDescription,omitempty"`

	// A human-readable string describing the source of this diagnostic,
	// e.g. 'typescript' or 'super lint'.
	Source *string `json:"source,omitempty"`

	// The diagnostic's message.
	Message string `json:"message"`

	// Additional metadata about the diagnostic.
	//
	// @since 3.15.0
	Tags []DiagnosticTag `json:"tags,omitempty"`

	// Related diagnostic information, e.g. when a symbol clashes with all
	// its declaration sites.
	RelatedInformation []DiagnosticRelatedInformation `json:"relatedInformation,omitempty"`

	// A data entry preserved between a publish diagnostics notification
	// and a code action request.
	//
	// @since 3.16.0
	Data any `json:"data,omitempty"`
}

// PublishDiagnosticsParams is the payload of the
// textDocument/publishDiagnostics notification.
type PublishDiagnosticsParams struct {
	// The URI for which diagnostic information is reported.
	URI DocumentURI `json:"uri"`

	// The version number of the document the diagnostics are published
	// for.
	//
	// @since 3.15.0
	Version *int32 `json:"version,omitempty"`

	// An array of diagnostic information items.
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// TagSupport captures a client's supported value set for a tag-style
// enumeration. Some clients historically sent a bare boolean instead of the
// object form; decode accepts both and treats `true` as an empty set.
type TagSupport[T any] struct {
	// The tags supported by the client.
	ValueSet []T `json:"valueSet"`
}

func (t *TagSupport[T]) UnmarshalJSON(data []byte) error {
	switch sniff(data) {
	case 't':
		t.ValueSet = []T{}
		return nil
	case 'f', 'n':
		t.ValueSet = nil
		return nil
	default:
		var wire struct {
			ValueSet []T `json:"valueSet"`
		}
		if err := json.Unmarshal(data, &wire); err != nil {
			return err
		}
		t.ValueSet = wire.ValueSet
		return nil
	}
}

// PublishDiagnosticsClientCapabilities describes the client's diagnostics
// support.
type PublishDiagnosticsClientCapabilities struct {
	// Whether the client accepts diagnostics with related information.
	RelatedInformation *bool `json:"relatedInformation,omitempty"`

	// Client supports the tag property; unknown tags must be handled
	// gracefully.
	//
	// @since 3.15.0
	TagSupport *TagSupport[DiagnosticTag] `json:"tagSupport,omitempty"`

	// Whether the client interprets the version property of the publish
	// notification.
	//
	// @since 3.15.0
	VersionSupport *bool `json:"versionSupport,omitempty"`
}
