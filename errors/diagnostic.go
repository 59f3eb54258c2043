package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies a class of model document problem.
type ErrorCode string

const (
	// ErrParse indicates a document could not be parsed.
	ErrParse ErrorCode = "otm-parse"
	// ErrUnknownFormat indicates the document format could not be determined.
	ErrUnknownFormat ErrorCode = "otm-unknown-format"
	// ErrInvalidDocument indicates a document parsed but is structurally invalid.
	ErrInvalidDocument ErrorCode = "otm-invalid-document"
	// ErrDuplicateLibrary indicates two documents declare the same namespace and prefix.
	ErrDuplicateLibrary ErrorCode = "otm-duplicate-library"
	// ErrDuplicateMember indicates a library declares a name twice.
	ErrDuplicateMember ErrorCode = "otm-duplicate-member"
	// ErrDuplicateFacet indicates an owner declares two facets with the same identity.
	ErrDuplicateFacet ErrorCode = "otm-duplicate-facet"
	// ErrUnresolvedReference indicates a reference names no known entity.
	ErrUnresolvedReference ErrorCode = "otm-unresolved-reference"
	// ErrKindMismatch indicates a reference resolved to an entity of the wrong kind.
	ErrKindMismatch ErrorCode = "otm-kind-mismatch"
	// ErrUnknownFacetKind indicates a facet kind name is not recognized.
	ErrUnknownFacetKind ErrorCode = "otm-unknown-facet-kind"

	// ErrExtensionCycle reports an extension chain that loops. Loading
	// records it as a warning.
	ErrExtensionCycle ErrorCode = "otm-extension-cycle"
	// ErrParentTypeCycle reports a simple type parent chain that loops.
	// Loading records it as a warning.
	ErrParentTypeCycle ErrorCode = "otm-parent-type-cycle"
)

// Diagnostic describes one problem found while loading model documents.
//
//nolint:errname // domain term.
type Diagnostic struct {
	Code    string
	Message string
	Subject string
	File    string
	Line    int
	Column  int
}

// DiagnosticList is an error that wraps one or more diagnostics.
type DiagnosticList []Diagnostic //nolint:errname // domain term.

// Error returns a compact summary of the diagnostics.
func (l DiagnosticList) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// Error formats the diagnostic with its code, subject and position.
func (d *Diagnostic) Error() string {
	if d == nil {
		return "diagnostic <nil>"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", d.Code, d.Message)
	if d.Subject != "" {
		fmt.Fprintf(&b, " (%s)", d.Subject)
	}
	switch {
	case d.File != "" && d.Line > 0:
		fmt.Fprintf(&b, " at %s:%d:%d", d.File, d.Line, d.Column)
	case d.File != "":
		fmt.Fprintf(&b, " in %s", d.File)
	case d.Line > 0:
		fmt.Fprintf(&b, " at line %d, column %d", d.Line, d.Column)
	}
	return b.String()
}

// NewDiagnostic builds a Diagnostic with a code, message and subject.
func NewDiagnostic(code ErrorCode, msg, subject string) Diagnostic {
	return Diagnostic{Code: string(code), Message: msg, Subject: subject}
}

// NewDiagnosticf formats a message and builds a Diagnostic.
func NewDiagnosticf(code ErrorCode, subject, format string, args ...any) Diagnostic {
	return NewDiagnostic(code, fmt.Sprintf(format, args...), subject)
}

// AsDiagnostics extracts diagnostics from an error returned by the loader.
func AsDiagnostics(err error) ([]Diagnostic, bool) {
	if err == nil {
		return nil, false
	}
	var list DiagnosticList
	if errors.As(err, &list) {
		return []Diagnostic(list), true
	}
	var listPtr *DiagnosticList
	if errors.As(err, &listPtr) && listPtr != nil {
		return []Diagnostic(*listPtr), true
	}
	return nil, false
}

// HasCode reports whether err carries a diagnostic with code.
func HasCode(err error, code ErrorCode) bool {
	diags, ok := AsDiagnostics(err)
	if !ok {
		return false
	}
	for _, d := range diags {
		if d.Code == string(code) {
			return true
		}
	}
	return false
}
