package diagnostics

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Severity classifies a diagnostic. Error outranks Warning outranks Info.
type Severity int

const (
	// SeverityError is for diagnostics that indicate broken code
	SeverityError Severity = iota
	// SeverityWarning is for suspicious but working code
	SeverityWarning
	// SeverityInfo is for informational notices and hints
	SeverityInfo
)

// String returns the lowercase display name of the severity
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// MapSeverity converts an LSP severity code to the internal Severity.
// A missing severity is treated as an error, matching servers that omit the
// field for hard failures. Hint (4) and anything above Warning collapse to
// Info.
func MapSeverity(s *protocol.DiagnosticSeverity) Severity {
	if s == nil || *s <= protocol.DiagnosticSeverityError {
		return SeverityError
	}
	if *s == protocol.DiagnosticSeverityWarning {
		return SeverityWarning
	}
	return SeverityInfo
}

// Protocol converts the internal Severity back to the LSP code
func (s Severity) Protocol() protocol.DiagnosticSeverity {
	switch s {
	case SeverityError:
		return protocol.DiagnosticSeverityError
	case SeverityWarning:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityInformation
	}
}
