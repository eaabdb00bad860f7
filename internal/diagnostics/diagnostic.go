// Package diagnostics defines the bridge's internal diagnostic record: the
// shape a language server's published diagnostic takes between receipt and
// hand-off to the checker framework.
package diagnostics

import (
	"fmt"

	"bennypowers.dev/checkbridge/internal/position"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Tag marks a diagnostic with extra semantics beyond its severity
type Tag string

const (
	// TagUnnecessary flags unused or unreachable code
	TagUnnecessary Tag = "unnecessary"
	// TagDeprecated flags use of a deprecated symbol
	TagDeprecated Tag = "deprecated"
)

// Position is a 1-indexed line/column pair in the local addressing scheme.
// Columns are byte offsets plus one when the document's text is known,
// otherwise the protocol's UTF-16 character offset plus one.
type Position struct {
	Line   int
	Column int
}

// Protocol converts the position back to the zero-indexed protocol form.
// Only valid for positions produced without line-text conversion (plain
// index shift); byte columns in multibyte lines do not invert this way.
func (p Position) Protocol() protocol.Position {
	return protocol.Position{
		Line:      position.ZeroIndexed(p.Line),
		Character: position.ZeroIndexed(p.Column),
	}
}

// LineSource supplies line text for UTF-16 aware column conversion.
// Implementations return ok=false when the line's text is unknown.
type LineSource interface {
	Line(n uint32) (string, bool)
}

// Diagnostic is the internal record cached per document between a publish
// notification and the checker's read.
type Diagnostic struct {
	Start    Position
	End      Position
	Severity Severity
	Code     string
	Message  string
	Tags     []Tag
}

// FromProtocol converts a protocol-level diagnostic to the internal record.
// lines may be nil when the document's content is not tracked; columns then
// fall back to a plain index shift.
func FromProtocol(d protocol.Diagnostic, lines LineSource) Diagnostic {
	return Diagnostic{
		Start:    convertPosition(d.Range.Start, lines),
		End:      convertPosition(d.Range.End, lines),
		Severity: MapSeverity(d.Severity),
		Code:     codeString(d.Code),
		Message:  d.Message,
		Tags:     convertTags(d.Tags),
	}
}

// FromProtocolAll converts a full published list, preserving order
func FromProtocolAll(ds []protocol.Diagnostic, lines LineSource) []Diagnostic {
	if len(ds) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(ds))
	for i, d := range ds {
		out[i] = FromProtocol(d, lines)
	}
	return out
}

// HasTag reports whether the diagnostic carries the given tag
func (d Diagnostic) HasTag(tag Tag) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func convertPosition(p protocol.Position, lines LineSource) Position {
	var lineText string
	var ok bool
	if lines != nil {
		lineText, ok = lines.Line(p.Line)
	}
	return Position{
		Line:   position.OneIndexed(p.Line),
		Column: position.LocalColumn(lineText, p.Character, ok),
	}
}

func convertTags(tags []protocol.DiagnosticTag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		switch t {
		case protocol.DiagnosticTagUnnecessary:
			out = append(out, TagUnnecessary)
		case protocol.DiagnosticTagDeprecated:
			out = append(out, TagDeprecated)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func codeString(code *protocol.IntegerOrString) string {
	if code == nil || code.Value == nil {
		return ""
	}
	switch v := code.Value.(type) {
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
