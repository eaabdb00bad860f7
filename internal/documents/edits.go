package documents

import (
	"strings"

	"bennypowers.dev/checkbridge/internal/diagnostics"
	"bennypowers.dev/checkbridge/internal/position"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// trackEdit shifts the cached diagnostic positions across one incremental
// change, so a position published before an edit still points at the same
// text afterwards. oldContent is the content the change range refers to.
// Positions inside the replaced span clamp to the start of the edit.
func (d *Document) trackEdit(oldContent string, changeRange protocol.Range, text string) {
	if len(d.diagnostics) == 0 {
		return
	}

	lines := strings.Split(oldContent, "\n")
	start := diagnostics.Position{
		Line:   int(changeRange.Start.Line) + 1,
		Column: byteColumn(lines, changeRange.Start),
	}
	endLine := int(changeRange.End.Line) + 1
	endColumn := byteColumn(lines, changeRange.End)

	newlines := strings.Count(text, "\n")
	lineDelta := newlines - (endLine - start.Line)

	// Byte column where the text that followed the edit resumes
	tail := len(text) - (strings.LastIndex(text, "\n") + 1)
	resumeColumn := tail + 1
	if newlines == 0 {
		resumeColumn = start.Column + tail
	}

	shift := func(p diagnostics.Position) diagnostics.Position {
		switch {
		case p.Line < start.Line || (p.Line == start.Line && p.Column <= start.Column):
			return p
		case p.Line > endLine:
			return diagnostics.Position{Line: p.Line + lineDelta, Column: p.Column}
		case p.Line == endLine && p.Column >= endColumn:
			return diagnostics.Position{
				Line:   start.Line + newlines,
				Column: resumeColumn + (p.Column - endColumn),
			}
		default:
			return start
		}
	}

	for i := range d.diagnostics {
		d.diagnostics[i].Start = shift(d.diagnostics[i].Start)
		d.diagnostics[i].End = shift(d.diagnostics[i].End)
	}
}

// byteColumn converts a protocol position to a 1-indexed byte column against
// the given lines, falling back to a plain index shift past EOF
func byteColumn(lines []string, p protocol.Position) int {
	if int(p.Line) < len(lines) {
		return position.UTF16ToByteOffset(lines[int(p.Line)], int(p.Character)) + 1
	}
	return int(p.Character) + 1
}
