package documents

import (
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/checkbridge/internal/diagnostics"
)

// Document is an open, identifiable unit of text tracked by the bridge. It
// owns the per-document diagnostics cache: the cache is created with the
// document, replaced wholesale on each publish, and destroyed with it.
// Between publishes, cached positions follow document edits (see trackEdit).
type Document struct {
	uri         string
	languageID  string
	content     string
	hasContent  bool
	version     int
	diagnostics []diagnostics.Diagnostic
	generation  uint64
}

// NewDocument creates a new document with known content
func NewDocument(uri, languageID string, version int, content string) *Document {
	return &Document{
		uri:        uri,
		languageID: languageID,
		version:    version,
		content:    content,
		hasContent: true,
	}
}

// NewHandle creates a document handle without content, used when a
// notification arrives for a document the editor has not opened through the
// usual lifecycle. Column conversion falls back to plain index shifts.
func NewHandle(uri string) *Document {
	return &Document{uri: uri}
}

// URI returns the document's URI
func (d *Document) URI() string {
	return d.uri
}

// LanguageID returns the document's language identifier
func (d *Document) LanguageID() string {
	return d.languageID
}

// Version returns the document's version
func (d *Document) Version() int {
	return d.version
}

// Content returns the document's current content
func (d *Document) Content() string {
	return d.content
}

// SetContent updates the document's content and version.
// Returns an error if the provided version is older than the current document
// version, preventing stale updates from being applied.
func (d *Document) SetContent(content string, version int) error {
	if version < d.version {
		return fmt.Errorf("rejected stale update: document version is %d but update version is %d", d.version, version)
	}
	d.content = content
	d.hasContent = true
	d.version = version
	return nil
}

// Line returns the text of the zero-indexed line n. ok is false when the
// document's content is untracked or n is out of range, so callers can fall
// back to UTF-16 character offsets. Implements diagnostics.LineSource.
func (d *Document) Line(n uint32) (string, bool) {
	if !d.hasContent {
		return "", false
	}
	lines := strings.Split(d.content, "\n")
	if int(n) >= len(lines) {
		return "", false
	}
	return lines[n], true
}

// SetDiagnostics replaces the cached diagnostics wholesale. Each publish is
// authoritative for its document; no merging across publishes.
func (d *Document) SetDiagnostics(ds []diagnostics.Diagnostic) {
	d.diagnostics = slices.Clone(ds)
	d.generation++
}

// Diagnostics returns a copy of the cached diagnostics
func (d *Document) Diagnostics() []diagnostics.Diagnostic {
	return slices.Clone(d.diagnostics)
}

// ClearDiagnostics empties the cache, bumping the generation so readers can
// tell a cleared cache from a never-populated one
func (d *Document) ClearDiagnostics() {
	d.diagnostics = nil
	d.generation++
}

// Generation returns the number of cache replacements so far. Monotonic; a
// hook for discarding stale publishes if a host ever introduces concurrency.
func (d *Document) Generation() uint64 {
	return d.generation
}
