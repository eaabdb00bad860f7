// Package checkers models the checker framework side of the bridge: the
// checker plugin interface, the result records checkers report, and the
// process-wide registry that owns registration, selection and re-check
// scheduling.
package checkers

import (
	"path/filepath"

	"bennypowers.dev/checkbridge/internal/diagnostics"
	"bennypowers.dev/checkbridge/internal/documents"
	"bennypowers.dev/checkbridge/internal/uriutil"
	"github.com/bmatcuk/doublestar/v4"
)

// Status reports how a checker run ended
type Status string

const (
	// StatusFinished means the checker ran to completion and its results are final
	StatusFinished Status = "finished"
	// StatusErrored means the checker could not produce results
	StatusErrored Status = "errored"
)

// Result is one reported issue in the framework's shape. Tags travel with
// the result so hosts can render their labels next to the level (see
// types.Config.RenderLevel).
type Result struct {
	Checker   string
	Filename  string
	Buffer    *documents.Document
	Level     diagnostics.Severity
	Tags      []diagnostics.Tag
	Message   string
	ID        string
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// ReportFunc receives a checker run's outcome. Checkers call it exactly once.
type ReportFunc func(status Status, results []Result)

// Checker is a pluggable source of diagnostics recognized by the registry
type Checker interface {
	// Name identifies the checker in the registry and in results
	Name() string

	// Modes lists the content modes the checker applies to: language IDs or
	// doublestar filename patterns. An empty list matches everything.
	Modes() []string

	// IsApplicable reports whether the checker can run for the document
	IsApplicable(doc *documents.Document) bool

	// Start runs the check for the document and reports through report
	Start(doc *documents.Document, report ReportFunc)
}

// ModeMatches reports whether any of modes covers the document, either by
// language ID or by doublestar pattern over the document's filename. An empty
// mode list matches every document.
func ModeMatches(modes []string, doc *documents.Document) bool {
	if len(modes) == 0 {
		return true
	}

	path := filepath.ToSlash(uriutil.URIToPath(doc.URI()))
	base := filepath.Base(path)

	for _, m := range modes {
		if m != "" && m == doc.LanguageID() {
			return true
		}
		if ok, err := doublestar.Match(m, path); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(m, base); err == nil && ok {
			return true
		}
	}
	return false
}
