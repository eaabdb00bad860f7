package bridge

import (
	"sync"

	"bennypowers.dev/checkbridge/internal/checkers"
	"bennypowers.dev/checkbridge/internal/collections"
	"bennypowers.dev/checkbridge/internal/documents"
	"bennypowers.dev/checkbridge/internal/uriutil"
)

// CheckerName is the name the pseudo-checker registers under
const CheckerName = "lsp"

// Checker is the pseudo-checker the bridge registers with the framework. Its
// check is a pure in-memory read of the document's cached diagnostics, so it
// always reports finished synchronously.
type Checker struct {
	mu     sync.RWMutex
	bridge *Bridge
	modes  *collections.OrderedSet[string]
}

func newChecker(b *Bridge) *Checker {
	return &Checker{
		bridge: b,
		modes:  collections.NewOrderedSet[string](),
	}
}

// Name identifies the pseudo-checker
func (c *Checker) Name() string {
	return CheckerName
}

// Modes returns the content modes the checker has been associated with.
// Empty until the first Enable, meaning every document matches.
func (c *Checker) Modes() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.modes.Members()
}

// AddMode associates the checker with a content mode (a language ID or a
// filename pattern)
func (c *Checker) AddMode(mode string) {
	if mode == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modes.Add(mode)
}

// IsApplicable reports whether the checker can run: only when the
// language-server client actively manages the document
func (c *Checker) IsApplicable(doc *documents.Document) bool {
	return doc != nil && c.bridge.Client().IsManaging(doc.URI())
}

// Start reads the document's cached diagnostics, converts each to the
// framework's result shape, and reports finished with the full list
func (c *Checker) Start(doc *documents.Document, report checkers.ReportFunc) {
	cached := doc.Diagnostics()
	filename := uriutil.URIToPath(doc.URI())

	results := make([]checkers.Result, 0, len(cached))
	for _, d := range cached {
		results = append(results, checkers.Result{
			Checker:   CheckerName,
			Filename:  filename,
			Buffer:    doc,
			Level:     d.Severity,
			Tags:      d.Tags,
			Message:   d.Message,
			ID:        d.Code,
			Line:      d.Start.Line,
			Column:    d.Start.Column,
			EndLine:   d.End.Line,
			EndColumn: d.End.Column,
		})
	}

	report(checkers.StatusFinished, results)
}
