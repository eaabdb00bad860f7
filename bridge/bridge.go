// Package bridge translates a language-server client's published diagnostics
// into checker framework results, and owns the lifecycle glue that keeps the
// client's own display and the checker framework from both rendering
// diagnostics for the same document.
package bridge

import (
	"sync"

	"bennypowers.dev/checkbridge/bridge/types"
	"bennypowers.dev/checkbridge/internal/checkers"
	"bennypowers.dev/checkbridge/internal/documents"
)

// ResultsSink receives checker results when the bridge triggers a check.
// In a real host this is the framework's renderer.
type ResultsSink func(uri string, results []checkers.Result)

// Bridge wires the language-server client to the checker framework.
// It implements types.BridgeContext.
type Bridge struct {
	mu        sync.RWMutex
	config    types.Config
	documents *documents.Manager
	registry  *checkers.Registry
	client    types.Client
	checker   *Checker
	sink      ResultsSink
	global    bool
}

// New creates a bridge for the given client host with the default
// configuration
func New(client types.Client) *Bridge {
	return NewWithConfig(client, types.DefaultConfig())
}

// NewWithConfig creates a bridge for the given client host
func NewWithConfig(client types.Client, config types.Config) *Bridge {
	b := &Bridge{
		config:    config,
		documents: documents.NewManager(),
		registry:  checkers.NewRegistry(),
		client:    client,
	}
	b.checker = newChecker(b)
	return b
}

// Document returns the document with the given URI, or nil
func (b *Bridge) Document(uri string) *documents.Document {
	return b.documents.Get(uri)
}

// DocumentManager returns the document manager
func (b *Bridge) DocumentManager() *documents.Manager {
	return b.documents
}

// Registry returns the checker registry
func (b *Bridge) Registry() *checkers.Registry {
	return b.registry
}

// Client returns the language-server client host
func (b *Bridge) Client() types.Client {
	return b.client
}

// Checker returns the bridge's pseudo-checker
func (b *Bridge) Checker() *Checker {
	return b.checker
}

// GetConfig returns the current configuration
func (b *Bridge) GetConfig() types.Config {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.config
}

// SetConfig replaces the configuration
func (b *Bridge) SetConfig(config types.Config) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.config = config
}

// SetResultsSink sets the callback that receives checker results whenever
// the bridge triggers a check
func (b *Bridge) SetResultsSink(sink ResultsSink) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sink = sink
}

// CheckNow runs the document's checker chain immediately and delivers the
// results to the sink. Returns the results for callers that want them.
func (b *Bridge) CheckNow(uri string) []checkers.Result {
	doc := b.documents.Get(uri)
	if doc == nil {
		return nil
	}
	results := b.registry.Run(doc)
	b.deliver(uri, results)
	return results
}

// FlushChecks runs every deferred re-check and delivers each document's
// results to the sink
func (b *Bridge) FlushChecks() map[string][]checkers.Result {
	out := b.registry.Flush(b.documents.Get)
	for uri, results := range out {
		b.deliver(uri, results)
	}
	return out
}

// Teardown clears all cached diagnostics and resets the registry
func (b *Bridge) Teardown() {
	for _, doc := range b.documents.GetAll() {
		doc.ClearDiagnostics()
	}
	b.registry.Teardown()
}

func (b *Bridge) deliver(uri string, results []checkers.Result) {
	b.mu.RLock()
	sink := b.sink
	b.mu.RUnlock()
	if sink != nil {
		sink(uri, results)
	}
}
