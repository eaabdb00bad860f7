// Package testutil provides mock host implementations for bridge tests.
package testutil

import (
	"bennypowers.dev/checkbridge/internal/checkers"
	"bennypowers.dev/checkbridge/internal/collections"
)

// MockClient implements types.Client with configurable managed documents and
// records display toggles for assertions.
type MockClient struct {
	managed collections.Set[string]
	display map[string]bool
}

// NewMockClient creates a mock client managing the given URIs
func NewMockClient(uris ...string) *MockClient {
	return &MockClient{
		managed: collections.NewSet(uris...),
		display: make(map[string]bool),
	}
}

// Manage marks a document as managed by the client
func (m *MockClient) Manage(uri string) {
	m.managed.Add(uri)
}

// StopManaging removes a document from the client's managed set
func (m *MockClient) StopManaging(uri string) {
	m.managed.Remove(uri)
}

// IsManaging reports whether the client manages the document
func (m *MockClient) IsManaging(uri string) bool {
	return m.managed.Has(uri)
}

// SetDiagnosticsDisplay records the client's own display state for a document
func (m *MockClient) SetDiagnosticsDisplay(uri string, enabled bool) {
	m.display[uri] = enabled
}

// DiagnosticsDisplay reports the client's own display state for a document.
// Defaults to true: clients display their own diagnostics until told not to.
func (m *MockClient) DiagnosticsDisplay(uri string) bool {
	enabled, ok := m.display[uri]
	if !ok {
		return true
	}
	return enabled
}

// SinkCall records one delivery to a RecordingSink
type SinkCall struct {
	URI     string
	Results []checkers.Result
}

// RecordingSink captures checker results delivered by the bridge
type RecordingSink struct {
	Calls []SinkCall
}

// Record is the ResultsSink function; pass it to Bridge.SetResultsSink
func (s *RecordingSink) Record(uri string, results []checkers.Result) {
	s.Calls = append(s.Calls, SinkCall{URI: uri, Results: results})
}

// Last returns the most recent delivery, or nil
func (s *RecordingSink) Last() *SinkCall {
	if len(s.Calls) == 0 {
		return nil
	}
	return &s.Calls[len(s.Calls)-1]
}

// LastFor returns the most recent delivery for a URI, or nil
func (s *RecordingSink) LastFor(uri string) *SinkCall {
	for i := len(s.Calls) - 1; i >= 0; i-- {
		if s.Calls[i].URI == uri {
			return &s.Calls[i]
		}
	}
	return nil
}
