package bridge

import (
	"slices"

	"bennypowers.dev/checkbridge/internal/log"
)

// Enable turns the bridge on for a document. It only proceeds when the
// language-server client manages the document; otherwise the checker
// framework's state is left untouched and false is returned.
//
// The pseudo-checker is registered, taken off the exclusion list and
// associated with the document's content mode. With Exclusive set (the
// default), or when no checker is selected for the document, it becomes the
// sole selected checker; otherwise it chains after the existing selection.
// The client's own diagnostics display goes off and the framework's display
// mode goes on, so exactly one side renders.
func (b *Bridge) Enable(uri string) bool {
	if !b.client.IsManaging(uri) {
		log.Debug("not enabling bridge for %s: client is not managing it", uri)
		return false
	}

	if err := b.registry.Register(b.checker); err != nil {
		log.Error("failed to register checker: %v", err)
		return false
	}
	b.registry.Enable(CheckerName)

	doc := b.documents.Ensure(uri)
	b.checker.AddMode(doc.LanguageID())

	selection := b.registry.Selection(uri)
	if b.GetConfig().Exclusive || len(selection) == 0 {
		b.registry.Select(uri, CheckerName)
	} else if !slices.Contains(selection, CheckerName) {
		// The existing checker still runs, in sequence, before the bridge
		b.registry.Select(uri, append(selection, CheckerName)...)
	}

	b.client.SetDiagnosticsDisplay(uri, false)
	b.registry.SetDisplayMode(uri, true)

	log.Info("bridge enabled for %s", uri)
	return true
}

// Disable turns the bridge off for a document, reversing Enable: the
// client's own display comes back, the selection clears, the pseudo-checker
// goes on the exclusion list, the document's cache empties, and a deferred
// re-check is queued so stale results clear from the display. Disabling a
// document the bridge was never enabled for is a no-op.
func (b *Bridge) Disable(uri string) {
	if !b.registry.DisplayMode(uri) {
		log.Debug("not disabling bridge for %s: it was not enabled", uri)
		return
	}

	b.client.SetDiagnosticsDisplay(uri, true)
	b.registry.ClearSelection(uri)
	b.registry.SetDisplayMode(uri, false)
	b.registry.Disable(CheckerName)

	if doc := b.documents.Get(uri); doc != nil {
		doc.ClearDiagnostics()
	}
	b.registry.RequestDeferredCheck(uri)

	log.Info("bridge disabled for %s", uri)
}

// EnableGlobally turns on automatic bridging: documents the client starts
// managing get the bridge enabled, documents it stops managing get it
// disabled
func (b *Bridge) EnableGlobally() {
	b.mu.Lock()
	b.global = true
	b.mu.Unlock()
}

// DisableGlobally turns automatic bridging off, disables the bridge for
// every document it was enabled on, and removes the pseudo-checker from the
// framework's checker list entirely
func (b *Bridge) DisableGlobally() {
	b.mu.Lock()
	b.global = false
	b.mu.Unlock()

	for _, doc := range b.documents.GetAll() {
		if b.registry.DisplayMode(doc.URI()) {
			b.Disable(doc.URI())
		}
	}
	b.registry.Unregister(CheckerName)
}

// GlobalEnabled reports whether automatic bridging is on
func (b *Bridge) GlobalEnabled() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.global
}

// DidStartManaging is the hook the client host calls when it starts managing
// a document
func (b *Bridge) DidStartManaging(uri string) {
	if b.GlobalEnabled() {
		b.Enable(uri)
	}
}

// DidStopManaging is the hook the client host calls when it stops managing a
// document
func (b *Bridge) DidStopManaging(uri string) {
	if b.GlobalEnabled() {
		b.Disable(uri)
	}
}
