package bridge

import (
	"bennypowers.dev/checkbridge/internal/diagnostics"
	"bennypowers.dev/checkbridge/internal/log"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// HandlePublishDiagnostics receives a textDocument/publishDiagnostics
// notification from the language-server client. Fire-and-forget: the
// document's cache is replaced wholesale and, when the framework's display
// mode is active for the document, a check is triggered. Documents that
// cannot be resolved are silently dropped.
func (b *Bridge) HandlePublishDiagnostics(params *protocol.PublishDiagnosticsParams) {
	if params == nil || params.URI == "" {
		log.Debug("dropping publishDiagnostics with no document")
		return
	}

	uri := params.URI
	doc := b.documents.Ensure(uri)

	converted := diagnostics.FromProtocolAll(params.Diagnostics, doc)
	doc.SetDiagnostics(converted)
	log.Debug("cached %d diagnostics for %s", len(converted), uri)

	if b.registry.DisplayMode(uri) {
		b.CheckNow(uri)
	}
}
