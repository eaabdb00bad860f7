package bridge

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Handler adapters for hosts that drive the bridge from a glsp connection.
// Each returns a function matching glsp's notification handler shape.

// PublishDiagnosticsHandler adapts HandlePublishDiagnostics for a glsp
// connection. Always returns nil: publishDiagnostics is fire-and-forget.
func PublishDiagnosticsHandler(b *Bridge) func(context *glsp.Context, params *protocol.PublishDiagnosticsParams) error {
	return func(context *glsp.Context, params *protocol.PublishDiagnosticsParams) error {
		b.HandlePublishDiagnostics(params)
		return nil
	}
}

// DidOpenHandler tracks opened documents so diagnostic columns can be
// converted with the document's actual text
func DidOpenHandler(b *Bridge) func(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	return func(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
		if err := b.documents.DidOpen(params.TextDocument.URI, params.TextDocument.LanguageID,
			int(params.TextDocument.Version), params.TextDocument.Text); err != nil {
			return err
		}
		b.DidStartManaging(params.TextDocument.URI)
		return nil
	}
}

// DidChangeHandler keeps tracked document content current
func DidChangeHandler(b *Bridge) func(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	return func(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
		// Convert any[] to proper type, filtering out invalid entries
		changes := make([]protocol.TextDocumentContentChangeEvent, 0, len(params.ContentChanges))
		for _, change := range params.ContentChanges {
			if changeEvent, ok := change.(protocol.TextDocumentContentChangeEvent); ok {
				changes = append(changes, changeEvent)
			}
		}
		return b.documents.DidChange(params.TextDocument.URI, int(params.TextDocument.Version), changes)
	}
}

// DidCloseHandler drops the document and its diagnostics cache
func DidCloseHandler(b *Bridge) func(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return func(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
		b.DidStopManaging(params.TextDocument.URI)
		return b.documents.DidClose(params.TextDocument.URI)
	}
}
