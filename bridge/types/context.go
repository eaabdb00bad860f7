package types

import (
	"bennypowers.dev/checkbridge/internal/checkers"
	"bennypowers.dev/checkbridge/internal/documents"
)

// Client is the surface of the language-server client host the bridge
// drives. The client owns server discovery, requests and connections; the
// bridge only needs to know which documents it manages and to toggle its
// built-in diagnostics display.
type Client interface {
	// IsManaging reports whether the client actively manages the document
	IsManaging(uri string) bool

	// SetDiagnosticsDisplay turns the client's own diagnostics display on or
	// off for a document, so the bridge and the client never both render
	SetDiagnosticsDisplay(uri string, enabled bool)
}

// BridgeContext provides all dependencies needed by the bridge's handlers.
// This unified context enables dependency injection for testing.
type BridgeContext interface {
	// Document operations
	Document(uri string) *documents.Document
	DocumentManager() *documents.Manager

	// Checker framework operations
	Registry() *checkers.Registry

	// Host client
	Client() Client

	// Configuration
	GetConfig() Config
	SetConfig(config Config)
}
