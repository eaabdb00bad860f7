package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Session is a recorded set of documents and the publishDiagnostics events
// a language server sent for them
type Session struct {
	Documents []SessionDocument `json:"documents" yaml:"documents"`
	Events    []SessionEvent    `json:"events" yaml:"events"`
}

// SessionDocument describes one open document
type SessionDocument struct {
	URI        string `json:"uri" yaml:"uri"`
	LanguageID string `json:"languageId" yaml:"languageId"`
	Content    string `json:"content" yaml:"content"`
}

// SessionEvent is one publishDiagnostics notification
type SessionEvent struct {
	URI         string              `json:"uri" yaml:"uri"`
	Diagnostics []SessionDiagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// SessionDiagnostic mirrors the protocol diagnostic with plain fields so
// sessions stay hand-editable in either format
type SessionDiagnostic struct {
	Range    SessionRange `json:"range" yaml:"range"`
	Severity *int         `json:"severity" yaml:"severity"`
	Code     string       `json:"code" yaml:"code"`
	Message  string       `json:"message" yaml:"message"`
	Tags     []int        `json:"tags" yaml:"tags"`
}

// SessionRange is a zero-indexed protocol range
type SessionRange struct {
	Start SessionPosition `json:"start" yaml:"start"`
	End   SessionPosition `json:"end" yaml:"end"`
}

// SessionPosition is a zero-indexed protocol position
type SessionPosition struct {
	Line      uint32 `json:"line" yaml:"line"`
	Character uint32 `json:"character" yaml:"character"`
}

// LoadSession reads a session file. JSON may carry comments and trailing
// commas; YAML is also accepted.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session Session
	switch ext := filepath.Ext(path); ext {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &session); err != nil {
			return nil, fmt.Errorf("failed to parse session %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &session); err != nil {
			return nil, fmt.Errorf("failed to parse session %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported session format: %s", ext)
	}

	return &session, nil
}

// Params converts the event to the protocol notification shape
func (e SessionEvent) Params() *protocol.PublishDiagnosticsParams {
	params := &protocol.PublishDiagnosticsParams{URI: e.URI}
	for _, d := range e.Diagnostics {
		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: d.Range.Start.Line, Character: d.Range.Start.Character},
				End:   protocol.Position{Line: d.Range.End.Line, Character: d.Range.End.Character},
			},
			Message: d.Message,
		}
		if d.Severity != nil {
			severity := protocol.DiagnosticSeverity(*d.Severity)
			diagnostic.Severity = &severity
		}
		if d.Code != "" {
			diagnostic.Code = &protocol.IntegerOrString{Value: d.Code}
		}
		for _, tag := range d.Tags {
			diagnostic.Tags = append(diagnostic.Tags, protocol.DiagnosticTag(tag))
		}
		params.Diagnostics = append(params.Diagnostics, diagnostic)
	}
	return params
}
