// Command checkbridge replays a recorded session of publishDiagnostics
// events through the bridge and prints the checker results, for inspecting
// how a language server's diagnostics will surface in the checker framework.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"bennypowers.dev/checkbridge/bridge"
	"bennypowers.dev/checkbridge/bridge/types"
	"bennypowers.dev/checkbridge/internal/log"
	"bennypowers.dev/checkbridge/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to a checkbridge config file (json, jsonc or yaml)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetFullVersion())
		return
	}

	if *verbose {
		log.SetLevel(log.LevelDebug)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: checkbridge [flags] <session file>")
		os.Exit(2)
	}

	config := types.DefaultConfig()
	if *configPath != "" {
		loaded, err := types.LoadConfig(*configPath)
		if err != nil {
			log.Error("Failed to load config: %v", err)
			os.Exit(1)
		}
		config = loaded
	}

	session, err := LoadSession(flag.Arg(0))
	if err != nil {
		log.Error("Failed to load session: %v", err)
		os.Exit(1)
	}

	if err := Replay(session, config, os.Stdout); err != nil {
		log.Error("Replay failed: %v", err)
		os.Exit(1)
	}
}

// Replay runs a session through a fresh bridge and writes the rendered
// checker results to w
func Replay(session *Session, config types.Config, w io.Writer) error {
	client := newReplayClient()
	b := bridge.NewWithConfig(client, config)

	for _, doc := range session.Documents {
		client.Manage(doc.URI)
		if err := b.DocumentManager().DidOpen(doc.URI, doc.LanguageID, 1, doc.Content); err != nil {
			return fmt.Errorf("failed to open %s: %w", doc.URI, err)
		}
	}

	b.EnableGlobally()
	for _, doc := range session.Documents {
		b.DidStartManaging(doc.URI)
	}

	for _, event := range session.Events {
		b.HandlePublishDiagnostics(event.Params())
	}

	for _, doc := range session.Documents {
		for _, r := range b.CheckNow(doc.URI) {
			fmt.Fprintf(w, "%s:%d:%d: %s: %s", r.Filename, r.Line, r.Column,
				config.RenderLevel(r.Level, r.Tags), r.Message)
			if r.ID != "" {
				fmt.Fprintf(w, " [%s]", r.ID)
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}

// replayClient is a types.Client over a fixed set of session documents
type replayClient struct {
	managed map[string]bool
}

func newReplayClient() *replayClient {
	return &replayClient{managed: make(map[string]bool)}
}

func (c *replayClient) Manage(uri string) {
	c.managed[uri] = true
}

func (c *replayClient) IsManaging(uri string) bool {
	return c.managed[uri]
}

func (c *replayClient) SetDiagnosticsDisplay(uri string, enabled bool) {
	// A replay has no live client display to toggle
}
