package bridge_test

import (
	"path/filepath"
	"testing"

	"bennypowers.dev/checkbridge/bridge"
	"bennypowers.dev/checkbridge/bridge/testutil"
	"bennypowers.dev/checkbridge/internal/checkers"
	"bennypowers.dev/checkbridge/internal/diagnostics"
	"bennypowers.dev/checkbridge/internal/documents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startChecker(t *testing.T, c *bridge.Checker, doc *documents.Document) (checkers.Status, []checkers.Result) {
	t.Helper()
	var gotStatus checkers.Status
	var gotResults []checkers.Result
	calls := 0
	c.Start(doc, func(status checkers.Status, results []checkers.Result) {
		calls++
		gotStatus = status
		gotResults = results
	})
	require.Equal(t, 1, calls, "checker reports exactly once")
	return gotStatus, gotResults
}

func TestCheckerIsApplicable(t *testing.T) {
	const uri = "file:///project/foo.go"

	t.Run("true when the client manages the document", func(t *testing.T) {
		b := bridge.New(testutil.NewMockClient(uri))
		doc := b.DocumentManager().Ensure(uri)
		assert.True(t, b.Checker().IsApplicable(doc))
	})

	t.Run("false when the client does not manage the document", func(t *testing.T) {
		b := bridge.New(testutil.NewMockClient())
		doc := b.DocumentManager().Ensure(uri)
		assert.False(t, b.Checker().IsApplicable(doc))
	})

	t.Run("false for nil document", func(t *testing.T) {
		b := bridge.New(testutil.NewMockClient(uri))
		assert.False(t, b.Checker().IsApplicable(nil))
	})
}

func TestCheckerModes(t *testing.T) {
	b := bridge.New(testutil.NewMockClient())
	c := b.Checker()

	assert.Empty(t, c.Modes())

	c.AddMode("go")
	c.AddMode("python")
	c.AddMode("go")
	c.AddMode("")
	assert.Equal(t, []string{"go", "python"}, c.Modes())
}

func TestCheckerStart(t *testing.T) {
	const uri = "file:///project/foo.go"

	t.Run("converts cached diagnostics to results", func(t *testing.T) {
		b := bridge.New(testutil.NewMockClient(uri))
		doc := b.DocumentManager().Ensure(uri)
		doc.SetDiagnostics([]diagnostics.Diagnostic{
			{
				Start:    diagnostics.Position{Line: 5, Column: 3},
				End:      diagnostics.Position{Line: 5, Column: 11},
				Severity: diagnostics.SeverityError,
				Code:     "undeclared",
				Message:  "undefined: x",
			},
			{
				Start:    diagnostics.Position{Line: 9, Column: 1},
				End:      diagnostics.Position{Line: 9, Column: 4},
				Severity: diagnostics.SeverityWarning,
				Message:  "unused import",
				Tags:     []diagnostics.Tag{diagnostics.TagUnnecessary},
			},
		})

		status, results := startChecker(t, b.Checker(), doc)

		assert.Equal(t, checkers.StatusFinished, status)
		require.Len(t, results, 2)

		first := results[0]
		assert.Equal(t, bridge.CheckerName, first.Checker)
		assert.Equal(t, filepath.FromSlash("/project/foo.go"), first.Filename)
		assert.Same(t, doc, first.Buffer)
		assert.Equal(t, diagnostics.SeverityError, first.Level)
		assert.Equal(t, "undefined: x", first.Message)
		assert.Equal(t, "undeclared", first.ID)
		assert.Equal(t, 5, first.Line)
		assert.Equal(t, 3, first.Column)
		assert.Equal(t, 5, first.EndLine)
		assert.Equal(t, 11, first.EndColumn)
		assert.Empty(t, first.Tags)

		assert.Equal(t, diagnostics.SeverityWarning, results[1].Level)
		assert.Equal(t, []diagnostics.Tag{diagnostics.TagUnnecessary}, results[1].Tags,
			"tags travel with the result for the host to render")
	})

	t.Run("empty cache still finishes", func(t *testing.T) {
		b := bridge.New(testutil.NewMockClient(uri))
		doc := b.DocumentManager().Ensure(uri)

		status, results := startChecker(t, b.Checker(), doc)
		assert.Equal(t, checkers.StatusFinished, status)
		assert.Empty(t, results)
	})
}
