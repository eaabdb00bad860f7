package checkers_test

import (
	"testing"

	"bennypowers.dev/checkbridge/internal/checkers"
	"bennypowers.dev/checkbridge/internal/diagnostics"
	"bennypowers.dev/checkbridge/internal/documents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChecker reports canned results and counts its runs
type fakeChecker struct {
	name       string
	modes      []string
	applicable bool
	status     checkers.Status
	results    []checkers.Result
	runs       int
}

func (f *fakeChecker) Name() string    { return f.name }
func (f *fakeChecker) Modes() []string { return f.modes }

func (f *fakeChecker) IsApplicable(doc *documents.Document) bool { return f.applicable }

func (f *fakeChecker) Start(doc *documents.Document, report checkers.ReportFunc) {
	f.runs++
	report(f.status, f.results)
}

func newFake(name string, msgs ...string) *fakeChecker {
	f := &fakeChecker{name: name, applicable: true, status: checkers.StatusFinished}
	for _, m := range msgs {
		f.results = append(f.results, checkers.Result{
			Checker: name,
			Level:   diagnostics.SeverityError,
			Message: m,
			Line:    1,
			Column:  1,
		})
	}
	return f
}

func goDoc(uri string) *documents.Document {
	return documents.NewDocument(uri, "go", 1, "package main\n")
}

func TestRegistryRegistration(t *testing.T) {
	t.Run("registers in order", func(t *testing.T) {
		r := checkers.NewRegistry()
		require.NoError(t, r.Register(newFake("b")))
		require.NoError(t, r.Register(newFake("a")))
		assert.Equal(t, []string{"b", "a"}, r.Names())
		assert.True(t, r.Registered("a"))
	})

	t.Run("rejects nameless checker", func(t *testing.T) {
		r := checkers.NewRegistry()
		assert.Error(t, r.Register(newFake("")))
		assert.Error(t, r.Register(nil))
	})

	t.Run("unregister removes checker and selection references", func(t *testing.T) {
		r := checkers.NewRegistry()
		require.NoError(t, r.Register(newFake("a")))
		require.NoError(t, r.Register(newFake("b")))
		r.Select("file:///x.go", "a", "b")

		r.Unregister("a")
		assert.False(t, r.Registered("a"))
		assert.Equal(t, []string{"b"}, r.Selection("file:///x.go"))
	})
}

func TestRegistryDisable(t *testing.T) {
	r := checkers.NewRegistry()
	c := newFake("lint", "oops")
	require.NoError(t, r.Register(c))

	r.Disable("lint")
	assert.True(t, r.Disabled("lint"))
	assert.Empty(t, r.Run(goDoc("file:///x.go")))
	assert.Equal(t, 0, c.runs)

	r.Enable("lint")
	assert.False(t, r.Disabled("lint"))
	assert.Len(t, r.Run(goDoc("file:///x.go")), 1)
}

func TestRegistryRun(t *testing.T) {
	t.Run("runs selection chain in order", func(t *testing.T) {
		r := checkers.NewRegistry()
		require.NoError(t, r.Register(newFake("first", "f1")))
		require.NoError(t, r.Register(newFake("second", "s1")))
		r.Select("file:///x.go", "second", "first")

		results := r.Run(goDoc("file:///x.go"))
		require.Len(t, results, 2)
		assert.Equal(t, "s1", results[0].Message)
		assert.Equal(t, "f1", results[1].Message)
	})

	t.Run("no selection runs all applicable checkers in registration order", func(t *testing.T) {
		r := checkers.NewRegistry()
		require.NoError(t, r.Register(newFake("one", "m1")))
		require.NoError(t, r.Register(newFake("two", "m2")))

		results := r.Run(goDoc("file:///x.go"))
		require.Len(t, results, 2)
		assert.Equal(t, "m1", results[0].Message)
		assert.Equal(t, "m2", results[1].Message)
	})

	t.Run("skips inapplicable checkers", func(t *testing.T) {
		r := checkers.NewRegistry()
		c := newFake("gone", "nope")
		c.applicable = false
		require.NoError(t, r.Register(c))

		assert.Empty(t, r.Run(goDoc("file:///x.go")))
		assert.Equal(t, 0, c.runs)
	})

	t.Run("errored status contributes no results", func(t *testing.T) {
		r := checkers.NewRegistry()
		c := newFake("broken", "partial")
		c.status = checkers.StatusErrored
		require.NoError(t, r.Register(c))

		assert.Empty(t, r.Run(goDoc("file:///x.go")))
		assert.Equal(t, 1, c.runs)
	})

	t.Run("nil document runs nothing", func(t *testing.T) {
		r := checkers.NewRegistry()
		assert.Nil(t, r.Run(nil))
	})
}

func TestModeMatches(t *testing.T) {
	doc := documents.NewDocument("file:///home/user/project/main.go", "go", 1, "")

	tests := []struct {
		name  string
		modes []string
		want  bool
	}{
		{"empty modes match everything", nil, true},
		{"language id", []string{"go"}, true},
		{"filename glob", []string{"*.go"}, true},
		{"path glob", []string{"**/*.go"}, true},
		{"no match", []string{"rust", "*.rs"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkers.ModeMatches(tt.modes, doc))
		})
	}
}

func TestRegistryDisplayMode(t *testing.T) {
	r := checkers.NewRegistry()
	assert.False(t, r.DisplayMode("file:///x.go"))

	r.SetDisplayMode("file:///x.go", true)
	assert.True(t, r.DisplayMode("file:///x.go"))

	r.SetDisplayMode("file:///x.go", false)
	assert.False(t, r.DisplayMode("file:///x.go"))
}

func TestRegistryDeferredChecks(t *testing.T) {
	t.Run("queues once per document and flushes in order", func(t *testing.T) {
		r := checkers.NewRegistry()
		require.NoError(t, r.Register(newFake("lint", "found")))

		r.RequestDeferredCheck("file:///a.go")
		r.RequestDeferredCheck("file:///b.go")
		r.RequestDeferredCheck("file:///a.go")
		assert.Equal(t, []string{"file:///a.go", "file:///b.go"}, r.PendingChecks())

		docs := map[string]*documents.Document{
			"file:///a.go": goDoc("file:///a.go"),
		}
		out := r.Flush(func(uri string) *documents.Document { return docs[uri] })

		require.Len(t, out, 2)
		assert.Len(t, out["file:///a.go"], 1)
		assert.Empty(t, out["file:///b.go"], "unresolvable document flushes empty")
		assert.Empty(t, r.PendingChecks())
	})
}

func TestRegistryTeardown(t *testing.T) {
	r := checkers.NewRegistry()
	require.NoError(t, r.Register(newFake("lint")))
	r.Disable("other")
	r.Select("file:///x.go", "lint")
	r.SetDisplayMode("file:///x.go", true)
	r.RequestDeferredCheck("file:///x.go")

	r.Teardown()

	assert.Empty(t, r.Names())
	assert.False(t, r.Disabled("other"))
	assert.Nil(t, r.Selection("file:///x.go"))
	assert.False(t, r.DisplayMode("file:///x.go"))
	assert.Empty(t, r.PendingChecks())
}
