package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/quantmind-br/contentpack/internal/domain"
)

type build struct {
	result *Result
	err    error
}

// replaceFile swaps in new content by rename, the way editors save
func replaceFile(t *testing.T, path, content string) {
	t.Helper()
	tmp := filepath.Join(t.TempDir(), filepath.Base(path))
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0644))
	require.NoError(t, os.Rename(tmp, path))
}

// waitBuild returns the next build reported by Watch
func waitBuild(t *testing.T, builds <-chan build) build {
	t.Helper()
	select {
	case b := <-builds:
		return b
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a build")
		return build{}
	}
}

func TestOrchestrator_Watch(t *testing.T) {
	defer goleak.VerifyNone(t)

	env := newTestEnv(t, testRegistry)
	orch := env.orchestrator(t, domain.CommonOptions{})

	builds := make(chan build, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- orch.Watch(ctx, WatchOptions{
			Debounce: 20 * time.Millisecond,
			OnBuild: func(r *Result, err error) {
				builds <- build{result: r, err: err}
			},
		})
	}()

	first := waitBuild(t, builds)
	require.NoError(t, first.err)
	assert.Equal(t, 5, first.result.Summary.Documents)

	updated := `{
  "semester_1_c": {"title": "C Programming", "source": "semester1/c/index.html"},
  "semester_1_c_notes": {"title": "C Notes", "source": "semester1/c/notes/notes.html"},
  "semester_1_c_notes_unit1": {"title": "Unit 1", "source": "semester1/c/notes/unit1.html"},
  "semester_1_c_notes_unit2": {"title": "Unit 2", "source": "semester1/c/notes/unit2.html"},
  "semester_1_c_notes_unit3": {"title": "Unit 3", "source": "semester1/c/notes/unit3.html"},
  "careers": {"source": "careers.html"}
}`
	replaceFile(t, env.cfg.Registry.Path, updated)

	second := waitBuild(t, builds)
	require.NoError(t, second.err)
	assert.Equal(t, 6, second.result.Summary.Documents)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}

	logs := env.logs.String()
	assert.Contains(t, logs, "Watching registry for changes")
	assert.Contains(t, logs, "Stopped watching registry")
}

func TestOrchestrator_Watch_BrokenRegistryKeepsWatching(t *testing.T) {
	env := newTestEnv(t, `{"a": `)
	orch := env.orchestrator(t, domain.CommonOptions{})

	builds := make(chan build, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- orch.Watch(ctx, WatchOptions{
			Debounce: 20 * time.Millisecond,
			OnBuild: func(r *Result, err error) {
				builds <- build{result: r, err: err}
			},
		})
	}()

	first := waitBuild(t, builds)
	assert.Error(t, first.err)

	replaceFile(t, env.cfg.Registry.Path, testRegistry)

	second := waitBuild(t, builds)
	require.NoError(t, second.err)
	assert.True(t, second.result.Written)

	cancel()
	assert.NoError(t, <-done)
	assert.Contains(t, env.logs.String(), "Manifest build failed")
}

func TestOrchestrator_Watch_MissingDirectory(t *testing.T) {
	env := newTestEnv(t, testRegistry)
	env.cfg.Registry.Path = filepath.Join(t.TempDir(), "absent", "doc_registry.json")
	orch := env.orchestrator(t, domain.CommonOptions{})

	err := orch.Watch(context.Background(), WatchOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}

func TestIsRegistryChange(t *testing.T) {
	path := filepath.Join(string(filepath.Separator), "site", "content_build", "doc_registry.json")

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: path, Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: path, Op: fsnotify.Create}, true},
		{"chmod", fsnotify.Event{Name: path, Op: fsnotify.Chmod}, false},
		{"remove", fsnotify.Event{Name: path, Op: fsnotify.Remove}, false},
		{"sibling file", fsnotify.Event{Name: path + ".tmp", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRegistryChange(tt.event, path))
		})
	}
}
