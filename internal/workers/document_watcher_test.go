package workers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-tw-config/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type reloadCounter struct {
	calls atomic.Int32
	err   error
}

func (r *reloadCounter) Reload(context.Context) error {
	r.calls.Add(1)
	return r.err
}

func startWatcher(t *testing.T, path string, r Reloader, debounce time.Duration) (stop func()) {
	t.Helper()

	w, err := NewDocumentWatcher(path, r, debounce, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// give fsnotify time to register the directory
	time.Sleep(50 * time.Millisecond)

	return func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("watcher did not stop")
		}
	}
}

func TestNewDocumentWatcher_Errors(t *testing.T) {
	_, err := NewDocumentWatcher("tailwind.config.js", nil, time.Second, logger.Nop())
	assert.ErrorIs(t, err, ErrNilReloader)

	_, err = NewDocumentWatcher("", &reloadCounter{}, time.Second, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestDocumentWatcher_DebouncesWrites(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "tailwind.config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"content": []}`), 0o600))

	r := &reloadCounter{}
	stop := startWatcher(t, path, r, 100*time.Millisecond)
	defer stop()

	for i := range 5 {
		require.NoError(t, os.WriteFile(path, []byte(`{"content": ["`+string(rune('a'+i))+`.html"]}`), 0o600))
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return r.calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, int32(1), r.calls.Load())
}

func TestDocumentWatcher_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "tailwind.config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"content": []}`), 0o600))

	r := &reloadCounter{}
	stop := startWatcher(t, path, r, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600))
	time.Sleep(150 * time.Millisecond)

	stop()
	assert.Zero(t, r.calls.Load())
}

func TestDocumentWatcher_ReloadErrorKeepsWatching(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "tailwind.config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"content": []}`), 0o600))

	r := &reloadCounter{err: errors.New("malformed")}
	stop := startWatcher(t, path, r, 20*time.Millisecond)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))
	require.Eventually(t, func() bool { return r.calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(`{"content": []}`), 0o600))
	require.Eventually(t, func() bool { return r.calls.Load() == 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestDocumentWatcher_MissingDirectory(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewDocumentWatcher(filepath.Join(t.TempDir(), "gone", "tailwind.config.js"), &reloadCounter{}, time.Millisecond, logger.Nop())
	require.NoError(t, err)

	err = w.Run(context.Background())
	assert.ErrorIs(t, err, ErrStartWatching)
}
