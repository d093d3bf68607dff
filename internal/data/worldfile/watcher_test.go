package worldfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Write(t *testing.T) {
	t.Parallel()

	path := writeWorld(t, "avalon.yaml", avalon)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close() //nolint:errcheck

	require.NoError(t, os.WriteFile(path, []byte("name: Avalon\n"), 0o644))

	select {
	case event := <-w.Events():
		assert.Equal(t, w.Path(), event.Path)
		assert.False(t, event.Timestamp.IsZero())
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestWatcher_AtomicReplace(t *testing.T) {
	t.Parallel()

	path := writeWorld(t, "avalon.yaml", avalon)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close() //nolint:errcheck

	tmp := path + ".swp"
	require.NoError(t, os.WriteFile(tmp, []byte("name: Replaced\n"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case <-w.Events():
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for event")
	}

	store, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Replaced", store.Name())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	t.Parallel()

	path := writeWorld(t, "avalon.yaml", avalon)
	dir := filepath.Dir(path)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close() //nolint:errcheck

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(path+"_meta", []byte("ver 1.1\n"), 0o644))

	select {
	case event := <-w.Events():
		t.Fatalf("unexpected event for %s", event.Path)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_Debounce(t *testing.T) {
	t.Parallel()

	path := writeWorld(t, "avalon.yaml", avalon)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close() //nolint:errcheck

	// Rapidly write to the same file multiple times
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte(avalon), 0o644))
		time.Sleep(10 * time.Millisecond) // Less than debounce delay
	}

	timeout := time.After(300 * time.Millisecond)
	eventCount := 0
	for {
		select {
		case <-w.Events():
			eventCount++
		case <-timeout:
			assert.Equal(t, 1, eventCount, "should receive exactly one debounced event")
			return
		}
	}
}

func TestWatcher_CloseClosesEvents(t *testing.T) {
	t.Parallel()

	w, err := NewWatcher(writeWorld(t, "avalon.yaml", avalon))
	require.NoError(t, err)

	require.NoError(t, w.Close())

	_, ok := <-w.Events()
	assert.False(t, ok)
}
