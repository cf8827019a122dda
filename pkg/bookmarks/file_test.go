package bookmarks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/feileberlin/krwl.in-sub005/pkg/errors"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestFileStore_ToggleRoundtrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	ok, err := store.IsBookmarked(ctx, "evt-1")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("IsBookmarked() on fresh store = true, want false")
	}

	now, err := store.Toggle(ctx, "evt-1")
	if err != nil {
		t.Fatal(err)
	}
	if !now {
		t.Error("Toggle() = false, want true")
	}

	now, err = store.Toggle(ctx, "evt-1")
	if err != nil {
		t.Fatal(err)
	}
	if now {
		t.Error("second Toggle() = true, want false")
	}
}

func TestFileStore_SetAndAll(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.Set(ctx, "evt-1", true); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(ctx, "evt-2", true); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(ctx, "evt-1", false); err != nil {
		t.Fatal(err)
	}

	all, err := store.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || !all["evt-2"] {
		t.Errorf("All() = %v, want only evt-2", all)
	}
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Set(ctx, "evt-1", true); err != nil {
		t.Fatal(err)
	}

	second, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := second.IsBookmarked(ctx, "evt-1")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("bookmark did not survive a store restart")
	}
}

func TestFileStore_CorruptFileYieldsEmptySet(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "bookmarks.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	all, err := store.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Errorf("All() on corrupt file = %v, want empty", all)
	}
}

func TestFileStore_RejectsInvalidIDs(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	tests := []string{"", "../escape", "has/slash", "bad\x00byte"}
	for _, id := range tests {
		if err := store.Set(ctx, id, true); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Set(%q) error = %v, want INVALID_INPUT", id, err)
		}
	}
}
