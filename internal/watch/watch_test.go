package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherBatchesChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, Options{Suffix: ".place", Debounce: 50 * time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	batches := make(chan []string, 4)
	go func() {
		_ = w.Run(ctx, func(paths []string) { batches <- paths })
	}()

	a := filepath.Join(dir, "a.place")
	b := filepath.Join(dir, "b.place")
	for _, p := range []string{a, b, filepath.Join(dir, "ignored.txt")} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	seen := map[string]bool{}
	for !seen[a] || !seen[b] {
		select {
		case paths := <-batches:
			for _, p := range paths {
				if filepath.Ext(p) != ".place" {
					t.Errorf("unexpected path in batch: %s", p)
				}
				seen[p] = true
			}
		case <-ctx.Done():
			t.Fatalf("timed out, seen %v", seen)
		}
	}
}

func TestWatcherStopsOnCancel(t *testing.T) {
	w, err := New(t.TempDir(), Options{Suffix: ".place"})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.Run(ctx, func([]string) { t.Error("unexpected batch") }); err != context.Canceled {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
}
