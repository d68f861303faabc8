package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitEvent(t *testing.T, w *Watcher, timeout time.Duration) (string, bool) {
	t.Helper()
	select {
	case name := <-w.Events:
		return name, true
	case <-time.After(timeout):
		return "", false
	}
}

func TestWatcherReportsWatchedFile(t *testing.T) {
	dir := t.TempDir()
	sheet := filepath.Join(dir, "sheet.png")
	if err := os.WriteFile(sheet, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(DefaultDebounce, sheet)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.png"), []byte("b"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(sheet, []byte("c"), 0o644); err != nil {
		t.Fatal(err)
	}

	name, ok := waitEvent(t, w, 2*time.Second)
	if !ok {
		t.Fatalf("no event for %s", sheet)
	}
	want, _ := filepath.Abs(sheet)
	if name != want {
		t.Fatalf("event for %q, want %q", name, want)
	}
}

func TestWatcherDebounces(t *testing.T) {
	dir := t.TempDir()
	sheet := filepath.Join(dir, "sheet.png")
	if err := os.WriteFile(sheet, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(200*time.Millisecond, sheet)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(sheet, []byte{byte(i)}, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if _, ok := waitEvent(t, w, 2*time.Second); !ok {
		t.Fatalf("expected one event")
	}
	if name, ok := waitEvent(t, w, 400*time.Millisecond); ok {
		t.Fatalf("unexpected second event for %s", name)
	}
}

func TestWatcherReportsAfterLastWrite(t *testing.T) {
	dir := t.TempDir()
	sheet := filepath.Join(dir, "sheet.png")
	if err := os.WriteFile(sheet, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	debounce := 100 * time.Millisecond
	w, err := New(debounce, sheet)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	// An export that lands in two chunks inside one debounce window.
	if err := os.WriteFile(sheet, []byte("part"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(30 * time.Millisecond)
	f, err := os.OpenFile(sheet, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	lastWrite := time.Now()
	if _, err := f.WriteString("-final"); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	if _, ok := waitEvent(t, w, 2*time.Second); !ok {
		t.Fatalf("no event after the final write")
	}
	if elapsed := time.Since(lastWrite); elapsed < debounce {
		t.Fatalf("event arrived %v after the final write, before the %v window closed", elapsed, debounce)
	}
	data, err := os.ReadFile(sheet)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "part-final" {
		t.Fatalf("file content at event = %q", data)
	}
	if name, ok := waitEvent(t, w, 300*time.Millisecond); ok {
		t.Fatalf("unexpected second event for %s", name)
	}
}

func TestCloseClosesChannels(t *testing.T) {
	dir := t.TempDir()
	w, err := New(DefaultDebounce, filepath.Join(dir, "x.png"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatalf("Events should be closed")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestNewMissingDirectory(t *testing.T) {
	if _, err := New(DefaultDebounce, filepath.Join(t.TempDir(), "nope", "x.png")); err == nil {
		t.Fatalf("expected error for a missing directory")
	}
}
