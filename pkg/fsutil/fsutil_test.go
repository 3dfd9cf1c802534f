package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/msgparse/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads file content and metadata", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "message.txt")
		content := []byte("hello delta.chat")

		if err := os.WriteFile(path, content, 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, info, err := fsutil.ReadFile(context.Background(), path, 0)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
		if info.Path != path {
			t.Errorf("Path = %q, want %q", info.Path, path)
		}
		if info.Size != int64(len(content)) {
			t.Errorf("Size = %d, want %d", info.Size, len(content))
		}

		var zeroHash [32]byte
		if info.Hash == zeroHash {
			t.Error("Hash should not be zero")
		}
	})

	t.Run("identical content has identical hash", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		first := filepath.Join(dir, "a.txt")
		second := filepath.Join(dir, "b.txt")
		for _, path := range []string{first, second} {
			if err := os.WriteFile(path, []byte("same"), 0o644); err != nil {
				t.Fatalf("setup: %v", err)
			}
		}

		_, a, err := fsutil.ReadFile(context.Background(), first, 0)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		_, b, err := fsutil.ReadFile(context.Background(), second, 0)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if a.Hash != b.Hash {
			t.Error("hashes differ for identical content")
		}
	})

	t.Run("returns ErrNotFound for missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), "/nonexistent/path/file.txt", 0)
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("returns ErrIsDirectory for directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir(), 0)
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Fatalf("error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("returns ErrTooLarge above limit", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "big.txt")
		if err := os.WriteFile(path, []byte("0123456789"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, _, err := fsutil.ReadFile(context.Background(), path, 4)
		if !errors.Is(err, fsutil.ErrTooLarge) {
			t.Fatalf("error = %v, want ErrTooLarge", err)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := fsutil.ReadFile(ctx, "whatever.txt", 0)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("error = %v, want context.Canceled", err)
		}
	})
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if !fsutil.Exists(path) {
		t.Error("Exists(file) = false, want true")
	}
	if !fsutil.Exists(dir) {
		t.Error("Exists(dir) = false, want true")
	}
	if fsutil.Exists(filepath.Join(dir, "missing.txt")) {
		t.Error("Exists(missing) = true, want false")
	}
}
