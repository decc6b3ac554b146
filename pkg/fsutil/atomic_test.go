package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/cxform/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		seed    string // existing file content, "" for none
		content string
	}{
		{name: "new file", content: "#pragma once\n"},
		{name: "overwrites existing file", seed: "old header\n", content: "namespace v { }\n"},
		{name: "empty content", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "out.hpp")
			if tt.seed != "" {
				if err := os.WriteFile(path, []byte(tt.seed), 0o644); err != nil {
					t.Fatalf("setup: %v", err)
				}
			}

			if err := fsutil.WriteAtomic(context.Background(), path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteAtomic() error = %v", err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read back: %v", err)
			}
			if string(got) != tt.content {
				t.Errorf("content = %q, want %q", got, tt.content)
			}
		})
	}
}

func TestWriteAtomic_Mode(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		mode os.FileMode
		want os.FileMode
	}{
		{name: "explicit mode", mode: 0o600, want: 0o600},
		{name: "zero mode falls back to default", mode: 0, want: fsutil.DefaultFileMode},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "out.hpp")
			if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), tt.mode); err != nil {
				t.Fatalf("WriteAtomic() error = %v", err)
			}

			stat, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stat: %v", err)
			}
			if perm := stat.Mode().Perm(); perm != tt.want {
				t.Errorf("mode = %o, want %o", perm, tt.want)
			}
		})
	}
}

func TestWriteAtomic_CancelledContext(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.hpp")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := fsutil.WriteAtomic(ctx, path, []byte("x"), 0o644); err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should not have been created")
	}
}

func TestWriteAtomic_NoTempFileLeftOnError(t *testing.T) {
	t.Parallel()

	// Missing parent directory makes CreateTemp fail.
	dir := t.TempDir()
	path := filepath.Join(dir, "absent", "out.hpp")

	if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0o644); err == nil {
		t.Fatal("expected error for invalid path")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp.") {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		seed        string
		seedExists  bool
		content     string
		wantChanged bool
	}{
		{name: "missing file is written", content: "a\n", wantChanged: true},
		{name: "identical content is skipped", seed: "a\n", seedExists: true, content: "a\n", wantChanged: false},
		{name: "different content is written", seed: "a\n", seedExists: true, content: "b\n", wantChanged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "out.hpp")
			if tt.seedExists {
				if err := os.WriteFile(path, []byte(tt.seed), 0o644); err != nil {
					t.Fatalf("setup: %v", err)
				}
			}

			changed, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte(tt.content), 0o644)
			if err != nil {
				t.Fatalf("WriteAtomicIfChanged() error = %v", err)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read back: %v", err)
			}
			if string(got) != tt.content {
				t.Errorf("content = %q, want %q", got, tt.content)
			}
		})
	}
}

func TestWriteAtomicIfChanged_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fsutil.WriteAtomicIfChanged(ctx, filepath.Join(t.TempDir(), "out.hpp"), []byte("x"), 0o644)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
