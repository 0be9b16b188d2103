package testing_util

import (
	"os"
	"path/filepath"
	"testing"
)

// MkdirTemp creates a temporary directory that is removed when the test finishes.
func MkdirTemp(t *testing.T, prefix string) string {
	t.Helper()

	out, err := os.MkdirTemp(os.TempDir(), prefix)
	if err != nil {
		t.Fatalf("failed to create temporary directory: %v", err)
	}
	t.Cleanup(func() {
		_ = os.RemoveAll(out)
	})

	return out
}

// WriteFiles writes name -> contents pairs into dir and returns the paths in the given order.
func WriteFiles(t *testing.T, dir string, files ...[2]string) []string {
	t.Helper()

	paths := make([]string, 0, len(files))
	for _, file := range files {
		path := filepath.Join(dir, file[0])
		if err := os.WriteFile(path, []byte(file[1]), 0o644); err != nil {
			t.Fatalf("failed to write %q: %v", path, err)
		}
		paths = append(paths, path)
	}

	return paths
}
