package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteDocument creates a file with the given content, creating parent
// directories as needed.
func WriteDocument(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
