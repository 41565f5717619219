package formdetect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classico-be/internal/pkg/logger"
)

func TestMarkupFilesRecursiveFiltering(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pages", "deep"), 0o755))

	files := map[string]bool{
		"index.html":           true,
		"pages/about.htm":      true,
		"pages/deep/form.HTML": true,
		"style.css":            false,
		"pages/app.js":         false,
	}
	for name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("<html></html>"), 0o644))
	}

	found := markupFiles(root, logger.NewNopLogger())

	var rel []string
	for _, f := range found {
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rel = append(rel, r)
	}

	assert.Len(t, rel, 3)
	assert.Contains(t, rel, "index.html")
	assert.Contains(t, rel, filepath.Join("pages", "about.htm"))
	assert.Contains(t, rel, filepath.Join("pages", "deep", "form.HTML"))
}

func TestMarkupFilesSkipsSymlinks(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "real.html"), []byte("<html></html>"), 0o644))

	// A symlink cycle back to the root must not hang the walk.
	if err := os.Symlink(root, filepath.Join(root, "loop")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	found := markupFiles(root, logger.NewNopLogger())
	assert.Len(t, found, 1)
}

func TestDetectDirectoryUnreadableFileDoesNotAbort(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	good := `<form><input name="email"><input type="password" name="password"></form>`
	require.NoError(t, os.WriteFile(filepath.Join(root, "good.html"), []byte(good), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "locked.html"), []byte(good), 0o000))

	forms := newDetector().DetectDirectory(root)
	assert.NotEmpty(t, forms)
}
