package archive

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classico-be/internal/apperr"
	"classico-be/internal/pkg/logger"
)

func buildZip(t *testing.T, entries map[string]string) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	w := zip.NewWriter(buf)
	for name, content := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf
}

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	e, err := NewExtractor(t.TempDir(), logger.NewNopLogger())
	require.NoError(t, err)
	return e
}

func TestAcceptable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		filename    string
		contentType string
		size        int64
		want        bool
	}{
		{"zip extension alone", "site.zip", "application/octet-stream", 1024, true},
		{"zip content type alone", "site.bin", "application/zip", 1024, true},
		{"windows zip content type", "site.bin", "application/x-zip-compressed", 1024, true},
		{"neither marker", "site.tar.gz", "application/gzip", 1024, false},
		{"over size ceiling", "site.zip", "application/zip", MaxArchiveSize + 1, false},
		{"empty upload", "site.zip", "application/zip", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Acceptable(tc.filename, tc.contentType, tc.size))
		})
	}
}

func TestExtractHappyPath(t *testing.T) {
	t.Parallel()

	e := newTestExtractor(t)
	buf := buildZip(t, map[string]string{
		"index.html":       "<html></html>",
		"pages/login.html": "<form></form>",
	})

	stored, err := e.Save("site.zip", buf)
	require.NoError(t, err)

	session, err := e.Extract(stored)
	require.NoError(t, err)
	require.NotEmpty(t, session.Id)

	assert.FileExists(t, filepath.Join(session.ExtractionRoot, "index.html"))
	assert.FileExists(t, filepath.Join(session.ExtractionRoot, "pages", "login.html"))

	// The staged archive is deleted once extraction finished.
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))
}

func TestExtractRejectsZipSlip(t *testing.T) {
	t.Parallel()

	uploadDir := t.TempDir()
	e, err := NewExtractor(uploadDir, logger.NewNopLogger())
	require.NoError(t, err)

	buf := buildZip(t, map[string]string{
		"ok.html":           "<html></html>",
		"../../escaped.txt": "outside",
	})

	stored, err := e.Save("evil.zip", buf)
	require.NoError(t, err)

	root := stored[:len(stored)-len(".zip")]

	_, err = e.Extract(stored)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrUnsafeArchiveEntry)

	// The whole extraction is aborted: partial tree removed, nothing
	// written outside the root.
	_, statErr := os.Stat(root)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(filepath.Join(filepath.Dir(uploadDir), "escaped.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	t.Parallel()

	e := newTestExtractor(t)

	first, err := e.Save("site.zip", bytes.NewBufferString("a"))
	require.NoError(t, err)
	second, err := e.Save("site.zip", bytes.NewBufferString("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
