// Package archive stages uploaded zip bundles and expands them into
// isolated per-upload extraction directories.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"classico-be/internal/apperr"
	"classico-be/internal/entity"
	"classico-be/internal/pkg/logger"
)

const MaxArchiveSize = 25 * 1024 * 1024 // 25 MiB

type Extractor struct {
	uploadDir string
	log       logger.ILogger
}

func NewExtractor(uploadDir string, log logger.ILogger) (*Extractor, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Extractor{uploadDir: uploadDir, log: log}, nil
}

// Acceptable reports whether the declared type or the filename marks the
// upload as a zip archive within the size ceiling. The two type checks are
// OR'd on purpose: browsers are inconsistent about zip content types.
func Acceptable(filename, contentType string, size int64) bool {
	if size <= 0 || size > MaxArchiveSize {
		return false
	}
	if contentType == "application/zip" || contentType == "application/x-zip-compressed" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(filename), ".zip")
}

// Save persists the raw archive bytes under the upload root using a
// collision-resistant name, so concurrent uploads never overwrite each
// other. Returns the stored path.
func (e *Extractor) Save(originalName string, r io.Reader) (string, error) {
	unique := fmt.Sprintf("%d-%s-%s",
		time.Now().UnixNano(),
		uuid.New().String()[:8],
		filepath.Base(originalName),
	)
	stored := filepath.Join(e.uploadDir, unique)

	out, err := os.Create(stored)
	if err != nil {
		return "", fmt.Errorf("stage archive: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, io.LimitReader(r, MaxArchiveSize+1)); err != nil {
		os.Remove(stored)
		return "", fmt.Errorf("stage archive: %w", err)
	}
	return stored, nil
}

// Extract expands the stored archive into a fresh extraction directory and
// removes the archive afterwards regardless of outcome. Any entry whose
// resolved path escapes the extraction root aborts the whole extraction
// and the partial tree is deleted; a malicious archive must not leave
// anything extracted.
func (e *Extractor) Extract(archivePath string) (*entity.ExtractionSession, error) {
	defer func() {
		if err := os.Remove(archivePath); err != nil {
			e.log.Warn("archive", "failed to remove staged archive", map[string]interface{}{
				"path":  archivePath,
				"error": err.Error(),
			})
		}
	}()

	root := strings.TrimSuffix(archivePath, filepath.Ext(archivePath))
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create extraction root: %w", err)
	}

	if err := e.expand(archivePath, root); err != nil {
		os.RemoveAll(root)
		return nil, err
	}

	return &entity.ExtractionSession{
		Id:                uuid.New().String(),
		SourceArchivePath: archivePath,
		ExtractionRoot:    root,
		CreatedAt:         time.Now(),
	}, nil
}

func (e *Extractor) expand(archivePath, root string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer reader.Close()

	cleanRoot := filepath.Clean(root)
	for _, entry := range reader.File {
		target := filepath.Join(cleanRoot, entry.Name)
		if target != cleanRoot && !strings.HasPrefix(target, cleanRoot+string(os.PathSeparator)) {
			return fmt.Errorf("%w: %s", apperr.ErrUnsafeArchiveEntry, entry.Name)
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("create directory %s: %w", entry.Name, err)
			}
			continue
		}

		if err := e.writeFile(entry, target); err != nil {
			return err
		}
	}
	return nil
}

func (e *Extractor) writeFile(entry *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create parent of %s: %w", entry.Name, err)
	}

	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("open entry %s: %w", entry.Name, err)
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", entry.Name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("write %s: %w", entry.Name, err)
	}
	return nil
}
