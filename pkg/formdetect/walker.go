package formdetect

import (
	"os"
	"path/filepath"
	"strings"

	"classico-be/internal/pkg/logger"
)

// markupFiles walks the extraction root with an explicit queue instead of
// recursion; uploaded trees are untrusted and may be arbitrarily deep.
// Unreadable directories are skipped, symlinks are never followed, and no
// traversal order is promised.
func markupFiles(root string, log logger.ILogger) []string {
	var files []string
	queue := []string{root}

	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(dir)
		if err != nil {
			log.Warn("formdetect", "skipping unreadable directory", map[string]interface{}{
				"dir":   dir,
				"error": err.Error(),
			})
			continue
		}

		for _, entry := range entries {
			full := filepath.Join(dir, entry.Name())
			if entry.Type()&os.ModeSymlink != 0 {
				continue
			}
			if entry.IsDir() {
				queue = append(queue, full)
				continue
			}
			if isMarkup(entry.Name()) {
				files = append(files, full)
			}
		}
	}

	return files
}

func isMarkup(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".html" || ext == ".htm"
}
