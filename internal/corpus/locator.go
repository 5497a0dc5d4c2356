// Package corpus enumerates and ranks the PDF documents available for
// search. The corpus directory is read-only input; listing happens fresh on
// every call so new documents are picked up without restarts.
package corpus

import (
	"os"
	"path/filepath"
	"strings"
)

// ListPDFs returns the paths of all PDF files directly under dir. The
// extension check is case-insensitive and the walk is non-recursive. A
// missing or unreadable directory yields an empty list, not an error.
func ListPDFs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths
}
