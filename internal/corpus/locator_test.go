package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPDFs_FiltersAndIsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.pdf", "b.PDF", "notes.txt", "c.pdf.bak"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.pdf"), 0o755))

	paths := ListPDFs(dir)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "a.pdf"), paths[0])
	assert.Equal(t, filepath.Join(dir, "b.PDF"), paths[1])
}

func TestListPDFs_NonRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "deep.pdf"), []byte("x"), 0o644))

	assert.Empty(t, ListPDFs(dir))
}

func TestListPDFs_MissingDirectory(t *testing.T) {
	assert.Empty(t, ListPDFs(filepath.Join(t.TempDir(), "does-not-exist")))
}
