package images

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImport_CopiesIntoManagedDir(t *testing.T) {
	captureDir := t.TempDir()
	managedDir := filepath.Join(t.TempDir(), "images")

	srcPath := filepath.Join(captureDir, "capture.jpg")
	require.NoError(t, os.WriteFile(srcPath, []byte("jpeg-bytes"), 0o644))

	importer := NewImporter(managedDir)
	newPath, err := importer.Import(srcPath)
	require.NoError(t, err)

	assert.Equal(t, managedDir, filepath.Dir(newPath))
	assert.Equal(t, ".jpg", filepath.Ext(newPath))

	copied, err := os.ReadFile(newPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), copied)
}

func TestImport_EmptyPathIsNoPhoto(t *testing.T) {
	importer := NewImporter(t.TempDir())
	newPath, err := importer.Import("")
	require.NoError(t, err)
	assert.Empty(t, newPath)
}

func TestImport_MissingSourceFails(t *testing.T) {
	importer := NewImporter(t.TempDir())
	_, err := importer.Import(filepath.Join(t.TempDir(), "nope.jpg"))
	assert.Error(t, err)
}
