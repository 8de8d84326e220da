package images

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Importer copies captured photos into the app-managed images directory so
// the original capture location can be reclaimed by the platform.
type Importer struct {
	dir string
}

func NewImporter(dir string) *Importer {
	return &Importer{dir: dir}
}

// Import copies the file at srcPath into the managed directory under a
// fresh name and returns the new path. An empty srcPath means the user took
// no photo; that returns an empty path, not an error.
func (i *Importer) Import(srcPath string) (string, error) {
	if srcPath == "" {
		return "", nil
	}

	if err := os.MkdirAll(i.dir, 0o755); err != nil {
		return "", fmt.Errorf("create images dir: %w", err)
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open captured image: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(srcPath)
	dstPath := filepath.Join(i.dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create managed image: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("copy image: %w", err)
	}
	return dstPath, nil
}
