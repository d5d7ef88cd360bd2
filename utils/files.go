package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// FileStore writes uploaded assets under root/<category>/ and removes them
// again when a record drops its reference.
type FileStore struct {
	root string
}

func NewFileStore(root string) *FileStore {
	return &FileStore{root: root}
}

// Save writes the uploaded file into the category subdirectory under a
// uuid-prefixed name and returns the path relative to the upload root,
// e.g. "about/3f2c..._photo.png". Stored paths never embed the root, so
// the root directory can live anywhere on disk.
func (fs *FileStore) Save(category string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(fs.root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	filename := uuid.New().String() + "_" + filepath.Base(fh.Filename)
	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return category + "/" + filename, nil
}

// Remove deletes a previously saved file by its root-relative path. It is
// best-effort: the database write has already happened, so a failure only
// leaves an orphan on disk.
func (fs *FileStore) Remove(relPath string) {
	if relPath == "" || strings.HasPrefix(relPath, "http") {
		return
	}
	full := filepath.Join(fs.root, filepath.FromSlash(relPath))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", relPath).Msg("failed to remove upload")
	}
}
