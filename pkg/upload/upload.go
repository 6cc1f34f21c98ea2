package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxFileSize is the upload ceiling, 100 MiB.
const MaxFileSize = 100 << 20

var (
	ErrFileTooLarge    = errors.New("file exceeds the 100 MiB limit")
	ErrUnsupportedType = errors.New("only PDF, JPEG and PNG files are accepted")
)

var allowedTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
}

// Saver writes uploaded files under a base directory, nested by parent
// name and document type, creating directories as needed.
type Saver struct {
	baseDir string
}

func NewSaver(baseDir string) *Saver {
	return &Saver{baseDir: baseDir}
}

// Save sniffs the content type, enforces the size limit and writes the
// file to <base>/<parent>/<docType>/<fileName>. It returns the stored
// path relative to the base directory.
func (s *Saver) Save(parent, docType, fileName string, r io.Reader, size int64) (string, error) {
	if size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return "", err
	}
	if int64(len(data)) > MaxFileSize {
		return "", ErrFileTooLarge
	}

	detected := mimetype.Detect(data)
	if _, ok := allowedTypes[detected.String()]; !ok {
		return "", fmt.Errorf("%w, got %s", ErrUnsupportedType, detected.String())
	}

	dir := filepath.Join(s.baseDir, pathSegment(parent), pathSegment(docType))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	target := filepath.Join(dir, pathSegment(fileName))
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", err
	}

	return filepath.Join(pathSegment(parent), pathSegment(docType), pathSegment(fileName)), nil
}

// pathSegment keeps caller-supplied names from escaping the upload tree.
func pathSegment(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "..", "")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" {
		name = "misc"
	}
	return name
}
