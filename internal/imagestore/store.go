package imagestore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store writes product images into the directory shared with the
// frontend asset tree. Files are addressed by bare filename; the
// database only ever sees filenames, never paths.
type Store struct {
	dir string
}

var ErrInvalidFilename = errors.New("invalid filename")

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) EnsureDir() error {
	return os.MkdirAll(s.dir, 0o755)
}

// Save writes the uploaded content under a generated collision-resistant
// name and returns that name. There is deliberately no database write
// here; a crash after Save leaves an orphaned file.
func (s *Store) Save(originalName string, src io.Reader) (string, error) {
	name := GenerateFilename(originalName)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// Remove deletes the file; a file already gone is not an error, so a
// stale database record can still be cleaned up.
func (s *Store) Remove(filename string) error {
	path, err := s.Path(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Path resolves a filename inside the store. Anything that is not a
// plain filename is rejected so request input can never escape the
// upload directory.
func (s *Store) Path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", ErrInvalidFilename
	}
	return filepath.Join(s.dir, filename), nil
}

// GenerateFilename builds "product_<unix-nano>_<random><ext>" keeping
// the original extension, ".jpg" when there is none.
func GenerateFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" || ext == "." {
		ext = ".jpg"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("product_%d_%s%s", time.Now().UnixNano(), suffix, ext)
}
