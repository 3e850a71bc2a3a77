package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Store writes uploaded files to a local directory. The stored name is
// the upload timestamp in nanoseconds plus the original extension, so a
// path can be handed to the database without further bookkeeping.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the uploaded file to disk and returns its path. A nil
// header means no file was sent and yields an empty path without error.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := strconv.FormatInt(time.Now().UnixNano(), 10) + filepath.Ext(fh.Filename)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}
