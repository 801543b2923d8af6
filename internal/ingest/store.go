package ingest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore persists raw upload bytes and hands back an opaque storage
// reference for the IncomingFile record.
type FileStore interface {
	Save(userID uuid.UUID, checksum, ext string, content []byte) (string, error)
	Remove(path string) error
}

// DiskStore writes uploads under a root directory, addressed by user and
// content checksum. Scoping by user keeps one user's blob out of reach of
// another user's rollback when both uploaded identical bytes.
type DiskStore struct {
	Root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{Root: root}
}

func (s *DiskStore) Save(userID uuid.UUID, checksum, ext string, content []byte) (string, error) {
	if len(checksum) < 2 {
		return "", fmt.Errorf("checksum too short: %q", checksum)
	}
	dir := filepath.Join(s.Root, userID.String(), checksum[:2])
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create storage dir: %w", err)
	}
	path := filepath.Join(dir, checksum+"."+ext)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path, nil
}

func (s *DiskStore) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
