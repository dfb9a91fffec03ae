package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/sparkboard-dev/sparkboard/internal/domain"
	"github.com/sparkboard-dev/sparkboard/internal/service"
)

// Storage is a local-filesystem media store with a companion public URL,
// standing in for the hosted bucket API the mobile clients upload to.
type Storage struct {
	rootPath string
	baseURL  string
}

// Ensure Storage implements the interface at compile time.
var _ service.MediaStorage = (*Storage)(nil)

func New(rootPath, baseURL string) (*Storage, error) {
	// Use filepath.Clean to prevent path traversal issues like "media/../"
	p := filepath.Clean(rootPath)

	if err := os.MkdirAll(p, 0755); err != nil {
		return nil, fmt.Errorf("failed to create root storage directory %s: %w", p, err)
	}

	return &Storage{rootPath: p, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes an object under the owner's prefix. Filenames are generated,
// never taken from the client; only the cleaned extension survives.
func (s *Storage) Save(fileData io.Reader, ownerId domain.UserId, originalFilename string) (string, error) {
	cleanExtension := filepath.Clean(filepath.Ext(originalFilename))
	filename := uuid.New().String() + cleanExtension

	relativePath := filepath.Join(strconv.FormatInt(ownerId, 10), filename)
	fullPath := filepath.Join(s.rootPath, relativePath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create subdirectories: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, fileData); err != nil {
		os.Remove(fullPath) // Best effort, ignore error here.
		return "", fmt.Errorf("failed to copy file data: %w", err)
	}

	return relativePath, nil
}

// PublicURL returns the externally reachable URL for a stored object.
func (s *Storage) PublicURL(relativePath string) string {
	return s.baseURL + "/" + filepath.ToSlash(relativePath)
}

// Delete removes a single object. A missing object is not an error.
func (s *Storage) Delete(relativePath string) error {
	fullPath := filepath.Join(s.rootPath, relativePath)

	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
