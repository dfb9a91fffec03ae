package service

import (
	"io"

	"github.com/sparkboard-dev/sparkboard/internal/domain"
	"github.com/sparkboard-dev/sparkboard/internal/errors"
)

// MediaStorage is the binary object storage boundary: upload plus a
// companion public URL, mirroring the hosted bucket API the mobile clients
// talk to.
type MediaStorage interface {
	// Save stores a file's content under the owner's prefix and returns the
	// relative object path.
	Save(fileData io.Reader, ownerId domain.UserId, originalFilename string) (string, error)

	// PublicURL returns the externally reachable URL for a stored object.
	PublicURL(relativePath string) string

	// Delete removes a single object.
	Delete(relativePath string) error
}

// to mock service in tests
type MediaService interface {
	Upload(actor *domain.User, fileData io.Reader, originalFilename string) (string, error)
}

type Media struct {
	storage MediaStorage
}

func NewMedia(storage MediaStorage) *Media {
	return &Media{storage}
}

// Upload stores a validated file and returns its public URL.
func (m *Media) Upload(actor *domain.User, fileData io.Reader, originalFilename string) (string, error) {
	if actor == nil {
		return "", errors.NotAuthenticated
	}
	relativePath, err := m.storage.Save(fileData, actor.Id, originalFilename)
	if err != nil {
		return "", err
	}
	return m.storage.PublicURL(relativePath), nil
}
