// Package validation checks uploaded media before it reaches object storage.
package validation

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp" // mobile clients upload webp screenshots
)

var (
	ErrInvalidMimeType = errors.New("file type not allowed")
	ErrPayloadTooLarge = errors.New("file too large")
)

// PendingUpload is a validated upload ready to be handed to media storage.
type PendingUpload struct {
	Filename    string
	SizeBytes   int64
	MimeType    string
	ImageWidth  *int
	ImageHeight *int
	Data        multipart.File
}

// ValidateUpload opens the uploaded file, detects its MIME type and verifies
// it against the allowed sets. The caller owns closing the returned Data.
func ValidateUpload(fileHeader *multipart.FileHeader, maxSizeBytes int64, allowedImageMimes, allowedAudioMimes []string) (*PendingUpload, error) {
	if fileHeader.Size > maxSizeBytes {
		return nil, fmt.Errorf("%w: %s (%d bytes)", ErrPayloadTooLarge, fileHeader.Filename, fileHeader.Size)
	}

	allowedMimes := BuildAllowedMimeMap(allowedImageMimes, allowedAudioMimes)

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}

	mimeType, err := DetectMimeType(fileHeader)
	if err != nil {
		file.Close()
		return nil, err
	}

	if !allowedMimes[mimeType] {
		file.Close()
		return nil, fmt.Errorf("%w: %s (file: %s)", ErrInvalidMimeType, mimeType, fileHeader.Filename)
	}

	width, height := ExtractImageDimensions(file, mimeType)

	return &PendingUpload{
		Filename:    fileHeader.Filename,
		SizeBytes:   fileHeader.Size,
		MimeType:    mimeType,
		ImageWidth:  width,
		ImageHeight: height,
		Data:        file,
	}, nil
}

func BuildAllowedMimeMap(imageMimes, audioMimes []string) map[string]bool {
	allowedMimes := make(map[string]bool)
	for _, m := range imageMimes {
		allowedMimes[m] = true
	}
	for _, m := range audioMimes {
		allowedMimes[m] = true
	}
	return allowedMimes
}

func DetectMimeType(fileHeader *multipart.FileHeader) (string, error) {
	mimeType := fileHeader.Header.Get("Content-Type")

	// If no Content-Type or it's generic, detect from extension
	if mimeType == "" || mimeType == "application/octet-stream" {
		ext := filepath.Ext(fileHeader.Filename)
		if detectedType := mime.TypeByExtension(ext); detectedType != "" {
			mimeType = detectedType
		}
	}

	if mimeType == "" || mimeType == "application/octet-stream" {
		return "", fmt.Errorf("could not detect MIME type for file: %s", fileHeader.Filename)
	}

	return mimeType, nil
}

func ExtractImageDimensions(file multipart.File, mimeType string) (*int, *int) {
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, nil
	}

	img, _, err := image.DecodeConfig(file)
	file.Seek(0, 0)
	if err != nil {
		return nil, nil
	}

	width, height := img.Width, img.Height
	return &width, &height
}
