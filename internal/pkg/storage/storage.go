// Package storage persists generated recap PDFs and santri photos.
package storage

import (
	"context"
	"errors"
	"io"
)

var ErrFileNotFound = errors.New("file not found")

type FileStorage interface {
	// Upload writes the file and returns the stored path.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download opens the stored file for reading.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the stored file. Deleting a missing file is not
	// an error.
	Delete(ctx context.Context, path string) error
}
