package storage

import (
	"context"
	"io"
)

// Storage abstracts where vehicle photos live. Save returns a public URL
// for the stored object; implementations exist for the local filesystem
// (served statically by the server) and for Cloudinary.
type Storage interface {
	// Save stores the file under key (a unique path such as
	// "vehicles/<uuid>.jpg") and returns its public URL.
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the file for key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}
