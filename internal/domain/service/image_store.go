package service

import "context"

// ImageStore persists product images and returns their public URL.
// The admin procedure accepts the image as raw bytes (decoded from the
// client's base64 upload); where those bytes live (local bucket, S3) is
// an infrastructure concern.
type ImageStore interface {
	// Save writes the image under the given name and returns its public URL.
	Save(ctx context.Context, name string, contentType string, data []byte) (string, error)

	// Remove deletes a previously saved image. Missing objects are not an error.
	Remove(ctx context.Context, name string) error
}
