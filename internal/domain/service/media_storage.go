// Package service defines the infrastructure interfaces the domain depends on.
package service

import "context"

// MediaStorage abstracts the object store that holds uploaded media.
// One call per file; no batch endpoint is assumed.
type MediaStorage interface {
	// Upload writes the payload under the given key and returns the
	// publicly resolvable URL of the stored object.
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)

	// Delete removes a previously uploaded object. Used only for
	// best-effort cleanup; callers tolerate failure.
	Delete(ctx context.Context, key string) error
}
