package providers

import "context"

// CacheProvider is a byte-level cache used by the transport layer for
// response caching. The core never touches it.
type CacheProvider interface {
	// Get retrieves a value; an error means miss or backend failure.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with an expiration in seconds.
	Set(ctx context.Context, key string, value []byte, expirationSeconds int) error

	// Delete removes a value.
	Delete(ctx context.Context, key string) error

	// Exists reports whether a key is present.
	Exists(ctx context.Context, key string) (bool, error)
}
