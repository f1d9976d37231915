// Package sessiondata stores small durable key/value items for the client,
// most importantly the JSON-serialized identity of the logged-in user.
package sessiondata

import "context"

// Repository is the durable client-side cache surviving restarts. Absent
// keys are reported as a nil value, not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
