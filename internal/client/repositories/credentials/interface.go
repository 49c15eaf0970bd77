// Package credentials persists the session credential (and related login
// metadata) across process restarts in a local sqlite key/value table.
package credentials

import "context"

// Repository is a durable key/value store for auth metadata. Get returns
// (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
