package usecase

import "context"

// KeyValueStore holds named string slots. Get reports found=false for a key
// that was never written.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
	Close() error
}
