package document

import "context"

// Store persists opaque JSON documents under stable keys. The only supported
// mutation pattern is load-then-save of the whole document; there is no
// partial or merge update.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Put(ctx context.Context, key string, value string) error
}
