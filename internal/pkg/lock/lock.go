// Package lock provides keyed mutual exclusion for operations that read and
// then write the same aggregate, such as a student's registrations.
package lock

import "context"

// Unlock releases a held key. Calling it more than once is a no-op.
type Unlock func()

// Locker serializes callers on a key.
type Locker interface {
	// Lock blocks until key is held or ctx is done.
	Lock(ctx context.Context, key string) (Unlock, error)
}
