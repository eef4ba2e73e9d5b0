// Package ctxutil provides context utility functions.
package ctxutil

import "context"

// Canceled checks if the context has been canceled or exceeded its
// deadline. Returns the context error if done (Canceled or
// DeadlineExceeded), nil otherwise. Lifecycle operations call this at
// entry and between lock retries so a canceled command stops promptly.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}
