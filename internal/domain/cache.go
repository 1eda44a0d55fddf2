package domain

import "context"

// URLCache fronts the mapping store on the read path. It is a disposable
// projection of mapping content: absence is always valid and resolved by
// falling back to the store, so implementations must degrade failures and
// timeouts to misses rather than errors.
type URLCache interface {
	// Get returns the cached long URL for a short code, and whether it hit.
	Get(ctx context.Context, code string) (string, bool)

	// Set stores a code to long URL entry under the fixed TTL.
	Set(ctx context.Context, code, longURL string)

	// Delete removes an entry.
	Delete(ctx context.Context, code string)
}
