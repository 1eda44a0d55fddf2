package domain

import "context"

// MappingRepo is the durable store of long URL to short code associations.
// It is implemented in the data layer; every method honors a transaction
// carried in the context by the UnitOfWork.
type MappingRepo interface {
	// FindByLongURL returns the active mapping for a long URL, used for the
	// dedup lookup on the write path. Returns nil, nil when absent.
	FindByLongURL(ctx context.Context, longURL string) (*Mapping, error)

	// FindByShortCode returns the mapping for a short code.
	// Returns nil, nil when absent.
	FindByShortCode(ctx context.Context, code ShortCode) (*Mapping, error)

	// Create inserts a new mapping and returns it with the surrogate id
	// assigned. code may be nil for the two-phase auto-assignment path.
	// A unique-index violation on the short code surfaces as ErrCodeTaken.
	Create(ctx context.Context, longURL string, code *ShortCode) (*Mapping, error)

	// AssignShortCode sets the short code on a mapping created without one.
	AssignShortCode(ctx context.Context, id int64, code ShortCode) error

	// CodeExists reports whether a short code is already claimed. This is a
	// pre-check only; the unique index remains the final arbiter.
	CodeExists(ctx context.Context, code ShortCode) (bool, error)
}

// StatsRepo is the click accounting store. Rows are keyed by short code and
// created alongside the mapping in the same transaction.
type StatsRepo interface {
	// Init creates a zero-count stats row for a new short code.
	Init(ctx context.Context, code ShortCode) error

	// IncrementClick atomically increments the click count and stamps the
	// last click time. It is a silent no-op when no stats row exists.
	IncrementClick(ctx context.Context, code ShortCode) error

	// GetWithMapping returns the mapping joined with its stats.
	// Returns nil, nil, nil when the mapping is absent.
	GetWithMapping(ctx context.Context, code ShortCode) (*Mapping, *Stats, error)
}
