package domain

import "context"

// UnitOfWork runs a function inside a single store transaction. The
// transaction handle travels in the context so repositories participate
// transparently; any error rolls the whole sequence back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
