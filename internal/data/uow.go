package data

import (
	"context"

	"shortly/internal/domain"

	"gorm.io/gorm"
)

// Compile-time interface check
var _ domain.UnitOfWork = (*unitOfWork)(nil)

type txKey struct{}

// unitOfWork implements domain.UnitOfWork on a gorm transaction. The
// transactional handle is stored in the context so repositories pick it up
// transparently via client(ctx).
type unitOfWork struct {
	data *Data
}

// NewUnitOfWork creates a new UnitOfWork.
func NewUnitOfWork(data *Data) domain.UnitOfWork {
	return &unitOfWork{data: data}
}

// Do executes fn within a single database transaction. Any error rolls the
// whole sequence back, so a mapping can never be committed without its
// stats row.
func (u *unitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return u.data.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// TxFromContext retrieves the transaction from context, or nil.
func TxFromContext(ctx context.Context) *gorm.DB {
	tx, _ := ctx.Value(txKey{}).(*gorm.DB)
	return tx
}
