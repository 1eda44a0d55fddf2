package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shortly/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/lib/pq"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Compile-time interface check
var _ domain.MappingRepo = (*mappingRepo)(nil)

// mappingRepo implements domain.MappingRepo on gorm.
type mappingRepo struct {
	data *Data
	log  *log.Helper
}

// NewMappingRepo creates a new mapping repository.
func NewMappingRepo(data *Data, logger log.Logger) domain.MappingRepo {
	return &mappingRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

// client returns the transactional handle if in a transaction, otherwise
// the default one.
func (r *mappingRepo) client(ctx context.Context) *gorm.DB {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.data.db.WithContext(ctx)
}

// FindByLongURL returns the oldest active mapping for a long URL. Rows
// still inside the construction window (no code yet) are not visible.
func (r *mappingRepo) FindByLongURL(ctx context.Context, longURL string) (*domain.Mapping, error) {
	var m UrlMapping
	err := r.client(ctx).
		Where("long_url = ? AND short_code IS NOT NULL", longURL).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainMapping(&m), nil
}

// FindByShortCode retrieves a mapping by its short code.
func (r *mappingRepo) FindByShortCode(ctx context.Context, code domain.ShortCode) (*domain.Mapping, error) {
	var m UrlMapping
	err := r.client(ctx).
		Where("short_code = ?", code.String()).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainMapping(&m), nil
}

// Create inserts a new mapping and returns it with the surrogate id set.
func (r *mappingRepo) Create(ctx context.Context, longURL string, code *domain.ShortCode) (*domain.Mapping, error) {
	m := &UrlMapping{
		LongURL:   longURL,
		CreatedAt: time.Now().UTC(),
	}
	if code != nil {
		m.ShortCode = lo.ToPtr(code.String())
	}

	if err := r.client(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrCodeTaken
		}
		return nil, err
	}
	return toDomainMapping(m), nil
}

// AssignShortCode sets the encoded code on a mapping created without one.
func (r *mappingRepo) AssignShortCode(ctx context.Context, id int64, code domain.ShortCode) error {
	res := r.client(ctx).Model(&UrlMapping{}).
		Where("id = ? AND short_code IS NULL", id).
		Update("short_code", code.String())
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return domain.ErrCodeTaken
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("mapping %d not found or code already assigned", id)
	}
	return nil
}

// CodeExists reports whether a short code is already claimed.
func (r *mappingRepo) CodeExists(ctx context.Context, code domain.ShortCode) (bool, error) {
	var count int64
	err := r.client(ctx).Model(&UrlMapping{}).
		Where("short_code = ?", code.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func toDomainMapping(m *UrlMapping) *domain.Mapping {
	return &domain.Mapping{
		ID:        m.ID,
		LongURL:   m.LongURL,
		ShortCode: lo.FromPtr(m.ShortCode),
		CreatedAt: m.CreatedAt,
	}
}

// isUniqueViolation recognizes unique-index violations from both the gorm
// error translator and the raw pq driver.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
