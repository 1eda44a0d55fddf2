package data

import (
	"context"
	"errors"
	"time"

	"shortly/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"
)

// Compile-time interface check
var _ domain.StatsRepo = (*statsRepo)(nil)

// statsRepo implements domain.StatsRepo on gorm.
type statsRepo struct {
	data *Data
	log  *log.Helper
}

// NewStatsRepo creates a new click accounting repository.
func NewStatsRepo(data *Data, logger log.Logger) domain.StatsRepo {
	return &statsRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *statsRepo) client(ctx context.Context) *gorm.DB {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.data.db.WithContext(ctx)
}

// Init creates a zero-count stats row for a new short code.
func (r *statsRepo) Init(ctx context.Context, code domain.ShortCode) error {
	return r.client(ctx).Create(&UrlStats{ShortCode: code.String()}).Error
}

// IncrementClick bumps the click count in a single atomic UPDATE so
// concurrent clicks never lose updates. A missing row is a no-op.
func (r *statsRepo) IncrementClick(ctx context.Context, code domain.ShortCode) error {
	res := r.client(ctx).Model(&UrlStats{}).
		Where("short_code = ?", code.String()).
		Updates(map[string]interface{}{
			"click_count":     gorm.Expr("click_count + ?", 1),
			"last_clicked_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		r.log.WithContext(ctx).Warnf("no stats row for short code %q", code.String())
	}
	return nil
}

type statsRow struct {
	ID            int64
	LongURL       string
	ShortCode     string
	CreatedAt     time.Time
	ClickCount    int64
	LastClickedAt *time.Time
}

// GetWithMapping returns the mapping joined with its stats row.
func (r *statsRepo) GetWithMapping(ctx context.Context, code domain.ShortCode) (*domain.Mapping, *domain.Stats, error) {
	var row statsRow
	err := r.client(ctx).Table("url_mappings").
		Select("url_mappings.id, url_mappings.long_url, url_mappings.short_code, url_mappings.created_at, url_stats.click_count, url_stats.last_clicked_at").
		Joins("JOIN url_stats ON url_stats.short_code = url_mappings.short_code").
		Where("url_mappings.short_code = ?", code.String()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	mapping := &domain.Mapping{
		ID:        row.ID,
		LongURL:   row.LongURL,
		ShortCode: row.ShortCode,
		CreatedAt: row.CreatedAt,
	}
	stats := &domain.Stats{
		ShortCode:     row.ShortCode,
		ClickCount:    row.ClickCount,
		LastClickedAt: row.LastClickedAt,
	}
	return mapping, stats, nil
}
