package data

import "time"

// UrlMapping is the persistence model for url_mappings. ShortCode is
// nullable only during the construction window of the two-phase code
// assignment; the unique index is the final arbiter for custom-code races.
type UrlMapping struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	LongURL   string    `gorm:"column:long_url;type:text;not null;index"`
	ShortCode *string   `gorm:"column:short_code;type:varchar(10);uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`

	Stats *UrlStats `gorm:"foreignKey:ShortCode;references:ShortCode;constraint:OnDelete:CASCADE"`
}

// TableName implements the gorm Tabler interface.
func (UrlMapping) TableName() string { return "url_mappings" }

// UrlStats is the persistence model for url_stats, one row per mapping.
type UrlStats struct {
	ShortCode     string     `gorm:"column:short_code;type:varchar(10);primaryKey"`
	ClickCount    int64      `gorm:"column:click_count;not null;default:0"`
	LastClickedAt *time.Time `gorm:"column:last_clicked_at"`
}

// TableName implements the gorm Tabler interface.
func (UrlStats) TableName() string { return "url_stats" }
