package domain

import "time"

// Mapping is the durable association between a long URL and its short code.
// The short code is empty only during the construction window of the
// two-phase auto-assignment and is immutable once set.
type Mapping struct {
	ID        int64
	LongURL   string
	ShortCode string
	CreatedAt time.Time
}

// Stats is the click accounting record for a short code. It is created
// atomically alongside its Mapping, so a resolvable code always has one.
type Stats struct {
	ShortCode     string
	ClickCount    int64
	LastClickedAt *time.Time
}
