package conf

import "time"

// Bootstrap is the top-level configuration scanned from the config source.
type Bootstrap struct {
	Server *Server `json:"server"`
	Data   *Data   `json:"data"`
	App    *App    `json:"app"`
}

// Server holds transport configuration.
type Server struct {
	Http *HTTP `json:"http"`
}

// HTTP holds the HTTP server configuration.
type HTTP struct {
	Network string `json:"network"`
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

// Data holds backing store configuration.
type Data struct {
	Database *Database `json:"database"`
	Redis    *Redis    `json:"redis"`
}

// Database holds the durable store configuration.
type Database struct {
	// Driver is "postgres" or "sqlite3".
	Driver string `json:"driver"`
	Source string `json:"source"`
}

// Redis holds the resolution cache configuration.
type Redis struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	// CacheTTL is the fixed TTL applied to every cached mapping.
	CacheTTL string `json:"cache_ttl"`
	// OpTimeout bounds each cache operation; timeouts degrade to misses.
	OpTimeout string `json:"op_timeout"`
}

// App holds application-level settings.
type App struct {
	// BaseURL is the public base used when building short URLs in responses.
	BaseURL string `json:"base_url"`
}

const (
	defaultCacheTTL  = 5 * time.Minute
	defaultOpTimeout = 50 * time.Millisecond
	defaultBaseURL   = "http://localhost:8000"
)

// CacheTTLOrDefault parses CacheTTL, falling back to 5 minutes.
func (r *Redis) CacheTTLOrDefault() time.Duration {
	return parseDuration(r.CacheTTL, defaultCacheTTL)
}

// OpTimeoutOrDefault parses OpTimeout, falling back to 50ms.
func (r *Redis) OpTimeoutOrDefault() time.Duration {
	return parseDuration(r.OpTimeout, defaultOpTimeout)
}

// TimeoutOrDefault parses the HTTP timeout, falling back to the given default.
func (h *HTTP) TimeoutOrDefault(def time.Duration) time.Duration {
	return parseDuration(h.Timeout, def)
}

// BaseURLOrDefault returns the configured public base URL.
func (a *App) BaseURLOrDefault() string {
	if a == nil || a.BaseURL == "" {
		return defaultBaseURL
	}
	return a.BaseURL
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
