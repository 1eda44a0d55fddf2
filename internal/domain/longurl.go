package domain

import "net/url"

// MaxLongURLLength bounds stored long URLs.
const MaxLongURLLength = 2048

// ValidateLongURL checks that the given string is an absolute http or https
// URL with a host.
func ValidateLongURL(raw string) error {
	if raw == "" || len(raw) > MaxLongURLLength {
		return ErrInvalidURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ErrInvalidURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidURL
	}
	if u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}
