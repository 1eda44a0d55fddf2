package event

// URLCreatedName is the event name for URLCreated.
const URLCreatedName = "url.created"

// URLCreated is raised after a new mapping is committed.
type URLCreated struct {
	Base
	ShortCode string `json:"short_code"`
	LongURL   string `json:"long_url"`
}

// NewURLCreated creates a new URLCreated event.
func NewURLCreated(shortCode, longURL string) *URLCreated {
	return &URLCreated{
		Base:      NewBase(shortCode),
		ShortCode: shortCode,
		LongURL:   longURL,
	}
}

// EventName returns the event name.
func (e *URLCreated) EventName() string {
	return URLCreatedName
}
