package event

// URLClickedName is the event name for URLClicked.
const URLClickedName = "url.clicked"

// URLClicked is raised on every resolution of a short code, whether served
// from cache or from the store. It drives the asynchronous click accounting
// update off the request path.
type URLClicked struct {
	Base
	ShortCode string `json:"short_code"`
}

// NewURLClicked creates a new URLClicked event.
func NewURLClicked(shortCode string) *URLClicked {
	return &URLClicked{
		Base:      NewBase(shortCode),
		ShortCode: shortCode,
	}
}

// EventName returns the event name.
func (e *URLClicked) EventName() string {
	return URLClickedName
}
