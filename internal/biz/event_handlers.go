package biz

import (
	"context"
	"encoding/json"

	"shortly/internal/domain"
	"shortly/internal/domain/event"
	"shortly/internal/infra/eventbus"

	"github.com/go-kratos/kratos/v2/log"
)

// Compile-time interface checks
var (
	_ eventbus.EventHandler = (*ClickEventHandler)(nil)
	_ eventbus.EventHandler = (*LoggingEventHandler)(nil)
)

// RegisterEventHandlers wires the event handlers into the router.
func RegisterEventHandlers(router *eventbus.Router, stats domain.StatsRepo, logger log.Logger) {
	router.AddHandler(NewClickEventHandler(stats, logger))
	router.AddHandler(NewLoggingEventHandler(logger, event.URLCreatedName))
}

// ClickEventHandler applies click events to the accounting store. It runs
// off the request path; failures are logged and dropped, never retried
// into a response.
type ClickEventHandler struct {
	stats domain.StatsRepo
	log   *log.Helper
}

// NewClickEventHandler creates a new click accounting handler.
func NewClickEventHandler(stats domain.StatsRepo, logger log.Logger) *ClickEventHandler {
	return &ClickEventHandler{
		stats: stats,
		log:   log.NewHelper(logger),
	}
}

func (h *ClickEventHandler) HandlerName() string {
	return "click_accounting_handler"
}

func (h *ClickEventHandler) EventName() string {
	return event.URLClickedName
}

// Handle increments the click counter for the clicked code.
func (h *ClickEventHandler) Handle(ctx context.Context, envelope *eventbus.Envelope) error {
	var evt event.URLClicked
	if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
		return err
	}

	code, err := domain.NewShortCode(evt.ShortCode)
	if err != nil {
		h.log.Warnf("click event with invalid code %q", evt.ShortCode)
		return nil
	}

	return h.stats.IncrementClick(ctx, code)
}

// LoggingEventHandler logs a domain event type.
type LoggingEventHandler struct {
	log       *log.Helper
	eventName string
}

// NewLoggingEventHandler creates a new logging event handler.
func NewLoggingEventHandler(logger log.Logger, eventName string) *LoggingEventHandler {
	return &LoggingEventHandler{
		log:       log.NewHelper(logger),
		eventName: eventName,
	}
}

func (h *LoggingEventHandler) HandlerName() string {
	return "logging_handler_" + h.eventName
}

func (h *LoggingEventHandler) EventName() string {
	return h.eventName
}

// Handle logs the event details.
func (h *LoggingEventHandler) Handle(ctx context.Context, envelope *eventbus.Envelope) error {
	switch envelope.EventName {
	case event.URLCreatedName:
		var evt event.URLCreated
		if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
			return err
		}
		h.log.Infof("[Event] URL created: %s -> %s", evt.ShortCode, evt.LongURL)
	case event.URLClickedName:
		var evt event.URLClicked
		if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
			return err
		}
		h.log.Infof("[Event] URL clicked: %s", evt.ShortCode)
	}
	return nil
}
