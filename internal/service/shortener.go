package service

import (
	"context"
	"errors"
	"time"

	"shortly/internal/biz"
	"shortly/internal/domain"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

// ShortenerService is the transport-facing service. It maps between
// request/response shapes and the use cases, and translates domain errors
// into transport errors with the right status codes.
type ShortenerService struct {
	shortener *biz.ShortenerUsecase
	resolver  *biz.ResolverUsecase
	log       *log.Helper
}

// NewShortenerService creates a new ShortenerService.
func NewShortenerService(shortener *biz.ShortenerUsecase, resolver *biz.ResolverUsecase, logger log.Logger) *ShortenerService {
	return &ShortenerService{
		shortener: shortener,
		resolver:  resolver,
		log:       log.NewHelper(logger),
	}
}

// ShortenRequest is the body of POST /shorten.
type ShortenRequest struct {
	LongURL    string  `json:"long_url"`
	CustomCode *string `json:"custom_code,omitempty"`
}

// ShortenReply is the 201 response of POST /shorten.
type ShortenReply struct {
	ShortCode string `json:"short_code"`
	ShortURL  string `json:"short_url"`
}

// StatsReply is the response of GET /stats/{short_code}.
type StatsReply struct {
	ShortCode     string     `json:"short_code"`
	LongURL       string     `json:"long_url"`
	Clicks        int64      `json:"clicks"`
	CreatedAt     time.Time  `json:"created_at"`
	LastClickedAt *time.Time `json:"last_clicked_at"`
}

// Shorten creates or reuses a short code for the requested long URL.
func (s *ShortenerService) Shorten(ctx context.Context, req *ShortenRequest) (*ShortenReply, error) {
	code, err := s.shortener.Shorten(ctx, req.LongURL, req.CustomCode)
	if err != nil {
		return nil, toTransportError(err)
	}
	return &ShortenReply{
		ShortCode: code,
		ShortURL:  s.shortener.ShortURL(code),
	}, nil
}

// Resolve returns the long URL behind a short code.
func (s *ShortenerService) Resolve(ctx context.Context, shortCode string) (string, error) {
	longURL, err := s.resolver.Resolve(ctx, shortCode)
	if err != nil {
		return "", toTransportError(err)
	}
	return longURL, nil
}

// Stats returns the mapping and click accounting for a short code.
func (s *ShortenerService) Stats(ctx context.Context, shortCode string) (*StatsReply, error) {
	mapping, stats, err := s.resolver.Stats(ctx, shortCode)
	if err != nil {
		return nil, toTransportError(err)
	}
	return &StatsReply{
		ShortCode:     mapping.ShortCode,
		LongURL:       mapping.LongURL,
		Clicks:        stats.ClickCount,
		CreatedAt:     mapping.CreatedAt,
		LastClickedAt: stats.LastClickedAt,
	}, nil
}

// toTransportError maps domain errors onto Kratos errors so the HTTP
// encoder emits 400/404/409; anything else is a retryable 500.
func toTransportError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidURL):
		return kerrors.BadRequest("INVALID_URL", err.Error())
	case errors.Is(err, domain.ErrInvalidCode):
		return kerrors.BadRequest("INVALID_CODE", err.Error())
	case errors.Is(err, domain.ErrCodeTaken):
		return kerrors.Conflict("CODE_TAKEN", err.Error())
	case errors.Is(err, domain.ErrURLNotFound):
		return kerrors.NotFound("URL_NOT_FOUND", err.Error())
	default:
		return kerrors.InternalServer("INTERNAL", "internal error")
	}
}
