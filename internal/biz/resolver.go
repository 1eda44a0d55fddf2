package biz

import (
	"context"

	"shortly/internal/domain"
	"shortly/internal/domain/event"

	"github.com/go-kratos/kratos/v2/log"
)

// ResolverUsecase orchestrates the read path: cache lookup, store fallback,
// cache refill and fire-and-forget click accounting.
type ResolverUsecase struct {
	mappings domain.MappingRepo
	stats    domain.StatsRepo
	cache    domain.URLCache
	bus      EventPublisher
	log      *log.Helper
}

// NewResolverUsecase creates a new ResolverUsecase.
func NewResolverUsecase(
	mappings domain.MappingRepo,
	stats domain.StatsRepo,
	cache domain.URLCache,
	bus EventPublisher,
	logger log.Logger,
) *ResolverUsecase {
	return &ResolverUsecase{
		mappings: mappings,
		stats:    stats,
		cache:    cache,
		bus:      bus,
		log:      log.NewHelper(logger),
	}
}

// Resolve returns the long URL for a short code. A cache hit never touches
// the mapping store; a miss falls back to the store and refills the cache.
// Either way a click event is published for asynchronous accounting, which
// must never delay or fail the redirect.
func (uc *ResolverUsecase) Resolve(ctx context.Context, rawCode string) (string, error) {
	code, err := domain.NewShortCode(rawCode)
	if err != nil {
		// A code outside the alphabet cannot exist.
		return "", domain.ErrURLNotFound
	}

	if longURL, ok := uc.cache.Get(ctx, code.String()); ok {
		uc.trackClick(ctx, code)
		return longURL, nil
	}

	m, err := uc.mappings.FindByShortCode(ctx, code)
	if err != nil {
		return "", err
	}
	if m == nil {
		return "", domain.ErrURLNotFound
	}

	uc.cache.Set(ctx, code.String(), m.LongURL)
	uc.trackClick(ctx, code)

	return m.LongURL, nil
}

// Stats returns the mapping joined with its click accounting record.
// Stats reads are always served fresh, never from the cache.
func (uc *ResolverUsecase) Stats(ctx context.Context, rawCode string) (*domain.Mapping, *domain.Stats, error) {
	code, err := domain.NewShortCode(rawCode)
	if err != nil {
		return nil, nil, domain.ErrURLNotFound
	}

	mapping, stats, err := uc.stats.GetWithMapping(ctx, code)
	if err != nil {
		return nil, nil, err
	}
	if mapping == nil {
		return nil, nil, domain.ErrURLNotFound
	}
	return mapping, stats, nil
}

// trackClick publishes a url.clicked event. The publish is detached from
// request cancellation and its errors are only logged: click accounting is
// never allowed to affect a response.
func (uc *ResolverUsecase) trackClick(ctx context.Context, code domain.ShortCode) {
	if err := uc.bus.Publish(context.WithoutCancel(ctx), event.NewURLClicked(code.String())); err != nil {
		uc.log.WithContext(ctx).Warnf("publish url.clicked for %q: %v", code.String(), err)
	}
}
