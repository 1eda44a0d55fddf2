package biz

import (
	"context"

	"shortly/internal/conf"
	"shortly/internal/domain"
	"shortly/internal/domain/event"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/samber/lo"
)

// ShortenerUsecase orchestrates the write path: dedup lookup, code
// assignment, persistence and cache population.
type ShortenerUsecase struct {
	mappings domain.MappingRepo
	stats    domain.StatsRepo
	cache    domain.URLCache
	uow      domain.UnitOfWork
	bus      EventPublisher
	baseURL  string
	log      *log.Helper
}

// NewShortenerUsecase creates a new ShortenerUsecase.
func NewShortenerUsecase(
	mappings domain.MappingRepo,
	stats domain.StatsRepo,
	cache domain.URLCache,
	uow domain.UnitOfWork,
	bus EventPublisher,
	app *conf.App,
	logger log.Logger,
) *ShortenerUsecase {
	return &ShortenerUsecase{
		mappings: mappings,
		stats:    stats,
		cache:    cache,
		uow:      uow,
		bus:      bus,
		baseURL:  app.BaseURLOrDefault(),
		log:      log.NewHelper(logger),
	}
}

// Shorten returns a short code for the given long URL. Shortening the same
// URL twice returns the first code again without any new writes. A custom
// code is validated and claimed if free; otherwise the code is derived from
// the surrogate id inside the same transaction that creates the mapping and
// its zero-count stats row.
//
// Two concurrent calls for the same new URL can both miss the dedup lookup
// and each create a mapping. That race is accepted: writes stay lock-free
// and both codes resolve to the same destination.
func (uc *ShortenerUsecase) Shorten(ctx context.Context, longURL string, customCode *string) (string, error) {
	if err := domain.ValidateLongURL(longURL); err != nil {
		return "", err
	}

	existing, err := uc.mappings.FindByLongURL(ctx, longURL)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.ShortCode, nil
	}

	var code domain.ShortCode
	if custom := lo.FromPtr(customCode); custom != "" {
		code, err = uc.createWithCustomCode(ctx, longURL, custom)
	} else {
		code, err = uc.createWithGeneratedCode(ctx, longURL)
	}
	if err != nil {
		return "", err
	}

	uc.cache.Set(ctx, code.String(), longURL)
	uc.publishCreated(ctx, code.String(), longURL)

	return code.String(), nil
}

// ShortURL builds the public short URL for a code.
func (uc *ShortenerUsecase) ShortURL(code string) string {
	return uc.baseURL + "/" + code
}

// createWithCustomCode validates the requested code before any store
// access, pre-checks availability, and claims it. The pre-check is an
// optimization only: the unique index decides concurrent claims, surfacing
// the loser as ErrCodeTaken.
func (uc *ShortenerUsecase) createWithCustomCode(ctx context.Context, longURL, custom string) (domain.ShortCode, error) {
	code, err := domain.NewShortCode(custom)
	if err != nil {
		return domain.ShortCode{}, err
	}

	err = uc.uow.Do(ctx, func(ctx context.Context) error {
		taken, err := uc.mappings.CodeExists(ctx, code)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrCodeTaken
		}
		if _, err := uc.mappings.Create(ctx, longURL, &code); err != nil {
			return err
		}
		return uc.stats.Init(ctx, code)
	})
	if err != nil {
		return domain.ShortCode{}, err
	}
	return code, nil
}

// createWithGeneratedCode inserts the mapping first to obtain the surrogate
// id, encodes it, and assigns the resulting code, all in one transaction.
// The encoder needs the id as input, so the two-phase write is inherent.
func (uc *ShortenerUsecase) createWithGeneratedCode(ctx context.Context, longURL string) (domain.ShortCode, error) {
	var code domain.ShortCode
	err := uc.uow.Do(ctx, func(ctx context.Context) error {
		m, err := uc.mappings.Create(ctx, longURL, nil)
		if err != nil {
			return err
		}

		encoded, err := domain.EncodeID(m.ID)
		if err != nil {
			return err
		}
		if code, err = domain.NewShortCode(encoded); err != nil {
			return err
		}

		if err := uc.mappings.AssignShortCode(ctx, m.ID, code); err != nil {
			return err
		}
		return uc.stats.Init(ctx, code)
	})
	if err != nil {
		return domain.ShortCode{}, err
	}
	return code, nil
}

func (uc *ShortenerUsecase) publishCreated(ctx context.Context, code, longURL string) {
	if err := uc.bus.Publish(context.WithoutCancel(ctx), event.NewURLCreated(code, longURL)); err != nil {
		uc.log.WithContext(ctx).Warnf("publish url.created for %q: %v", code, err)
	}
}
