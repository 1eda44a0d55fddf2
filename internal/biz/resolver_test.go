package biz

import (
	"context"
	"errors"
	"testing"

	"shortly/internal/domain"
	"shortly/internal/domain/event"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resolverFixture struct {
	mappings *mockMappingRepo
	stats    *mockStatsRepo
	cache    *mockCache
	bus      *mockBus
	uc       *ResolverUsecase
}

func newResolverFixture() *resolverFixture {
	mappings := newMockMappingRepo()
	stats := newMockStatsRepo(mappings)
	cache := newMockCache()
	bus := &mockBus{}
	uc := NewResolverUsecase(mappings, stats, cache, bus, log.DefaultLogger)
	return &resolverFixture{mappings: mappings, stats: stats, cache: cache, bus: bus, uc: uc}
}

func (f *resolverFixture) seed(code, longURL string) {
	f.mappings.register(&domain.Mapping{ID: 1, LongURL: longURL, ShortCode: code})
	f.stats.rows[code] = &domain.Stats{ShortCode: code}
}

func TestResolve_CacheHitSkipsStore(t *testing.T) {
	f := newResolverFixture()
	f.cache.entries["abc123"] = "https://example.com/a"

	longURL, err := f.uc.Resolve(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/a", longURL)
	assert.Equal(t, 0, f.mappings.findCodeCalls, "cache hit must not touch the store")
	assert.Equal(t, 1, f.bus.published(event.URLClickedName))
}

func TestResolve_CacheMissFallsBackAndRefills(t *testing.T) {
	f := newResolverFixture()
	f.seed("abc123", "https://example.com/a")

	longURL, err := f.uc.Resolve(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/a", longURL)
	assert.Equal(t, 1, f.mappings.findCodeCalls)
	assert.Equal(t, "https://example.com/a", f.cache.entries["abc123"], "miss must refill the cache")
	assert.Equal(t, 1, f.bus.published(event.URLClickedName))
}

func TestResolve_UnknownCode(t *testing.T) {
	f := newResolverFixture()

	_, err := f.uc.Resolve(context.Background(), "nosuch")

	assert.ErrorIs(t, err, domain.ErrURLNotFound)
	assert.Equal(t, 0, f.cache.setCalls, "not-found must not pollute the cache")
	assert.Equal(t, 0, f.bus.published(event.URLClickedName))
}

func TestResolve_CodeOutsideAlphabet(t *testing.T) {
	f := newResolverFixture()

	_, err := f.uc.Resolve(context.Background(), "abc-123!")

	assert.ErrorIs(t, err, domain.ErrURLNotFound)
	assert.Equal(t, 0, f.mappings.findCodeCalls)
}

func TestResolve_StoreErrorPropagates(t *testing.T) {
	f := newResolverFixture()
	f.mappings.findCodeErr = errors.New("database error")

	_, err := f.uc.Resolve(context.Background(), "abc123")
	assert.Error(t, err)
}

func TestResolve_PublishFailureDoesNotFail(t *testing.T) {
	f := newResolverFixture()
	f.seed("abc123", "https://example.com/a")
	f.bus.err = errors.New("bus closed")

	longURL, err := f.uc.Resolve(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a", longURL)
}

func TestStats_Found(t *testing.T) {
	f := newResolverFixture()
	f.seed("abc123", "https://example.com/a")
	f.stats.rows["abc123"].ClickCount = 3

	mapping, stats, err := f.uc.Stats(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/a", mapping.LongURL)
	assert.Equal(t, int64(3), stats.ClickCount)
}

func TestStats_Unknown(t *testing.T) {
	f := newResolverFixture()

	_, _, err := f.uc.Stats(context.Background(), "nosuch")
	assert.ErrorIs(t, err, domain.ErrURLNotFound)
}

func TestStats_InvalidCode(t *testing.T) {
	f := newResolverFixture()

	_, _, err := f.uc.Stats(context.Background(), "bad code!")
	assert.ErrorIs(t, err, domain.ErrURLNotFound)
}
