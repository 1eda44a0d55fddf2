package biz

import (
	"context"
	"errors"
	"sync"
	"time"

	"shortly/internal/domain"
	"shortly/internal/domain/event"
)

// noopUnitOfWork runs the function without a real transaction.
type noopUnitOfWork struct{}

func (u *noopUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var testUoW = &noopUnitOfWork{}

type mockMappingRepo struct {
	byCode map[string]*domain.Mapping
	byURL  map[string]*domain.Mapping
	nextID int64

	findURLErr  error
	findCodeErr error
	createErr   error
	assignErr   error
	existsErr   error

	createCalls   int
	existsCalls   int
	findCodeCalls int
}

func newMockMappingRepo() *mockMappingRepo {
	return &mockMappingRepo{
		byCode: make(map[string]*domain.Mapping),
		byURL:  make(map[string]*domain.Mapping),
	}
}

func (m *mockMappingRepo) FindByLongURL(ctx context.Context, longURL string) (*domain.Mapping, error) {
	if m.findURLErr != nil {
		return nil, m.findURLErr
	}
	// Rows inside the construction window have no code yet and stay
	// invisible to the dedup lookup, like the real store.
	if mapping := m.byURL[longURL]; mapping != nil && mapping.ShortCode != "" {
		return mapping, nil
	}
	return nil, nil
}

func (m *mockMappingRepo) FindByShortCode(ctx context.Context, code domain.ShortCode) (*domain.Mapping, error) {
	m.findCodeCalls++
	if m.findCodeErr != nil {
		return nil, m.findCodeErr
	}
	return m.byCode[code.String()], nil
}

func (m *mockMappingRepo) Create(ctx context.Context, longURL string, code *domain.ShortCode) (*domain.Mapping, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.nextID++
	mapping := &domain.Mapping{
		ID:        m.nextID,
		LongURL:   longURL,
		CreatedAt: time.Now().UTC(),
	}
	if code != nil {
		if _, taken := m.byCode[code.String()]; taken {
			return nil, domain.ErrCodeTaken
		}
		mapping.ShortCode = code.String()
		m.byCode[mapping.ShortCode] = mapping
	}
	m.byURL[longURL] = mapping
	return mapping, nil
}

func (m *mockMappingRepo) AssignShortCode(ctx context.Context, id int64, code domain.ShortCode) error {
	if m.assignErr != nil {
		return m.assignErr
	}
	if _, taken := m.byCode[code.String()]; taken {
		return domain.ErrCodeTaken
	}
	for _, mapping := range m.byURL {
		if mapping.ID == id {
			mapping.ShortCode = code.String()
			m.byCode[code.String()] = mapping
			return nil
		}
	}
	return errors.New("mapping not found")
}

func (m *mockMappingRepo) CodeExists(ctx context.Context, code domain.ShortCode) (bool, error) {
	m.existsCalls++
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, taken := m.byCode[code.String()]
	return taken, nil
}

// register records a pre-existing mapping so dedup and conflict paths can
// be exercised.
func (m *mockMappingRepo) register(mapping *domain.Mapping) {
	m.byCode[mapping.ShortCode] = mapping
	m.byURL[mapping.LongURL] = mapping
	if mapping.ID > m.nextID {
		m.nextID = mapping.ID
	}
}

type mockStatsRepo struct {
	rows map[string]*domain.Stats

	initErr error
	incrErr error
	getErr  error

	initCalls int
	incrCalls int

	mappings *mockMappingRepo
}

func newMockStatsRepo(mappings *mockMappingRepo) *mockStatsRepo {
	return &mockStatsRepo{
		rows:     make(map[string]*domain.Stats),
		mappings: mappings,
	}
}

func (m *mockStatsRepo) Init(ctx context.Context, code domain.ShortCode) error {
	if m.initErr != nil {
		return m.initErr
	}
	m.initCalls++
	m.rows[code.String()] = &domain.Stats{ShortCode: code.String()}
	return nil
}

func (m *mockStatsRepo) IncrementClick(ctx context.Context, code domain.ShortCode) error {
	if m.incrErr != nil {
		return m.incrErr
	}
	m.incrCalls++
	if stats, ok := m.rows[code.String()]; ok {
		stats.ClickCount++
		now := time.Now().UTC()
		stats.LastClickedAt = &now
	}
	return nil
}

func (m *mockStatsRepo) GetWithMapping(ctx context.Context, code domain.ShortCode) (*domain.Mapping, *domain.Stats, error) {
	if m.getErr != nil {
		return nil, nil, m.getErr
	}
	mapping := m.mappings.byCode[code.String()]
	if mapping == nil {
		return nil, nil, nil
	}
	return mapping, m.rows[code.String()], nil
}

type mockCache struct {
	entries map[string]string

	getCalls    int
	setCalls    int
	deleteCalls int
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string]string)}
}

func (c *mockCache) Get(ctx context.Context, code string) (string, bool) {
	c.getCalls++
	longURL, ok := c.entries[code]
	return longURL, ok
}

func (c *mockCache) Set(ctx context.Context, code, longURL string) {
	c.setCalls++
	c.entries[code] = longURL
}

func (c *mockCache) Delete(ctx context.Context, code string) {
	c.deleteCalls++
	delete(c.entries, code)
}

type mockBus struct {
	mu     sync.Mutex
	events []event.Event
	err    error
}

func (b *mockBus) Publish(ctx context.Context, e event.Event) error {
	if b.err != nil {
		return b.err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
	return nil
}

func (b *mockBus) published(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, e := range b.events {
		if e.EventName() == name {
			n++
		}
	}
	return n
}

func strPtr(s string) *string {
	return &s
}
