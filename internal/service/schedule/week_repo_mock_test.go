package schedule

import (
	"context"
	"sync"

	"github.com/heartmarshall/survivor-league/internal/domain"
)

var _ weekRepo = &weekRepoMock{}

type weekRepoMock struct {
	GetFunc          func(ctx context.Context, season, episode int) (*domain.Week, error)
	ListBySeasonFunc func(ctx context.Context, season int) ([]domain.Week, error)

	calls struct {
		Get          []struct{ Season, Episode int }
		ListBySeason []struct{ Season int }
	}
	lock sync.Mutex
}

func (m *weekRepoMock) Get(ctx context.Context, season, episode int) (*domain.Week, error) {
	if m.GetFunc == nil {
		panic("weekRepoMock.GetFunc: method is nil but weekRepo.Get was just called")
	}
	m.lock.Lock()
	m.calls.Get = append(m.calls.Get, struct{ Season, Episode int }{season, episode})
	m.lock.Unlock()
	return m.GetFunc(ctx, season, episode)
}

func (m *weekRepoMock) ListBySeason(ctx context.Context, season int) ([]domain.Week, error) {
	if m.ListBySeasonFunc == nil {
		panic("weekRepoMock.ListBySeasonFunc: method is nil but weekRepo.ListBySeason was just called")
	}
	m.lock.Lock()
	m.calls.ListBySeason = append(m.calls.ListBySeason, struct{ Season int }{season})
	m.lock.Unlock()
	return m.ListBySeasonFunc(ctx, season)
}

func (m *weekRepoMock) ListBySeasonCalls() []struct{ Season int } {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.calls.ListBySeason
}
