package picks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/survivor-league/internal/adapter/postgres/selection"
	"github.com/heartmarshall/survivor-league/internal/auth"
	"github.com/heartmarshall/survivor-league/internal/domain"
)

var (
	_ resolver      = &resolverMock{}
	_ scheduler     = &schedulerMock{}
	_ selectionRepo = &selectionRepoMock{}
	_ txManager     = &txManagerMock{}
)

type resolverMock struct {
	ResolveFunc func(ctx context.Context, claim auth.Claim) (*domain.Account, error)
}

func (m *resolverMock) Resolve(ctx context.Context, claim auth.Claim) (*domain.Account, error) {
	if m.ResolveFunc == nil {
		panic("resolverMock.ResolveFunc: method is nil but resolver.Resolve was just called")
	}
	return m.ResolveFunc(ctx, claim)
}

type schedulerMock struct {
	WeekFunc        func(ctx context.Context, season, episode int) (*domain.Week, error)
	CurrentWeekFunc func(ctx context.Context, season int, now time.Time) (*domain.Week, error)
}

func (m *schedulerMock) Week(ctx context.Context, season, episode int) (*domain.Week, error) {
	if m.WeekFunc == nil {
		panic("schedulerMock.WeekFunc: method is nil but scheduler.Week was just called")
	}
	return m.WeekFunc(ctx, season, episode)
}

func (m *schedulerMock) CurrentWeek(ctx context.Context, season int, now time.Time) (*domain.Week, error) {
	if m.CurrentWeekFunc == nil {
		panic("schedulerMock.CurrentWeekFunc: method is nil but scheduler.CurrentWeek was just called")
	}
	return m.CurrentWeekFunc(ctx, season, now)
}

type selectionRepoMock struct {
	ActiveForWeekFunc    func(ctx context.Context, accountID uuid.UUID, season, episode int) ([]domain.Selection, error)
	ActiveForAccountFunc func(ctx context.Context, accountID uuid.UUID, season int) ([]domain.Selection, error)
	ActiveForLeagueFunc  func(ctx context.Context, season int, episode *int) ([]selection.LeagueRow, error)
	RemoveActiveFunc     func(ctx context.Context, accountID uuid.UUID, season, episode int, at time.Time) (int64, error)
	InsertFunc           func(ctx context.Context, s *domain.Selection) (*domain.Selection, error)

	calls struct {
		RemoveActive []struct {
			AccountID       uuid.UUID
			Season, Episode int
		}
		Insert []struct{ Selection *domain.Selection }
	}
	lock sync.Mutex
}

func (m *selectionRepoMock) ActiveForWeek(ctx context.Context, accountID uuid.UUID, season, episode int) ([]domain.Selection, error) {
	if m.ActiveForWeekFunc == nil {
		panic("selectionRepoMock.ActiveForWeekFunc: method is nil but selectionRepo.ActiveForWeek was just called")
	}
	return m.ActiveForWeekFunc(ctx, accountID, season, episode)
}

func (m *selectionRepoMock) ActiveForAccount(ctx context.Context, accountID uuid.UUID, season int) ([]domain.Selection, error) {
	if m.ActiveForAccountFunc == nil {
		panic("selectionRepoMock.ActiveForAccountFunc: method is nil but selectionRepo.ActiveForAccount was just called")
	}
	return m.ActiveForAccountFunc(ctx, accountID, season)
}

func (m *selectionRepoMock) ActiveForLeague(ctx context.Context, season int, episode *int) ([]selection.LeagueRow, error) {
	if m.ActiveForLeagueFunc == nil {
		panic("selectionRepoMock.ActiveForLeagueFunc: method is nil but selectionRepo.ActiveForLeague was just called")
	}
	return m.ActiveForLeagueFunc(ctx, season, episode)
}

func (m *selectionRepoMock) RemoveActive(ctx context.Context, accountID uuid.UUID, season, episode int, at time.Time) (int64, error) {
	if m.RemoveActiveFunc == nil {
		panic("selectionRepoMock.RemoveActiveFunc: method is nil but selectionRepo.RemoveActive was just called")
	}
	m.lock.Lock()
	m.calls.RemoveActive = append(m.calls.RemoveActive, struct {
		AccountID       uuid.UUID
		Season, Episode int
	}{accountID, season, episode})
	m.lock.Unlock()
	return m.RemoveActiveFunc(ctx, accountID, season, episode, at)
}

func (m *selectionRepoMock) Insert(ctx context.Context, s *domain.Selection) (*domain.Selection, error) {
	if m.InsertFunc == nil {
		panic("selectionRepoMock.InsertFunc: method is nil but selectionRepo.Insert was just called")
	}
	m.lock.Lock()
	m.calls.Insert = append(m.calls.Insert, struct{ Selection *domain.Selection }{s})
	m.lock.Unlock()
	return m.InsertFunc(ctx, s)
}

func (m *selectionRepoMock) RemoveActiveCalls() []struct {
	AccountID       uuid.UUID
	Season, Episode int
} {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.calls.RemoveActive
}

func (m *selectionRepoMock) InsertCalls() []struct{ Selection *domain.Selection } {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.calls.Insert
}

// txManagerMock runs the callback inline, optionally failing the commit.
type txManagerMock struct {
	// CommitErrs is consumed one element per call: the callback runs, then
	// the popped error (if any) is returned as the transaction outcome.
	CommitErrs []error

	calls int
	lock  sync.Mutex
}

func (m *txManagerMock) RunInSerializableTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.lock.Lock()
	m.calls++
	var commitErr error
	if len(m.CommitErrs) > 0 {
		commitErr = m.CommitErrs[0]
		m.CommitErrs = m.CommitErrs[1:]
	}
	m.lock.Unlock()

	if err := fn(ctx); err != nil {
		return err
	}
	return commitErr
}

func (m *txManagerMock) Calls() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.calls
}
