package identity

import (
	"context"
	"sync"

	"github.com/heartmarshall/survivor-league/internal/domain"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	GetBySubjectFunc func(ctx context.Context, subject string) (*domain.Account, error)
	GetByEmailFunc   func(ctx context.Context, email string) (*domain.Account, error)
	CreateFunc       func(ctx context.Context, a *domain.Account) (*domain.Account, error)

	calls struct {
		GetBySubject []struct{ Subject string }
		GetByEmail   []struct{ Email string }
		Create       []struct{ Account *domain.Account }
	}
	lock sync.Mutex
}

func (m *accountRepoMock) GetBySubject(ctx context.Context, subject string) (*domain.Account, error) {
	if m.GetBySubjectFunc == nil {
		panic("accountRepoMock.GetBySubjectFunc: method is nil but accountRepo.GetBySubject was just called")
	}
	m.lock.Lock()
	m.calls.GetBySubject = append(m.calls.GetBySubject, struct{ Subject string }{subject})
	m.lock.Unlock()
	return m.GetBySubjectFunc(ctx, subject)
}

func (m *accountRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.GetByEmailFunc == nil {
		panic("accountRepoMock.GetByEmailFunc: method is nil but accountRepo.GetByEmail was just called")
	}
	m.lock.Lock()
	m.calls.GetByEmail = append(m.calls.GetByEmail, struct{ Email string }{email})
	m.lock.Unlock()
	return m.GetByEmailFunc(ctx, email)
}

func (m *accountRepoMock) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	if m.CreateFunc == nil {
		panic("accountRepoMock.CreateFunc: method is nil but accountRepo.Create was just called")
	}
	m.lock.Lock()
	m.calls.Create = append(m.calls.Create, struct{ Account *domain.Account }{a})
	m.lock.Unlock()
	return m.CreateFunc(ctx, a)
}

func (m *accountRepoMock) GetBySubjectCalls() []struct{ Subject string } {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.calls.GetBySubject
}

func (m *accountRepoMock) GetByEmailCalls() []struct{ Email string } {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.calls.GetByEmail
}

func (m *accountRepoMock) CreateCalls() []struct{ Account *domain.Account } {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.calls.Create
}
