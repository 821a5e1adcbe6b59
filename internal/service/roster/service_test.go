package roster

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/survivor-league/internal/domain"
)

type castawayRepoMock struct {
	ListBySeasonFunc func(ctx context.Context, season int) ([]domain.Castaway, error)
}

func (m *castawayRepoMock) ListBySeason(ctx context.Context, season int) ([]domain.Castaway, error) {
	if m.ListBySeasonFunc == nil {
		panic("castawayRepoMock.ListBySeasonFunc: method is nil but castawayRepo.ListBySeason was just called")
	}
	return m.ListBySeasonFunc(ctx, season)
}

func newTestService(castaways castawayRepo) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, castaways, 48)
}

func TestService_Castaways(t *testing.T) {
	t.Parallel()

	eliminated := 3
	want := []domain.Castaway{
		{ID: uuid.New(), Name: "Alex", Season: 48},
		{ID: uuid.New(), Name: "Blair", Season: 48, EliminatedWeek: &eliminated},
	}

	castaways := &castawayRepoMock{
		ListBySeasonFunc: func(ctx context.Context, season int) ([]domain.Castaway, error) {
			assert.Equal(t, 48, season, "roster is scoped to the configured season")
			return want, nil
		},
	}

	got, err := newTestService(castaways).Castaways(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got, "eliminated castaways stay on the roster")
}

func TestService_Castaways_RepoError(t *testing.T) {
	t.Parallel()

	boom := errors.New("query canceled")
	castaways := &castawayRepoMock{
		ListBySeasonFunc: func(ctx context.Context, season int) ([]domain.Castaway, error) {
			return nil, boom
		},
	}

	_, err := newTestService(castaways).Castaways(context.Background())

	require.ErrorIs(t, err, boom)
}
