package week_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/heartmarshall/survivor-league/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/survivor-league/internal/adapter/postgres/week"
	"github.com/heartmarshall/survivor-league/internal/domain"
)

func TestRepo_Get(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := week.New(pool)

	lockTime := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Microsecond)
	testhelper.SeedWeek(t, pool, 61, 1, lockTime)

	got, err := repo.Get(context.Background(), 61, 1)
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	if got.Season != 61 || got.Episode != 1 {
		t.Errorf("Get: got %+v", got)
	}
	if !got.LockTime.Equal(lockTime) {
		t.Errorf("lock time: got %v, want %v", got.LockTime, lockTime)
	}
}

func TestRepo_Get_NotFound(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := week.New(pool)

	_, err := repo.Get(context.Background(), 61, 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_ListBySeason_Ordered(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := week.New(pool)

	base := time.Now().UTC().Truncate(time.Microsecond)
	testhelper.SeedWeek(t, pool, 62, 2, base.Add(14*24*time.Hour))
	testhelper.SeedWeek(t, pool, 62, 1, base.Add(7*24*time.Hour))
	testhelper.SeedWeek(t, pool, 62, 3, base.Add(21*24*time.Hour))

	weeks, err := repo.ListBySeason(context.Background(), 62)
	if err != nil {
		t.Fatalf("ListBySeason: unexpected error: %v", err)
	}
	if len(weeks) != 3 {
		t.Fatalf("got %d weeks, want 3", len(weeks))
	}
	for i, w := range weeks {
		if w.Episode != i+1 {
			t.Errorf("position %d: episode %d, want %d", i, w.Episode, i+1)
		}
	}
}

func TestRepo_ListBySeason_Empty(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := week.New(pool)

	weeks, err := repo.ListBySeason(context.Background(), 9999)
	if err != nil {
		t.Fatalf("ListBySeason: unexpected error: %v", err)
	}
	if len(weeks) != 0 {
		t.Errorf("got %d weeks, want 0", len(weeks))
	}
}
