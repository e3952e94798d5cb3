package service

import (
	"context"
	"testing"
	"time"

	"github.com/nightclaw/mission-control/internal/infra/kv"
	"github.com/nightclaw/mission-control/internal/modules/model"
	"github.com/nightclaw/mission-control/internal/modules/repo"
	"github.com/stretchr/testify/assert"
)

func newIncomeFixture(t *testing.T, now time.Time) (IncomeService, repo.IncomeRepo) {
	t.Helper()
	r, err := repo.NewIncomeRepo(context.Background(), kv.NewMemoryStore())
	assert.NoError(t, err)
	svc := NewIncomeService(r).(*incomeService)
	svc.now = func() time.Time { return now }
	return svc, r
}

func TestIncomeService_Create(t *testing.T) {
	now := time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		input       CreateIncomeInput
		expectError bool
		check       func(*testing.T, *model.IncomeEntry)
	}{
		{
			name:  "defaults applied",
			input: CreateIncomeInput{Source: " client site ", Amount: 500},
			check: func(t *testing.T, e *model.IncomeEntry) {
				assert.Equal(t, "client site", e.Source)
				assert.Equal(t, model.IncomeOther, e.Type)
				assert.Equal(t, "2026-02-19", e.Date)
			},
		},
		{
			name:        "empty source rejected",
			input:       CreateIncomeInput{Source: "  ", Amount: 100},
			expectError: true,
		},
		{
			name:        "zero amount rejected",
			input:       CreateIncomeInput{Source: "x", Amount: 0},
			expectError: true,
		},
		{
			name:        "negative amount rejected",
			input:       CreateIncomeInput{Source: "x", Amount: -5},
			expectError: true,
		},
		{
			name:        "unknown type rejected",
			input:       CreateIncomeInput{Source: "x", Amount: 10, Type: "tips"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, r := newIncomeFixture(t, now)

			e, err := svc.Create(context.Background(), tt.input)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalid)
				assert.Nil(t, e)
				assert.Empty(t, r.List(), "rejected input must not be persisted")
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, e)
				assert.Len(t, r.List(), 1)
				if tt.check != nil {
					tt.check(t, e)
				}
			}
		})
	}
}

func TestIncomeService_Stats(t *testing.T) {
	now := time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC)
	svc, r := newIncomeFixture(t, now)
	ctx := context.Background()

	entries := []model.IncomeEntry{
		{ID: "1", Source: "a", Amount: 100, Type: model.IncomeFreelance, Date: "2026-02-01"},
		{ID: "2", Source: "b", Amount: 250, Type: model.IncomeFreelance, Date: "2026-02-15"},
		{ID: "3", Source: "c", Amount: 900, Type: model.IncomeProduct, Date: "2026-01-10"},
		{ID: "4", Source: "d", Amount: 40, Type: model.IncomeOther, Date: "2025-11-05"},
		{ID: "5", Source: "e", Amount: 10, Type: model.IncomeOther, Date: "bad-date"},
	}
	for _, e := range entries {
		assert.NoError(t, r.Insert(ctx, e))
	}

	stats := svc.Stats()

	assert.Equal(t, 350.0, stats.ThisMonth)
	assert.Equal(t, 900.0, stats.BestMonth)

	// Trailing six months, oldest first, zero-filled, current month last.
	months := make([]string, 0, len(stats.History))
	for _, mt := range stats.History {
		months = append(months, mt.Month)
	}
	assert.Equal(t, []string{"2025-09", "2025-10", "2025-11", "2025-12", "2026-01", "2026-02"}, months)
	assert.Equal(t, 0.0, stats.History[0].Total)
	assert.Equal(t, 40.0, stats.History[2].Total)
	assert.Equal(t, 900.0, stats.History[4].Total)
	assert.Equal(t, 350.0, stats.History[5].Total)
}

func TestIncomeService_StatsEmpty(t *testing.T) {
	now := time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC)
	svc, _ := newIncomeFixture(t, now)

	stats := svc.Stats()
	assert.Equal(t, 0.0, stats.ThisMonth)
	assert.Equal(t, 0.0, stats.BestMonth)
	assert.Len(t, stats.History, 6)
	for _, mt := range stats.History {
		assert.Equal(t, 0.0, mt.Total)
	}
}

func TestIncomeService_Delete(t *testing.T) {
	now := time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC)
	svc, r := newIncomeFixture(t, now)
	ctx := context.Background()

	assert.NoError(t, r.Insert(ctx, model.IncomeEntry{ID: "1", Source: "a", Amount: 100, Date: "2026-02-01"}))

	assert.NoError(t, svc.Delete(ctx, "1"))
	assert.Empty(t, r.List())
	assert.ErrorIs(t, svc.Delete(ctx, "1"), ErrNotFound)
}
