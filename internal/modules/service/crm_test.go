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

func newCRMFixture(t *testing.T) (CRMService, repo.ClientRepo) {
	t.Helper()
	r, err := repo.NewClientRepo(context.Background(), kv.NewMemoryStore())
	assert.NoError(t, err)
	svc := NewCRMService(r).(*crmService)
	svc.now = func() time.Time { return time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC) }
	return svc, r
}

func TestCRMService_Create(t *testing.T) {
	tests := []struct {
		name        string
		input       CreateClientInput
		expectError bool
	}{
		{name: "new client starts as lead", input: CreateClientInput{Name: "Acme", Service: "site build", Value: 1500}},
		{name: "zero value allowed", input: CreateClientInput{Name: "Friend referral"}},
		{name: "empty name rejected", input: CreateClientInput{Name: "  "}, expectError: true},
		{name: "negative value rejected", input: CreateClientInput{Name: "Acme", Value: -10}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, r := newCRMFixture(t)

			c, err := svc.Create(context.Background(), tt.input)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalid)
				assert.Empty(t, r.List())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StageLead, c.Stage)
				assert.Equal(t, "2026-02-19", c.Date)
			}
		})
	}
}

func TestCRMService_SetStage(t *testing.T) {
	svc, r := newCRMFixture(t)
	ctx := context.Background()
	assert.NoError(t, r.Insert(ctx, model.Client{ID: "c1", Name: "Acme", Stage: model.StageLead}))

	assert.NoError(t, svc.SetStage(ctx, "c1", model.StageProposal))
	assert.Equal(t, model.StageProposal, r.List()[0].Stage)

	assert.ErrorIs(t, svc.SetStage(ctx, "c1", "won"), ErrInvalid)
	assert.ErrorIs(t, svc.SetStage(ctx, "missing", model.StageActive), ErrNotFound)
}

func TestCRMService_Summary(t *testing.T) {
	svc, r := newCRMFixture(t)
	ctx := context.Background()

	clients := []model.Client{
		{ID: "1", Name: "a", Stage: model.StageLead, Value: 100},
		{ID: "2", Name: "b", Stage: model.StageContacted, Value: 200},
		{ID: "3", Name: "c", Stage: model.StageProposal, Value: 400},
		{ID: "4", Name: "d", Stage: model.StageActive, Value: 300},
		{ID: "5", Name: "e", Stage: model.StageClosed, Value: 9000},
	}
	for _, c := range clients {
		assert.NoError(t, r.Insert(ctx, c))
	}

	sum := svc.Summary()
	// Closed deals are out of the pipeline entirely.
	assert.Equal(t, 1000.0, sum.PipelineValue)
	assert.Equal(t, 2, sum.Leads)
	assert.Equal(t, 1, sum.Active)
}

func TestCRMService_SummaryEmpty(t *testing.T) {
	svc, _ := newCRMFixture(t)
	sum := svc.Summary()
	assert.Equal(t, 0.0, sum.PipelineValue)
	assert.Equal(t, 0, sum.Leads)
	assert.Equal(t, 0, sum.Active)
}
