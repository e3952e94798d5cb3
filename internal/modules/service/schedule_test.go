package service

import (
	"context"
	"testing"

	"github.com/nightclaw/mission-control/internal/infra/kv"
	"github.com/nightclaw/mission-control/internal/modules/repo"
	"github.com/stretchr/testify/assert"
)

func newScheduleFixture(t *testing.T) ScheduleService {
	t.Helper()
	r := repo.NewScheduleRepo(context.Background(), kv.NewMemoryStore())
	return NewScheduleService(r)
}

func TestScheduleService_AddTask(t *testing.T) {
	tests := []struct {
		name        string
		input       AddTaskInput
		wantDay     string
		expectError bool
	}{
		{name: "valid task", input: AddTaskInput{Date: "2026-02-19", Text: "ship it"}, wantDay: "2026-02-19"},
		{name: "date with time of day normalized", input: AddTaskInput{Date: "2026-02-19 09:00", Text: "standup"}, wantDay: "2026-02-19"},
		{name: "bad date rejected", input: AddTaskInput{Date: "next tuesday", Text: "x"}, expectError: true},
		{name: "empty text rejected", input: AddTaskInput{Date: "2026-02-19", Text: "  "}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newScheduleFixture(t)

			task, err := svc.AddTask(context.Background(), tt.input)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalid)
				assert.Empty(t, svc.All())
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, task.ID)
				assert.False(t, task.Done)
				assert.Len(t, svc.All()[tt.wantDay], 1)
			}
		})
	}
}

func TestScheduleService_ToggleAndRemove(t *testing.T) {
	svc := newScheduleFixture(t)
	ctx := context.Background()

	task, err := svc.AddTask(ctx, AddTaskInput{Date: "2026-02-19", Text: "ship it"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Toggle(ctx, "2026-02-19", task.ID))
	assert.True(t, svc.All()["2026-02-19"][0].Done)

	assert.ErrorIs(t, svc.Toggle(ctx, "2026-02-19", "missing"), ErrNotFound)
	assert.ErrorIs(t, svc.Toggle(ctx, "2026-02-20", task.ID), ErrNotFound)

	assert.NoError(t, svc.Remove(ctx, "2026-02-19", task.ID))
	assert.Empty(t, svc.All())
	assert.ErrorIs(t, svc.Remove(ctx, "2026-02-19", task.ID), ErrNotFound)
}
