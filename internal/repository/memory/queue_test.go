package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogadoctor/triage-api/internal/model"
	"github.com/ogadoctor/triage-api/pkg/errors"
)

func newCase(name string, priority model.Priority) *model.PatientCase {
	return &model.PatientCase{
		Name:       name,
		Priority:   priority,
		Status:     model.CaseStatusNew,
		ReceivedAt: time.Now(),
	}
}

func names(cases []*model.PatientCase) []string {
	out := make([]string, len(cases))
	for i, c := range cases {
		out[i] = c.Name
	}
	return out
}

func TestEnqueueUrgentJumpsTheLine(t *testing.T) {
	ctx := context.Background()
	repo := NewQueueRepository()

	require.NoError(t, repo.Enqueue(ctx, newCase("A", model.PriorityLow)))
	require.NoError(t, repo.Enqueue(ctx, newCase("B", model.PriorityUrgent)))
	require.NoError(t, repo.Enqueue(ctx, newCase("C", model.PriorityModerate)))

	cases, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, names(cases))
}

func TestListAllReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewQueueRepository()
	require.NoError(t, repo.Enqueue(ctx, newCase("A", model.PriorityLow)))

	snapshot, err := repo.ListAll(ctx)
	require.NoError(t, err)

	// Mutating the snapshot must not reach the container.
	snapshot[0].Name = "tampered"
	snapshot[0].Status = model.CaseStatusReferred

	fresh, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", fresh[0].Name)
	assert.Equal(t, model.CaseStatusNew, fresh[0].Status)
}

func TestSetStatusStampsRespondedAt(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	repo := NewQueueRepositoryWithClock(func() time.Time { return current })

	require.NoError(t, repo.Enqueue(ctx, newCase("A", model.PriorityLow)))

	updated, err := repo.SetStatus(ctx, 0, model.CaseStatusConfirmed)
	require.NoError(t, err)
	require.NotNil(t, updated.RespondedAt)
	assert.Equal(t, model.CaseStatusConfirmed, updated.Status)
	first := *updated.RespondedAt
	assert.Equal(t, current, first)

	// Repeat decisions re-stamp: RespondedAt tracks the latest call.
	current = current.Add(5 * time.Minute)
	updated, err = repo.SetStatus(ctx, 0, model.CaseStatusReferred)
	require.NoError(t, err)
	require.NotNil(t, updated.RespondedAt)
	assert.Equal(t, model.CaseStatusReferred, updated.Status)
	assert.True(t, updated.RespondedAt.After(first))
}

func TestSetStatusOutOfRange(t *testing.T) {
	ctx := context.Background()
	repo := NewQueueRepository()
	require.NoError(t, repo.Enqueue(ctx, newCase("A", model.PriorityLow)))

	for _, index := range []int{-1, 1, 99} {
		_, err := repo.SetStatus(ctx, index, model.CaseStatusConfirmed)
		assert.True(t, errors.IsOutOfRange(err), "index %d", index)
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewQueueRepository()
	require.NoError(t, repo.Enqueue(ctx, newCase("A", model.PriorityLow)))
	require.NoError(t, repo.Enqueue(ctx, newCase("B", model.PriorityModerate)))
	require.NoError(t, repo.Enqueue(ctx, newCase("C", model.PriorityLow)))

	removed, err := repo.Remove(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "B", removed.Name)

	cases, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, names(cases))
}

func TestRemoveFromEmptyQueue(t *testing.T) {
	repo := NewQueueRepository()

	_, err := repo.Remove(context.Background(), 0)
	assert.True(t, errors.IsOutOfRange(err))
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	repo := NewQueueRepository()
	require.NoError(t, repo.Enqueue(ctx, newCase("A", model.PriorityLow)))
	require.NoError(t, repo.Enqueue(ctx, newCase("B", model.PriorityUrgent)))

	n, err := repo.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	length, err := repo.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, length)
}
