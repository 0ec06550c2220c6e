package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ogadoctor/triage-api/internal/model"
	"github.com/ogadoctor/triage-api/internal/repository"
	"github.com/ogadoctor/triage-api/pkg/errors"
)

type queueRepository struct {
	mu    sync.RWMutex
	cases []*model.PatientCase
	now   func() time.Time
}

// NewQueueRepository returns an empty in-memory live queue. State lives
// only for the duration of the process.
func NewQueueRepository() repository.QueueRepository {
	return &queueRepository{now: time.Now}
}

// NewQueueRepositoryWithClock is NewQueueRepository with an injectable
// clock for deterministic timestamps in tests.
func NewQueueRepositoryWithClock(now func() time.Time) repository.QueueRepository {
	return &queueRepository{now: now}
}

func (r *queueRepository) Enqueue(ctx context.Context, c *model.PatientCase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Urgent cases jump the line, everything else waits its turn.
	if c.Priority == model.PriorityUrgent {
		r.cases = append([]*model.PatientCase{c}, r.cases...)
	} else {
		r.cases = append(r.cases, c)
	}
	return nil
}

func (r *queueRepository) ListAll(ctx context.Context) ([]*model.PatientCase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Copy entries as well as the slice so callers cannot reach back
	// into the container through the snapshot.
	out := make([]*model.PatientCase, len(r.cases))
	for i, c := range r.cases {
		cp := *c
		out[i] = &cp
	}
	return out, nil
}

func (r *queueRepository) Get(ctx context.Context, index int) (*model.PatientCase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.cases) {
		return nil, errors.NewOutOfRange(index, len(r.cases))
	}
	cp := *r.cases[index]
	return &cp, nil
}

func (r *queueRepository) SetStatus(ctx context.Context, index int, status model.CaseStatus) (*model.PatientCase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.cases) {
		return nil, errors.NewOutOfRange(index, len(r.cases))
	}

	c := r.cases[index]
	c.Status = status
	// Every decision re-stamps the response time, repeat decisions
	// included: RespondedAt is the time of the latest operator call.
	if status != model.CaseStatusNew {
		ts := r.now()
		c.RespondedAt = &ts
	} else {
		c.RespondedAt = nil
	}

	cp := *c
	return &cp, nil
}

func (r *queueRepository) Remove(ctx context.Context, index int) (*model.PatientCase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.cases) {
		return nil, errors.NewOutOfRange(index, len(r.cases))
	}

	removed := r.cases[index]
	r.cases = append(r.cases[:index], r.cases[index+1:]...)

	cp := *removed
	return &cp, nil
}

func (r *queueRepository) Clear(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.cases)
	r.cases = nil
	return n, nil
}

func (r *queueRepository) Len(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cases), nil
}
