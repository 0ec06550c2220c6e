package triage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ogadoctor/triage-api/internal/model"
	"github.com/ogadoctor/triage-api/internal/repository"
	"github.com/ogadoctor/triage-api/pkg/errors"
	"github.com/ogadoctor/triage-api/pkg/metrics"
)

type TriageService interface {
	Intake(ctx context.Context, req *model.CreateCaseRequest) (*model.PatientCase, error)
	AddSample(ctx context.Context, priority model.Priority) (*model.PatientCase, error)
	Snapshot(ctx context.Context) (*model.QueueSnapshot, error)
	Respond(ctx context.Context, index int, status model.CaseStatus) (*model.PatientCase, error)
	Complete(ctx context.Context, index int) (*model.PatientCase, error)
	ClearQueue(ctx context.Context) (int, error)
}

type Service struct {
	repo    repository.QueueRepository
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(repo repository.QueueRepository, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		metrics: m,
		now:     time.Now,
	}
}

// Intake validates the request and places the case in the queue
// according to its priority.
func (s *Service) Intake(ctx context.Context, req *model.CreateCaseRequest) (*model.PatientCase, error) {
	if !req.Priority.Valid() {
		return nil, errors.NewBadRequest(fmt.Sprintf("unknown priority %q", req.Priority), nil)
	}

	c := &model.PatientCase{
		ID:                uuid.New(),
		Name:              req.Name,
		Age:               req.Age,
		Phone:             req.Phone,
		Symptoms:          req.Symptoms,
		Severity:          req.Severity,
		Duration:          req.Duration,
		PossibleDiagnosis: req.PossibleDiagnosis,
		RecommendedDrugs:  req.RecommendedDrugs,
		Priority:          req.Priority,
		Status:            model.CaseStatusNew,
		ReceivedAt:        s.now(),
	}

	if err := s.repo.Enqueue(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to enqueue case: %w", err)
	}

	s.metrics.CasesEnqueued.WithLabelValues(string(c.Priority)).Inc()
	s.trackDepth(ctx)

	return c, nil
}

// AddSample enqueues the canned patient for the given priority, the
// test-mode path for exercising the queue without real intake data.
func (s *Service) AddSample(ctx context.Context, priority model.Priority) (*model.PatientCase, error) {
	req, ok := samples[priority]
	if !ok {
		return nil, errors.NewBadRequest(fmt.Sprintf("unknown priority %q", priority), nil)
	}
	return s.Intake(ctx, &req)
}

// Snapshot returns the queue in service order plus the metric strip.
func (s *Service) Snapshot(ctx context.Context) (*model.QueueSnapshot, error) {
	cases, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list queue: %w", err)
	}

	now := s.now()
	summary := model.QueueSummary{TotalInQueue: len(cases)}
	for _, c := range cases {
		if c.Priority == model.PriorityUrgent {
			summary.UrgentCount++
		}
		if sameDay(c.ReceivedAt, now) {
			summary.TodayConsultations++
		}
	}
	// Urgent cases pull operators forward, shortening the expected wait.
	if summary.UrgentCount > 0 {
		summary.ExpectedWait = "5-10 min"
	} else {
		summary.ExpectedWait = "15-20 min"
	}

	return &model.QueueSnapshot{Summary: summary, Cases: cases}, nil
}

// Respond records the operator's stock decision for the case at index.
func (s *Service) Respond(ctx context.Context, index int, status model.CaseStatus) (*model.PatientCase, error) {
	if status != model.CaseStatusConfirmed && status != model.CaseStatusReferred {
		return nil, errors.NewBadRequest(fmt.Sprintf("status must be %q or %q", model.CaseStatusConfirmed, model.CaseStatusReferred), nil)
	}

	before, err := s.repo.Get(ctx, index)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.SetStatus(ctx, index, status)
	if err != nil {
		return nil, err
	}

	s.metrics.CasesResponded.WithLabelValues(string(status)).Inc()
	if before.Status == model.CaseStatusNew && c.RespondedAt != nil {
		s.metrics.ResponseLatency.Observe(c.RespondedAt.Sub(c.ReceivedAt).Seconds())
	}

	return c, nil
}

// Complete removes the case at index from the queue. This is the only
// path that removes a case; confirmed and referred cases stay visible
// until completed.
func (s *Service) Complete(ctx context.Context, index int) (*model.PatientCase, error) {
	c, err := s.repo.Remove(ctx, index)
	if err != nil {
		return nil, err
	}

	s.metrics.CasesCompleted.Inc()
	s.trackDepth(ctx)

	return c, nil
}

// ClearQueue removes every case and reports how many were dropped.
func (s *Service) ClearQueue(ctx context.Context) (int, error) {
	n, err := s.repo.Clear(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear queue: %w", err)
	}
	s.metrics.QueueDepth.Set(0)
	return n, nil
}

func (s *Service) trackDepth(ctx context.Context) {
	if n, err := s.repo.Len(ctx); err == nil {
		s.metrics.QueueDepth.Set(float64(n))
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
