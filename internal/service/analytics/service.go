package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/ogadoctor/triage-api/internal/model"
)

const (
	cacheKeySummary   = "summary"
	cacheKeySeverity  = "severity"
	cacheKeyHistogram = "histogram"
)

// histogramBinMins is the bucket width of the response-time histogram.
const histogramBinMins = 5

type AnalyticsService interface {
	Summary(ctx context.Context) (*model.AnalyticsSummary, error)
	Trends(ctx context.Context, filter *model.TrendFilter) ([]*model.ConsultationDay, error)
	Severity(ctx context.Context) (*model.SeverityBreakdown, error)
	ResponseTimes(ctx context.Context) ([]*model.ResponseTimeBucket, error)
}

type Service struct {
	source          Source
	consultationFee int64
	cache           *cache.Cache
}

// NewService wraps a data source with cached aggregate views. The fee
// is the per-consultation revenue assumption in minor currency units.
func NewService(source Source, consultationFee int64, ttl, sweep time.Duration) *Service {
	return &Service{
		source:          source,
		consultationFee: consultationFee,
		cache:           cache.New(ttl, sweep),
	}
}

// Summary computes the KPI card row over the full history.
func (s *Service) Summary(ctx context.Context) (*model.AnalyticsSummary, error) {
	if v, ok := s.cache.Get(cacheKeySummary); ok {
		return v.(*model.AnalyticsSummary), nil
	}

	days := s.source.History()
	if len(days) == 0 {
		return nil, fmt.Errorf("no consultation history available")
	}

	summary := &model.AnalyticsSummary{}
	urgent := 0
	responseTotal := 0
	for _, d := range days {
		summary.TotalConsultations += d.Consultations
		urgent += d.Urgent
		responseTotal += d.ResponseTimeMins
	}
	summary.AvgDaily = float64(summary.TotalConsultations) / float64(len(days))
	if summary.TotalConsultations > 0 {
		summary.UrgentPercent = float64(urgent) / float64(summary.TotalConsultations) * 100
	}
	summary.AvgResponseMins = float64(responseTotal) / float64(len(days))
	summary.RevenueEstimate = int64(summary.TotalConsultations) * s.consultationFee

	s.cache.Set(cacheKeySummary, summary, cache.DefaultExpiration)
	return summary, nil
}

// Trends returns the per-day series inside the filter window, in date
// order. Zero bounds leave that side of the window open.
func (s *Service) Trends(ctx context.Context, filter *model.TrendFilter) ([]*model.ConsultationDay, error) {
	days := s.source.History()

	out := make([]*model.ConsultationDay, 0, len(days))
	for _, d := range days {
		if filter != nil {
			if !filter.StartDate.IsZero() && d.Date.Before(filter.StartDate) {
				continue
			}
			if !filter.EndDate.IsZero() && d.Date.After(filter.EndDate) {
				continue
			}
		}
		out = append(out, d)
	}
	return out, nil
}

// Severity totals the per-severity counts for the pie chart.
func (s *Service) Severity(ctx context.Context) (*model.SeverityBreakdown, error) {
	if v, ok := s.cache.Get(cacheKeySeverity); ok {
		return v.(*model.SeverityBreakdown), nil
	}

	breakdown := &model.SeverityBreakdown{}
	for _, d := range s.source.History() {
		breakdown.Urgent += d.Urgent
		breakdown.Moderate += d.Moderate
		breakdown.Mild += d.Mild
	}

	s.cache.Set(cacheKeySeverity, breakdown, cache.DefaultExpiration)
	return breakdown, nil
}

// ResponseTimes buckets daily response times into fixed-width bins.
// Empty leading and trailing bins are trimmed, interior gaps are kept so
// the histogram x-axis stays continuous.
func (s *Service) ResponseTimes(ctx context.Context) ([]*model.ResponseTimeBucket, error) {
	if v, ok := s.cache.Get(cacheKeyHistogram); ok {
		return v.([]*model.ResponseTimeBucket), nil
	}

	days := s.source.History()
	if len(days) == 0 {
		return nil, nil
	}

	minBin, maxBin := -1, -1
	counts := map[int]int{}
	for _, d := range days {
		bin := d.ResponseTimeMins / histogramBinMins
		counts[bin]++
		if minBin == -1 || bin < minBin {
			minBin = bin
		}
		if bin > maxBin {
			maxBin = bin
		}
	}

	buckets := make([]*model.ResponseTimeBucket, 0, maxBin-minBin+1)
	for bin := minBin; bin <= maxBin; bin++ {
		buckets = append(buckets, &model.ResponseTimeBucket{
			FromMins: bin * histogramBinMins,
			ToMins:   (bin + 1) * histogramBinMins,
			Count:    counts[bin],
		})
	}

	s.cache.Set(cacheKeyHistogram, buckets, cache.DefaultExpiration)
	return buckets, nil
}
