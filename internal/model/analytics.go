package model

import "time"

// ConsultationDay is one day of historical consultation stats, the row
// unit behind the analytics charts.
type ConsultationDay struct {
	Date             time.Time `json:"date"`
	Consultations    int       `json:"consultations"`
	Urgent           int       `json:"urgent"`
	Moderate         int       `json:"moderate"`
	Mild             int       `json:"mild"`
	ResponseTimeMins int       `json:"response_time_mins"`
}

// AnalyticsSummary is the KPI card row on the analytics page.
type AnalyticsSummary struct {
	TotalConsultations int     `json:"total_consultations"`
	AvgDaily           float64 `json:"avg_daily"`
	UrgentPercent      float64 `json:"urgent_percent"`
	AvgResponseMins    float64 `json:"avg_response_mins"`
	RevenueEstimate    int64   `json:"revenue_estimate"`
}

// SeverityBreakdown holds the totals behind the severity pie chart.
type SeverityBreakdown struct {
	Urgent   int `json:"urgent"`
	Moderate int `json:"moderate"`
	Mild     int `json:"mild"`
}

// ResponseTimeBucket is one bar of the response-time histogram.
type ResponseTimeBucket struct {
	FromMins int `json:"from_mins"`
	ToMins   int `json:"to_mins"`
	Count    int `json:"count"`
}

// TrendFilter bounds a per-day series request. Zero values mean the
// full available window.
type TrendFilter struct {
	StartDate time.Time `json:"start_date" form:"start_date" time_format:"2006-01-02"`
	EndDate   time.Time `json:"end_date" form:"end_date" time_format:"2006-01-02"`
}
