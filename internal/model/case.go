package model

import (
	"time"

	"github.com/google/uuid"
)

// Priority is the urgency classification assigned at intake. It never
// changes for the lifetime of a case.
type Priority string

const (
	PriorityUrgent   Priority = "URGENT"
	PriorityModerate Priority = "MODERATE"
	PriorityLow      Priority = "LOW"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityModerate, PriorityLow:
		return true
	}
	return false
}

// Label returns the operator-facing label for the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityUrgent:
		return "Urgent"
	case PriorityModerate:
		return "Moderate"
	case PriorityLow:
		return "Low"
	}
	return "Unknown"
}

// Color returns the display color hex for the priority.
func (p Priority) Color() string {
	switch p {
	case PriorityUrgent:
		return "#f44336"
	case PriorityModerate:
		return "#ff9800"
	case PriorityLow:
		return "#4caf50"
	}
	return "#9e9e9e"
}

// CaseStatus is the operator-driven outcome classification of a case.
type CaseStatus string

const (
	CaseStatusNew       CaseStatus = "new"
	CaseStatusConfirmed CaseStatus = "confirmed"
	CaseStatusReferred  CaseStatus = "referred"
)

func (s CaseStatus) Valid() bool {
	switch s {
	case CaseStatusNew, CaseStatusConfirmed, CaseStatusReferred:
		return true
	}
	return false
}

// Label returns the operator-facing label for the status.
func (s CaseStatus) Label() string {
	switch s {
	case CaseStatusNew:
		return "New"
	case CaseStatusConfirmed:
		return "Confirmed"
	case CaseStatusReferred:
		return "Referred"
	}
	return "Unknown"
}

// PatientCase is one entry in the live consultation queue.
//
// RespondedAt is nil exactly while Status is new; every operator
// decision (confirm or refer) stamps it with the decision time, including
// repeat decisions on an already-responded case.
type PatientCase struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Age               int        `json:"age"`
	Phone             string     `json:"phone,omitempty"`
	Symptoms          string     `json:"symptoms"`
	Severity          string     `json:"severity"`
	Duration          string     `json:"duration"`
	PossibleDiagnosis string     `json:"possible_diagnosis"`
	RecommendedDrugs  string     `json:"recommended_drugs"`
	Priority          Priority   `json:"priority"`
	Status            CaseStatus `json:"status"`
	ReceivedAt        time.Time  `json:"received_at"`
	RespondedAt       *time.Time `json:"responded_at,omitempty"`
}

// CreateCaseRequest is the intake payload for a new patient case.
type CreateCaseRequest struct {
	Name              string   `json:"name" binding:"required"`
	Age               int      `json:"age" binding:"required,gte=0"`
	Phone             string   `json:"phone"`
	Symptoms          string   `json:"symptoms" binding:"required"`
	Severity          string   `json:"severity"`
	Duration          string   `json:"duration"`
	PossibleDiagnosis string   `json:"possible_diagnosis"`
	RecommendedDrugs  string   `json:"recommended_drugs"`
	Priority          Priority `json:"priority" binding:"required"`
}

// RespondRequest carries the operator's stock decision for a queued case.
type RespondRequest struct {
	Status CaseStatus `json:"status" binding:"required"`
}

// NotifyChannel identifies a patient contact channel.
type NotifyChannel string

const (
	NotifyChannelCall     NotifyChannel = "call"
	NotifyChannelWhatsApp NotifyChannel = "whatsapp"
	NotifyChannelSMS      NotifyChannel = "sms"
)

func (c NotifyChannel) Valid() bool {
	switch c {
	case NotifyChannelCall, NotifyChannelWhatsApp, NotifyChannelSMS:
		return true
	}
	return false
}

// NotifyRequest selects the channel for a patient notification.
type NotifyRequest struct {
	Channel NotifyChannel `json:"channel" binding:"required"`
}

// AddSampleRequest selects which canned sample patient to enqueue.
type AddSampleRequest struct {
	Priority Priority `json:"priority" binding:"required"`
}

// QueueSummary is the metric strip above the live queue.
type QueueSummary struct {
	UrgentCount        int    `json:"urgent_count"`
	TotalInQueue       int    `json:"total_in_queue"`
	TodayConsultations int    `json:"today_consultations"`
	ExpectedWait       string `json:"expected_wait"`
}

// QueueSnapshot is the full live-queue view.
type QueueSnapshot struct {
	Summary QueueSummary   `json:"summary"`
	Cases   []*PatientCase `json:"cases"`
}
