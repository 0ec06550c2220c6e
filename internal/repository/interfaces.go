package repository

import (
	"context"

	"github.com/ogadoctor/triage-api/internal/model"
)

// All repository interfaces in one file
type (
	// QueueRepository is the live-queue container. Order is the service
	// order: index 0 is served next. Urgent cases are inserted at the
	// front, everything else is appended.
	QueueRepository interface {
		Enqueue(ctx context.Context, c *model.PatientCase) error
		ListAll(ctx context.Context) ([]*model.PatientCase, error)
		Get(ctx context.Context, index int) (*model.PatientCase, error)
		SetStatus(ctx context.Context, index int, status model.CaseStatus) (*model.PatientCase, error)
		Remove(ctx context.Context, index int) (*model.PatientCase, error)
		Clear(ctx context.Context) (int, error)
		Len(ctx context.Context) (int, error)
	}

	// InventoryRepository holds the medication stock table, keyed by
	// medication name.
	InventoryRepository interface {
		List(ctx context.Context) ([]*model.InventoryItem, error)
		Get(ctx context.Context, medication string) (*model.InventoryItem, error)
	}

	// SettingsRepository stores the pharmacy details and notification
	// preferences for the running session.
	SettingsRepository interface {
		GetPharmacy(ctx context.Context) (*model.PharmacyInfo, error)
		UpdatePharmacy(ctx context.Context, info *model.PharmacyInfo) error
		GetNotificationPrefs(ctx context.Context) (*model.NotificationPrefs, error)
		UpdateNotificationPrefs(ctx context.Context, prefs *model.NotificationPrefs) error
	}
)
