package memory

import (
	"context"
	"sync"

	"github.com/ogadoctor/triage-api/internal/model"
	"github.com/ogadoctor/triage-api/internal/repository"
)

type settingsRepository struct {
	mu       sync.RWMutex
	pharmacy model.PharmacyInfo
	prefs    model.NotificationPrefs
}

// NewSettingsRepository returns an in-memory settings store seeded with
// the configured pharmacy details and default notification preferences.
func NewSettingsRepository(pharmacy model.PharmacyInfo) repository.SettingsRepository {
	return &settingsRepository{
		pharmacy: pharmacy,
		prefs: model.NotificationPrefs{
			EmailUrgent:         true,
			SMSLowStock:         true,
			WhatsApp:            true,
			Browser:             false,
			UrgentThresholdMins: 10,
		},
	}
}

func (r *settingsRepository) GetPharmacy(ctx context.Context) (*model.PharmacyInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := r.pharmacy
	return &cp, nil
}

func (r *settingsRepository) UpdatePharmacy(ctx context.Context, info *model.PharmacyInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pharmacy = *info
	return nil
}

func (r *settingsRepository) GetNotificationPrefs(ctx context.Context) (*model.NotificationPrefs, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := r.prefs
	return &cp, nil
}

func (r *settingsRepository) UpdateNotificationPrefs(ctx context.Context, prefs *model.NotificationPrefs) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prefs = *prefs
	return nil
}
