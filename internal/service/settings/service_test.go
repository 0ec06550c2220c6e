package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogadoctor/triage-api/internal/model"
	"github.com/ogadoctor/triage-api/internal/repository/memory"
	"github.com/ogadoctor/triage-api/pkg/errors"
)

func newService() *Service {
	return NewService(memory.NewSettingsRepository(model.PharmacyInfo{
		Name:  "Blue Pill Pharmacy",
		Phone: "+234 803 XXX XXXX",
		Email: "contact@bluepill.ng",
		Hours: "8AM - 8PM Mon-Sat",
	}))
}

func TestPharmacyRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	info, err := svc.GetPharmacy(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Blue Pill Pharmacy", info.Name)

	updated, err := svc.UpdatePharmacy(ctx, &model.UpdatePharmacyRequest{
		Name:  "Green Cross Pharmacy",
		Phone: "+234 801 XXX XXXX",
		Email: "hello@greencross.ng",
		Hours: "9AM - 6PM",
	})
	require.NoError(t, err)
	assert.Equal(t, "Green Cross Pharmacy", updated.Name)

	info, err = svc.GetPharmacy(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Green Cross Pharmacy", info.Name)
}

func TestNotificationPrefsRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	prefs, err := svc.GetNotificationPrefs(ctx)
	require.NoError(t, err)
	assert.True(t, prefs.EmailUrgent)
	assert.Equal(t, 10, prefs.UrgentThresholdMins)

	off := false
	on := true
	updated, err := svc.UpdateNotificationPrefs(ctx, &model.UpdateNotificationPrefsRequest{
		EmailUrgent:         &off,
		SMSLowStock:         &on,
		WhatsApp:            &off,
		Browser:             &on,
		UrgentThresholdMins: 15,
	})
	require.NoError(t, err)
	assert.False(t, updated.EmailUrgent)
	assert.True(t, updated.Browser)
	assert.Equal(t, 15, updated.UrgentThresholdMins)
}

func TestDataActionsAreNotImplemented(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	assert.True(t, errors.IsNotImplemented(svc.ExportConsultations(ctx)))
	assert.True(t, errors.IsNotImplemented(svc.ExportInventory(ctx)))
	assert.True(t, errors.IsNotImplemented(svc.GenerateMonthlyReport(ctx)))
	assert.True(t, errors.IsNotImplemented(svc.ResetAllData(ctx)))
}
