package settings

import (
	"context"
	"fmt"

	"github.com/ogadoctor/triage-api/internal/model"
	"github.com/ogadoctor/triage-api/internal/repository"
	"github.com/ogadoctor/triage-api/pkg/errors"
)

type SettingsService interface {
	GetPharmacy(ctx context.Context) (*model.PharmacyInfo, error)
	UpdatePharmacy(ctx context.Context, req *model.UpdatePharmacyRequest) (*model.PharmacyInfo, error)
	GetNotificationPrefs(ctx context.Context) (*model.NotificationPrefs, error)
	UpdateNotificationPrefs(ctx context.Context, req *model.UpdateNotificationPrefsRequest) (*model.NotificationPrefs, error)
	ExportConsultations(ctx context.Context) error
	ExportInventory(ctx context.Context) error
	GenerateMonthlyReport(ctx context.Context) error
	ResetAllData(ctx context.Context) error
}

type Service struct {
	repo repository.SettingsRepository
}

func NewService(repo repository.SettingsRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetPharmacy(ctx context.Context) (*model.PharmacyInfo, error) {
	info, err := s.repo.GetPharmacy(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pharmacy info: %w", err)
	}
	return info, nil
}

func (s *Service) UpdatePharmacy(ctx context.Context, req *model.UpdatePharmacyRequest) (*model.PharmacyInfo, error) {
	info := &model.PharmacyInfo{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Hours:   req.Hours,
	}
	if err := s.repo.UpdatePharmacy(ctx, info); err != nil {
		return nil, fmt.Errorf("failed to update pharmacy info: %w", err)
	}
	return info, nil
}

func (s *Service) GetNotificationPrefs(ctx context.Context) (*model.NotificationPrefs, error) {
	prefs, err := s.repo.GetNotificationPrefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification prefs: %w", err)
	}
	return prefs, nil
}

func (s *Service) UpdateNotificationPrefs(ctx context.Context, req *model.UpdateNotificationPrefsRequest) (*model.NotificationPrefs, error) {
	prefs := &model.NotificationPrefs{
		EmailUrgent:         *req.EmailUrgent,
		SMSLowStock:         *req.SMSLowStock,
		WhatsApp:            *req.WhatsApp,
		Browser:             *req.Browser,
		UrgentThresholdMins: req.UrgentThresholdMins,
	}
	if err := s.repo.UpdateNotificationPrefs(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to update notification prefs: %w", err)
	}
	return prefs, nil
}

// The data-management actions below are deliberate placeholders. They
// return a distinct not-implemented error so callers can tell a missing
// feature apart from a successful no-op.

func (s *Service) ExportConsultations(ctx context.Context) error {
	return errors.NewNotImplemented("consultation export")
}

func (s *Service) ExportInventory(ctx context.Context) error {
	return errors.NewNotImplemented("inventory export")
}

func (s *Service) GenerateMonthlyReport(ctx context.Context) error {
	return errors.NewNotImplemented("monthly report generation")
}

func (s *Service) ResetAllData(ctx context.Context) error {
	return errors.NewNotImplemented("full data reset")
}
