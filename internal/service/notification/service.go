package notification

import (
	"context"
	"fmt"

	"github.com/ogadoctor/triage-api/internal/model"
	"github.com/ogadoctor/triage-api/pkg/errors"
	"github.com/ogadoctor/triage-api/pkg/metrics"
)

type NotificationService interface {
	Notify(ctx context.Context, c *model.PatientCase, channel model.NotifyChannel) error
}

// Service is the patient-contact stub. Real delivery (voice call,
// WhatsApp, SMS) is out of scope; every channel reports not-implemented
// so the queue UI can distinguish "feature absent" from "nothing to do".
type Service struct {
	metrics *metrics.Metrics
}

func NewService(m *metrics.Metrics) *Service {
	return &Service{metrics: m}
}

func (s *Service) Notify(ctx context.Context, c *model.PatientCase, channel model.NotifyChannel) error {
	if !channel.Valid() {
		return errors.NewBadRequest(fmt.Sprintf("unknown notify channel %q", channel), nil)
	}

	s.metrics.NotImplementedHits.WithLabelValues("notify_" + string(channel)).Inc()

	switch channel {
	case model.NotifyChannelCall:
		return errors.NewNotImplemented("patient voice call")
	case model.NotifyChannelWhatsApp:
		return errors.NewNotImplemented("WhatsApp messaging")
	case model.NotifyChannelSMS:
		return errors.NewNotImplemented("SMS messaging")
	}
	return errors.NewNotImplemented("patient notification")
}
