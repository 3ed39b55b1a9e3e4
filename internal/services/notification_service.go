package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-services/internal/models"
)

// Mailer delivers a single notification over some transport.
type Mailer interface {
	Send(ctx context.Context, n models.Notification) error
}

type notificationServiceImpl struct {
	logger zerolog.Logger
	mailer Mailer
}

func NewNotificationService(
	logger zerolog.Logger,
	mailer Mailer,
) NotificationService {
	return &notificationServiceImpl{
		logger: logger,
		mailer: mailer,
	}
}

func (s *notificationServiceImpl) Notify(ctx context.Context, n models.Notification) error {
	if n.To == "" || n.Subject == "" || n.Text == "" {
		return fmt.Errorf("%w: to, subject and text are required", ErrValidation)
	}

	err := s.mailer.Send(ctx, n)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("to", n.To).
			Msg("failed to send notification")
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	s.logger.Info().
		Str("to", n.To).
		Msg("sent notification")
	return nil
}
