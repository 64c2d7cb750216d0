package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ResetTokenDeliverer hands a freshly issued reset token to the user
// out-of-band. The production implementation would send email; the log
// deliverer stands in until that integration exists.
type ResetTokenDeliverer interface {
	Deliver(ctx context.Context, email, token string, expiresAt time.Time) error
}

type logDeliverer struct {
	log *zap.Logger
}

func NewLogDeliverer(log *zap.Logger) ResetTokenDeliverer {
	return &logDeliverer{log: log}
}

func (d *logDeliverer) Deliver(_ context.Context, email, token string, expiresAt time.Time) error {
	d.log.Info("Reset token ready for delivery",
		zap.String("email", email),
		zap.String("reset_token", token),
		zap.Time("expires_at", expiresAt),
	)
	return nil
}
