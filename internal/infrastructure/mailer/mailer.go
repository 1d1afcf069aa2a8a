package mailer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// LogMailer writes confirmation links to the log instead of delivering mail.
// It stands in for a real transport in development and tests.
type LogMailer struct {
	baseURL string
	logger  zerolog.Logger
}

// NewLogMailer creates a new LogMailer. baseURL is the public address the
// confirmation link should point at.
func NewLogMailer(baseURL string, logger zerolog.Logger) *LogMailer {
	return &LogMailer{baseURL: baseURL, logger: logger}
}

// SendEmailConfirmation logs the confirmation link for the given address.
func (m *LogMailer) SendEmailConfirmation(ctx context.Context, email, token string) error {
	link := fmt.Sprintf("%s/api/auth/confirm?token=%s", m.baseURL, token)
	m.logger.Info().
		Str("email", email).
		Str("link", link).
		Msg("email confirmation requested")
	return nil
}
