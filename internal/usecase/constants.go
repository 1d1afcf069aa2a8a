package usecase

import "time"

const (
	// ConfirmationTokenTTL is how long an email-confirmation token stays
	// redeemable.
	ConfirmationTokenTTL = 48 * time.Hour

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)
