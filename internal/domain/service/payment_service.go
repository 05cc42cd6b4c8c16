package service

import (
	"context"
)

// PaymentIntentService creates a payment intent for a membership purchase and
// returns the secret the client needs to confirm it. The core only persists
// payment records; everything about actual processing lives behind this
// interface.
type PaymentIntentService interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}
