package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"mealmate/pkg/errors"
	"mealmate/pkg/logger"
)

// StripePaymentService - card PaymentIntent creation via the Stripe API
type StripePaymentService struct {
	api *client.API
}

func NewStripePaymentService(secretKey string) *StripePaymentService {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripePaymentService{api: api}
}

func (s *StripePaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	// Stripe amounts are in the smallest currency unit
	amount := int64(price * 100)

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.New().String())

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		logger.Error("Failed to create payment intent: %v", err)
		return "", errors.Internal("Failed to create payment intent", err)
	}

	return intent.ClientSecret, nil
}
