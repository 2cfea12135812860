package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatusOutput reports the caller's current billing state.
type SubscriptionStatusOutput struct {
	IsPaid    bool
	ExpiresAt *time.Time
}

// CheckoutOutput returns the Stripe-hosted checkout page URL.
type CheckoutOutput struct {
	CheckoutURL string
}

// SubscriptionUsecase handles the paid subscription lifecycle.
type SubscriptionUsecase interface {
	Status(ctx context.Context, userID uuid.UUID) (*SubscriptionStatusOutput, error)

	// CreateCheckout opens a checkout session for the subscription price,
	// creating the Stripe customer on first purchase.
	CreateCheckout(ctx context.Context, userID uuid.UUID) (*CheckoutOutput, error)

	// Cancel cancels the active subscription with the payment provider.
	Cancel(ctx context.Context, userID uuid.UUID) error

	// HandleWebhook verifies the event signature and applies the billing
	// state change it describes.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}
