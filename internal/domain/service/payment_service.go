package service

import (
	"context"
	"time"
)

// PaymentEventType enumerates the billing provider webhook events the
// application reacts to.
type PaymentEventType string

const (
	PaymentEventCheckoutCompleted    PaymentEventType = "checkout.session.completed"
	PaymentEventInvoicePaid          PaymentEventType = "invoice.payment_succeeded"
	PaymentEventInvoiceFailed        PaymentEventType = "invoice.payment_failed"
	PaymentEventSubscriptionUpdated  PaymentEventType = "customer.subscription.updated"
	PaymentEventSubscriptionCanceled PaymentEventType = "customer.subscription.deleted"
)

// PaymentEvent is a verified webhook event reduced to the fields the
// subscription use case needs.
type PaymentEvent struct {
	Type           PaymentEventType
	CustomerID     string
	SubscriptionID string
	PeriodEnd      time.Time // End of the paid period, zero when the event carries none.
	Active         bool      // Whether the subscription is active after this event.
}

// PaymentService defines the interface to the billing provider.
type PaymentService interface {
	// CreateCustomer registers a customer with the billing provider and
	// returns its reference.
	CreateCustomer(ctx context.Context, email string) (string, error)

	// CreateCheckoutSession starts a subscription checkout for the customer
	// and returns the URL the frontend redirects to.
	CreateCheckoutSession(ctx context.Context, customerID string) (string, error)

	// CancelSubscription cancels an active subscription at the provider.
	CancelSubscription(ctx context.Context, subscriptionID string) error

	// ParseWebhookEvent verifies the webhook signature and decodes the payload.
	// Events the application does not react to return a nil event.
	ParseWebhookEvent(payload []byte, signature string) (*PaymentEvent, error)
}
