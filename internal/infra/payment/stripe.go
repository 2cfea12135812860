// Package payment implements the billing provider integration with Stripe.
package payment

import (
	"context"
	"encoding/json"
	"time"

	"tetatete/config"
	"tetatete/internal/domain/service"

	"github.com/pkg/errors"
	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"
)

// stripeService is the Stripe-backed implementation of service.PaymentService.
type stripeService struct {
	api           *client.API
	priceID       string
	successURL    string
	cancelURL     string
	webhookSecret string
}

// NewStripeService is the constructor for stripeService.
func NewStripeService(cfg *config.Config) (service.PaymentService, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	return &stripeService{
		api:           client.New(cfg.Stripe.SecretKey, nil),
		priceID:       cfg.Stripe.PriceID,
		successURL:    cfg.Stripe.SuccessURL,
		cancelURL:     cfg.Stripe.CancelURL,
		webhookSecret: cfg.Stripe.WebhookSecret,
	}, nil
}

// CreateCustomer registers a customer with Stripe and returns its reference.
func (s *stripeService) CreateCustomer(ctx context.Context, email string) (string, error) {
	params := &stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		Email:  stripe.String(email),
	}

	customer, err := s.api.Customers.New(params)
	if err != nil {
		return "", errors.Wrap(err, "failed to create stripe customer")
	}

	return customer.ID, nil
}

// CreateCheckoutSession starts a subscription checkout for the customer.
func (s *stripeService) CreateCheckoutSession(ctx context.Context, customerID string) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.successURL),
		CancelURL:  stripe.String(s.cancelURL),
	}

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return "", errors.Wrap(err, "failed to create checkout session")
	}

	return session.URL, nil
}

// CancelSubscription cancels an active subscription at Stripe.
func (s *stripeService) CancelSubscription(ctx context.Context, subscriptionID string) error {
	params := &stripe.SubscriptionCancelParams{
		Params: stripe.Params{Context: ctx},
	}

	if _, err := s.api.Subscriptions.Cancel(subscriptionID, params); err != nil {
		return errors.Wrap(err, "failed to cancel stripe subscription")
	}

	return nil
}

// ParseWebhookEvent verifies the webhook signature and decodes the payload.
// Event types the application does not react to return a nil event.
func (s *stripeService) ParseWebhookEvent(payload []byte, signature string) (*service.PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
	if err != nil {
		return nil, errors.Wrap(err, "webhook signature verification failed")
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, errors.Wrap(err, "failed to decode checkout session")
		}

		out := &service.PaymentEvent{
			Type:   service.PaymentEventCheckoutCompleted,
			Active: true,
		}
		if session.Customer != nil {
			out.CustomerID = session.Customer.ID
		}
		if session.Subscription != nil {
			out.SubscriptionID = session.Subscription.ID
		}

		return out, nil

	case stripe.EventTypeInvoicePaymentSucceeded, stripe.EventTypeInvoicePaymentFailed:
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return nil, errors.Wrap(err, "failed to decode invoice")
		}

		out := &service.PaymentEvent{
			Type:   service.PaymentEventInvoicePaid,
			Active: true,
		}
		if event.Type == stripe.EventTypeInvoicePaymentFailed {
			out.Type = service.PaymentEventInvoiceFailed
			out.Active = false
		}
		if invoice.Customer != nil {
			out.CustomerID = invoice.Customer.ID
		}
		if invoice.Subscription != nil {
			out.SubscriptionID = invoice.Subscription.ID
		}
		if invoice.PeriodEnd > 0 {
			out.PeriodEnd = time.Unix(invoice.PeriodEnd, 0)
		}

		return out, nil

	case stripe.EventTypeCustomerSubscriptionUpdated, stripe.EventTypeCustomerSubscriptionDeleted:
		var subscription stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			return nil, errors.Wrap(err, "failed to decode subscription")
		}

		out := &service.PaymentEvent{
			Type:           service.PaymentEventSubscriptionUpdated,
			SubscriptionID: subscription.ID,
			Active: subscription.Status == stripe.SubscriptionStatusActive ||
				subscription.Status == stripe.SubscriptionStatusTrialing,
		}
		if event.Type == stripe.EventTypeCustomerSubscriptionDeleted {
			out.Type = service.PaymentEventSubscriptionCanceled
			out.Active = false
		}
		if subscription.Customer != nil {
			out.CustomerID = subscription.Customer.ID
		}
		if subscription.CurrentPeriodEnd > 0 {
			out.PeriodEnd = time.Unix(subscription.CurrentPeriodEnd, 0)
		}

		return out, nil
	}

	// Unhandled event type: acknowledged without action.
	return nil, nil
}
