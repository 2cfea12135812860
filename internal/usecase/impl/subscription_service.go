package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "tetatete/internal/delivery/context"
	domainerrors "tetatete/internal/domain/errors"
	"tetatete/internal/domain/repository"
	"tetatete/internal/domain/service"
	"tetatete/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	userRepo       repository.UserRepository
	paymentService service.PaymentService
	logger         *slog.Logger
}

// SubscriptionServiceParams holds dependencies for subscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	PaymentService service.PaymentService
	Logger         *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		userRepo:       params.UserRepo,
		paymentService: params.PaymentService,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Status reports the caller's current billing state.
func (srv *subscriptionService) Status(ctx context.Context, userID uuid.UUID) (*usecase.SubscriptionStatusOutput, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.SubscriptionStatusOutput{
		IsPaid:    user.IsSubscriptionPaid,
		ExpiresAt: user.SubscriptionExpiresAt,
	}, nil
}

// CreateCheckout opens a checkout session for the subscription price,
// creating the Stripe customer on first purchase.
func (srv *subscriptionService) CreateCheckout(ctx context.Context, userID uuid.UUID) (*usecase.CheckoutOutput, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsSubscriptionPaid {
		return nil, domainerrors.ErrSubscriptionAlreadyActive
	}

	if user.StripeCustomerID == nil {
		customerID, err := srv.paymentService.CreateCustomer(ctx, user.Email)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create billing customer")
		}

		user.StripeCustomerID = &customerID
		if err := srv.userRepo.UpdateUser(ctx, user); err != nil {
			return nil, err
		}

		srv.log(ctx).Info("Billing customer created", slog.Any("userID", userID))
	}

	checkoutURL, err := srv.paymentService.CreateCheckoutSession(ctx, *user.StripeCustomerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create checkout session")
	}

	return &usecase.CheckoutOutput{CheckoutURL: checkoutURL}, nil
}

// Cancel cancels the active subscription with the payment provider.
func (srv *subscriptionService) Cancel(ctx context.Context, userID uuid.UUID) error {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.StripeSubscriptionID == nil {
		return domainerrors.ErrSubscriptionNotFound
	}

	if err := srv.paymentService.CancelSubscription(ctx, *user.StripeSubscriptionID); err != nil {
		return errors.Wrap(err, "failed to cancel subscription")
	}

	// The webhook confirms it, but the local state flips right away so the
	// user sees the cancellation immediately.
	if err := srv.userRepo.UpdateSubscriptionState(ctx, userID, false, nil, nil); err != nil {
		return err
	}

	srv.log(ctx).Info("Subscription canceled", slog.Any("userID", userID))

	return nil
}

// HandleWebhook verifies the event signature and applies the billing state
// change it describes.
func (srv *subscriptionService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := srv.paymentService.ParseWebhookEvent(payload, signature)
	if err != nil {
		return domainerrors.ErrUnauthorized.WrapMessage("webhook signature verification failed")
	}
	if event == nil {
		// An event type the application does not react to.
		return nil
	}

	user, err := srv.userRepo.FindUserByStripeCustomerID(ctx, event.CustomerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			// Stripe retries on errors; an unknown customer will not become
			// known, so acknowledge and log instead.
			srv.log(ctx).Warn("Webhook for unknown billing customer",
				slog.String("eventType", string(event.Type)),
				slog.String("customerID", event.CustomerID))

			return nil
		}

		return errors.Wrap(err, "failed to look up user for webhook")
	}

	var expiresAt *time.Time
	if !event.PeriodEnd.IsZero() {
		expiresAt = &event.PeriodEnd
	}
	var subscriptionID *string
	if event.SubscriptionID != "" {
		subscriptionID = &event.SubscriptionID
	}

	var paid bool
	switch event.Type {
	case service.PaymentEventCheckoutCompleted, service.PaymentEventInvoicePaid:
		paid = true
	case service.PaymentEventSubscriptionUpdated:
		paid = event.Active
	case service.PaymentEventInvoiceFailed:
		paid = false
	case service.PaymentEventSubscriptionCanceled:
		paid = false
		subscriptionID = nil
		expiresAt = nil
	default:
		srv.log(ctx).Warn("Unhandled payment event type", slog.String("eventType", string(event.Type)))

		return nil
	}

	if err := srv.userRepo.UpdateSubscriptionState(ctx, user.ID, paid, subscriptionID, expiresAt); err != nil {
		return err
	}

	srv.log(ctx).Info("Billing state updated from webhook",
		slog.Any("userID", user.ID),
		slog.String("eventType", string(event.Type)),
		slog.Bool("paid", paid))

	return nil
}
