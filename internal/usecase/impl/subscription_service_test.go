package impl

import (
	"context"
	"testing"
	"time"

	"tetatete/internal/domain/entity"
	domainerrors "tetatete/internal/domain/errors"
	"tetatete/internal/domain/service"
	mockRepo "tetatete/internal/mocks/repository"
	mockService "tetatete/internal/mocks/service"
	"tetatete/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionServiceFixtures struct {
	service        usecase.SubscriptionUsecase
	userRepo       *mockRepo.MockUserRepository
	paymentService *mockService.MockPaymentService
}

func createTestSubscriptionService(t *testing.T) subscriptionServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	paymentService := mockService.NewMockPaymentService(t)

	svc := NewSubscriptionService(SubscriptionServiceParams{
		UserRepo:       userRepo,
		PaymentService: paymentService,
		Logger:         newDiscardLogger(),
	})

	return subscriptionServiceFixtures{
		service:        svc,
		userRepo:       userRepo,
		paymentService: paymentService,
	}
}

func TestSubscriptionService_Status(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(30 * 24 * time.Hour)

	fx.userRepo.On("FindUserByID", ctx, userID).
		Return(&entity.User{ID: userID, IsSubscriptionPaid: true, SubscriptionExpiresAt: &expiresAt}, nil)

	status, err := fx.service.Status(ctx, userID)
	require.NoError(t, err)
	assert.True(t, status.IsPaid)
	assert.Equal(t, &expiresAt, status.ExpiresAt)
}

func TestSubscriptionService_CreateCheckout_FirstPurchase(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "alice@example.com"}

	fx.userRepo.On("FindUserByID", ctx, userID).Return(user, nil)
	fx.paymentService.On("CreateCustomer", ctx, "alice@example.com").Return("cus_123", nil)
	fx.userRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.StripeCustomerID != nil && *u.StripeCustomerID == "cus_123"
	})).Return(nil)
	fx.paymentService.On("CreateCheckoutSession", ctx, "cus_123").
		Return("https://checkout.stripe.com/session", nil)

	output, err := fx.service.CreateCheckout(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/session", output.CheckoutURL)
}

func TestSubscriptionService_CreateCheckout_ExistingCustomer(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	customerID := "cus_456"

	fx.userRepo.On("FindUserByID", ctx, userID).
		Return(&entity.User{ID: userID, StripeCustomerID: &customerID}, nil)
	fx.paymentService.On("CreateCheckoutSession", ctx, customerID).
		Return("https://checkout.stripe.com/other", nil)

	output, err := fx.service.CreateCheckout(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/other", output.CheckoutURL)
}

func TestSubscriptionService_CreateCheckout_AlreadyActive(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindUserByID", ctx, userID).
		Return(&entity.User{ID: userID, IsSubscriptionPaid: true}, nil)

	_, err := fx.service.CreateCheckout(ctx, userID)
	assert.True(t, errors.Is(err, domainerrors.ErrSubscriptionAlreadyActive))
}

func TestSubscriptionService_Cancel(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	subscriptionID := "sub_789"

	fx.userRepo.On("FindUserByID", ctx, userID).
		Return(&entity.User{ID: userID, IsSubscriptionPaid: true, StripeSubscriptionID: &subscriptionID}, nil)
	fx.paymentService.On("CancelSubscription", ctx, subscriptionID).Return(nil)
	fx.userRepo.On("UpdateSubscriptionState", ctx, userID, false, (*string)(nil), (*time.Time)(nil)).
		Return(nil)

	assert.NoError(t, fx.service.Cancel(ctx, userID))
}

func TestSubscriptionService_Cancel_NoSubscription(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindUserByID", ctx, userID).Return(&entity.User{ID: userID}, nil)

	err := fx.service.Cancel(ctx, userID)
	assert.True(t, errors.Is(err, domainerrors.ErrSubscriptionNotFound))
}

func TestSubscriptionService_HandleWebhook_InvalidSignature(t *testing.T) {
	fx := createTestSubscriptionService(t)

	fx.paymentService.On("ParseWebhookEvent", []byte("payload"), "bad-signature").
		Return(nil, errors.New("signature mismatch"))

	err := fx.service.HandleWebhook(context.Background(), []byte("payload"), "bad-signature")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestSubscriptionService_HandleWebhook_IgnoredEventType(t *testing.T) {
	fx := createTestSubscriptionService(t)

	fx.paymentService.On("ParseWebhookEvent", []byte("payload"), "sig").Return(nil, nil)

	assert.NoError(t, fx.service.HandleWebhook(context.Background(), []byte("payload"), "sig"))
}

func TestSubscriptionService_HandleWebhook_CheckoutCompleted(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	periodEnd := time.Now().Add(30 * 24 * time.Hour)
	event := &service.PaymentEvent{
		Type:           service.PaymentEventCheckoutCompleted,
		CustomerID:     "cus_123",
		SubscriptionID: "sub_123",
		PeriodEnd:      periodEnd,
	}

	fx.paymentService.On("ParseWebhookEvent", []byte("payload"), "sig").Return(event, nil)
	fx.userRepo.On("FindUserByStripeCustomerID", ctx, "cus_123").
		Return(&entity.User{ID: userID}, nil)
	fx.userRepo.On("UpdateSubscriptionState", ctx, userID, true,
		mock.MatchedBy(func(id *string) bool { return id != nil && *id == "sub_123" }),
		mock.MatchedBy(func(at *time.Time) bool { return at != nil && at.Equal(periodEnd) }),
	).Return(nil)

	assert.NoError(t, fx.service.HandleWebhook(ctx, []byte("payload"), "sig"))
}

func TestSubscriptionService_HandleWebhook_SubscriptionCanceled(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	event := &service.PaymentEvent{
		Type:           service.PaymentEventSubscriptionCanceled,
		CustomerID:     "cus_123",
		SubscriptionID: "sub_123",
	}

	fx.paymentService.On("ParseWebhookEvent", []byte("payload"), "sig").Return(event, nil)
	fx.userRepo.On("FindUserByStripeCustomerID", ctx, "cus_123").
		Return(&entity.User{ID: userID}, nil)

	// Cancellation clears both the subscription reference and the expiry.
	fx.userRepo.On("UpdateSubscriptionState", ctx, userID, false, (*string)(nil), (*time.Time)(nil)).
		Return(nil)

	assert.NoError(t, fx.service.HandleWebhook(ctx, []byte("payload"), "sig"))
}

func TestSubscriptionService_HandleWebhook_InvoiceFailed(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	event := &service.PaymentEvent{
		Type:           service.PaymentEventInvoiceFailed,
		CustomerID:     "cus_123",
		SubscriptionID: "sub_123",
	}

	fx.paymentService.On("ParseWebhookEvent", []byte("payload"), "sig").Return(event, nil)
	fx.userRepo.On("FindUserByStripeCustomerID", ctx, "cus_123").
		Return(&entity.User{ID: userID}, nil)
	fx.userRepo.On("UpdateSubscriptionState", ctx, userID, false,
		mock.MatchedBy(func(id *string) bool { return id != nil && *id == "sub_123" }),
		(*time.Time)(nil),
	).Return(nil)

	assert.NoError(t, fx.service.HandleWebhook(ctx, []byte("payload"), "sig"))
}

func TestSubscriptionService_HandleWebhook_UnknownCustomer(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	event := &service.PaymentEvent{
		Type:       service.PaymentEventInvoicePaid,
		CustomerID: "cus_unknown",
	}

	fx.paymentService.On("ParseWebhookEvent", []byte("payload"), "sig").Return(event, nil)
	fx.userRepo.On("FindUserByStripeCustomerID", ctx, "cus_unknown").
		Return(nil, domainerrors.ErrUserNotFound)

	// Stripe retries failed deliveries, so an unknown customer is acknowledged.
	assert.NoError(t, fx.service.HandleWebhook(ctx, []byte("payload"), "sig"))
}
