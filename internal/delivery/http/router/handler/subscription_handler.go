package handler

import (
	"io"
	"log/slog"
	"net/http"

	"tetatete/internal/delivery/http/response"
	"tetatete/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// stripeSignatureHeader carries the webhook payload signature.
const stripeSignatureHeader = "Stripe-Signature"

// SubscriptionHandler holds dependencies for billing handlers.
type SubscriptionHandler struct {
	uc     usecase.SubscriptionUsecase
	logger *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler, injected by Fx.
func NewSubscriptionHandler(uc usecase.SubscriptionUsecase, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Status reports the caller's billing state.
func (h *SubscriptionHandler) Status(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	status, err := h.uc.Status(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

// CreateCheckout opens a checkout session for the caller.
func (h *SubscriptionHandler) CreateCheckout(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	checkout, err := h.uc.CreateCheckout(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, checkout, "Checkout session created")
}

// Cancel cancels the caller's active subscription.
func (h *SubscriptionHandler) Cancel(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	if err := h.uc.Cancel(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Subscription canceled")
}

// Webhook receives billing events from the payment provider. The raw body is
// needed for signature verification, so the payload is not bound.
func (h *SubscriptionHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to read webhook payload")
	}

	signature := c.Request().Header.Get(stripeSignatureHeader)
	if err := h.uc.HandleWebhook(c.Request().Context(), payload, signature); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusOK)
}
