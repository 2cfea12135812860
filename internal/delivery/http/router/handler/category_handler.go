package handler

import (
	"log/slog"
	"net/http"

	"tetatete/internal/delivery/http/response"
	"tetatete/internal/domain/entity"
	"tetatete/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for category profile handlers.
type CategoryHandler struct {
	uc     usecase.CategoryUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// FriendsRequest represents the friends category payload.
type FriendsRequest struct {
	Info string `json:"info" validate:"required"`
}

// LoveRequest represents the love category payload.
type LoveRequest struct {
	Info     string     `json:"info" validate:"required"`
	MinAge   *int       `json:"minAge,omitempty"`
	MaxAge   *int       `json:"maxAge,omitempty"`
	GenderID *uuid.UUID `json:"genderId,omitempty"`
}

// WorkRequest represents the work category payload.
type WorkRequest struct {
	Occupation string `json:"occupation" validate:"required"`
	Income     int64  `json:"income" validate:"required"`
	LookingFor string `json:"lookingFor" validate:"required"`
	Skills     string `json:"skills" validate:"required"`
}

// UpdateFriendsRequest is the partial friends update payload.
type UpdateFriendsRequest struct {
	Info *string `json:"info,omitempty"`
}

// UpdateLoveRequest is the partial love update payload.
type UpdateLoveRequest struct {
	Info     *string    `json:"info,omitempty"`
	MinAge   *int       `json:"minAge,omitempty"`
	MaxAge   *int       `json:"maxAge,omitempty"`
	GenderID *uuid.UUID `json:"genderId,omitempty"`
}

// UpdateWorkRequest is the partial work update payload.
type UpdateWorkRequest struct {
	Occupation *string `json:"occupation,omitempty"`
	Income     *int64  `json:"income,omitempty"`
	LookingFor *string `json:"lookingFor,omitempty"`
	Skills     *string `json:"skills,omitempty"`
}

// Get returns the caller's category profile tagged with its variant.
func (h *CategoryHandler) Get(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	profile, err := h.uc.Get(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// FillFriends creates the caller's friends profile.
func (h *CategoryHandler) FillFriends(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	var req FriendsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid friends profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.uc.FillFriends(c.Request().Context(), userID, usecase.FillFriendsInput{Info: req.Info})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profile, "Friends profile created successfully")
}

// FillLove creates the caller's love profile.
func (h *CategoryHandler) FillLove(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	var req LoveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid love profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.uc.FillLove(c.Request().Context(), userID, usecase.FillLoveInput{
		Info:     req.Info,
		MinAge:   req.MinAge,
		MaxAge:   req.MaxAge,
		GenderID: req.GenderID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profile, "Love profile created successfully")
}

// FillWork creates the caller's work profile.
func (h *CategoryHandler) FillWork(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	var req WorkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid work profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.uc.FillWork(c.Request().Context(), userID, usecase.FillWorkInput{
		Occupation: req.Occupation,
		Income:     req.Income,
		LookingFor: entity.LookingFor(req.LookingFor),
		Skills:     req.Skills,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profile, "Work profile created successfully")
}

// UpdateFriends applies a partial update to the caller's friends profile.
func (h *CategoryHandler) UpdateFriends(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	var req UpdateFriendsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid friends profile input")
	}

	profile, err := h.uc.UpdateFriends(c.Request().Context(), userID, usecase.UpdateFriendsInput{Info: req.Info})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Friends profile updated successfully")
}

// UpdateLove applies a partial update to the caller's love profile.
func (h *CategoryHandler) UpdateLove(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	var req UpdateLoveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid love profile input")
	}

	profile, err := h.uc.UpdateLove(c.Request().Context(), userID, usecase.UpdateLoveInput{
		Info:     req.Info,
		MinAge:   req.MinAge,
		MaxAge:   req.MaxAge,
		GenderID: req.GenderID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Love profile updated successfully")
}

// UpdateWork applies a partial update to the caller's work profile.
func (h *CategoryHandler) UpdateWork(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	var req UpdateWorkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid work profile input")
	}

	input := usecase.UpdateWorkInput{
		Occupation: req.Occupation,
		Income:     req.Income,
		Skills:     req.Skills,
	}
	if req.LookingFor != nil {
		lookingFor := entity.LookingFor(*req.LookingFor)
		input.LookingFor = &lookingFor
	}

	profile, err := h.uc.UpdateWork(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Work profile updated successfully")
}

// Delete removes the caller's profile of the given category.
func (h *CategoryHandler) Delete(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	category := entity.CategoryType(c.Param("category"))
	if err := h.uc.Delete(c.Request().Context(), userID, category); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category profile deleted successfully")
}
