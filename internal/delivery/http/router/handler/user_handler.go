package handler

import (
	"log/slog"
	"net/http"

	"tetatete/internal/delivery/http/response"
	"tetatete/internal/domain/entity"
	"tetatete/internal/domain/service"
	"tetatete/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required"`
	Phone    *string `json:"phone,omitempty"`
	Password string  `json:"password" validate:"required"`
}

// LoginRequest represents the request body for a password login.
type LoginRequest struct {
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Password string  `json:"password" validate:"required"`
}

// ForgotPasswordRequest represents the request body for a reset link.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

// ResetPasswordRequest represents the request body for setting a new password.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// Do not return sensitive data in the response.
	return response.Success(c, http.StatusCreated, newUserView(output.User), "User registered successfully")
}

// Login handles the password login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newLoginView(output), "Login successful")
}

// OAuthLogin handles initiating the OAuth flow for a provider.
func (h *UserHandler) OAuthLogin(c echo.Context) error {
	provider := service.OAuthProvider(c.Param("provider"))

	oauthURL, err := h.uc.OAuthURL(c.Request().Context(), provider)
	if err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, oauthURL)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"oauth_url": oauthURL,
	}, "OAuth URL generated successfully")
}

// OAuthCallback handles the provider redirect with the authorization code.
func (h *UserHandler) OAuthCallback(c echo.Context) error {
	provider := service.OAuthProvider(c.Param("provider"))
	code := c.QueryParam("code")
	state := c.QueryParam("state")
	if code == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing authorization code")
	}

	output, err := h.uc.OAuthLogin(c.Request().Context(), usecase.OAuthLoginInput{
		Provider: provider,
		Code:     code,
		State:    state,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newLoginView(output), "Login successful")
}

// ForgotPassword handles the reset link request.
func (h *UserHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "If the address is registered, a reset link has been sent")
}

// ResetPassword handles setting a new password from a reset link.
func (h *UserHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated successfully")
}

// GetProfile returns the caller's account with its profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "")
}

// SaveProfile fills or updates the caller's profile. Photos arrive as
// multipart file parts named "images".
func (h *UserHandler) SaveProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	input, err := h.bindProfileInput(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	profile, err := h.uc.SaveProfile(c.Request().Context(), userID, *input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile saved successfully")
}

// bindProfileInput reads the multipart profile form, including photo parts.
func (h *UserHandler) bindProfileInput(c echo.Context) (*usecase.SaveProfileInput, error) {
	var req struct {
		FullName       string      `form:"fullName"`
		Age            int         `form:"age"`
		About          string      `form:"about"`
		GenderID       *uuid.UUID  `form:"genderId"`
		PlaceOfBirthID *uuid.UUID  `form:"placeOfBirthId"`
		LocationID     *uuid.UUID  `form:"locationId"`
		LanguageIDs    []uuid.UUID `form:"languageIds"`
	}
	if err := c.Bind(&req); err != nil {
		return nil, errors.New("invalid profile input")
	}

	input := &usecase.SaveProfileInput{
		FullName:       req.FullName,
		Age:            req.Age,
		About:          req.About,
		GenderID:       req.GenderID,
		PlaceOfBirthID: req.PlaceOfBirthID,
		LocationID:     req.LocationID,
		LanguageIDs:    req.LanguageIDs,
	}

	form, err := c.MultipartForm()
	if err != nil {
		// A plain JSON body without photos is fine.
		return input, nil
	}

	for _, fileHeader := range form.File["images"] {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, errors.New("failed to read uploaded image")
		}
		defer file.Close()

		input.Images = append(input.Images, usecase.ProfileImageInput{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Content:     file,
		})
	}

	return input, nil
}

// --- Response views ---

// UserView is the public representation of an account.
type UserView struct {
	ID                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	Phone              *string   `json:"phone,omitempty"`
	IsSubscriptionPaid bool      `json:"isSubscriptionPaid"`
	Profile            any       `json:"profile,omitempty"`
}

func newUserView(user *entity.User) *UserView {
	view := &UserView{
		ID:                 user.ID,
		Email:              user.Email,
		Phone:              user.Phone,
		IsSubscriptionPaid: user.IsSubscriptionPaid,
	}
	if user.Profile != nil {
		view.Profile = user.Profile
	}

	return view
}

// LoginView is the token pair handed out after authentication.
type LoginView struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	User         *UserView `json:"user"`
}

func newLoginView(output *usecase.LoginOutput) *LoginView {
	return &LoginView{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         newUserView(output.User),
	}
}
