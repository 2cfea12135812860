// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"tetatete/internal/domain/entity"
	"tetatete/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string
	Phone    *string
	Password string
}

// LoginInput defines the credentials for a password login. Exactly one of
// Email or Phone must be set.
type LoginInput struct {
	Email    *string
	Phone    *string
	Password string
}

// OAuthLoginInput carries the authorization code returned by the provider.
type OAuthLoginInput struct {
	Provider service.OAuthProvider
	Code     string
	State    string
}

// ResetPasswordInput carries the reset token from the email link and the new
// password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// ProfileImageInput is a single image to upload to the object store.
type ProfileImageInput struct {
	FileName    string
	ContentType string
	Content     io.Reader
}

// SaveProfileInput defines the data for filling or updating the user profile.
type SaveProfileInput struct {
	FullName       string
	Age            int
	About          string
	GenderID       *uuid.UUID
	PlaceOfBirthID *uuid.UUID
	LocationID     *uuid.UUID
	LanguageIDs    []uuid.UUID
	Images         []ProfileImageInput
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// OAuthURL builds the provider authorization URL the frontend redirects to.
	OAuthURL(ctx context.Context, provider service.OAuthProvider) (string, error)
	// OAuthLogin exchanges the provider code for a verified email and logs the
	// user in, creating the account on first sight.
	OAuthLogin(ctx context.Context, input OAuthLoginInput) (*LoginOutput, error)

	// ForgotPassword emails a reset link when the address is registered. An
	// unknown address is not an error, to avoid account enumeration.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) error

	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	SaveProfile(ctx context.Context, userID uuid.UUID, input SaveProfileInput) (*entity.Profile, error)
}
