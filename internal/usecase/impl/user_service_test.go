package impl

import (
	"context"
	"strings"
	"testing"

	"tetatete/config"
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

type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	emailSender  *mockService.MockEmailSender
	oauthService *mockService.MockOAuthService
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.Frontend = &config.FrontendConfig{BaseURL: "https://app.example.com"}

	return cfg
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	referenceRepo := mockRepo.NewMockReferenceRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	emailSender := mockService.NewMockEmailSender(t)
	imageStore := mockService.NewMockImageStore(t)
	oauthService := mockService.NewMockOAuthService(t)

	oauthService.On("Provider").Return(service.OAuthProviderGoogle)

	svc := NewUserService(UserServiceParams{
		UserRepo:      userRepo,
		ReferenceRepo: referenceRepo,
		Hasher:        hasher,
		TokenService:  tokenService,
		EmailSender:   emailSender,
		ImageStore:    imageStore,
		OAuthServices: []service.OAuthService{oauthService},
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		emailSender:  emailSender,
		oauthService: oauthService,
	}
}

func TestUserService_Register(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	phone := "+1-555-123-4567"

	fx.userRepo.On("FindUserByEmail", ctx, "alice@example.com").
		Return(nil, domainerrors.ErrUserNotFound)
	fx.userRepo.On("FindUserByPhone", ctx, phone).
		Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.On("Hash", "Passw0rd").Return("hashed", nil)
	fx.userRepo.On("CreateUser", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "alice@example.com" && u.Phone != nil && *u.Phone == phone &&
			u.PasswordHash != nil && *u.PasswordHash == "hashed"
	})).Return(nil)

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:    "alice@example.com",
		Phone:    &phone,
		Password: "Passw0rd",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.On("FindUserByEmail", ctx, "alice@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "alice@example.com"}, nil)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "Passw0rd",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "password",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Register_BadPhoneFormat(t *testing.T) {
	fx := createTestUserService(t)

	phone := "+15551234567"
	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Email:    "alice@example.com",
		Phone:    &phone,
		Password: "Passw0rd",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Login_ByEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	email := "alice@example.com"
	hash := "stored-hash"
	user := &entity.User{ID: uuid.New(), Email: email, PasswordHash: &hash}

	fx.userRepo.On("FindUserByEmail", ctx, email).Return(user, nil)
	fx.hasher.On("Check", "Passw0rd", hash).Return(true)
	fx.tokenService.On("GenerateTokens", user.ID).Return("access", "refresh", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: &email, Password: "Passw0rd"})
	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	email := "alice@example.com"
	hash := "stored-hash"

	fx.userRepo.On("FindUserByEmail", ctx, email).
		Return(&entity.User{ID: uuid.New(), Email: email, PasswordHash: &hash}, nil)
	fx.hasher.On("Check", "wrong", hash).Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: &email, Password: "wrong"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	email := "ghost@example.com"

	fx.userRepo.On("FindUserByEmail", ctx, email).Return(nil, domainerrors.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: &email, Password: "Passw0rd"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_ExactlyOneIdentifier(t *testing.T) {
	fx := createTestUserService(t)

	email := "alice@example.com"
	phone := "+1-555-123-4567"

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Password: "Passw0rd"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.Login(context.Background(), usecase.LoginInput{
		Email: &email, Phone: &phone, Password: "Passw0rd",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Login_OAuthOnlyAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	email := "alice@example.com"

	// OAuth accounts have no password hash; a password login must not work.
	fx.userRepo.On("FindUserByEmail", ctx, email).
		Return(&entity.User{ID: uuid.New(), Email: email}, nil)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: &email, Password: "Passw0rd"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_OAuthLogin_CreatesAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.oauthService.On("ValidateState", "state-1").Return(true)
	fx.oauthService.On("ExchangeCodeForToken", ctx, "code-1").Return("provider-token", nil)
	fx.oauthService.On("GetUserInfo", ctx, "provider-token").
		Return(&service.OAuthUserInfo{Email: "new@example.com", Name: "New User"}, nil)
	fx.userRepo.On("FindUserByEmail", ctx, "new@example.com").
		Return(nil, domainerrors.ErrUserNotFound)
	fx.userRepo.On("CreateUser", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "new@example.com" && u.PasswordHash == nil
	})).Return(nil)
	fx.tokenService.On("GenerateTokens", mock.AnythingOfType("uuid.UUID")).
		Return("access", "refresh", nil)

	output, err := fx.service.OAuthLogin(ctx, usecase.OAuthLoginInput{
		Provider: service.OAuthProviderGoogle,
		Code:     "code-1",
		State:    "state-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", output.User.Email)
}

func TestUserService_OAuthLogin_BadState(t *testing.T) {
	fx := createTestUserService(t)

	fx.oauthService.On("ValidateState", "forged").Return(false)

	_, err := fx.service.OAuthLogin(context.Background(), usecase.OAuthLoginInput{
		Provider: service.OAuthProviderGoogle,
		Code:     "code-1",
		State:    "forged",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthCodeInvalid))
}

func TestUserService_OAuthLogin_UnknownProvider(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.OAuthLogin(context.Background(), usecase.OAuthLoginInput{
		Provider: service.OAuthProvider("myspace"),
		Code:     "code-1",
		State:    "state-1",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_ForgotPassword_SendsLink(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindUserByEmail", ctx, "alice@example.com").
		Return(&entity.User{ID: userID, Email: "alice@example.com"}, nil)
	fx.tokenService.On("GenerateResetToken", userID).Return("reset-token", nil)
	fx.emailSender.On("Send", ctx, "alice@example.com", "Reset your password",
		mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "https://app.example.com/reset-password?token=reset-token")
		})).Return(nil)

	assert.NoError(t, fx.service.ForgotPassword(ctx, "alice@example.com"))
}

func TestUserService_ForgotPassword_UnknownEmailSilent(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.On("FindUserByEmail", ctx, "ghost@example.com").
		Return(nil, domainerrors.ErrUserNotFound)

	// Unknown addresses must not leak account existence.
	assert.NoError(t, fx.service.ForgotPassword(ctx, "ghost@example.com"))
}

func TestUserService_GetUser_AttachesProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.Profile{UserID: userID, FullName: "Alice", Age: 30}

	fx.userRepo.On("FindUserByID", ctx, userID).
		Return(&entity.User{ID: userID, Email: "alice@example.com"}, nil)
	fx.userRepo.On("FindProfile", ctx, userID).Return(profile, nil)

	user, err := fx.service.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, profile, user.Profile)
}

func TestUserService_SaveProfile_InvalidAge(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.SaveProfile(context.Background(), uuid.New(), usecase.SaveProfileInput{
		FullName: "Alice",
		Age:      17,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_SaveProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindUserByID", ctx, userID).
		Return(&entity.User{ID: userID, Email: "alice@example.com"}, nil)
	fx.userRepo.On("SaveProfile", ctx, mock.MatchedBy(func(p *entity.Profile) bool {
		return p.UserID == userID && p.FullName == "Alice" && p.Age == 30
	})).Return(nil)

	profile, err := fx.service.SaveProfile(ctx, userID, usecase.SaveProfileInput{
		FullName: "Alice",
		Age:      30,
		About:    "Hello there",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.FullName)
}
