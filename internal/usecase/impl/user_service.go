package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"tetatete/config"
	deliverycontext "tetatete/internal/delivery/context"
	"tetatete/internal/domain/entity"
	domainerrors "tetatete/internal/domain/errors"
	"tetatete/internal/domain/repository"
	"tetatete/internal/domain/service"
	"tetatete/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo      repository.UserRepository
	referenceRepo repository.ReferenceRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	emailSender   service.EmailSender
	imageStore    service.ImageStore
	oauthServices map[service.OAuthProvider]service.OAuthService
	cfg           *config.Config
	logger        *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	ReferenceRepo repository.ReferenceRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	EmailSender   service.EmailSender
	ImageStore    service.ImageStore
	OAuthServices []service.OAuthService `group:"oauth_services"`
	Config        *config.Config
	Logger        *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	oauthServices := make(map[service.OAuthProvider]service.OAuthService, len(params.OAuthServices))
	for _, svc := range params.OAuthServices {
		oauthServices[svc.Provider()] = svc
	}

	return &userService{
		userRepo:      params.UserRepo,
		referenceRepo: params.ReferenceRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		emailSender:   params.EmailSender,
		imageStore:    params.ImageStore,
		oauthServices: oauthServices,
		cfg:           params.Config,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new password-based account.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}
	if input.Phone != nil {
		if err := validatePhone(*input.Phone); err != nil {
			return nil, err
		}
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindUserByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}
	if input.Phone != nil {
		if _, err := srv.userRepo.FindUserByPhone(ctx, *input.Phone); err == nil {
			return nil, domainerrors.ErrPhoneAlreadyExists
		} else if !errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to check phone availability")
		}
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: &hash,
	}
	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies the credentials and issues tokens. Exactly one of email or
// phone identifies the account.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if (input.Email == nil) == (input.Phone == nil) {
		return nil, validationError("exactly one of email or phone must be provided")
	}

	var (
		user *entity.User
		err  error
	)
	if input.Email != nil {
		user, err = srv.userRepo.FindUserByEmail(ctx, *input.Email)
	} else {
		user, err = srv.userRepo.FindUserByPhone(ctx, *input.Phone)
	}
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if user.PasswordHash == nil || !srv.hasher.Check(input.Password, *user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueTokens(ctx, user)
}

// OAuthURL builds the provider authorization URL the frontend redirects to.
func (srv *userService) OAuthURL(_ context.Context, provider service.OAuthProvider) (string, error) {
	svc, ok := srv.oauthServices[provider]
	if !ok {
		return "", validationError("unknown OAuth provider %q", provider)
	}

	return svc.BuildAuthorizationURL(uuid.New().String()), nil
}

// OAuthLogin exchanges the provider code for a verified email and logs the
// user in, creating the account on first sight.
func (srv *userService) OAuthLogin(ctx context.Context, input usecase.OAuthLoginInput) (*usecase.LoginOutput, error) {
	svc, ok := srv.oauthServices[input.Provider]
	if !ok {
		return nil, validationError("unknown OAuth provider %q", input.Provider)
	}
	if !svc.ValidateState(input.State) {
		return nil, domainerrors.ErrOAuthCodeInvalid.WrapMessage("state parameter is invalid or expired")
	}

	accessToken, err := svc.ExchangeCodeForToken(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("OAuth code exchange failed",
			slog.String("provider", string(input.Provider)),
			slog.Any("error", err))

		return nil, domainerrors.ErrOAuthCodeInvalid.WrapMessage("failed to exchange authorization code")
	}

	info, err := svc.GetUserInfo(ctx, accessToken)
	if err != nil {
		return nil, domainerrors.ErrOAuthFailed.WrapMessage("failed to fetch user info from provider")
	}
	if info.Email == "" {
		return nil, domainerrors.ErrOAuthFailed.WrapMessage("provider did not share an email address")
	}

	user, err := srv.userRepo.FindUserByEmail(ctx, info.Email)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		user = &entity.User{
			ID:    uuid.New(),
			Email: info.Email,
		}
		if err := srv.userRepo.CreateUser(ctx, user); err != nil {
			return nil, err
		}

		srv.log(ctx).Info("User created through OAuth",
			slog.Any("userID", user.ID),
			slog.String("provider", string(input.Provider)))
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to look up user for OAuth login")
	}

	return srv.issueTokens(ctx, user)
}

// ForgotPassword emails a reset link when the address is registered.
func (srv *userService) ForgotPassword(ctx context.Context, email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}

	user, err := srv.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			// Unknown addresses get the same answer as known ones.
			srv.log(ctx).Info("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to look up user for password reset")
	}

	token, err := srv.tokenService.GenerateResetToken(user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", srv.cfg.Frontend.BaseURL, token)
	body := fmt.Sprintf(`<p>Somebody requested a password reset for your account.</p>
<p><a href="%s">Set a new password</a></p>
<p>If this was not you, ignore this message.</p>`, link)

	if err := srv.emailSender.Send(ctx, email, "Reset your password", body); err != nil {
		return errors.Wrap(err, "failed to send password reset email")
	}

	return nil
}

// ResetPassword validates the emailed reset token and stores the new password.
func (srv *userService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	if err := validatePassword(input.NewPassword); err != nil {
		return err
	}

	token, err := srv.tokenService.ValidateToken(input.Token, srv.cfg.SecretKey.Access)
	if err != nil {
		return domainerrors.ErrUnauthorized.WrapMessage("reset token is invalid or expired")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["type"] != "reset" {
		return domainerrors.ErrUnauthorized.WrapMessage("token is not a reset token")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("reset token has no subject")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return domainerrors.ErrUnauthorized.WrapMessage("reset token subject is not a user ID")
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	if err := srv.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", userID))

	return nil
}

// GetUser returns the account with its presentable profile attached.
func (srv *userService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := srv.userRepo.FindProfile(ctx, userID)
	if err == nil {
		user.Profile = profile
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// SaveProfile validates and stores the presentable profile, uploading any
// attached photos to the image store first.
func (srv *userService) SaveProfile(ctx context.Context, userID uuid.UUID, input usecase.SaveProfileInput) (*entity.Profile, error) {
	if err := validateFullName(input.FullName); err != nil {
		return nil, err
	}
	if err := validateProfileAge(input.Age); err != nil {
		return nil, err
	}
	if input.GenderID != nil {
		exists, err := srv.referenceRepo.GenderExists(ctx, *input.GenderID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check gender reference")
		}
		if !exists {
			return nil, validationError("gender %s is not registered", input.GenderID)
		}
	}

	if _, err := srv.userRepo.FindUserByID(ctx, userID); err != nil {
		return nil, err
	}

	imageURLs := make([]string, 0, len(input.Images))
	for _, image := range input.Images {
		key := fmt.Sprintf("%s/%s%s", userID, uuid.New(), path.Ext(image.FileName))
		url, err := srv.imageStore.Upload(ctx, key, image.ContentType, image.Content)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload profile image")
		}
		imageURLs = append(imageURLs, url)
	}

	profile := &entity.Profile{
		UserID:         userID,
		FullName:       input.FullName,
		Age:            input.Age,
		About:          input.About,
		GenderID:       input.GenderID,
		PlaceOfBirthID: input.PlaceOfBirthID,
		LocationID:     input.LocationID,
		LanguageIDs:    input.LanguageIDs,
		ImageURLs:      imageURLs,
	}
	if err := srv.userRepo.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// issueTokens generates the token pair for a verified user.
func (srv *userService) issueTokens(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
