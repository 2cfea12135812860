package service

import "context"

// OAuthProvider names an external identity provider.
type OAuthProvider string

const (
	OAuthProviderGoogle   OAuthProvider = "google"
	OAuthProviderFacebook OAuthProvider = "facebook"
)

// OAuthUserInfo is the subset of the provider's profile the application needs
// to find or create a local account.
type OAuthUserInfo struct {
	Email string
	Name  string
}

// OAuthService defines the interface for one external OAuth provider.
type OAuthService interface {
	// Provider returns which identity provider this service talks to.
	Provider() OAuthProvider

	// BuildAuthorizationURL constructs the provider's authorization URL with
	// the given state parameter for CSRF protection.
	BuildAuthorizationURL(state string) string

	// ValidateState validates a state parameter previously handed out by
	// BuildAuthorizationURL. A state is single-use.
	ValidateState(state string) bool

	// ExchangeCodeForToken exchanges an authorization code for an access token.
	ExchangeCodeForToken(ctx context.Context, code string) (string, error)

	// GetUserInfo fetches the user's profile with the provider access token.
	GetUserInfo(ctx context.Context, accessToken string) (*OAuthUserInfo, error)
}
