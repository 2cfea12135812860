// Package facebook implements the OAuth flow against Facebook's Graph API.
package facebook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"tetatete/config"
	"tetatete/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	facebookOAuthURL    = "https://www.facebook.com/v19.0/dialog/oauth"
	facebookTokenURL    = "https://graph.facebook.com/v19.0/oauth/access_token"
	facebookUserInfoURL = "https://graph.facebook.com/me"

	stateTTL = 10 * time.Minute
)

// OAuthService handles Facebook OAuth infrastructure operations
type OAuthService struct {
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       string

	client *http.Client

	// State storage for CSRF protection
	stateStore map[string]time.Time
	stateMutex sync.Mutex
}

// NewOAuthService creates a new Facebook OAuth service
func NewOAuthService(cfg *config.Config) service.OAuthService {
	return &OAuthService{
		clientID:     cfg.FacebookOAuth.ClientID,
		clientSecret: cfg.FacebookOAuth.ClientSecret,
		redirectURI:  cfg.FacebookOAuth.RedirectURI,
		scopes:       cfg.FacebookOAuth.Scopes,
		client:       &http.Client{Timeout: 15 * time.Second},
		stateStore:   make(map[string]time.Time),
	}
}

// Provider returns which identity provider this service talks to.
func (s *OAuthService) Provider() service.OAuthProvider {
	return service.OAuthProviderFacebook
}

// BuildAuthorizationURL constructs the Facebook OAuth dialog URL with state parameter for CSRF protection
func (s *OAuthService) BuildAuthorizationURL(state string) string {
	s.storeState(state)

	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.redirectURI)
	params.Set("scope", s.scopes)
	params.Set("response_type", "code")
	params.Set("state", state)

	return facebookOAuthURL + "?" + params.Encode()
}

// ValidateState validates the state parameter to prevent CSRF attacks.
// A state is removed on first use so it cannot be replayed.
func (s *OAuthService) ValidateState(state string) bool {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	expiry, exists := s.stateStore[state]
	if !exists {
		return false
	}

	delete(s.stateStore, state)

	return time.Now().Before(expiry)
}

// ExchangeCodeForToken exchanges an authorization code for an access token
func (s *OAuthService) ExchangeCodeForToken(ctx context.Context, code string) (string, error) {
	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("client_secret", s.clientSecret)
	params.Set("code", code)
	params.Set("redirect_uri", s.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, facebookTokenURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to create token exchange request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to exchange code for token")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read token response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("token endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", errors.Wrap(err, "failed to decode token response")
	}
	if tokenResp.AccessToken == "" {
		return "", errors.New("token response contains no access token")
	}

	return tokenResp.AccessToken, nil
}

// GetUserInfo fetches the user's profile with the provider access token.
func (s *OAuthService) GetUserInfo(ctx context.Context, accessToken string) (*service.OAuthUserInfo, error) {
	params := url.Values{}
	params.Set("fields", "email,name")
	params.Set("access_token", accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, facebookUserInfoURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch user info")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read user info response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("user info endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var info struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}
	if info.Email == "" {
		// Facebook only exposes the email when the user granted the scope.
		return nil, errors.New("user info contains no email")
	}

	return &service.OAuthUserInfo{Email: info.Email, Name: info.Name}, nil
}

// storeState stores a state parameter with expiration time and drops expired ones.
func (s *OAuthService) storeState(state string) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	now := time.Now()
	for old, expiry := range s.stateStore {
		if now.After(expiry) {
			delete(s.stateStore, old)
		}
	}

	s.stateStore[state] = now.Add(stateTTL)
}
