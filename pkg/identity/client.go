package identity

import (
	"context"

	"github.com/chefnext/chefnext-go/pkg/transport"
)

const (
	procRegister     = "identity.v1.AuthService/Register"
	procLogin        = "identity.v1.AuthService/Login"
	procRefreshToken = "identity.v1.AuthService/RefreshToken"
	procLogout       = "identity.v1.AuthService/Logout"
	procGetMe        = "identity.v1.AuthService/GetMe"
)

// Options configures a Client. Zero values select the defaults of
// transport.New.
type Options struct {
	BaseURL    string
	HTTPClient transport.Doer
}

// Client calls identity.v1.AuthService. It is stateless and safe to share.
type Client struct {
	rpc *transport.Client
}

func NewClient(opts Options) *Client {
	return &Client{rpc: transport.New(opts.BaseURL, opts.HTTPClient)}
}

type RegisterParams struct {
	Email    string
	Password string
	Role     UserRole
}

type LoginParams struct {
	Email    string
	Password string
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type meResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Register creates an account and returns the new identity with a fresh
// token pair.
func (c *Client) Register(ctx context.Context, params RegisterParams) (AuthResult, error) {
	var resp authResponse
	req := registerRequest{
		Email:    params.Email,
		Password: params.Password,
		Role:     params.Role.Wire(),
	}
	if err := c.rpc.Invoke(ctx, procRegister, req, &resp, ""); err != nil {
		return AuthResult{}, err
	}
	return toAuthResult(resp), nil
}

// Login authenticates with email/password and returns the identity with a
// fresh token pair.
func (c *Client) Login(ctx context.Context, params LoginParams) (AuthResult, error) {
	var resp authResponse
	req := loginRequest{Email: params.Email, Password: params.Password}
	if err := c.rpc.Invoke(ctx, procLogin, req, &resp, ""); err != nil {
		return AuthResult{}, err
	}
	return toAuthResult(resp), nil
}

// Refresh exchanges a refresh token for a new token pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (AuthTokens, error) {
	var resp refreshResponse
	req := refreshRequest{RefreshToken: refreshToken}
	if err := c.rpc.Invoke(ctx, procRefreshToken, req, &resp, ""); err != nil {
		return AuthTokens{}, err
	}
	return AuthTokens{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}, nil
}

// Logout invalidates a refresh token server-side. Success carries no
// payload for the caller.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	req := refreshRequest{RefreshToken: refreshToken}
	return c.rpc.Invoke(ctx, procLogout, req, nil, "")
}

// GetMe resolves the identity behind an access token.
func (c *Client) GetMe(ctx context.Context, accessToken string) (AuthUser, error) {
	var resp meResponse
	if err := c.rpc.Invoke(ctx, procGetMe, struct{}{}, &resp, accessToken); err != nil {
		return AuthUser{}, err
	}
	return AuthUser{
		ID:    resp.UserID,
		Email: resp.Email,
		Role:  RoleFromWire(resp.Role),
	}, nil
}

func toAuthResult(resp authResponse) AuthResult {
	return AuthResult{
		User: AuthUser{
			ID:    resp.UserID,
			Email: resp.Email,
			Role:  RoleFromWire(resp.Role),
		},
		Tokens: AuthTokens{
			AccessToken:  resp.AccessToken,
			RefreshToken: resp.RefreshToken,
		},
	}
}
