package identity

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefnext/chefnext-go/pkg/chefnexttest"
	"github.com/chefnext/chefnext-go/pkg/transport"
)

func TestLoginMapsWireResponse(t *testing.T) {
	client := NewClient(Options{HTTPClient: transport.DoerFunc(func(req *http.Request) (*http.Response, error) {
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"email":"a@b.com","password":"secret123"}`, string(body))
		assert.Equal(t, "http://localhost:8080/identity.v1.AuthService/Login", req.URL.String())
		return &http.Response{
			StatusCode: 200,
			Body: io.NopCloser(strings.NewReader(
				`{"user_id":"u1","email":"a@b.com","role":"USER_ROLE_CHEF","access_token":"at","refresh_token":"rt"}`,
			)),
		}, nil
	})})

	result, err := client.Login(context.Background(), LoginParams{Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, AuthResult{
		User:   AuthUser{ID: "u1", Email: "a@b.com", Role: RoleChef},
		Tokens: AuthTokens{AccessToken: "at", RefreshToken: "rt"},
	}, result)
}

func TestRoleWireMapping(t *testing.T) {
	assert.Equal(t, "USER_ROLE_CHEF", RoleChef.Wire())
	assert.Equal(t, "USER_ROLE_RESTAURANT", RoleRestaurant.Wire())

	assert.Equal(t, RoleRestaurant, RoleFromWire("USER_ROLE_RESTAURANT"))
	// Unrecognized and missing wire roles fall back to chef.
	assert.Equal(t, RoleChef, RoleFromWire("USER_ROLE_SOMMELIER"))
	assert.Equal(t, RoleChef, RoleFromWire(""))

	_, err := ParseRoleWire("USER_ROLE_SOMMELIER")
	assert.Error(t, err)
	role, err := ParseRoleWire("USER_ROLE_RESTAURANT")
	require.NoError(t, err)
	assert.Equal(t, RoleRestaurant, role)
}

func TestAuthFlow(t *testing.T) {
	srv := chefnexttest.NewServer()
	client := NewClient(Options{HTTPClient: srv.Client()})
	ctx := context.Background()

	reg, err := client.Register(ctx, RegisterParams{
		Email:    "chef@example.com",
		Password: "secret123",
		Role:     RoleChef,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.User.ID)
	assert.Equal(t, "chef@example.com", reg.User.Email)
	assert.Equal(t, RoleChef, reg.User.Role)
	require.NotEmpty(t, reg.Tokens.AccessToken)
	require.NotEmpty(t, reg.Tokens.RefreshToken)

	// A second registration with the same email conflicts.
	_, err = client.Register(ctx, RegisterParams{Email: "chef@example.com", Password: "x", Role: RoleChef})
	assert.True(t, transport.IsCode(err, transport.CodeAlreadyExists))

	login, err := client.Login(ctx, LoginParams{Email: "chef@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, reg.User, login.User)

	_, err = client.Login(ctx, LoginParams{Email: "chef@example.com", Password: "wrong"})
	require.Error(t, err)
	apiErr, ok := transport.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, transport.CodeUnauthenticated, apiErr.Code)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	me, err := client.GetMe(ctx, login.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, login.User, me)

	_, err = client.GetMe(ctx, "not-a-token")
	assert.True(t, transport.IsCode(err, transport.CodeUnauthenticated))
}

func TestRefreshRotatesAndLogoutInvalidates(t *testing.T) {
	srv := chefnexttest.NewServer()
	client := NewClient(Options{HTTPClient: srv.Client()})
	ctx := context.Background()

	reg, err := client.Register(ctx, RegisterParams{
		Email:    "rotate@example.com",
		Password: "secret123",
		Role:     RoleRestaurant,
	})
	require.NoError(t, err)

	fresh, err := client.Refresh(ctx, reg.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)
	assert.NotEqual(t, reg.Tokens.RefreshToken, fresh.RefreshToken)

	// The consumed refresh token is gone.
	_, err = client.Refresh(ctx, reg.Tokens.RefreshToken)
	assert.True(t, transport.IsCode(err, transport.CodeUnauthenticated))

	require.NoError(t, client.Logout(ctx, fresh.RefreshToken))
	_, err = client.Refresh(ctx, fresh.RefreshToken)
	assert.True(t, transport.IsCode(err, transport.CodeUnauthenticated))

	// Logout of an already-revoked token is still a success.
	require.NoError(t, client.Logout(ctx, fresh.RefreshToken))
}

func TestAccessTokenExpiry(t *testing.T) {
	srv := chefnexttest.NewServer()
	client := NewClient(Options{HTTPClient: srv.Client()})

	reg, err := client.Register(context.Background(), RegisterParams{
		Email:    "exp@example.com",
		Password: "secret123",
		Role:     RoleChef,
	})
	require.NoError(t, err)

	exp, err := AccessTokenExpiry(reg.Tokens.AccessToken)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	_, err = AccessTokenExpiry("garbage")
	assert.Error(t, err)
}
