package chefnexttest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefnext/chefnext-go/pkg/transport"
)

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	srv := NewServer()
	rpc := transport.New("", srv.Client())
	ctx := context.Background()

	for _, procedure := range []string{
		"identity.v1.AuthService/GetMe",
		"chef.v1.ChefProfileService/CreateProfile",
		"restaurant.v1.RestaurantProfileService/GetMyProfile",
		"job.v1.JobService/ListMyJobs",
	} {
		err := rpc.Invoke(ctx, procedure, struct{}{}, nil, "")
		var apiErr *transport.APIError
		require.ErrorAs(t, err, &apiErr, procedure)
		assert.Equal(t, transport.CodeUnauthenticated, apiErr.Code, procedure)
		assert.Equal(t, 401, apiErr.Status, procedure)
	}
}

func TestServersAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := transport.New("", NewServer().Client())
	b := transport.New("", NewServer().Client())

	body := map[string]string{
		"email":    "solo@example.com",
		"password": "secret123",
		"role":     "USER_ROLE_CHEF",
	}
	require.NoError(t, a.Invoke(ctx, "identity.v1.AuthService/Register", body, nil, ""))

	// The same email is free on a fresh server.
	require.NoError(t, b.Invoke(ctx, "identity.v1.AuthService/Register", body, nil, ""))

	err := a.Invoke(ctx, "identity.v1.AuthService/Register", body, nil, "")
	assert.True(t, transport.IsCode(err, transport.CodeAlreadyExists))
}

func TestPageClamping(t *testing.T) {
	limit, offset := clampPage(0, -3, 20)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)

	limit, _ = clampPage(500, 0, 20)
	assert.Equal(t, 20, limit)

	lo, hi := page(5, 10, 3)
	assert.Equal(t, 3, lo)
	assert.Equal(t, 5, hi)

	lo, hi = page(5, 10, 9)
	assert.Equal(t, 5, lo)
	assert.Equal(t, 5, hi)
}
