package transport

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestInvokeSetsAuthHeaderOnlyWithToken(t *testing.T) {
	var got *http.Request
	client := New("", DoerFunc(func(req *http.Request) (*http.Response, error) {
		got = req
		return jsonResponse(200, `{}`), nil
	}))

	err := client.Invoke(context.Background(), "identity.v1.AuthService/GetMe", struct{}{}, nil, "")
	require.NoError(t, err)
	_, present := got.Header["Authorization"]
	assert.False(t, present, "Authorization header must be absent without a token")
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))

	err = client.Invoke(context.Background(), "identity.v1.AuthService/GetMe", struct{}{}, nil, "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", got.Header.Get("Authorization"))
}

func TestInvokeBuildsURL(t *testing.T) {
	var got *http.Request
	client := New("http://api.example.com/", DoerFunc(func(req *http.Request) (*http.Response, error) {
		got = req
		return jsonResponse(200, `{}`), nil
	}))

	err := client.Invoke(context.Background(), "/job.v1.JobService/GetJob", struct{}{}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "http://api.example.com/job.v1.JobService/GetJob", got.URL.String())
	assert.Equal(t, http.MethodPost, got.Method)
}

func TestInvokeOmitsBodyWhenNil(t *testing.T) {
	var got *http.Request
	client := New("", DoerFunc(func(req *http.Request) (*http.Response, error) {
		got = req
		return jsonResponse(200, `{}`), nil
	}))

	require.NoError(t, client.Invoke(context.Background(), "x.v1.X/Y", nil, nil, ""))
	assert.Nil(t, got.Body)
}

func TestInvokeErrorEnvelope(t *testing.T) {
	client := New("", DoerFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(404, `{"code":"not_found","message":"no profile"}`), nil
	}))

	err := client.Invoke(context.Background(), "chef.v1.ChefProfileService/GetMyProfile", struct{}{}, nil, "tok")
	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "not_found", apiErr.Code)
	assert.Equal(t, "no profile", apiErr.Message)
	assert.Equal(t, 404, apiErr.Status)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsCode(err, CodeInternal))
}

func TestInvokeErrorDefaults(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"empty body", 500, ``, "request failed with status 500"},
		{"non-json body", 502, `bad gateway`, "request failed with status 502"},
		{"message only", 400, `{"message":"boom"}`, "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := New("", DoerFunc(func(*http.Request) (*http.Response, error) {
				return jsonResponse(tt.status, tt.body), nil
			}))
			err := client.Invoke(context.Background(), "x.v1.X/Y", struct{}{}, nil, "")
			apiErr, ok := AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, CodeUnknown, apiErr.Code)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, tt.status, apiErr.Status)
		})
	}
}

func TestInvokeLenientSuccessDecode(t *testing.T) {
	var out struct {
		Value string `json:"value"`
	}
	client := New("", DoerFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(200, `this is not json`), nil
	}))

	err := client.Invoke(context.Background(), "x.v1.X/Y", struct{}{}, &out, "")
	require.NoError(t, err, "unparsable 2xx bodies must not surface as errors")
	assert.Empty(t, out.Value)
}

func TestInvokePropagatesTransportFailure(t *testing.T) {
	client := New("", DoerFunc(func(*http.Request) (*http.Response, error) {
		return nil, io.ErrUnexpectedEOF
	}))
	err := client.Invoke(context.Background(), "x.v1.X/Y", struct{}{}, nil, "")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	_, ok := AsAPIError(err)
	assert.False(t, ok)
}
