package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, 5*time.Second, StaticToken("test-token"))
}

func TestClientSendsBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.Profile.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer test-token", gotAuth)
}

func TestClientNoTokenSource(t *testing.T) {
	t.Parallel()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	client := New(server.URL, 5*time.Second, nil)
	_, err := client.Profile.Me(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestClientTokenSourceError(t *testing.T) {
	t.Parallel()

	tokenErr := errors.New("token store locked")
	client := New("http://localhost:1", 5*time.Second, func() (string, error) {
		return "", tokenErr
	})

	_, err := client.Profile.Me(context.Background())
	require.ErrorIs(t, err, tokenErr)
}

func TestClientTrimsBaseURL(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	client := New(server.URL+"/", 5*time.Second, nil)
	_, err := client.Profile.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/users/me", gotPath)
}

func TestClientDecodeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "detail field",
			status:  http.StatusUnprocessableEntity,
			body:    `{"detail": "Validation failed"}`,
			wantMsg: "Validation failed",
		},
		{
			name:    "message field",
			status:  http.StatusBadRequest,
			body:    `{"message": "Bad input"}`,
			wantMsg: "Bad input",
		},
		{
			name:    "error field",
			status:  http.StatusForbidden,
			body:    `{"error": "Forbidden"}`,
			wantMsg: "Forbidden",
		},
		{
			name:    "detail wins over message",
			status:  http.StatusBadRequest,
			body:    `{"detail": "primary", "message": "secondary"}`,
			wantMsg: "primary",
		},
		{
			name:    "non-json body",
			status:  http.StatusInternalServerError,
			body:    "<html>502</html>",
			wantMsg: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
				_, _ = w.Write([]byte(test.body))
			})

			_, err := client.Profile.Me(context.Background())
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, test.status, apiErr.Status)
			require.Equal(t, test.wantMsg, apiErr.Message)
		})
	}
}

func TestErrorString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Validation failed", (&Error{Status: 422, Message: "Validation failed"}).Error())
	require.Equal(t, "api returned status 500", (&Error{Status: 500}).Error())
}
