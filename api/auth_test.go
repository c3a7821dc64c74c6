package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthLogin(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "jo@example.com", creds.Email)
		require.Equal(t, "hunter2", creds.Password)

		_, _ = w.Write([]byte(`{"access_token": "tok-abc"}`))
	})

	resp, err := client.Auth.Login(context.Background(), Credentials{
		Email:    "jo@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)
	require.Equal(t, "tok-abc", resp.AccessToken)
}

func TestAuthLoginRejected(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Invalid credentials"}`))
	})

	_, err := client.Auth.Login(context.Background(), Credentials{Email: "x", Password: "y"})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestAuthOAuthCallback(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/google/callback", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "provider-tok", body["access_token"])

		_, _ = w.Write([]byte(`{"access_token": "tok-xyz"}`))
	})

	resp, err := client.Auth.OAuthCallback(context.Background(), "google", "provider-tok")
	require.NoError(t, err)
	require.Equal(t, "tok-xyz", resp.AccessToken)
}
