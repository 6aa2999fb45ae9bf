package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	load := map[string]string{
		"email":     "vendor@example.com",
		"name":      "Test Vendor",
		"password":  "password",
		"user_type": "vendor",
	}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", load)
	require.NoError(t, env.Auth.Register(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["access_token"])
	require.Equal(t, "bearer", resp["token_type"])

	user, ok := resp["user"].(map[string]interface{})
	require.True(t, ok, "expected user object in response")
	require.Equal(t, "vendor@example.com", user["email"])
	require.NotContains(t, user, "password_hash")
	require.NotContains(t, user, "password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.register("vendor@example.com", "vendor")

	load := map[string]string{
		"email":     "vendor@example.com",
		"name":      "Other",
		"password":  "other_password",
		"user_type": "vendor",
	}
	_, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", load)
	err := env.Auth.Register(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestRegisterInvalidUserType(t *testing.T) {
	env := newTestEnv(t)

	load := map[string]string{
		"email":     "someone@example.com",
		"name":      "Someone",
		"password":  "password",
		"user_type": "admin",
	}
	_, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", load)
	err := env.Auth.Register(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	_, userID := env.register("vendor@example.com", "vendor")

	load := map[string]string{
		"email":    "vendor@example.com",
		"password": "password",
	}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/login", load)
	require.NoError(t, env.Auth.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		User        struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "bearer", resp.TokenType)
	require.Equal(t, userID, resp.User.ID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.register("vendor@example.com", "vendor")

	for _, load := range []map[string]string{
		{"email": "vendor@example.com", "password": "wrong"},
		{"email": "nobody@example.com", "password": "password"},
	} {
		_, c := env.doJSONRequest(http.MethodPost, "/api/auth/login", load)
		err := env.Auth.Login(c)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok, "expected HTTPError")
		require.Equal(t, http.StatusUnauthorized, he.Code)
		require.Equal(t, "Invalid credentials", he.Message)
	}
}
