package helpers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

// RegisterUser регистрирует пользователя через API
func RegisterUser(t *testing.T, ts *TestServer, email, password string) map[string]interface{} {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/register", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var user map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &user))
	return user
}

// Login возвращает access token
func Login(t *testing.T, ts *TestServer, email, password string) string {
	t.Helper()

	res, body := ts.SendForm(t, "/api/users/login", url.Values{"username": {email}, "password": {password}})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &token))
	require.Equal(t, "bearer", token.TokenType)
	require.NotEmpty(t, token.AccessToken)
	return token.AccessToken
}

// RegisterAndLogin регистрирует пользователя и возвращает его токен
func RegisterAndLogin(t *testing.T, ts *TestServer, email string) string {
	t.Helper()
	RegisterUser(t, ts, email, DefaultPassword)
	return Login(t, ts, email, DefaultPassword)
}
