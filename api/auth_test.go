package api

import (
	"net/http"
	"testing"

	"docutext/pdf-api/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRegisterReturnsUserWithoutPassword(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(a, http.MethodPost, "/auth/registrar", "", gin.H{
		"nome_usuario": "maria",
		"email":        "maria@example.com",
		"senha":        "super-secret-1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := parseBody(t, w)
	require.Equal(t, "maria", body["nome_usuario"])
	require.Equal(t, "maria@example.com", body["email"])
	require.Equal(t, true, body["ativo"])
	require.NotContains(t, w.Body.String(), "super-secret-1")
	require.NotContains(t, body, "senha")
	require.NotContains(t, body, "PasswordHash")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	a := newTestAPI(t)
	registerUser(t, a, "maria", "maria@example.com", "super-secret-1")

	w := doJSON(a, http.MethodPost, "/auth/registrar", "", gin.H{
		"nome_usuario": "maria",
		"email":        "other@example.com",
		"senha":        "super-secret-1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "already registered")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	a := newTestAPI(t)
	registerUser(t, a, "maria", "maria@example.com", "super-secret-1")

	w := doJSON(a, http.MethodPost, "/auth/registrar", "", gin.H{
		"nome_usuario": "othername",
		"email":        "maria@example.com",
		"senha":        "super-secret-1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "already registered")
}

func TestRegisterRejectsBadFields(t *testing.T) {
	a := newTestAPI(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"empty username", gin.H{"nome_usuario": "", "email": "a@b.com", "senha": "long-enough"}},
		{"bad email", gin.H{"nome_usuario": "maria", "email": "not-an-email", "senha": "long-enough"}},
		{"short password", gin.H{"nome_usuario": "maria", "email": "a@b.com", "senha": "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(a, http.MethodPost, "/auth/registrar", "", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLoginHappyPath(t *testing.T) {
	a := newTestAPI(t)
	registerUser(t, a, "maria", "maria@example.com", "super-secret-1")

	token := loginUser(t, a, "maria", "super-secret-1")
	require.NotEmpty(t, token)
}

func TestLoginWrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	a := newTestAPI(t)
	registerUser(t, a, "maria", "maria@example.com", "super-secret-1")

	wrongPass := doJSON(a, http.MethodPost, "/auth/login", "", gin.H{
		"nome_usuario": "maria",
		"senha":        "not-the-password",
	})
	unknownUser := doJSON(a, http.MethodPost, "/auth/login", "", gin.H{
		"nome_usuario": "nobody",
		"senha":        "not-the-password",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	require.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	require.Equal(t,
		parseBody(t, wrongPass)["error"],
		parseBody(t, unknownUser)["error"])
}

func TestLoginInactiveUser(t *testing.T) {
	a := newTestAPI(t)
	registerUser(t, a, "maria", "maria@example.com", "super-secret-1")

	err := a.DB.Model(&model.User{}).
		Where("username = ?", "maria").
		Update("active", false).
		Error
	require.NoError(t, err)

	w := doJSON(a, http.MethodPost, "/auth/login", "", gin.H{
		"nome_usuario": "maria",
		"senha":        "super-secret-1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Inactive")
}

func TestAuthMe(t *testing.T) {
	a := newTestAPI(t)
	registerUser(t, a, "maria", "maria@example.com", "super-secret-1")
	token := loginUser(t, a, "maria", "super-secret-1")

	w := doJSON(a, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "maria", parseBody(t, w)["nome_usuario"])
}

func TestAuthMeRejectsBadTokens(t *testing.T) {
	a := newTestAPI(t)
	registerUser(t, a, "maria", "maria@example.com", "super-secret-1")
	token := loginUser(t, a, "maria", "super-secret-1")

	tests := []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"garbage", "not.a.jwt"},
		{"tampered", token[:len(token)-2] + "xx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(a, http.MethodGet, "/auth/me", tt.token, nil)
			require.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestInactiveUserTokenStillResolves(t *testing.T) {
	a := newTestAPI(t)
	registerUser(t, a, "maria", "maria@example.com", "super-secret-1")
	token := loginUser(t, a, "maria", "super-secret-1")

	err := a.DB.Model(&model.User{}).
		Where("username = ?", "maria").
		Update("active", false).
		Error
	require.NoError(t, err)

	// Deactivation doesn't revoke already issued tokens
	w := doJSON(a, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
}
