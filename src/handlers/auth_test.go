package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupAndLoginFlow(t *testing.T) {
	env := newTestEnv()

	code, body := env.do(t, http.MethodPost, "/api/auth/setup", "", gin.H{
		"username": "vicente",
		"email":    "vicente@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Usuario administrador creado exitosamente", body["message"])

	code, body = env.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "vicente",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "vicente", user["username"])
	assert.Equal(t, "admin", user["role"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")
}

func TestSetupConflict(t *testing.T) {
	env := newTestEnv()
	env.setupAdmin(t)

	code, body := env.do(t, http.MethodPost, "/api/auth/setup", "", gin.H{
		"username": "second",
		"email":    "second@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Ya existe un usuario administrador", body["message"])
}

func TestSetupValidationEnvelope(t *testing.T) {
	env := newTestEnv()

	code, body := env.do(t, http.MethodPost, "/api/auth/setup", "", gin.H{
		"username": "vi",
		"email":    "not-an-email",
		"password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["success"])

	errs, ok := body["errors"].([]interface{})
	require.True(t, ok)
	assert.Len(t, errs, 3)
}

func TestLoginBadCredentials(t *testing.T) {
	env := newTestEnv()
	env.setupAdmin(t)

	code, body := env.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "vicente",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Credenciales inválidas", body["message"])

	code, body = env.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "nobody",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Credenciales inválidas", body["message"])
}

func TestLoginEmptyFields(t *testing.T) {
	env := newTestEnv()

	code, body := env.do(t, http.MethodPost, "/api/auth/login", "", gin.H{})
	assert.Equal(t, http.StatusBadRequest, code)

	errs, ok := body["errors"].([]interface{})
	require.True(t, ok)
	assert.Len(t, errs, 2)
}

func TestMe(t *testing.T) {
	env := newTestEnv()
	token := env.setupAdmin(t)

	t.Run("with token", func(t *testing.T) {
		code, body := env.do(t, http.MethodGet, "/api/auth/me", token, nil)
		require.Equal(t, http.StatusOK, code)

		user, ok := body["user"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "vicente", user["username"])
		assert.Equal(t, "vicente@example.com", user["email"])
	})

	t.Run("without token", func(t *testing.T) {
		code, body := env.do(t, http.MethodGet, "/api/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "No hay token, autorización denegada", body["message"])
	})
}
