package authController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authController "github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/controllers/auth"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/middlewares"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/models"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/responses"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/routes"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/stores/storetest"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/validation"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) (*fiber.App, *storetest.UserStore) {
	t.Helper()

	users := storetest.NewUserStore()
	app := fiber.New()
	routes.AuthRoutes(app, &authController.Controller{
		Users:     users,
		JWTSecret: testSecret,
		Validate:  validation.New(),
	}, middlewares.Auth(users, testSecret))
	return app, users
}

func request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, responses.APIResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope responses.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func register(t *testing.T, app *fiber.App, name, email, password string) map[string]interface{} {
	t.Helper()

	resp, envelope := request(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	return data
}

func TestRegister(t *testing.T) {
	app, users := newTestApp(t)

	data := register(t, app, "Ada", "ada@example.com", "hunter22")

	assert.Equal(t, "Ada", data["name"])
	assert.Equal(t, models.RoleUser, data["role"])
	assert.NotContains(t, data, "password")

	// Token is a valid HS256 token naming the new user.
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(data["token"].(string), claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, data["_id"], claims["id"])

	// Stored password is a bcrypt hash, not the plaintext.
	for _, user := range users.Users {
		assert.NotEqual(t, "hunter22", user.Password)
		assert.NotEmpty(t, user.Password)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, _ := newTestApp(t)

	register(t, app, "Ada", "ada@example.com", "hunter22")
	resp, envelope := request(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     "Ada Again",
		"email":    "ada@example.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, envelope.Message, "already exists")
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name string
		body fiber.Map
	}{
		{"short name", fiber.Map{"name": "A", "email": "a@example.com", "password": "hunter22"}},
		{"bad email", fiber.Map{"name": "Ada", "email": "not-an-email", "password": "hunter22"}},
		{"short password", fiber.Map{"name": "Ada", "email": "a@example.com", "password": "abc"}},
		{"empty body", fiber.Map{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, envelope := request(t, app, http.MethodPost, "/api/auth/register", "", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "Validation failed", envelope.Message)
			assert.NotNil(t, envelope.Errors)
		})
	}
}

func TestLogin(t *testing.T) {
	app, _ := newTestApp(t)
	register(t, app, "Ada", "ada@example.com", "hunter22")

	t.Run("correct password", func(t *testing.T) {
		resp, envelope := request(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"email":    "ada@example.com",
			"password": "hunter22",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data := envelope.Data.(map[string]interface{})
		assert.NotEmpty(t, data["token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		resp, envelope := request(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"email":    "ada@example.com",
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid credentials", envelope.Message)
	})

	t.Run("unknown account", func(t *testing.T) {
		resp, envelope := request(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"email":    "nobody@example.com",
			"password": "hunter22",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid credentials", envelope.Message)
	})
}

func TestProfile(t *testing.T) {
	app, _ := newTestApp(t)
	data := register(t, app, "Ada", "ada@example.com", "hunter22")
	token := data["token"].(string)

	t.Run("get", func(t *testing.T) {
		resp, envelope := request(t, app, http.MethodGet, "/api/auth/profile", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		profile := envelope.Data.(map[string]interface{})
		assert.Equal(t, "ada@example.com", profile["email"])
	})

	t.Run("get without token", func(t *testing.T) {
		resp, _ := request(t, app, http.MethodGet, "/api/auth/profile", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("update name and password", func(t *testing.T) {
		resp, envelope := request(t, app, http.MethodPut, "/api/auth/profile", token, fiber.Map{
			"name":     "Ada Lovelace",
			"password": "correct-horse",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		profile := envelope.Data.(map[string]interface{})
		assert.Equal(t, "Ada Lovelace", profile["name"])

		// Old password no longer works, new one does.
		resp, _ = request(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"email":    "ada@example.com",
			"password": "hunter22",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		resp, _ = request(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"email":    "ada@example.com",
			"password": "correct-horse",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestLogout(t *testing.T) {
	app, _ := newTestApp(t)

	resp, envelope := request(t, app, http.MethodPost, "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, envelope.Success)
}
