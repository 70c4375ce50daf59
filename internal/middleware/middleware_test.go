package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog/internal/middleware"
	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withUser(user *models.User) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user", user)
		return c.Next()
	}
}

func ok(c *fiber.Ctx) error {
	return c.SendString("ok")
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRoleRequired(t *testing.T) {
	admin := &models.User{FullName: "Ada", Roles: models.StringList{"admin"}}
	user := &models.User{FullName: "Uma", Roles: models.StringList{"user"}}

	app := fiber.New()
	app.Get("/admin", withUser(admin), middleware.RoleRequired(models.RoleAdmin, models.RoleSuperUser), ok)
	app.Get("/user", withUser(user), middleware.RoleRequired(models.RoleAdmin, models.RoleSuperUser), ok)
	app.Get("/open", withUser(user), middleware.RoleRequired(), ok)
	app.Get("/anonymous", middleware.RoleRequired(), ok)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/user", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "User Uma need a valid role: [admin, super-user]", decode(t, resp)["message"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/open", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/anonymous", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

type stubLimiter struct {
	allowed bool
	err     error
}

func (s stubLimiter) Allow(context.Context, string) (bool, error) {
	return s.allowed, s.err
}

func TestRateLimit(t *testing.T) {
	cases := []struct {
		limiter stubLimiter
		status  int
	}{
		{stubLimiter{allowed: true}, http.StatusOK},
		{stubLimiter{allowed: false}, http.StatusTooManyRequests},
		{stubLimiter{err: errors.New("redis down")}, http.StatusOK},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			app := fiber.New()
			app.Post("/login", middleware.RateLimit(tc.limiter), ok)

			resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestRespondError(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{&services.Error{Kind: services.ErrConflict, Message: "Key (title)=(A) already exists."}, http.StatusBadRequest, "Key (title)=(A) already exists."},
		{&services.Error{Kind: services.ErrNotFound, Message: "Product with x not found"}, http.StatusNotFound, "Product with x not found"},
		{&services.Error{Kind: services.ErrInternal, Message: "Unexpected error, check server logs"}, http.StatusInternalServerError, "Unexpected error, check server logs"},
		{errors.New("pq: connection refused"), http.StatusInternalServerError, "Unexpected error, check server logs"},
	}
	for _, tc := range cases {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error { return middleware.RespondError(c, tc.err) })

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode)
		body := decode(t, resp)
		assert.Equal(t, tc.message, body["message"])
		assert.EqualValues(t, tc.status, body["statusCode"])
	}
}
