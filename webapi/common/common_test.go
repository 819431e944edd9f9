package common

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("x: %w", domain.ErrValidation), fiber.StatusBadRequest},
		{domain.ErrNotFound, fiber.StatusNotFound},
		{domain.ErrUnknownGateway, fiber.StatusNotFound},
		{domain.ErrAlreadyExists, fiber.StatusConflict},
		{domain.ErrInvalidSignature, fiber.StatusUnauthorized},
		{domain.ErrAmountMismatch, fiber.StatusUnprocessableEntity},
		{domain.ErrGatewayRejected, fiber.StatusBadGateway},
		{fmt.Errorf("after 3 attempts: %w", domain.ErrGatewayUnavailable), fiber.StatusServiceUnavailable},
		{fiber.ErrTeapot, fiber.StatusTeapot},
		{nil, fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorToStatusCode(tt.err), fmt.Sprint(tt.err))
	}
}

type input struct {
	Reference string `json:"reference" validate:"required"`
}

func TestBindAndValidate(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		in, err := BindAndValidate[input](c)
		if in == nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "ok", in)
	})

	do := func(body string) (*http.Response, ProblemDetails) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		var pd ProblemDetails
		_ = json.NewDecoder(resp.Body).Decode(&pd)
		return resp, pd
	}

	resp, _ := do(`{"reference":"ref123"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, pd := do(`{}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "Validation failed", pd.Title)
	assert.Equal(t, map[string]any{"Reference": "required"}, pd.Errors)

	resp, pd = do(`{`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request body", pd.Title)
}
