package assets

import (
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"asset-loader/core/pool"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, *Service, *pool.Pool) {
	svc, _, p := setupService(t)
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app, svc, p
}

func TestHandleLoad(t *testing.T) {
	app, svc, p := setupTestApp(t)

	req := httptest.NewRequest("POST", "/assets/load", strings.NewReader(`{"name":"config.json"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	var body LoadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotZero(t, body.Handle)

	settle(t, svc, p)

	resp, err = app.Test(httptest.NewRequest("GET", "/assets/"+strconv.FormatUint(body.Handle, 10), nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var status DocumentStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "loaded", status.State)
	assert.Equal(t, "chair", status.Data["name"])
}

func TestHandleLoad_BadRequest(t *testing.T) {
	app, _, _ := setupTestApp(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed body", body: `{`},
		{name: "missing name", body: `{"source":""}`},
		{name: "unknown source", body: `{"name":"config.json","source":"remote"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/assets/load", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHandleGet_Errors(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/assets/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/assets/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleStatus(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/assets/status", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "complete", body.Completion)
	assert.Equal(t, []string{"[default source]"}, body.Sources)
}

func TestHandleHotReload(t *testing.T) {
	app, svc, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("PUT", "/assets/hot-reload?enabled=off", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.False(t, svc.Status().HotReload)

	resp, err = app.Test(httptest.NewRequest("PUT", "/assets/hot-reload?enabled=maybe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
