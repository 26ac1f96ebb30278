package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hareware-api/internal/domain"
	apphttp "github.com/jhoicas/hareware-api/internal/interfaces/http"
	"github.com/jhoicas/hareware-api/pkg/logger"
)

func TestRequestObserver_CountsByRouteAndStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := apphttp.NewMetrics(reg, reg)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.NewErrorHandler(logger.Nop())})
	app.Use(apphttp.RequestObserver(logger.Nop(), m))
	app.Get("/metrics", m.Handler())
	app.Get("/item/:id", func(c *fiber.Ctx) error {
		if c.Params("id") == "0" {
			return domain.ErrNotFound
		}
		return c.SendString("ok")
	})

	for _, path := range []string{"/item/1", "/item/2", "/item/0"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(raw)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(body, `hareware_http_requests_total{method="GET",route="/item/:id",status="200"} 2`), body)
	assert.True(t, strings.Contains(body, `hareware_http_requests_total{method="GET",route="/item/:id",status="404"} 1`), body)
	n, err := testutil.GatherAndCount(reg, "hareware_http_inflight_requests")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
