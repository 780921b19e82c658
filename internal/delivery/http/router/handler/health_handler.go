package handler

import (
	"net/http"

	"portal/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthCheck handles GET /health.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// Metrics serves the Prometheus registry on GET /metrics.
func Metrics() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
