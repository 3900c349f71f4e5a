package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "redis_errors_total",
	Help: "Total number of Redis command errors",
}, []string{"command"})

// ActiveWebSockets tracks the number of open realtime connections.
var ActiveWebSockets = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "websocket_active_connections",
	Help: "Number of currently open WebSocket connections",
})

// NotificationsCreated counts persisted notifications by kind.
var NotificationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "notifications_created_total",
	Help: "Total number of notifications written to the database",
}, []string{"kind"})

// InitMetrics creates the Prometheus middleware for the given service name
// and registers the default process and Go collectors through it.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus handler as a plain Fiber middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return prom.Middleware(c)
	}
}
