package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"educonnect_backend/internals/configs"
	"educonnect_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the shared stack: recover first, then access
// log, CORS and the global rate limit.
func SetupMiddlewares(app *fiber.App, cfg configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware(cfg.TimeZone))
	app.Use(CorsMiddleware(cfg.CorsOrigins))
	app.Use(GlobalRateLimiter())
}
