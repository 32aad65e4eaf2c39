package routes

import (
	"context"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	database "educonnect_backend/internals/databases"
)

func BaseRoutes(app *fiber.App, d Deps) {
	app.Get("/api/health", func(c *fiber.Ctx) error {
		status := "healthy"
		httpStatus := fiber.StatusOK
		body := fiber.Map{
			"store":          d.Config.StoreDriver,
			"students":       len(d.Store.Snapshot().Students),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		}

		if d.DB != nil {
			body["database"] = "Connected"
			if err := database.Ping(context.Background(), d.DB, 2*time.Second); err != nil {
				body["database"] = "Database connection error"
				status = "degraded"
				httpStatus = fiber.StatusServiceUnavailable
			}
		}

		body["status"] = status
		body["timestamp"] = time.Now().Format(time.RFC3339)
		return c.Status(httpStatus).JSON(body)
	})
}

// FrontendRoutes is mounted last so the catch-all static handler never
// shadows an API route.
func FrontendRoutes(app *fiber.App, d Deps) {
	// Frontend: "/" → index.html, "/admin" → admin.html, assets under /static
	if dir := d.Config.StaticDir; dir != "" {
		app.Get("/admin", func(c *fiber.Ctx) error {
			return c.SendFile(filepath.Join(dir, "admin.html"))
		})
		app.Static("/static", dir, fiber.Static{Compress: true})
		app.Static("/", dir, fiber.Static{Compress: true, Index: "index.html"})
	}
}
