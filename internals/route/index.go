// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educonnect_backend/internals/configs"
	paymentService "educonnect_backend/internals/features/finance/payments/service"
	"educonnect_backend/internals/features/records/store"
	authService "educonnect_backend/internals/features/users/auth/service"
	adminAuth "educonnect_backend/internals/middlewares/auth"
	routeDetails "educonnect_backend/internals/route/details"
)

// Deps is everything the HTTP surface is built from.
type Deps struct {
	Config   configs.Config
	Store    *store.Store
	Sessions *authService.SessionService
	Gateway  paymentService.Gateway // nil disables online checkout
	DB       *gorm.DB               // nil with the file store
	Validate *validator.Validate
	Logger   log.Logger
}

var startTime time.Time

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()
	if d.Validate == nil {
		panic("routes: Deps.Validate is nil")
	}

	// ===================== BASE =====================
	BaseRoutes(app, d)

	// ===================== GROUPS =====================
	api := app.Group("/api")

	// login/logout/verify are registered before the guarded group: fiber runs
	// handlers in registration order and these never call Next.
	level.Info(d.Logger).Log("msg", "mounting auth routes")
	routeDetails.AuthRoutes(app.Group("/api/admin"), d.Sessions, d.Validate, d.Logger)

	admin := app.Group("/api/admin", adminAuth.RequireAdmin(d.Sessions))

	// ===================== MOUNT ROUTES =====================
	level.Info(d.Logger).Log("msg", "mounting assistant routes")
	routeDetails.AssistantPublicRoutes(api, d.Store, d.Config.DefaultStudent, d.Validate, d.Logger)

	level.Info(d.Logger).Log("msg", "mounting records routes")
	routeDetails.RecordsPublicRoutes(api, d.Store, d.Validate, d.Config.DefaultStudent)
	routeDetails.RecordsAdminRoutes(admin, d.Store, d.Validate, d.Config.DefaultStudent)

	level.Info(d.Logger).Log("msg", "mounting finance routes", "checkout_enabled", d.Gateway != nil)
	routeDetails.FinancePublicRoutes(api, d.Store, d.Gateway, d.Config.MidtransServerKey, d.Validate, d.Logger)

	FrontendRoutes(app, d)
}
