package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/port-russell/marina-service/internal/api/http/handlers"
	"github.com/port-russell/marina-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	AppName        string
	Version        string
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Catways        *handlers.CatwaysHandler
	Bookings       *handlers.BookingsHandler
	Dashboard      *handlers.DashboardHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes: a public tree (landing page, account
// signup and sign-in, docs, probes), the token-gated catway/reservation
// tree, and the token-gated dashboard tree.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{"Title": "Port de Russell"})
	})

	app.Static("/docs", "./docs")

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	users := app.Group("/users")
	users.Post("/", cfg.Users.Add)
	users.Post("/authenticate", cfg.Users.Authenticate)
	users.Get("/:id", cfg.Users.GetByID)
	users.Patch("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)

	catways := app.Group("/catways", cfg.AuthMiddleware.Handle)
	catways.Get("/", cfg.Catways.GetAll)
	catways.Post("/", cfg.Catways.Add)
	catways.Get("/:id/reservations", cfg.Bookings.GetAll)
	catways.Post("/:id/reservations", cfg.Bookings.Add)
	catways.Get("/:id/reservations/:idReservation", cfg.Bookings.GetByID)
	catways.Patch("/:id/reservations/:idReservation", cfg.Bookings.Update)
	catways.Delete("/:id/reservations/:idReservation", cfg.Bookings.Delete)
	catways.Get("/:id", cfg.Catways.GetByID)
	catways.Patch("/:id", cfg.Catways.Update)
	catways.Delete("/:id", cfg.Catways.Delete)

	dashboard := app.Group("/tableau-de-bord", cfg.AuthMiddleware.Handle)
	dashboard.Get("/", cfg.Dashboard.Dashboard)
	dashboard.Post("/updateUser", cfg.Dashboard.UpdateUserForm)
	dashboard.Post("/updateUser/:id", cfg.Dashboard.UpdateUser)
	dashboard.Get("/deleteUser", cfg.Dashboard.DeleteUser)
	dashboard.Get("/updateCatway/:id", cfg.Dashboard.UpdateCatwayForm)
	dashboard.Post("/updateCatway/:id", cfg.Dashboard.UpdateCatway)
	dashboard.Get("/deleteCatway/:id", cfg.Dashboard.DeleteCatway)
	dashboard.Post("/addBooking", cfg.Dashboard.AddBooking)
	dashboard.Get("/getBookingInfo/:id", cfg.Dashboard.BookingInfo)
	dashboard.Get("/deleteBooking/:id", cfg.Dashboard.DeleteBooking)

	// Catch-all 404 envelope.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"name":    cfg.AppName,
			"version": cfg.Version,
			"status":  http.StatusNotFound,
			"message": "not_found",
		})
	})
}
