package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/talenthub/booking-api/controllers"
	"github.com/talenthub/booking-api/db"
	"github.com/talenthub/booking-api/middleware"
	"github.com/talenthub/booking-api/models"
)

// SetupServiceRoutes configures all service related routes. The controller
// receives its store here so the creation workflow never touches a global
// database handle.
func SetupServiceRoutes(app *fiber.App) {
	sc := controllers.NewServiceController(db.NewServiceStore())

	service := app.Group("/services")
	service.Get("/", sc.GetAllServices)
	service.Get("/mine", middleware.Protected(), middleware.RequireRole(models.RoleExpert), sc.GetMyServices)
	service.Get("/:id", sc.GetService)
	service.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleExpert), sc.CreateService)
	service.Patch("/:id/active", middleware.Protected(), middleware.RequireRole(models.RoleExpert), sc.SetServiceActive)
}
