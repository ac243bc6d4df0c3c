package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/talenthub/booking-api/controllers"
	"github.com/talenthub/booking-api/middleware"
	"github.com/talenthub/booking-api/models"
)

// SetupAvailabilityRoutes configures availability document routes
func SetupAvailabilityRoutes(app *fiber.App) {
	availability := app.Group("/availability")
	availability.Get("/expert/:expertId", controllers.GetExpertAvailability)
	availability.Get("/:id/slot", controllers.ResolveSlot)
	availability.Get("/:id/hours", controllers.ListHourlySlots)
	availability.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleExpert), controllers.CreateAvailability)
	availability.Post("/:id/entries", middleware.Protected(), middleware.RequireRole(models.RoleExpert), controllers.AddAvailabilityEntry)
	availability.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleExpert), controllers.DeleteAvailability)
}
