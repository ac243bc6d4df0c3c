package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/talenthub/booking-api/controllers"
	"github.com/talenthub/booking-api/middleware"
	"github.com/talenthub/booking-api/models"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings", middleware.Protected())
	booking.Get("/", controllers.GetMyBookings)
	booking.Get("/:id", controllers.GetBooking)
	booking.Post("/", middleware.RequireRole(models.RoleArtist), controllers.CreateBooking)
	booking.Patch("/:id/status", controllers.UpdateBookingStatus)
}
