package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/talenthub/booking-api/controllers"
	"github.com/talenthub/booking-api/middleware"
	"github.com/talenthub/booking-api/models"
)

// SetupExpertRoutes configures expert browsing, profile and review routes
func SetupExpertRoutes(app *fiber.App) {
	expert := app.Group("/experts")
	expert.Get("/", controllers.GetAllExperts)
	expert.Get("/search", controllers.SearchExperts)
	expert.Get("/dashboard", middleware.Protected(), middleware.RequireRole(models.RoleExpert), controllers.GetExpertDashboard)
	expert.Get("/:id", controllers.GetExpertDetails)
	expert.Get("/:id/services", controllers.GetExpertServices)
	expert.Get("/:id/reviews", controllers.GetExpertReviews)

	reviews := app.Group("/reviews", middleware.Protected())
	reviews.Post("/", middleware.RequireRole(models.RoleArtist), controllers.CreateReview)

	profile := app.Group("/profile", middleware.Protected(), middleware.RequireRole(models.RoleExpert))
	profile.Get("/", controllers.GetMyDetails)
	profile.Post("/", controllers.UpsertMyDetails)
	profile.Post("/picture", controllers.UpdateProfilePicture)
	profile.Post("/certificates", controllers.AddCertificate)
	profile.Post("/media", controllers.AddMedia)
}
