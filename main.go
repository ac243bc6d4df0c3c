package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/talenthub/booking-api/cron"

	"github.com/talenthub/booking-api/db"

	"github.com/talenthub/booking-api/redis"

	"github.com/talenthub/booking-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("TalentHub booking API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupAvailabilityRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupExpertRoutes(app)

	log.Fatal(app.Listen(":8000"))
}
