package db

import (
	"fmt"
	"log"

	"github.com/talenthub/booking-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Service{},
		&models.AvailabilityDoc{},
		&models.Booking{},
		&models.ExpertDetails{},
		&models.Review{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedRoles()

	fmt.Println("✅ Migrations applied successfully!")
}

func seedRoles() {
	roles := []models.Role{
		{Name: models.RoleArtist, Description: "Books expert services"},
		{Name: models.RoleExpert, Description: "Offers bookable hourly services"},
		{Name: models.RoleSponsor, Description: "Browses artists and experts"},
		{Name: models.RoleAdmin, Description: "Administrator with full access"},
	}

	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}
}
