package controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/talenthub/booking-api/db"
	"github.com/talenthub/booking-api/models"
)

// clampPagination keeps client-supplied paging values usable: anything
// below 1 falls back to the defaults, so offset and page-count math never
// see a zero or negative limit.
func clampPagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

// GetAllExperts returns all service-providing users, paginated
func GetAllExperts(c *fiber.Ctx) error {
	var experts []models.User

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	page, limit = clampPagination(page, limit)
	offset := (page - 1) * limit

	if err := db.DB.Preload("Role").
		Joins("JOIN roles ON users.role_id = roles.id").
		Where("roles.name = ?", models.RoleExpert).
		Limit(limit).
		Offset(offset).
		Find(&experts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch experts",
		})
	}

	var count int64
	db.DB.Model(&models.User{}).
		Joins("JOIN roles ON users.role_id = roles.id").
		Where("roles.name = ?", models.RoleExpert).
		Count(&count)

	for i := range experts {
		experts[i].Password = ""
		experts[i].OTP = ""
	}

	return c.JSON(fiber.Map{
		"experts": experts,
		"total":   count,
		"page":    page,
		"limit":   limit,
		"pages":   (int(count) + limit - 1) / limit,
	})
}

// GetExpertDetails returns one expert's profile with availability docs
func GetExpertDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	var expert models.User
	if err := db.DB.Preload("Role").First(&expert, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Expert not found",
		})
	}

	if expert.Role.Name != models.RoleExpert {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User is not an expert",
		})
	}

	var details models.ExpertDetails
	db.DB.Where("expert_id = ?", id).First(&details)

	var docs []models.AvailabilityDoc
	db.DB.Where("expert_id = ?", id).Find(&docs)

	expert.Password = ""
	expert.OTP = ""

	return c.JSON(fiber.Map{
		"expert":       expert,
		"details":      details,
		"availability": docs,
	})
}

// GetExpertServices returns the active offerings of one expert
func GetExpertServices(c *fiber.Ctx) error {
	id := c.Params("id")

	var expert models.User
	if err := db.DB.First(&expert, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Expert not found",
		})
	}

	var services []models.Service
	if err := db.DB.Where("expert_id = ? AND is_active = ?", id, true).Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch expert services",
		})
	}

	return c.JSON(services)
}

// SearchExperts searches experts by first, last or full name
func SearchExperts(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Search query is required",
		})
	}

	var experts []models.User
	searchQuery := fmt.Sprintf("%%%s%%", query)

	if err := db.DB.Preload("Role").
		Joins("JOIN roles ON users.role_id = roles.id").
		Where("roles.name = ? AND (users.first_name ILIKE ? OR users.last_name ILIKE ? OR (users.first_name || ' ' || users.last_name) ILIKE ?)",
			models.RoleExpert, searchQuery, searchQuery, searchQuery).
		Group("users.id").
		Find(&experts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search experts",
		})
	}

	for i := range experts {
		experts[i].Password = ""
		experts[i].OTP = ""
	}

	return c.JSON(fiber.Map{
		"experts": experts,
		"count":   len(experts),
	})
}
