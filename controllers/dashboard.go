package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/talenthub/booking-api/db"
	"github.com/talenthub/booking-api/models"
	"github.com/talenthub/booking-api/utils"
)

// GetExpertDashboard summarizes the current expert's activity: upcoming
// confirmed bookings, pending requests and earnings from completed work.
func GetExpertDashboard(c *fiber.Ctx) error {
	expertID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No session user",
		})
	}

	now := time.Now()

	var upcoming []models.Booking
	if err := db.DB.Preload("Service").Preload("Artist").
		Where("expert_id = ? AND status = ? AND start_time > ?", expertID, models.StatusConfirmed, now).
		Order("start_time").
		Limit(10).
		Find(&upcoming).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch upcoming bookings",
			Error:   err.Error(),
		})
	}

	var pendingCount int64
	db.DB.Model(&models.Booking{}).
		Where("expert_id = ? AND status = ?", expertID, models.StatusPending).
		Count(&pendingCount)

	// Earnings: hours of completed bookings times the service rate
	type earningsRow struct {
		Total float64
	}
	var earnings earningsRow
	db.DB.Raw(`
		SELECT COALESCE(SUM(
			EXTRACT(EPOCH FROM (b.end_time - b.start_time)) / 3600 * s.per_hour_charge
		), 0) AS total
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		WHERE b.expert_id = ? AND b.status = 'completed' AND b.deleted_at IS NULL
	`, expertID).Scan(&earnings)

	var avgRating float64
	db.DB.Model(&models.Review{}).
		Where("expert_id = ?", expertID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avgRating)

	for i := range upcoming {
		upcoming[i].Artist.Password = ""
		upcoming[i].Artist.OTP = ""
	}

	return c.JSON(fiber.Map{
		"upcoming_bookings": upcoming,
		"pending_requests":  pendingCount,
		"total_earnings":    earnings.Total,
		"average_rating":    avgRating,
	})
}
