package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/talenthub/booking-api/db"
	"github.com/talenthub/booking-api/models"
	"github.com/talenthub/booking-api/utils"
)

// GetExpertReviews lists reviews left for one expert
func GetExpertReviews(c *fiber.Ctx) error {
	expertID := c.Params("id")

	var reviews []models.Review
	if err := db.DB.Preload("Artist").Preload("Service").
		Where("expert_id = ?", expertID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch reviews",
			Error:   err.Error(),
		})
	}

	for i := range reviews {
		if reviews[i].IsAnonymous {
			reviews[i].Artist = models.User{}
			reviews[i].ArtistID = 0
		}
		reviews[i].Artist.Password = ""
		reviews[i].Artist.OTP = ""
	}

	return c.JSON(reviews)
}

// CreateReview lets an artist review a service they booked
func CreateReview(c *fiber.Ctx) error {
	artistID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No session user",
		})
	}

	review := new(models.Review)
	if err := c.BodyParser(review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	review.ArtistID = artistID

	exists, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check existing reviews",
			Error:   err.Error(),
		})
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already reviewed this service",
		})
	}

	// A completed booking marks the review verified
	if review.BookingID != nil {
		var booking models.Booking
		if db.DB.Where("id = ? AND artist_id = ? AND status = ?",
			*review.BookingID, artistID, models.StatusCompleted).
			First(&booking).RowsAffected > 0 {
			review.IsVerified = true
		}
	}

	if err := db.DB.Create(review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create review",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}
