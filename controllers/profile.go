package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/talenthub/booking-api/db"
	"github.com/talenthub/booking-api/models"
	"github.com/talenthub/booking-api/utils"
)

const maxUploadBytes = 10 << 20 // 10 MB

// GetMyDetails returns the expert profile of the current user
func GetMyDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No session user",
		})
	}

	var details models.ExpertDetails
	if err := db.DB.Where("expert_id = ?", userID).First(&details).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}
	return c.JSON(details)
}

// UpsertMyDetails creates or updates the expert profile text fields
func UpsertMyDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No session user",
		})
	}

	input := new(models.ExpertDetails)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var details models.ExpertDetails
	if db.DB.Where("expert_id = ?", userID).First(&details).RowsAffected == 0 {
		details = models.ExpertDetails{ExpertID: userID}
	}
	details.Bio = input.Bio
	details.City = input.City
	details.Country = input.Country

	if err := db.DB.Save(&details).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save profile",
			Error:   err.Error(),
		})
	}
	return c.JSON(details)
}

// uploadField receives one multipart file, validates its size with the
// three-outcome check, pushes it to Cloudinary and returns the URL.
func uploadField(c *fiber.Ctx, field, folder string, userID uint) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", fmt.Errorf("no %s file in request", field)
	}

	switch utils.CheckUploadSize(fileHeader, maxUploadBytes) {
	case utils.SizeTooLarge:
		return "", fmt.Errorf("%s exceeds the %d MB limit", field, maxUploadBytes>>20)
	case utils.SizeUnknown:
		return "", fmt.Errorf("could not determine %s size", field)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	publicID := fmt.Sprintf("%s_%d", field, userID)
	return utils.UploadToCloudinary(file, publicID, folder)
}

// UpdateProfilePicture uploads a new profile picture
func UpdateProfilePicture(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No session user",
		})
	}

	url, err := uploadField(c, "picture", "profiles", userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var details models.ExpertDetails
	if db.DB.Where("expert_id = ?", userID).First(&details).RowsAffected == 0 {
		details = models.ExpertDetails{ExpertID: userID}
	}
	details.ProfilePicture = url

	if err := db.DB.Save(&details).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save profile picture",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"profile_picture": url})
}

// AddCertificate uploads a certificate document and appends it to the list
func AddCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No session user",
		})
	}

	url, err := uploadField(c, "certificate", "certificates", userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var details models.ExpertDetails
	if db.DB.Where("expert_id = ?", userID).First(&details).RowsAffected == 0 {
		details = models.ExpertDetails{ExpertID: userID}
	}
	details.Certificates = append(details.Certificates, url)

	if err := db.DB.Save(&details).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save certificate",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"certificates": details.Certificates})
}

// AddMedia uploads a portfolio media item
func AddMedia(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No session user",
		})
	}

	url, err := uploadField(c, "media", "media", userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var details models.ExpertDetails
	if db.DB.Where("expert_id = ?", userID).First(&details).RowsAffected == 0 {
		details = models.ExpertDetails{ExpertID: userID}
	}
	details.Media = append(details.Media, url)

	if err := db.DB.Save(&details).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save media",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"media": details.Media})
}
