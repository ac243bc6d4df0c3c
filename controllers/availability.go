package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/talenthub/booking-api/db"
	"github.com/talenthub/booking-api/models"
	"github.com/talenthub/booking-api/utils"
)

// GetExpertAvailability lists the availability documents of one expert
func GetExpertAvailability(c *fiber.Ctx) error {
	expertID := c.Params("expertId")
	var docs []models.AvailabilityDoc
	if err := db.DB.Where("expert_id = ?", expertID).Find(&docs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch availability",
			Error:   err.Error(),
		})
	}
	return c.JSON(docs)
}

// AvailabilityEntryInput adds one calendar-key → time-slot pair to a doc.
type AvailabilityEntryInput struct {
	Key      models.CalendarKey `json:"key"`
	TimeSlot models.TimeSlot    `json:"time_slot"`
}

// CreateAvailabilityInput declares a new availability document.
type CreateAvailabilityInput struct {
	Timezone string                   `json:"timezone"`
	Entries  []AvailabilityEntryInput `json:"entries"`
}

// CreateAvailability stores a new availability document for the current
// expert. Entries are validated one by one; overlapping keys are rejected.
func CreateAvailability(c *fiber.Ctx) error {
	expertID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No session user",
		})
	}

	input := new(CreateAvailabilityInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	availability := models.ExpertAvailability{Timezone: input.Timezone}
	if _, err := availability.Location(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown timezone: " + input.Timezone,
		})
	}
	for _, entry := range input.Entries {
		if err := availability.AddEntry(entry.Key, entry.TimeSlot); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	doc := models.AvailabilityDoc{
		ExpertID:     expertID,
		Availability: availability,
	}
	if err := db.DB.Create(&doc).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create availability",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(doc)
}

// AddAvailabilityEntry appends one entry to an existing document.
func AddAvailabilityEntry(c *fiber.Ctx) error {
	expertID, _ := c.Locals("userID").(uint)

	var doc models.AvailabilityDoc
	if err := db.DB.First(&doc, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Availability not found",
		})
	}
	if doc.ExpertID != expertID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not your availability document",
		})
	}

	input := new(AvailabilityEntryInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := doc.Availability.AddEntry(input.Key, input.TimeSlot); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := db.DB.Save(&doc).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update availability",
			Error:   err.Error(),
		})
	}

	return c.JSON(doc)
}

// DeleteAvailability removes one availability document.
func DeleteAvailability(c *fiber.Ctx) error {
	expertID, _ := c.Locals("userID").(uint)

	var doc models.AvailabilityDoc
	if err := db.DB.First(&doc, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Availability not found",
		})
	}
	if doc.ExpertID != expertID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not your availability document",
		})
	}

	if err := db.DB.Delete(&doc).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete availability",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func targetDate(c *fiber.Ctx) (day, month, year int, err error) {
	day, err = strconv.Atoi(c.Query("day"))
	if err != nil {
		return
	}
	month, err = strconv.Atoi(c.Query("month"))
	if err != nil {
		return
	}
	year, err = strconv.Atoi(c.Query("year"))
	return
}

// ResolveSlot answers "which time range is bookable on this date" for one
// availability document.
func ResolveSlot(c *fiber.Ctx) error {
	var doc models.AvailabilityDoc
	if err := db.DB.First(&doc, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Availability not found",
		})
	}

	day, month, year, err := targetDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "day, month and year query parameters are required",
		})
	}

	slot, err := doc.Availability.ResolveTimeSlot(day, month, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to resolve availability",
			Error:   err.Error(),
		})
	}
	if slot == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No availability on that date",
		})
	}

	return c.JSON(slot)
}

// ListHourlySlots expands the resolved time range of a date into bookable
// hourly start labels.
func ListHourlySlots(c *fiber.Ctx) error {
	var doc models.AvailabilityDoc
	if err := db.DB.First(&doc, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Availability not found",
		})
	}

	day, month, year, err := targetDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "day, month and year query parameters are required",
		})
	}

	slot, err := doc.Availability.ResolveTimeSlot(day, month, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to resolve availability",
			Error:   err.Error(),
		})
	}
	if slot == nil {
		return c.JSON([]string{})
	}

	return c.JSON(models.ExpandHourlySlots(*slot))
}
