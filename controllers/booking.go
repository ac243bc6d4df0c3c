package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/talenthub/booking-api/db"
	"github.com/talenthub/booking-api/models"
	"github.com/talenthub/booking-api/utils"
)

// FilterBookings keeps the bookings whose counterpart user matches the
// query. The counterpart is the expert when the viewer is an artist and the
// artist otherwise; the query is trimmed, case-folded and matched as a
// substring of the counterpart's first name, last name or "first last"
// form. A blank query keeps everything.
func FilterBookings(bookings []models.Booking, users []models.User, viewerRole string, query string) []models.Booking {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return bookings
	}

	byID := make(map[uint]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	var kept []models.Booking
	for _, b := range bookings {
		counterpartID := b.ArtistID
		if viewerRole == models.RoleArtist {
			counterpartID = b.ExpertID
		}
		counterpart, ok := byID[counterpartID]
		if !ok {
			continue
		}
		first := strings.ToLower(counterpart.FirstName)
		last := strings.ToLower(counterpart.LastName)
		full := strings.ToLower(counterpart.FullName())
		if strings.Contains(first, query) || strings.Contains(last, query) || strings.Contains(full, query) {
			kept = append(kept, b)
		}
	}
	return kept
}

// GetMyBookings lists the current user's bookings on their side of the
// marketplace, optionally filtered by counterpart name via ?q=.
func GetMyBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No session user",
		})
	}
	role, _ := c.Locals("role").(string)

	participantColumn := "artist_id"
	if role == models.RoleExpert {
		participantColumn = "expert_id"
	}

	var bookings []models.Booking
	if err := db.DB.Preload("Service").Preload("Expert").Preload("Artist").
		Where(participantColumn+" = ?", userID).
		Order("start_time").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	if query := c.Query("q"); strings.TrimSpace(query) != "" {
		users := make([]models.User, 0, len(bookings))
		for _, b := range bookings {
			if role == models.RoleArtist {
				users = append(users, b.Expert)
			} else {
				users = append(users, b.Artist)
			}
		}
		bookings = FilterBookings(bookings, users, role, query)
	}

	return c.JSON(bookings)
}

// GetBooking returns one booking visible to its participants
func GetBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.Preload("Service").Preload("Expert").Preload("Artist").First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	userID, _ := c.Locals("userID").(uint)
	if booking.ArtistID != userID && booking.ExpertID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not a participant of this booking",
		})
	}

	return c.JSON(booking)
}

// CreateBookingInput is the artist-side booking request: a service and a
// desired hourly start in the expert's declared availability.
type CreateBookingInput struct {
	ServiceID string `json:"service_id"`
	StartTime string `json:"start_time"` // ISO-8601 UTC instant
	Notes     string `json:"notes"`
}

// CreateBooking books one hourly slot of a service for the current artist.
func CreateBooking(c *fiber.Ctx) error {
	artistID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No session user",
		})
	}

	input := new(CreateBookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var service models.Service
	if err := db.DB.Where("service_id = ?", input.ServiceID).First(&service).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	if !service.IsActive {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Service is not accepting bookings",
		})
	}

	start, err := time.Parse(time.RFC3339, input.StartTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "start_time must be an ISO-8601 UTC instant",
		})
	}

	// The requested start must fall on a bookable hourly slot of the
	// expert's declared availability for that local date.
	availability := service.ExpertAvailability
	loc, err := availability.Location()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Service has an invalid timezone",
			Error:   err.Error(),
		})
	}
	local := start.In(loc)
	slot, err := availability.ResolveTimeSlot(local.Day(), int(local.Month()), local.Year())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to resolve availability",
			Error:   err.Error(),
		})
	}
	if slot == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Expert is not available on that date",
		})
	}

	requestedHour := local.Format("15:04")
	bookable := false
	for _, hour := range models.ExpandHourlySlots(*slot) {
		if hour == requestedHour {
			bookable = true
			break
		}
	}
	if !bookable {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Requested time is outside the expert's hours",
		})
	}

	free, err := utils.CheckBookingConflict(service.ExpertID, start, time.Hour)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check availability",
			Error:   err.Error(),
		})
	}
	if !free {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "That slot is already booked",
		})
	}

	booking := models.Booking{
		Title:     service.ServiceTitle,
		Notes:     input.Notes,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    models.StatusPending,
		ServiceID: service.ID,
		ExpertID:  service.ExpertID,
		ArtistID:  artistID,
	}
	if err := db.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// UpdateBookingStatus applies a guarded lifecycle transition.
func UpdateBookingStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	type statusInput struct {
		Status models.BookingStatus `json:"status"`
	}
	input := new(statusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	userID, _ := c.Locals("userID").(uint)
	if booking.ArtistID != userID && booking.ExpertID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not a participant of this booking",
		})
	}

	if err := booking.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(booking)
}
