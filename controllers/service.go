package controllers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/talenthub/booking-api/models"
	"github.com/talenthub/booking-api/utils"
)

// ServiceStore is the persistence capability the creation workflow depends
// on. Handlers receive it at construction time instead of reaching for a
// global handle, so the workflow runs against a stub in tests.
type ServiceStore interface {
	CreateService(ctx context.Context, service *models.Service) error
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, serviceID string) (*models.Service, error)
	ListExpertServices(ctx context.Context, expertID uint) ([]models.Service, error)
	SetServiceActive(ctx context.Context, serviceID string, active bool) error
}

type ServiceController struct {
	store ServiceStore
}

func NewServiceController(store ServiceStore) *ServiceController {
	return &ServiceController{store: store}
}

// CreateServiceInput is the operator-entered form for a new offering.
// Dates arrive as epoch milliseconds, times as "HH:MM" wall clock.
type CreateServiceInput struct {
	ServiceType string `json:"service_type"`
	HourlyRate  string `json:"hourly_rate"`
	StartDate   *int64 `json:"start_date"`
	EndDate     *int64 `json:"end_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Timezone    string `json:"timezone"`
	Notes       string `json:"notes"`
}

// Validation messages, surfaced in check order: the first failing check
// wins and short-circuits the rest.
var (
	ErrNoServiceType = errors.New("Please select a service type")
	ErrNoHourlyRate  = errors.New("Please enter an hourly rate")
	ErrBadHourlyRate = errors.New("Hourly rate must be a positive number")
	ErrNoStartDate   = errors.New("Please select a start date")
	ErrNoEndDate     = errors.New("Please select an end date")
	ErrDateOrder     = errors.New("Start date must be on or before end date")
	ErrBadTimeRange  = errors.New("End time must be after start time")
)

// applyDefaults fills the optional fields: full-day time range and UTC when
// the client did not declare a zone.
func (in *CreateServiceInput) applyDefaults() {
	if in.StartTime == "" {
		in.StartTime = "00:00"
	}
	if in.EndTime == "" {
		in.EndTime = models.EndOfDay
	}
	if in.Timezone == "" {
		in.Timezone = "UTC"
	}
}

// ValidateCreateServiceInput runs the ordered checks over the submitted
// form. It mutates the input only to apply defaults.
func ValidateCreateServiceInput(in *CreateServiceInput) error {
	in.applyDefaults()

	if strings.TrimSpace(in.ServiceType) == "" || !models.KnownServiceType(models.ServiceType(in.ServiceType)) {
		return ErrNoServiceType
	}
	if strings.TrimSpace(in.HourlyRate) == "" {
		return ErrNoHourlyRate
	}
	rate, err := strconv.ParseFloat(strings.TrimSpace(in.HourlyRate), 64)
	if err != nil || rate <= 0 {
		return ErrBadHourlyRate
	}
	if in.StartDate == nil {
		return ErrNoStartDate
	}
	if in.EndDate == nil {
		return ErrNoEndDate
	}
	if *in.StartDate > *in.EndDate {
		return ErrDateOrder
	}
	if !models.IsValidTimeRange(in.StartTime, in.EndTime) {
		return ErrBadTimeRange
	}
	return nil
}

// BuildService assembles the persisted record from a validated input: a
// fresh service id, the two UTC instants derived from the declared zone,
// and a single-entry availability schedule.
func BuildService(in CreateServiceInput, expertID uint) (*models.Service, error) {
	if in.StartDate == nil {
		return nil, ErrNoStartDate
	}
	if in.EndDate == nil {
		return nil, ErrNoEndDate
	}

	startUTC, err := utils.LocalDateTimeToUTC(*in.StartDate, in.StartTime, in.Timezone)
	if err != nil {
		return nil, err
	}

	// A "24:00" end converts as 23:59 so the instant stays on the end date.
	endClock := in.EndTime
	if endClock == models.EndOfDay {
		endClock = "23:59"
	}
	endUTC, err := utils.LocalDateTimeToUTC(*in.EndDate, endClock, in.Timezone)
	if err != nil {
		return nil, err
	}

	dateSlot := models.DateSlot{
		StartDateTime: utils.UTCInstant(startUTC),
		EndDateTime:   utils.UTCInstant(endUTC),
	}
	timeSlot := models.TimeSlot{Start: in.StartTime, End: in.EndTime}

	availability := models.ExpertAvailability{Timezone: in.Timezone}
	key := models.CalendarKey{Kind: models.KeyDateSlot, DateSlot: &dateSlot}
	if err := availability.AddEntry(key, timeSlot); err != nil {
		return nil, err
	}

	rate, _ := strconv.ParseFloat(strings.TrimSpace(in.HourlyRate), 64)
	serviceType := models.ServiceType(in.ServiceType)

	return &models.Service{
		ServiceID:          utils.NewServiceID(),
		ServiceType:        serviceType,
		ServiceTitle:       models.TitleFor(serviceType),
		PerHourCharge:      rate,
		IsActive:           true,
		Notes:              in.Notes,
		ExpertAvailability: availability,
		ExpertID:           expertID,
	}, nil
}

// CreateService handles POST /services for an authenticated expert.
func (sc *ServiceController) CreateService(c *fiber.Ctx) error {
	input := new(CreateServiceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := ValidateCreateServiceInput(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	expertID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No session user",
		})
	}

	service, err := BuildService(*input, expertID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := sc.store.CreateService(c.Context(), service); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create service",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

// GetAllServices returns all services
func (sc *ServiceController) GetAllServices(c *fiber.Ctx) error {
	services, err := sc.store.ListServices(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// GetService returns one service by its service id
func (sc *ServiceController) GetService(c *fiber.Ctx) error {
	service, err := sc.store.GetService(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	return c.JSON(service)
}

// GetMyServices returns the authenticated expert's own services
func (sc *ServiceController) GetMyServices(c *fiber.Ctx) error {
	expertID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No session user",
		})
	}
	services, err := sc.store.ListExpertServices(c.Context(), expertID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// SetServiceActive toggles an offering's visibility
func (sc *ServiceController) SetServiceActive(c *fiber.Ctx) error {
	type toggleInput struct {
		IsActive bool `json:"is_active"`
	}
	input := new(toggleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := sc.store.SetServiceActive(c.Context(), c.Params("id"), input.IsActive); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update service",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
