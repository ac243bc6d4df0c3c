package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/talenthub/booking-api/models"
)

type stubServiceStore struct {
	created []*models.Service
	err     error
}

func (s *stubServiceStore) CreateService(ctx context.Context, service *models.Service) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, service)
	return nil
}

func (s *stubServiceStore) ListServices(ctx context.Context) ([]models.Service, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.Service, 0, len(s.created))
	for _, svc := range s.created {
		out = append(out, *svc)
	}
	return out, nil
}

func (s *stubServiceStore) GetService(ctx context.Context, serviceID string) (*models.Service, error) {
	for _, svc := range s.created {
		if svc.ServiceID == serviceID {
			return svc, nil
		}
	}
	return nil, errors.New("not found")
}

func (s *stubServiceStore) ListExpertServices(ctx context.Context, expertID uint) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range s.created {
		if svc.ExpertID == expertID {
			out = append(out, *svc)
		}
	}
	return out, nil
}

func (s *stubServiceStore) SetServiceActive(ctx context.Context, serviceID string, active bool) error {
	for _, svc := range s.created {
		if svc.ServiceID == serviceID {
			svc.IsActive = active
			return nil
		}
	}
	return errors.New("not found")
}

func millisOf(t time.Time) *int64 {
	m := t.UnixMilli()
	return &m
}

func validInput() CreateServiceInput {
	return CreateServiceInput{
		ServiceType: string(models.ServiceVocalCoaching),
		HourlyRate:  "50",
		StartDate:   millisOf(time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:     millisOf(time.Date(2023, 10, 2, 0, 0, 0, 0, time.UTC)),
		StartTime:   "09:00",
		EndTime:     "17:00",
		Timezone:    "UTC",
	}
}

func TestValidateCreateServiceInputOrder(t *testing.T) {
	// Start from an empty form and repair one field per step: every step
	// must surface the first still-failing check's message.
	steps := []struct {
		name   string
		mutate func(in *CreateServiceInput)
		want   error
	}{
		{
			name:   "everything missing",
			mutate: func(in *CreateServiceInput) { *in = CreateServiceInput{} },
			want:   ErrNoServiceType,
		},
		{
			name: "unknown service type",
			mutate: func(in *CreateServiceInput) {
				*in = CreateServiceInput{ServiceType: "dog_walking"}
			},
			want: ErrNoServiceType,
		},
		{
			name: "missing rate",
			mutate: func(in *CreateServiceInput) {
				*in = CreateServiceInput{ServiceType: string(models.ServiceVocalCoaching)}
			},
			want: ErrNoHourlyRate,
		},
		{
			name: "non-numeric rate",
			mutate: func(in *CreateServiceInput) {
				*in = CreateServiceInput{
					ServiceType: string(models.ServiceVocalCoaching),
					HourlyRate:  "lots",
				}
			},
			want: ErrBadHourlyRate,
		},
		{
			name: "negative rate",
			mutate: func(in *CreateServiceInput) {
				*in = CreateServiceInput{
					ServiceType: string(models.ServiceVocalCoaching),
					HourlyRate:  "-5",
				}
			},
			want: ErrBadHourlyRate,
		},
		{
			name: "missing start date",
			mutate: func(in *CreateServiceInput) {
				v := validInput()
				v.StartDate = nil
				v.EndDate = nil
				*in = v
			},
			want: ErrNoStartDate,
		},
		{
			name: "missing end date",
			mutate: func(in *CreateServiceInput) {
				v := validInput()
				v.EndDate = nil
				*in = v
			},
			want: ErrNoEndDate,
		},
		{
			name: "dates out of order",
			mutate: func(in *CreateServiceInput) {
				v := validInput()
				v.StartDate, v.EndDate = v.EndDate, v.StartDate
				*in = v
			},
			want: ErrDateOrder,
		},
		{
			name: "inverted time range",
			mutate: func(in *CreateServiceInput) {
				v := validInput()
				v.StartTime = "10:00"
				v.EndTime = "09:30"
				*in = v
			},
			want: ErrBadTimeRange,
		},
		{
			name: "valid form",
			mutate: func(in *CreateServiceInput) {
				*in = validInput()
			},
			want: nil,
		},
	}

	for _, tt := range steps {
		t.Run(tt.name, func(t *testing.T) {
			var in CreateServiceInput
			tt.mutate(&in)
			if got := ValidateCreateServiceInput(&in); !errors.Is(got, tt.want) {
				t.Errorf("ValidateCreateServiceInput = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateAppliesDefaults(t *testing.T) {
	in := validInput()
	in.StartTime = ""
	in.EndTime = ""
	in.Timezone = ""

	if err := ValidateCreateServiceInput(&in); err != nil {
		t.Fatalf("ValidateCreateServiceInput: %v", err)
	}
	if in.StartTime != "00:00" || in.EndTime != models.EndOfDay {
		t.Errorf("time defaults not applied: %q-%q", in.StartTime, in.EndTime)
	}
	if in.Timezone != "UTC" {
		t.Errorf("timezone default not applied: %q", in.Timezone)
	}
}

func TestBuildService(t *testing.T) {
	in := validInput()
	in.EndTime = models.EndOfDay

	service, err := BuildService(in, 7)
	if err != nil {
		t.Fatalf("BuildService: %v", err)
	}

	if service.ServiceID == "" {
		t.Error("service id not assigned")
	}
	if service.ServiceTitle != "Vocal Coaching" {
		t.Errorf("title = %q", service.ServiceTitle)
	}
	if service.PerHourCharge != 50 {
		t.Errorf("rate = %v", service.PerHourCharge)
	}
	if service.ExpertID != 7 {
		t.Errorf("expert id = %d", service.ExpertID)
	}
	if !service.IsActive {
		t.Error("new service should be active")
	}

	availability := service.ExpertAvailability
	if availability.Timezone != "UTC" {
		t.Errorf("timezone = %q", availability.Timezone)
	}
	if len(availability.Schedule) != 1 {
		t.Fatalf("schedule has %d entries, want 1", len(availability.Schedule))
	}

	entry := availability.Schedule[0]
	if entry.TimeSlot.Start != "09:00" || entry.TimeSlot.End != models.EndOfDay {
		t.Errorf("time slot = %+v", entry.TimeSlot)
	}
	if entry.Key.Kind != models.KeyDateSlot || entry.Key.DateSlot == nil {
		t.Fatalf("key = %+v", entry.Key)
	}
	if entry.Key.DateSlot.StartDateTime != "2023-10-01T09:00:00Z" {
		t.Errorf("start instant = %q", entry.Key.DateSlot.StartDateTime)
	}
	// A "24:00" end converts as 23:59 on the end date
	if entry.Key.DateSlot.EndDateTime != "2023-10-02T23:59:00Z" {
		t.Errorf("end instant = %q", entry.Key.DateSlot.EndDateTime)
	}
}

func TestBuildServiceRejectsMissingDates(t *testing.T) {
	in := validInput()
	in.StartDate = nil
	if _, err := BuildService(in, 7); !errors.Is(err, ErrNoStartDate) {
		t.Errorf("nil start date: err = %v, want %v", err, ErrNoStartDate)
	}

	in = validInput()
	in.EndDate = nil
	if _, err := BuildService(in, 7); !errors.Is(err, ErrNoEndDate) {
		t.Errorf("nil end date: err = %v, want %v", err, ErrNoEndDate)
	}
}

func TestBuildServiceHonorsDeclaredZone(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}

	in := validInput()
	in.Timezone = "Asia/Kolkata"
	in.StartDate = millisOf(time.Date(2023, 10, 1, 12, 0, 0, 0, kolkata))
	in.EndDate = in.StartDate
	in.StartTime = "09:00"
	in.EndTime = "17:00"

	service, err := BuildService(in, 7)
	if err != nil {
		t.Fatalf("BuildService: %v", err)
	}

	slot := service.ExpertAvailability.Schedule[0].Key.DateSlot
	if slot.StartDateTime != "2023-10-01T03:30:00Z" {
		t.Errorf("start instant = %q, want 09:00 IST as UTC", slot.StartDateTime)
	}
	if slot.EndDateTime != "2023-10-01T11:30:00Z" {
		t.Errorf("end instant = %q, want 17:00 IST as UTC", slot.EndDateTime)
	}
}

func newServiceTestApp(store ServiceStore) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", uint(7))
		c.Locals("role", models.RoleExpert)
		return c.Next()
	})
	sc := NewServiceController(store)
	app.Post("/services", sc.CreateService)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	data, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

func TestCreateServiceHandler(t *testing.T) {
	store := &stubServiceStore{}
	app := newServiceTestApp(store)

	status, body := postJSON(t, app, "/services", validInput())
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, body = %v", status, body)
	}
	if len(store.created) != 1 {
		t.Fatalf("store holds %d services, want 1", len(store.created))
	}
	if store.created[0].ServiceID == "" {
		t.Error("persisted service has no id")
	}
}

func TestCreateServiceHandlerValidation(t *testing.T) {
	store := &stubServiceStore{}
	app := newServiceTestApp(store)

	// Everything is wrong; the first check's message must win
	status, body := postJSON(t, app, "/services", CreateServiceInput{HourlyRate: "nope"})
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if body["error"] != ErrNoServiceType.Error() {
		t.Errorf("error = %v, want %q", body["error"], ErrNoServiceType.Error())
	}
	if len(store.created) != 0 {
		t.Error("invalid input reached the store")
	}
}

func TestCreateServiceHandlerPersistenceFailure(t *testing.T) {
	store := &stubServiceStore{err: errors.New("connection reset")}
	app := newServiceTestApp(store)

	status, body := postJSON(t, app, "/services", validInput())
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d", status)
	}
	// The user-facing message embeds the underlying cause
	if body["error"] != "connection reset" {
		t.Errorf("error = %v, want the underlying cause", body["error"])
	}
	if body["message"] != "Failed to create service" {
		t.Errorf("message = %v", body["message"])
	}
}
