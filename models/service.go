package models

import (
	"fmt"

	"gorm.io/gorm"
)

// ServiceType enumerates the bookable offering categories an expert can
// list on the marketplace.
type ServiceType string

const (
	ServiceVocalCoaching     ServiceType = "vocal_coaching"
	ServiceInstrumentLesson  ServiceType = "instrument_lesson"
	ServiceProductionSession ServiceType = "production_session"
	ServicePortfolioReview   ServiceType = "portfolio_review"
	ServiceCareerMentoring   ServiceType = "career_mentoring"
)

var serviceTitles = map[ServiceType]string{
	ServiceVocalCoaching:     "Vocal Coaching",
	ServiceInstrumentLesson:  "Instrument Lesson",
	ServiceProductionSession: "Production Session",
	ServicePortfolioReview:   "Portfolio Review",
	ServiceCareerMentoring:   "Career Mentoring",
}

// KnownServiceType reports whether t is one of the listed categories.
func KnownServiceType(t ServiceType) bool {
	_, ok := serviceTitles[t]
	return ok
}

// TitleFor derives the display label for a service type.
func TitleFor(t ServiceType) string {
	return serviceTitles[t]
}

// Service is a bookable hourly offering created by an expert. ServiceID is
// assigned exactly once at creation and never changes.
type Service struct {
	gorm.Model
	ServiceID          string             `json:"service_id" gorm:"uniqueIndex;size:36"`
	ServiceType        ServiceType        `json:"service_type"`
	ServiceTitle       string             `json:"service_title"`
	PerHourCharge      float64            `json:"per_hour_charge"`
	IsActive           bool               `json:"is_active" gorm:"default:true"`
	Notes              string             `json:"notes"`
	ExpertAvailability ExpertAvailability `json:"expert_availability" gorm:"type:jsonb"`
	ExpertID           uint               `json:"expert_id"`
	Expert             User               `json:"expert" gorm:"foreignKey:ExpertID"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ServiceID == "" {
		return fmt.Errorf("service has no service id")
	}
	if s.PerHourCharge <= 0 {
		return fmt.Errorf("per hour charge must be positive")
	}
	return nil
}

// AvailabilityDoc is a standalone availability document, kept in its own
// table so an expert's schedule can be queried without loading services.
type AvailabilityDoc struct {
	gorm.Model
	ExpertID     uint               `json:"expert_id" gorm:"index"`
	Expert       User               `json:"expert" gorm:"foreignKey:ExpertID"`
	Availability ExpertAvailability `json:"availability" gorm:"type:jsonb"`
}
