package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating      float64 `json:"rating" gorm:"type:decimal(2,1);not null"`
	Comment     string  `json:"comment"`
	ExpertID    uint    `json:"expert_id"`
	Expert      User    `json:"expert" gorm:"foreignKey:ExpertID"`
	ArtistID    uint    `json:"artist_id"`
	Artist      User    `json:"artist" gorm:"foreignKey:ArtistID"`
	ServiceID   uint    `json:"service_id"`
	Service     Service `json:"service" gorm:"foreignKey:ServiceID"`
	IsAnonymous bool    `json:"is_anonymous" gorm:"default:false"`
	IsVerified  bool    `json:"is_verified" gorm:"default:false"` // Review from a completed booking
	BookingID   *uint   `json:"booking_id"`                       // Optional link to booking
}

// BeforeCreate hook to clamp rating into the 1.0-5.0 band
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1.0 {
		r.Rating = 1.0
	} else if r.Rating > 5.0 {
		r.Rating = 5.0
	}

	return nil
}

// HasExistingReview checks if the artist already reviewed this service.
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("artist_id = ? AND expert_id = ? AND service_id = ? AND deleted_at IS NULL",
			r.ArtistID, r.ExpertID, r.ServiceID).
		Count(&count).Error

	return count > 0, err
}
