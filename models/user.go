package models

import (
	"strings"
	"time"
)

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email" gorm:"unique"`
	Password       string    `json:"password,omitempty"`
	Phone          string    `json:"phone"`
	IsVerified     bool      `json:"is_verified"`
	OTP            string    `json:"otp,omitempty"`
	OTPExpiresAt   time.Time `json:"otp_expires_at,omitempty"`
	RoleID         uint      `json:"role_id"`
	Role           Role      `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Services       []Service `json:"services,omitempty" gorm:"foreignKey:ExpertID"`
	Bookings       []Booking `json:"bookings,omitempty" gorm:"foreignKey:ExpertID"`
	ArtistBookings []Booking `json:"artist_bookings,omitempty" gorm:"foreignKey:ArtistID"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FullName is the "first last" display form used by search and filtering.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
