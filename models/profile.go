package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// StringList is a JSONB-backed list of URLs or labels.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil // Return as string for JSONB type
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal StringList: unsupported type %T", value)
	}

	return json.Unmarshal(data, l)
}

// ExpertDetails carries the public profile of an expert: bio, portfolio
// media and uploaded certificates.
type ExpertDetails struct {
	gorm.Model
	ExpertID       uint       `json:"expert_id" gorm:"index"`
	Expert         User       `json:"expert" gorm:"foreignKey:ExpertID"`
	Bio            string     `json:"bio"`
	ProfilePicture string     `json:"profile_picture"`
	City           string     `json:"city"`
	Country        string     `json:"country"`
	Media          StringList `json:"media" gorm:"type:jsonb"`
	Certificates   StringList `json:"certificates" gorm:"type:jsonb"`
}
