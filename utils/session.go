package utils

import (
	"encoding/base64"
	"encoding/json"

	"github.com/talenthub/booking-api/models"
)

// EncodeUserPayload serializes a user document to base64-of-JSON, the form
// used for the session store and for navigation arguments.
func EncodeUserPayload(user models.User) (string, error) {
	data, err := json.Marshal(user)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodeUserPayload is the safe inverse of EncodeUserPayload. Corrupt
// base64 or JSON yields ok=false; callers treat that as an absent session
// rather than an error.
func DecodeUserPayload(payload string) (models.User, bool) {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return models.User{}, false
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return models.User{}, false
	}
	return user, true
}
