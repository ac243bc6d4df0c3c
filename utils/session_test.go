package utils

import (
	"encoding/base64"
	"testing"

	"github.com/talenthub/booking-api/models"
)

func TestUserPayloadRoundTrip(t *testing.T) {
	user := models.User{
		ID:        42,
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
	}

	payload, err := EncodeUserPayload(user)
	if err != nil {
		t.Fatalf("EncodeUserPayload: %v", err)
	}

	decoded, ok := DecodeUserPayload(payload)
	if !ok {
		t.Fatal("DecodeUserPayload rejected its own encoding")
	}
	if decoded.ID != user.ID || decoded.FirstName != user.FirstName ||
		decoded.LastName != user.LastName || decoded.Email != user.Email {
		t.Errorf("decoded %+v, want %+v", decoded, user)
	}
}

func TestDecodeUserPayloadCorrupt(t *testing.T) {
	if _, ok := DecodeUserPayload("%%% not base64 %%%"); ok {
		t.Error("corrupt base64 decoded as a user")
	}

	notJSON := base64.StdEncoding.EncodeToString([]byte("not json at all"))
	if _, ok := DecodeUserPayload(notJSON); ok {
		t.Error("corrupt JSON decoded as a user")
	}
}
