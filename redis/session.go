package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/talenthub/booking-api/models"
	"github.com/talenthub/booking-api/utils"
)

const sessionTTL = 7 * 24 * time.Hour

func loggedInKey(userID uint) string {
	return fmt.Sprintf("session:%d:logged_in", userID)
}

func userKey(userID uint) string {
	return fmt.Sprintf("session:%d:user", userID)
}

// StoreSession writes the logged-in flag and the serialized current-user
// document for the session mirror.
func StoreSession(ctx context.Context, user models.User) error {
	user.Password = ""
	user.OTP = ""
	payload, err := utils.EncodeUserPayload(user)
	if err != nil {
		return err
	}
	if err := Client.Set(ctx, loggedInKey(user.ID), "1", sessionTTL).Err(); err != nil {
		return err
	}
	return Client.Set(ctx, userKey(user.ID), payload, sessionTTL).Err()
}

// SessionUser loads the stored user document. A missing key or a corrupt
// payload both come back as an absent session, never an error to recover
// from.
func SessionUser(ctx context.Context, userID uint) (models.User, bool) {
	payload, err := Client.Get(ctx, userKey(userID)).Result()
	if err != nil {
		return models.User{}, false
	}
	return utils.DecodeUserPayload(payload)
}

// IsLoggedIn checks the session flag.
func IsLoggedIn(ctx context.Context, userID uint) bool {
	val, err := Client.Get(ctx, loggedInKey(userID)).Result()
	return err == nil && val == "1"
}

// ClearSession removes both session keys.
func ClearSession(ctx context.Context, userID uint) error {
	return Client.Del(ctx, loggedInKey(userID), userKey(userID)).Err()
}
