package services

import (
	"context"
	"time"
)

// AuthSvcFacade issues access tokens for the shop admin.
type AuthSvcFacade interface {
	// Login checks password and returns a signed JWT and its expiry.
	// A wrong password yields apperrors.ErrUnauthorized.
	Login(ctx context.Context, password string) (string, time.Time, error)
}
