package services

import (
	"context"
	"time"

	"github.com/SscSPs/repair_shop_app/internal/apperrors"
	portssvc "github.com/SscSPs/repair_shop_app/internal/core/ports/services"
	"github.com/SscSPs/repair_shop_app/internal/platform/config"
	"github.com/SscSPs/repair_shop_app/internal/utils"
)

// AdminSubject is the JWT subject and audit operator of the shop admin.
const AdminSubject = "admin"

// authService checks the admin password and issues JWTs.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates a new AuthSvcFacade.
func NewAuthService(cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login implements portssvc.AuthSvcFacade.
func (s *authService) Login(ctx context.Context, password string) (string, time.Time, error) {
	if s.cfg.AdminPasswordHash == "" || !utils.CheckPasswordHash(password, s.cfg.AdminPasswordHash) {
		s.LogWarn(ctx, "Rejected login attempt")
		return "", time.Time{}, apperrors.ErrUnauthorized
	}
	token, expiresAt, err := utils.GenerateJWT(AdminSubject, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return "", time.Time{}, apperrors.NewAppError(500, "failed to issue token", err)
	}
	return token, expiresAt, nil
}
