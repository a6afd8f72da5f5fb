package auth

import (
	"github.com/FPFAVILA/raspadinhabet/internal/config"
	"github.com/FPFAVILA/raspadinhabet/internal/repository"
	"github.com/FPFAVILA/raspadinhabet/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
)

type serv struct {
	txManager trm.Manager
	userRepo  repository.UserRepository
	authRepo  repository.AuthRepository
	jwtConfig config.JWTConfig
	tracker   service.TrackingService
}

func NewAuthService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
	tracker service.TrackingService,
) service.AuthService {
	return &serv{
		txManager: txManager,
		userRepo:  userRepo,
		authRepo:  authRepo,
		jwtConfig: jwtConfig,
		tracker:   tracker,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
