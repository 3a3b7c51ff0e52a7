package service

import (
	"github.com/Lysande2902/Numeros/internal/config"
	"github.com/Lysande2902/Numeros/internal/logger"
	"github.com/Lysande2902/Numeros/internal/store"
)

// Services bundles every business-layer service the transport layer
// depends on.
type Services struct {
	AuthService       AuthService
	NumberService     NumberService
	PalindromeService PalindromeService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(NewFixedCredentialVerifier(cfg.Auth), cfg.Auth, logger),
		NumberService:     NewNumberService(storages.NumberRepository, logger),
		PalindromeService: NewPalindromeService(storages.PalindromeRepository, logger),
	}
}
