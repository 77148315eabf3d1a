package http

import (
	"github.com/avdonin/minifeed/internal/config"
	"github.com/avdonin/minifeed/internal/logger"
	"github.com/avdonin/minifeed/internal/service"
)

// maxUploadBytes caps multipart request bodies on the profile update
// endpoint. The source imposed no limit; 8 MiB is plenty for an avatar.
const maxUploadBytes = 8 << 20

type Handler struct {
	services *service.Services

	tokenCookieName string
	requestTimeout  timeoutConfig

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		tokenCookieName: cfg.App.TokenCookieName,
		requestTimeout:  timeoutConfig{duration: cfg.Server.RequestTimeout},
		logger:          logger,
	}
}
