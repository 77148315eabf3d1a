package service

import (
	"github.com/avdonin/minifeed/internal/config"
	"github.com/avdonin/minifeed/internal/logger"
	"github.com/avdonin/minifeed/internal/store"
)

type Services struct {
	AuthService     AuthService
	ProfileService  ProfileService
	PostService     PostService
	ReactionService ReactionService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, cfg.Storage.Files, logger),
		ProfileService:  NewProfileService(storages.UserRepository, storages.ProfileImages, logger),
		PostService:     NewPostService(storages.UserRepository, storages.PostRepository, storages.LikeRepository, logger),
		ReactionService: NewReactionService(storages.LikeRepository, logger),
	}
}
