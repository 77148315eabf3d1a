package service

import (
	"context"
	"fmt"

	"github.com/avdonin/minifeed/internal/logger"
	"github.com/avdonin/minifeed/internal/store"
	"github.com/avdonin/minifeed/models"
)

// profileService is the concrete implementation of ProfileService.
type profileService struct {
	userRepository store.UserRepository
	profileImages  store.ProfileImageStorage
	logger         *logger.Logger
}

// NewProfileService constructs a ProfileService wired to the given
// repositories.
func NewProfileService(userRepository store.UserRepository, profileImages store.ProfileImageStorage, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		profileImages:  profileImages,
		logger:         logger,
	}
}

// Get returns the profile of the given user. The password hash stays inside
// the model but is excluded from JSON serialization, so handlers can pass the
// result through unchanged.
func (p *profileService) Get(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := p.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("profile lookup failed")
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user, nil
}

// Update overwrites the profile name and bio unconditionally. An empty
// string clears the field. When an image is attached it is persisted first
// (under a name derived from the username and the file extension) and the
// picture columns are repointed at it in the same update.
//
// Posts created before the update keep their denormalized snapshot of the
// old profile; only the users record changes.
func (p *profileService) Update(ctx context.Context, req models.ProfileUpdateRequest) error {
	log := logger.FromContext(ctx)

	if req.Username == "" {
		return ErrInvalidDataProvided
	}

	update := models.ProfileUpdate{
		Username:    req.Username,
		ProfileName: req.ProfileName,
		ProfileInfo: req.ProfileInfo,
	}

	if req.Image != nil {
		image, err := p.profileImages.SaveProfileImage(ctx, req.Username, req.ImageFilename, req.Image)
		if err != nil {
			log.Err(err).Str("username", req.Username).Msg("saving profile image failed")
			return fmt.Errorf("saving profile image failed: %w", err)
		}

		update.HasImage = true
		update.ProfilePic = image.FileName
		update.ProfilePicReal = image.RealPath
	}

	if err := p.userRepository.UpdateProfile(ctx, update); err != nil {
		log.Err(err).Str("username", req.Username).Msg("profile update failed")
		return fmt.Errorf("profile update failed: %w", err)
	}

	return nil
}
