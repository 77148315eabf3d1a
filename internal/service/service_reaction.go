package service

import (
	"context"
	"fmt"

	"github.com/avdonin/minifeed/internal/logger"
	"github.com/avdonin/minifeed/internal/store"
	"github.com/avdonin/minifeed/models"
)

// reactionService is the concrete implementation of ReactionService.
type reactionService struct {
	likeRepository store.LikeRepository
	logger         *logger.Logger
}

// NewReactionService constructs a ReactionService wired to the given
// repository.
func NewReactionService(likeRepository store.LikeRepository, logger *logger.Logger) ReactionService {
	return &reactionService{
		likeRepository: likeRepository,
		logger:         logger,
	}
}

// Toggle applies the caller-supplied direction to the reaction triple and
// returns the fresh total count of (postID, likeType) reactions across all
// users.
//
// "like" inserts the triple unconditionally. A repeated like without an
// intervening unlike creates a duplicate row and the count goes up again.
// "unlike" deletes a single matching row. The returned count is re-read
// from storage after the mutation rather than derived from a cached tally,
// so it can never drift from the ground truth.
//
// Returns ErrUnknownLikeType or ErrUnknownLikeAction for values outside the
// closed enumerations; nothing is stored in that case.
func (r *reactionService) Toggle(ctx context.Context, postID int64, username string, likeType models.LikeType, action models.LikeAction) (int64, error) {
	log := logger.FromContext(ctx)

	if postID == 0 || username == "" {
		return 0, ErrInvalidDataProvided
	}
	if !likeType.Valid() {
		log.Warn().Str("type", string(likeType)).Msg("unknown like type")
		return 0, ErrUnknownLikeType
	}
	if !action.Valid() {
		log.Warn().Str("action", string(action)).Msg("unknown like action")
		return 0, ErrUnknownLikeAction
	}

	like := models.Like{
		PostID:   postID,
		Username: username,
		Type:     likeType,
	}

	switch action {
	case models.ActionLike:
		if err := r.likeRepository.InsertLike(ctx, like); err != nil {
			log.Err(err).Int64("post_id", postID).Msg("like insert failed")
			return 0, fmt.Errorf("like insert failed: %w", err)
		}
	case models.ActionUnlike:
		if err := r.likeRepository.DeleteLike(ctx, like); err != nil {
			log.Err(err).Int64("post_id", postID).Msg("like delete failed")
			return 0, fmt.Errorf("like delete failed: %w", err)
		}
	}

	count, err := r.likeRepository.CountLikes(ctx, postID, likeType)
	if err != nil {
		log.Err(err).Int64("post_id", postID).Msg("like count failed")
		return 0, fmt.Errorf("like count failed: %w", err)
	}

	return count, nil
}
