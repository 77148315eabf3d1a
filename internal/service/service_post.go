package service

import (
	"context"
	"fmt"

	"github.com/avdonin/minifeed/internal/logger"
	"github.com/avdonin/minifeed/internal/store"
	"github.com/avdonin/minifeed/models"
)

// listLimit caps every post listing at the 20 most recent entries.
const listLimit = 20

// postService is the concrete implementation of PostService.
type postService struct {
	userRepository store.UserRepository
	postRepository store.PostRepository
	likeRepository store.LikeRepository
	logger         *logger.Logger
}

// NewPostService constructs a PostService wired to the given repositories.
func NewPostService(userRepository store.UserRepository, postRepository store.PostRepository, likeRepository store.LikeRepository, logger *logger.Logger) PostService {
	return &postService{
		userRepository: userRepository,
		postRepository: postRepository,
		likeRepository: likeRepository,
		logger:         logger,
	}
}

// Create publishes a new post under the author's identity.
//
// The author's current username, profile_name, and profile_pic_real are
// copied into the post record. The copy is a deliberate denormalization for
// read performance: later profile edits do not touch existing posts.
func (p *postService) Create(ctx context.Context, author, comment, date string) (models.Post, error) {
	log := logger.FromContext(ctx)

	if author == "" || comment == "" || date == "" {
		log.Error().Str("author", author).Msg("invalid post data provided")
		return models.Post{}, ErrInvalidDataProvided
	}

	authorProfile, err := p.userRepository.FindUserByUsername(ctx, author)
	if err != nil {
		log.Err(err).Str("author", author).Msg("author lookup failed")
		return models.Post{}, fmt.Errorf("author lookup failed: %w", err)
	}

	post := models.Post{
		Username:       authorProfile.Username,
		ProfileName:    authorProfile.ProfileName,
		ProfilePicReal: authorProfile.ProfilePicReal,
		Comment:        comment,
		Date:           date,
	}

	created, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Str("author", author).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return created, nil
}

// List returns up to 20 posts ordered by date descending. When
// filterUsername is non-empty only that author's posts are returned.
//
// Each post is enriched, per reaction type, with the total reaction count
// and whether viewer appears among the reactors. The aggregation issues two
// queries per type per post against the ground truth instead of maintaining
// cached tallies, trading reads for guaranteed freshness.
func (p *postService) List(ctx context.Context, viewer, filterUsername string) ([]models.PostView, error) {
	log := logger.FromContext(ctx)

	posts, err := p.postRepository.ListPosts(ctx, models.PostFilter{
		Username: filterUsername,
		Limit:    listLimit,
	})
	if err != nil {
		log.Err(err).Str("filter", filterUsername).Msg("post listing failed")
		return nil, fmt.Errorf("post listing failed: %w", err)
	}

	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		view := models.PostView{Post: post}

		for _, likeType := range models.LikeTypes {
			count, err := p.likeRepository.CountLikes(ctx, post.PostID, likeType)
			if err != nil {
				log.Err(err).Int64("post_id", post.PostID).Msg("like count failed")
				return nil, fmt.Errorf("like count failed: %w", err)
			}

			byMe, err := p.likeRepository.LikeExists(ctx, post.PostID, viewer, likeType)
			if err != nil {
				log.Err(err).Int64("post_id", post.PostID).Msg("like lookup failed")
				return nil, fmt.Errorf("like lookup failed: %w", err)
			}

			switch likeType {
			case models.LikeHeart:
				view.CountHeart, view.HeartByMe = count, byMe
			case models.LikeStar:
				view.CountStar, view.StarByMe = count, byMe
			case models.LikeThumbsup:
				view.CountThumbsup, view.ThumbsupByMe = count, byMe
			}
		}

		views = append(views, view)
	}

	return views, nil
}
