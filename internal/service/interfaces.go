package service

import (
	"context"

	"github.com/avdonin/minifeed/models"
)

// AuthService covers account registration and token lifecycle.
type AuthService interface {
	// CheckUsername reports whether an account with the given username
	// already exists. Advisory only; the database UNIQUE constraint is the
	// real uniqueness boundary.
	CheckUsername(ctx context.Context, username string) (bool, error)

	// Register creates a new account with default profile fields.
	// Returns store.ErrUsernameTaken when the username is already in use.
	Register(ctx context.Context, username, password string) (models.User, error)

	// Login verifies the supplied credentials and returns the account.
	// Returns ErrWrongPassword or store.ErrUserNotFound on mismatch.
	Login(ctx context.Context, username, password string) (models.User, error)

	// CreateToken issues a signed JWT for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	// Returns ErrTokenIsExpired or ErrTokenIsMalformed on failure.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService reads and mutates user profiles.
type ProfileService interface {
	// Get returns the profile of the given user, or store.ErrUserNotFound.
	Get(ctx context.Context, username string) (models.User, error)

	// Update overwrites the profile name and bio unconditionally and, when
	// an image is attached, persists it and repoints the picture fields.
	Update(ctx context.Context, req models.ProfileUpdateRequest) error
}

// PostService publishes and lists posts.
type PostService interface {
	// Create snapshots the author's current profile into a new post.
	Create(ctx context.Context, author, comment, date string) (models.Post, error)

	// List returns up to 20 posts ordered by date descending, optionally
	// restricted to filterUsername, each enriched with per-reaction-type
	// counts and the viewer's by-me flags.
	List(ctx context.Context, viewer, filterUsername string) ([]models.PostView, error)
}

// ReactionService toggles reactions and reports fresh counts.
type ReactionService interface {
	// Toggle applies the caller-supplied action ("like" inserts, "unlike"
	// deletes one row) and returns the total count of (postID, likeType)
	// reactions afterwards.
	Toggle(ctx context.Context, postID int64, username string, likeType models.LikeType, action models.LikeAction) (int64, error)
}
