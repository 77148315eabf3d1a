package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/avdonin/minifeed/models"
)

// UserRepository is the data-access contract for user accounts and profiles.
type UserRepository interface {
	// CreateUser persists a new account and returns the stored record with
	// server-assigned fields populated. Returns ErrUsernameTaken when the
	// username is already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the account with the given username or
	// ErrUserNotFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// UpdateProfile applies a profile mutation. ProfileName and ProfileInfo
	// are always written; the picture fields only when update.HasImage is set.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) error
}

// PostRepository is the data-access contract for posts.
type PostRepository interface {
	// CreatePost persists a new post and returns it with the
	// server-assigned PostID.
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// ListPosts returns posts ordered by date descending, optionally
	// restricted to one author, capped at filter.Limit.
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
}

// LikeRepository is the data-access contract for reaction triples.
type LikeRepository interface {
	// InsertLike stores a reaction triple unconditionally; duplicates are
	// not rejected.
	InsertLike(ctx context.Context, like models.Like) error

	// DeleteLike removes at most one row matching the triple.
	DeleteLike(ctx context.Context, like models.Like) error

	// CountLikes returns the number of reactions of the given type on the
	// post, across all users.
	CountLikes(ctx context.Context, postID int64, likeType models.LikeType) (int64, error)

	// LikeExists reports whether the user has at least one reaction of the
	// given type on the post.
	LikeExists(ctx context.Context, postID int64, username string, likeType models.LikeType) (bool, error)
}

// ProfileImageStorage persists uploaded profile images on the file system
// (or any equivalent blob store) outside the database.
type ProfileImageStorage interface {
	// SaveProfileImage sanitizes originalFilename, writes src under a path
	// derived from the username and the file extension (overwriting any
	// previous image with the same derived name), and returns both the
	// sanitized name and the server-relative path of the stored file.
	SaveProfileImage(ctx context.Context, username, originalFilename string, src io.Reader) (models.ProfileImage, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations inspect driver-specific error codes.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
