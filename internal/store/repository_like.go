package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/avdonin/minifeed/internal/logger"
	"github.com/avdonin/minifeed/models"
)

// likeRepository is the SQL-backed implementation of [LikeRepository].
//
// The likes table stores raw reaction triples with no uniqueness constraint:
// InsertLike never rejects duplicates, and DeleteLike removes exactly one
// matching row, mirroring the toggle protocol.
type likeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLikeRepository constructs a [LikeRepository] backed by the provided
// database connection and logger.
func NewLikeRepository(db *DB, logger *logger.Logger) LikeRepository {
	logger.Debug().Msg("creating like repository")
	return &likeRepository{
		db:     db,
		logger: logger,
	}
}

// InsertLike stores the reaction triple unconditionally.
func (r *likeRepository) InsertLike(ctx context.Context, like models.Like) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(like.TableName()).
		Columns("post_id", "username", "type").
		Values(like.PostID, like.Username, string(like.Type)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*likeRepository.InsertLike").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*likeRepository.InsertLike").
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("error inserting like")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteLike removes at most one row matching the triple. When duplicate
// rows exist, a single unlike removes only one of them, exactly like the
// delete-one semantics of the original toggle protocol.
func (r *likeRepository) DeleteLike(ctx context.Context, like models.Like) error {
	log := logger.FromContext(ctx)

	// Subquery keeps the delete to a single row on both backends; neither
	// PostgreSQL nor SQLite supports DELETE ... LIMIT portably.
	inner, innerArgs, err := r.db.builder.
		Select("like_id").
		From(like.TableName()).
		Where("post_id = ? AND username = ? AND type = ?", like.PostID, like.Username, string(like.Type)).
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*likeRepository.DeleteLike").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := r.db.builder.
		Delete(like.TableName()).
		Where("like_id IN ("+inner+")", innerArgs...).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*likeRepository.DeleteLike").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*likeRepository.DeleteLike").
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("error deleting like")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// CountLikes returns the number of reactions of likeType on the post across
// all users, counting duplicate rows individually.
func (r *likeRepository) CountLikes(ctx context.Context, postID int64, likeType models.LikeType) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From(models.Like{}.TableName()).
		Where(squirrel.Eq{"post_id": postID, "type": string(likeType)}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*likeRepository.CountLikes").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "*likeRepository.CountLikes").
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("error counting likes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// LikeExists reports whether username has at least one reaction of likeType
// on the post.
func (r *likeRepository) LikeExists(ctx context.Context, postID int64, username string, likeType models.LikeType) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("1").
		From(models.Like{}.TableName()).
		Where(squirrel.Eq{"post_id": postID, "username": username, "type": string(likeType)}).
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*likeRepository.LikeExists").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		log.Err(err).
			Str("func", "*likeRepository.LikeExists").
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("error querying like")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}
