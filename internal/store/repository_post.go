package store

import (
	"context"
	"fmt"

	"github.com/avdonin/minifeed/internal/logger"
	"github.com/avdonin/minifeed/models"
)

// postRepository is the SQL-backed implementation of [PostRepository].
// Posts are append-only: the system never edits or deletes them.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost persists a new post record carrying the denormalized author
// profile snapshot and returns it with the server-assigned PostID.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(post.TableName()).
		Columns("username", "profile_name", "profile_pic_real", "comment", "date").
		Values(post.Username, post.ProfileName, post.ProfilePicReal, post.Comment, post.Date).
		Suffix("RETURNING post_id, username, profile_name, profile_pic_real, comment, date, created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Post
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.PostID, &created.Username, &created.ProfileName,
		&created.ProfilePicReal, &created.Comment, &created.Date, &created.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*postRepository.CreatePost").
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("error inserting post")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ListPosts returns posts ordered by the client-supplied date string in
// descending (lexicographic) order, capped at filter.Limit. When
// filter.Username is non-empty the listing is restricted to that author.
func (r *postRepository) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Select("post_id", "username", "profile_name", "profile_pic_real", "comment", "date", "created_at").
		From(models.Post{}.TableName()).
		OrderBy("date DESC").
		Limit(filter.Limit)

	if filter.Username != "" {
		builder = builder.Where("username = ?", filter.Username)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.ListPosts").
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("error querying posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, filter.Limit)
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.PostID, &post.Username, &post.ProfileName,
			&post.ProfilePicReal, &post.Comment, &post.Date, &post.CreatedAt); err != nil {
			log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error scanning post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}
