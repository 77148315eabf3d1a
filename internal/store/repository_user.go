package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avdonin/minifeed/internal/logger"
	"github.com/avdonin/minifeed/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and profile mutation against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new account.
// Profile fields not present on the input are filled by column defaults.
//
// Error handling:
//   - unique constraint violation on username → [ErrUsernameTaken]
//     (PostgreSQL 23505 or the SQLite constraint counterpart).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(user.TableName()).
		Columns("username", "password_hash", "profile_name", "profile_pic", "profile_pic_real", "profile_info").
		Values(user.Username, user.PasswordHash, user.ProfileName, user.ProfilePic, user.ProfilePicReal, user.ProfileInfo).
		Suffix("RETURNING user_id, username, password_hash, profile_name, profile_pic, profile_pic_real, profile_info, created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.UserID, &created.Username, &created.PasswordHash, &created.ProfileName,
		&created.ProfilePic, &created.ProfilePicReal, &created.ProfileInfo, &created.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation || sqliteUniqueViolation(err) {
			return models.User{}, ErrUsernameTaken
		}

		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByUsername retrieves the user record matching username.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("user_id", "username", "password_hash", "profile_name", "profile_pic", "profile_pic_real", "profile_info", "created_at").
		From(models.User{}.TableName()).
		Where("username = ?", username).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.UserID, &found.Username, &found.PasswordHash, &found.ProfileName,
		&found.ProfilePic, &found.ProfilePicReal, &found.ProfileInfo, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).
			Str("func", "*userRepository.FindUserByUsername").
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("error querying user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateProfile overwrites profile_name and profile_info unconditionally
// (an empty string clears the field) and, when update.HasImage is set, also
// rewrites the picture columns.
//
// Returns [ErrUserNotFound] when no row matched the username.
func (r *userRepository) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Update(models.User{}.TableName()).
		Set("profile_name", update.ProfileName).
		Set("profile_info", update.ProfileInfo).
		Where("username = ?", update.Username)

	if update.HasImage {
		builder = builder.
			Set("profile_pic", update.ProfilePic).
			Set("profile_pic_real", update.ProfilePicReal)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpdateProfile").
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("error updating profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
