package store

import (
	"context"
	"fmt"

	"github.com/avdonin/minifeed/internal/config"
	"github.com/avdonin/minifeed/internal/logger"
	"github.com/avdonin/minifeed/migrations"
)

// Storages bundles every persistence dependency the service layer needs.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
	LikeRepository LikeRepository
	ProfileImages  ProfileImageStorage

	db *DB
}

// NewStorages connects to the configured database backend, applies goose
// migrations on PostgreSQL (the SQLite backend bootstraps its schema
// inline), and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDatabase(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting storage database: %w", err)
	}

	if cfg.DB.Driver == "pgx" {
		if err := migrations.Migrate(db.DB); err != nil {
			return nil, fmt.Errorf("error migrating storage database: %w", err)
		}
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
		LikeRepository: NewLikeRepository(db, log),
		ProfileImages:  NewProfileImageStorage(cfg.Files, log),
		db:             db,
	}, nil
}

// Close releases the underlying database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
