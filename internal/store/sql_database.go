package store

import (
	"context"
	"fmt"

	"github.com/avdonin/minifeed/internal/config"
	"github.com/avdonin/minifeed/internal/logger"
)

// NewDatabase opens the SQL backend selected by cfg.Driver.
//
// Supported drivers:
//   - "pgx": PostgreSQL via the pgx stdlib driver
//   - "sqlite3": a local SQLite file (development and tests)
func NewDatabase(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "pgx":
		return NewConnectPostgres(ctx, cfg, log)
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
