package config

import "errors"

var (
	// ErrNoTokenSignKey is returned when no JWT signing key was provided by
	// any configuration source. The server cannot issue or verify tokens
	// without it.
	ErrNoTokenSignKey = errors.New("token sign key is not set")

	// ErrUnknownDBDriver is returned when the configured database driver is
	// neither "pgx" nor "sqlite3".
	ErrUnknownDBDriver = errors.New("unknown database driver")

	// ErrNoDatabaseDSN is returned when no database DSN was provided by any
	// configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is not set")
)
