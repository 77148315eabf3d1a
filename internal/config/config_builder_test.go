package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validBase returns the minimum configuration that passes validate().
func validBase() *StructuredConfig {
	return &StructuredConfig{
		App: App{TokenSignKey: "jwt_secret"},
		Storage: Storage{
			DB: DB{Driver: "sqlite3", DSN: "/tmp/minifeed.db"},
		},
	}
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation: there is no sign key and no DSN to run with.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoTokenSignKey)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, earlier configs winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validBase(),
		&StructuredConfig{App: App{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
}

// TestBuild_EarlierSourceWins verifies the merge priority: a field set by an
// earlier config is not overwritten by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validBase(),
		&StructuredConfig{Storage: Storage{DB: DB{Driver: "pgx", DSN: "postgres://other"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "/tmp/minifeed.db", cfg.Storage.DB.DSN)
}

// TestWithDefaults_FillsOnlyEmptyFields verifies that the defaults appended
// last only fill fields no other source has set.
func TestWithDefaults_FillsOnlyEmptyFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App: App{TokenSignKey: "jwt_secret", TokenIssuer: "custom"},
		Storage: Storage{
			DB: DB{Driver: "sqlite3", DSN: "/tmp/minifeed.db"},
		},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	// explicit values survive
	assert.Equal(t, "custom", cfg.App.TokenIssuer)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)

	// gaps filled from defaults
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "mytoken", cfg.App.TokenCookieName)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "img/profile/example.png", cfg.Storage.Files.DefaultProfileImage)
}

// ── validate ─────────────────────────────────────────────────────────────────

func TestValidate_NoTokenSignKey(t *testing.T) {
	cfg := validBase()
	cfg.App.TokenSignKey = ""

	assert.ErrorIs(t, cfg.validate(), ErrNoTokenSignKey)
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := validBase()
	cfg.Storage.DB.Driver = "mongodb"

	assert.ErrorIs(t, cfg.validate(), ErrUnknownDBDriver)
}

func TestValidate_NoDSN(t *testing.T) {
	cfg := validBase()
	cfg.Storage.DB.DSN = ""

	assert.ErrorIs(t, cfg.validate(), ErrNoDatabaseDSN)
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validBase().validate())
}
