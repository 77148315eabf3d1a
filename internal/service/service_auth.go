package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avdonin/minifeed/internal/config"
	"github.com/avdonin/minifeed/internal/logger"
	"github.com/avdonin/minifeed/internal/store"
	"github.com/avdonin/minifeed/internal/utils"
	"github.com/avdonin/minifeed/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// Expiry is fixed, not sliding: there is no refresh mechanism, so the
	// user must sign in again after this interval.
	tokenDuration time.Duration

	// bcryptCost is the cost factor applied when hashing new passwords.
	bcryptCost int

	// defaultProfilePic is the placeholder image path assigned to every
	// new account.
	defaultProfilePic string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, files config.Files, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		bcryptCost:        cfg.BCryptCost,
		defaultProfilePic: files.DefaultProfileImage,
		logger:            logger,
	}
}

// CheckUsername reports whether the username is already registered.
// It never fails on a missing user; only unexpected storage errors are
// propagated.
func (a *authService) CheckUsername(ctx context.Context, username string) (bool, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return false, ErrInvalidDataProvided
	}

	_, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return false, nil
		}

		log.Err(err).Str("username", username).Msg("username lookup failed")
		return false, fmt.Errorf("username lookup failed: %w", err)
	}

	return true, nil
}

// Register creates a new user account.
//
// It validates that both username and password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
// The profile name defaults to the username and the profile picture to the
// configured placeholder, matching account-creation semantics.
//
// Returns the persisted user (with server-assigned fields) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken, see store.ErrUsernameTaken).
func (a *authService) Register(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:       username,
		PasswordHash:   string(hash),
		ProfileName:    username,
		ProfilePic:     "",
		ProfilePicReal: a.defaultProfilePic,
		ProfileInfo:    "",
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both username and password are non-empty, looks up the
// account, and compares the supplied password against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found, see store.ErrUserNotFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("username", username).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("token creation failed: %w", err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Failures are normalised to exactly two sentinels so that
// callers never inspect low-level JWT errors:
//   - ErrTokenIsExpired when the token is past its expiry claim.
//   - ErrTokenIsMalformed for every other validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsMalformed
	}

	return token, nil
}
