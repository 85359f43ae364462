package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bkdev/go-blog-api/internal/config"
	"github.com/bkdev/go-blog-api/internal/logger"
	"github.com/bkdev/go-blog-api/internal/store"
	"github.com/bkdev/go-blog-api/internal/utils"
	"github.com/bkdev/go-blog-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the session
// token lifecycle using a UserRepository for persistence, bcrypt for password
// hashing, and HMAC-SHA256 signed JWTs for tokens.
//
// A token is accepted only when both checks pass: the signature and claims
// verify cryptographically, and a matching session row still exists in the
// store. Logout deletes the session row, so a logged-out token fails the
// second check even though its signature stays valid.
type authService struct {
	// userRepository is the data-access layer used to create and look up users
	// and their session tokens.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	// Zero means tokens carry no expiry and stay valid until logged out.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account and opens its first session.
//
// It normalizes the email, validates the credentials, hashes the password
// with bcrypt, persists the account, and issues a session token recorded in
// the sessions table.
//
// Returns the persisted user and its token, or:
//   - ErrInvalidDataProvided if the email is empty or the password is shorter
//     than models.MinPasswordLength.
//   - A wrapped storage error if persistence fails (e.g. the email is already
//     taken, see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	credentials.Normalize()
	if credentials.Email == "" || len(credentials.Password) < models.MinPasswordLength {
		log.Error().Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(credentials.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        credentials.Email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UnixMilli(),
	})
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.openSession(ctx, registeredUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return registeredUser, token, nil
}

// Login authenticates an existing user and opens a new session.
//
// It normalizes the email, looks up the account, and compares the supplied
// password against the stored bcrypt hash. Every successful login issues a
// fresh token; sessions from other devices stay untouched.
//
// Returns the authenticated user and its new token, or:
//   - ErrInvalidDataProvided if the email or password is empty.
//   - A wrapped storage error if the lookup fails (e.g. the user does not
//     exist, see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	credentials.Normalize()
	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if checkErr := utils.CheckPassword(foundUser.PasswordHash, credentials.Password); checkErr != nil {
		log.Warn().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, models.Token{}, ErrWrongPassword
	}

	token, err := a.openSession(ctx, foundUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return foundUser, token, nil
}

// Logout revokes a single session by deleting its row from the sessions
// table. Other sessions of the same user remain valid. Logging out an
// already-revoked token is a no-op.
func (a *authService) Logout(ctx context.Context, userID int64, token string) error {
	log := logger.FromContext(ctx)

	if err := a.userRepository.DeleteSession(ctx, userID, token); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("session deletion failed")
		return fmt.Errorf("session deletion failed: %w", err)
	}

	return nil
}

// Authenticate resolves a raw token string to its user.
//
// The token must pass both checks: the JWT signature, issuer, and expiry
// verify against the service configuration, and a session row matching
// (user, access, token) still exists in the store. Any failure is normalised
// to ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT or storage errors.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return models.User{}, models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	userID, err := token.GetUserID()
	if err != nil {
		log.Debug().Err(err).Msg("token carries no usable subject")
		return models.User{}, models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	foundUser, err := a.userRepository.FindUserByToken(ctx, userID, token.Access, tokenString)
	if err != nil {
		log.Debug().Err(err).Int64("user_id", userID).Msg("no active session for token")
		return models.User{}, models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return foundUser, token, nil
}

// Users lists every registered account.
func (a *authService) Users(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := a.userRepository.AllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

// openSession issues a signed token for the user and records it in the
// sessions table so that Authenticate can later resolve it.
func (a *authService) openSession(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, models.AccessAuth, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	session := models.Session{
		UserID: user.UserID,
		Access: token.Access,
		Token:  token.String(),
	}
	if err := a.userRepository.AddSession(ctx, session); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("session persistence failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
