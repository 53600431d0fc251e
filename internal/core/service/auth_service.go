package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/notewise/notes-api/internal/core/domain"
	"github.com/notewise/notes-api/internal/core/password"
	"github.com/notewise/notes-api/internal/core/ports"
)

// TokenIssuer abstracts minting of signed identity tokens.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// LoginThrottle abstracts the failed-login counter (Redis).
type LoginThrottle interface {
	Allow(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
}

// AuthService implements registration and login.
type AuthService struct {
	users    ports.UserRepository
	tokens   TokenIssuer
	throttle LoginThrottle // optional; nil disables throttling
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens TokenIssuer, throttle LoginThrottle, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, throttle: throttle, log: log}
}

// Register creates a user account and issues its first token. When the user
// document is persisted but token issuance fails, the account is kept and the
// result carries a warning instead of a token; there is no compensating
// delete.
func (s *AuthService) Register(ctx context.Context, name, email, plainPassword string) (*ports.AuthResult, error) {
	if name == "" || email == "" || plainPassword == "" {
		return nil, domain.ErrMissingFields
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrUserExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: lookup email: %w", err)
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		UserID:     uuid.NewString(),
		UserName:   name,
		UserEmail:  email,
		Password:   hash,
		CreatedOn:  now,
		LastUpdate: now,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("register: insert user: %w", err)
	}

	tok, err := s.tokens.Issue(user.UserID)
	if err != nil {
		// The user record is durable at this point; report partial success
		// rather than rolling back.
		s.log.Warn().Err(err).Str("user_id", user.UserID).Msg("user created but token issuance failed")
		return &ports.AuthResult{
			User:         user,
			TokenWarning: "Please contact support for token generation",
		}, nil
	}

	s.log.Info().Str("user_id", user.UserID).Msg("user registered")
	return &ports.AuthResult{Token: tok, User: user}, nil
}

// Login verifies credentials and issues a token. Unknown email, empty stored
// hash, and wrong password all surface as domain.ErrInvalidCredentials so the
// caller cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (*ports.AuthResult, error) {
	if email == "" || plainPassword == "" {
		return nil, domain.ErrMissingFields
	}

	if s.throttle != nil {
		allowed, err := s.throttle.Allow(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login throttle check failed, proceeding")
		} else if !allowed {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: lookup email: %w", err)
	}

	if !password.Verify(plainPassword, user.Password) {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.UserID)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.log.Info().Str("user_id", user.UserID).Msg("login succeeded")
	return &ports.AuthResult{Token: tok, User: user}, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to record login failure")
	}
}
