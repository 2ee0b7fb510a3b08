package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/spinhouse/roulette-backend/internal/api/metrics"
	"github.com/spinhouse/roulette-backend/internal/core/domain"
	"github.com/spinhouse/roulette-backend/internal/core/ports"
)

// PasswordCost is the bcrypt work factor used for new accounts.
const PasswordCost = 10

// AccountOptions tunes the optional behaviour of AccountService.
type AccountOptions struct {
	// JWTSecret enables token issuing on login when non-empty.
	JWTSecret string
	TokenTTL  time.Duration
	// AllowNegativeBalance keeps the historical behaviour of letting a debit
	// push the balance below zero.
	AllowNegativeBalance bool
	// Limiter throttles failed logins. Nil disables throttling.
	Limiter ports.LoginLimiter
}

// AccountService implements signup, login and balance operations.
type AccountService struct {
	repo          ports.AccountRepository
	limiter       ports.LoginLimiter
	jwtSecret     string
	tokenTTL      time.Duration
	allowNegative bool
	log           zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, opts AccountOptions, log zerolog.Logger) *AccountService {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	limiter := opts.Limiter
	if limiter == nil {
		limiter = noopLimiter{}
	}
	return &AccountService{
		repo:          repo,
		limiter:       limiter,
		jwtSecret:     opts.JWTSecret,
		tokenTTL:      opts.TokenTTL,
		allowNegative: opts.AllowNegativeBalance,
		log:           log,
	}
}

// Signup hashes the password and stores a new account with the starting
// balance. Empty usernames and passwords are accepted as-is.
func (s *AccountService) Signup(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(metrics.ResultError).Inc()
		return fmt.Errorf("signup: %w: %v", domain.ErrHashPassword, err)
	}

	now := time.Now().UTC()
	_, err = s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Balance:      domain.StartingBalance,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	switch {
	case errors.Is(err, domain.ErrUserExists):
		metrics.SignupsTotal.WithLabelValues(metrics.ResultConflict).Inc()
		return err
	case err != nil:
		metrics.SignupsTotal.WithLabelValues(metrics.ResultError).Inc()
		return fmt.Errorf("signup: %w", err)
	}

	metrics.SignupsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	s.log.Info().Str("username", username).Msg("user created")
	return nil
}

// Login verifies the password against the stored hash and returns the
// current balance. Callers are expected to have rejected empty fields.
func (s *AccountService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	blocked, err := s.limiter.Blocked(ctx, username)
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login limiter check failed, continuing")
	} else if blocked {
		metrics.LoginsTotal.WithLabelValues(metrics.ResultBlocked).Inc()
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		metrics.LoginsTotal.WithLabelValues(metrics.ResultNotFound).Inc()
		s.recordFailure(ctx, username)
		return nil, err
	}
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, fmt.Errorf("login: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		metrics.LoginsTotal.WithLabelValues(metrics.ResultInvalid).Inc()
		s.recordFailure(ctx, username)
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, fmt.Errorf("login: %w: %v", domain.ErrComparePassword, err)
	}

	if err := s.limiter.Reset(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to reset login limiter")
	}

	result := &ports.LoginResult{Balance: user.Balance}
	if s.jwtSecret != "" {
		token, err := s.generateToken(user)
		if err != nil {
			metrics.LoginsTotal.WithLabelValues(metrics.ResultError).Inc()
			return nil, fmt.Errorf("login: %w: %v", domain.ErrIssueToken, err)
		}
		result.Token = token
	}

	metrics.LoginsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	return result, nil
}

// UpdateBalance credits amount when isAdd is true and debits it otherwise.
// The amount is not sign-checked.
func (s *AccountService) UpdateBalance(ctx context.Context, username string, amount int64, isAdd bool) (int64, error) {
	direction, delta := "credit", amount
	if !isAdd {
		direction, delta = "debit", -amount
	}

	balance, err := s.repo.AdjustBalance(ctx, username, delta, s.allowNegative)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		metrics.BalanceAdjustmentsTotal.WithLabelValues(direction, metrics.ResultNotFound).Inc()
		return 0, err
	case errors.Is(err, domain.ErrInsufficientBalance):
		metrics.BalanceAdjustmentsTotal.WithLabelValues(direction, metrics.ResultRefused).Inc()
		return 0, err
	case err != nil:
		metrics.BalanceAdjustmentsTotal.WithLabelValues(direction, metrics.ResultError).Inc()
		return 0, fmt.Errorf("update balance: %w", err)
	}

	metrics.BalanceAdjustmentsTotal.WithLabelValues(direction, metrics.ResultSuccess).Inc()
	s.log.Debug().
		Str("username", username).
		Str("direction", direction).
		Int64("amount", amount).
		Int64("balance", balance).
		Msg("balance updated")
	return balance, nil
}

func (s *AccountService) GetBalance(ctx context.Context, username string) (int64, error) {
	balance, err := s.repo.Balance(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

func (s *AccountService) recordFailure(ctx context.Context, username string) {
	if err := s.limiter.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}

func (s *AccountService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

type noopLimiter struct{}

func (noopLimiter) Blocked(context.Context, string) (bool, error) { return false, nil }
func (noopLimiter) RecordFailure(context.Context, string) error   { return nil }
func (noopLimiter) Reset(context.Context, string) error           { return nil }
