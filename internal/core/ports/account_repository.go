package ports

import (
	"context"

	"github.com/spinhouse/roulette-backend/internal/core/domain"
)

// AccountRepository defines persistence for player accounts.
type AccountRepository interface {
	// Create inserts the user. Returns domain.ErrUserExists when the username
	// is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// AdjustBalance adds delta to the stored balance in a single statement and
	// returns the new value. When allowNegative is false a result below zero
	// is refused with domain.ErrInsufficientBalance.
	AdjustBalance(ctx context.Context, username string, delta int64, allowNegative bool) (int64, error)
	Balance(ctx context.Context, username string) (int64, error)
}
