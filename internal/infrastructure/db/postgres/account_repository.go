package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spinhouse/roulette-backend/internal/api/metrics"
	"github.com/spinhouse/roulette-backend/internal/core/domain"
)

// AccountRepository stores player accounts in the users table.
type AccountRepository struct {
	q Queryable
}

func NewAccountRepository(q Queryable) *AccountRepository {
	return &AccountRepository{q: q}
}

// Create relies on the unique constraint on username: a conflicting insert
// returns no row and is reported as domain.ErrUserExists.
func (r *AccountRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	defer metrics.ObserveQuery("users.create")()

	query := `
		INSERT INTO users (username, password_hash, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	created := *user
	err := r.q.QueryRow(ctx, query,
		user.Username, user.PasswordHash, user.Balance, user.CreatedAt, user.UpdatedAt,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserExists
	}
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &created, nil
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	defer metrics.ObserveQuery("users.find")()

	query := `
		SELECT id, username, password_hash, balance, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var u domain.User
	err := r.q.QueryRow(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Balance, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// AdjustBalance applies delta in one UPDATE so concurrent adjustments cannot
// lose each other. The floor check, when enabled, is part of the same
// statement.
func (r *AccountRepository) AdjustBalance(ctx context.Context, username string, delta int64, allowNegative bool) (int64, error) {
	defer metrics.ObserveQuery("users.adjust_balance")()

	query := `
		UPDATE users
		SET balance = balance + $1, updated_at = NOW()
		WHERE username = $2 AND ($3 OR balance + $1 >= 0)
		RETURNING balance
	`

	var balance int64
	err := r.q.QueryRow(ctx, query, delta, username, allowNegative).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		if allowNegative {
			return 0, domain.ErrUserNotFound
		}
		return 0, r.classifyRefusal(ctx, username)
	}
	if err != nil {
		return 0, fmt.Errorf("adjust balance: %w", err)
	}
	return balance, nil
}

func (r *AccountRepository) Balance(ctx context.Context, username string) (int64, error) {
	defer metrics.ObserveQuery("users.balance")()

	var balance int64
	err := r.q.QueryRow(ctx, `SELECT balance FROM users WHERE username = $1`, username).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// classifyRefusal tells a missing user apart from a floor violation after a
// guarded UPDATE matched nothing.
func (r *AccountRepository) classifyRefusal(ctx context.Context, username string) error {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return fmt.Errorf("adjust balance: check user: %w", err)
	}
	if !exists {
		return domain.ErrUserNotFound
	}
	return domain.ErrInsufficientBalance
}
