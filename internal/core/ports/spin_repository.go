package ports

import (
	"context"

	"github.com/spinhouse/roulette-backend/internal/core/domain"
)

// SpinRepository persists roulette outcomes.
type SpinRepository interface {
	Insert(ctx context.Context, winningNumber int) (*domain.Spin, error)
	// Recent returns at most limit spins, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Spin, error)
}
