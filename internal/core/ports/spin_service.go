package ports

import (
	"context"

	"github.com/spinhouse/roulette-backend/internal/core/domain"
)

type SpinService interface {
	SaveSpin(ctx context.Context, winningNumber int) (*domain.Spin, error)
	History(ctx context.Context) ([]domain.Spin, error)
}
