package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/spinhouse/roulette-backend/internal/api/metrics"
	"github.com/spinhouse/roulette-backend/internal/core/domain"
	"github.com/spinhouse/roulette-backend/internal/core/ports"
)

type SpinService struct {
	repo ports.SpinRepository
	log  zerolog.Logger
}

func NewSpinService(repo ports.SpinRepository, log zerolog.Logger) *SpinService {
	return &SpinService{repo: repo, log: log}
}

// SaveSpin records a winning number. The value is not range-checked.
func (s *SpinService) SaveSpin(ctx context.Context, winningNumber int) (*domain.Spin, error) {
	spin, err := s.repo.Insert(ctx, winningNumber)
	if err != nil {
		return nil, fmt.Errorf("save spin: %w", err)
	}

	metrics.SpinsRecordedTotal.Inc()
	s.log.Debug().Int("winning_number", winningNumber).Int64("id", spin.ID).Msg("spin recorded")
	return spin, nil
}

// History returns the most recent spins, newest first.
func (s *SpinService) History(ctx context.Context) ([]domain.Spin, error) {
	spins, err := s.repo.Recent(ctx, domain.SpinHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("spin history: %w", err)
	}
	return spins, nil
}
