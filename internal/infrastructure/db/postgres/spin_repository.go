package postgres

import (
	"context"
	"fmt"

	"github.com/spinhouse/roulette-backend/internal/api/metrics"
	"github.com/spinhouse/roulette-backend/internal/core/domain"
)

// SpinRepository stores roulette outcomes in spin_history.
type SpinRepository struct {
	q Queryable
}

func NewSpinRepository(q Queryable) *SpinRepository {
	return &SpinRepository{q: q}
}

// Insert records a winning number; spin_time is assigned by the database.
func (r *SpinRepository) Insert(ctx context.Context, winningNumber int) (*domain.Spin, error) {
	defer metrics.ObserveQuery("spins.insert")()

	spin := domain.Spin{WinningNumber: winningNumber}
	err := r.q.QueryRow(ctx,
		`INSERT INTO spin_history (winning_number) VALUES ($1) RETURNING id, spin_time`,
		winningNumber,
	).Scan(&spin.ID, &spin.SpinTime)
	if err != nil {
		return nil, fmt.Errorf("insert spin: %w", err)
	}
	return &spin, nil
}

// Recent returns up to limit spins ordered newest first. Ties on spin_time
// fall back to insertion order.
func (r *SpinRepository) Recent(ctx context.Context, limit int) ([]domain.Spin, error) {
	defer metrics.ObserveQuery("spins.recent")()

	query := `
		SELECT id, winning_number, spin_time
		FROM spin_history
		ORDER BY spin_time DESC, id DESC
		LIMIT $1
	`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query spins: %w", err)
	}
	defer rows.Close()

	spins := make([]domain.Spin, 0, limit)
	for rows.Next() {
		var s domain.Spin
		if err := rows.Scan(&s.ID, &s.WinningNumber, &s.SpinTime); err != nil {
			return nil, fmt.Errorf("scan spin: %w", err)
		}
		spins = append(spins, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate spins: %w", err)
	}
	return spins, nil
}
