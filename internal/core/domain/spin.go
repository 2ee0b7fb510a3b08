package domain

import "time"

// SpinHistoryLimit caps how many records a history read returns.
const SpinHistoryLimit = 50

// Spin is one recorded roulette outcome. Spins are not attributed to a user.
type Spin struct {
	ID            int64     `json:"id"`
	WinningNumber int       `json:"winning_number"`
	SpinTime      time.Time `json:"spin_time"`
}
