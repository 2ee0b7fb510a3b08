package handler

import "time"

// --- Request types ---

// signupRequest is deliberately unvalidated: empty credentials are stored as sent.
type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateBalanceRequest struct {
	Username string `json:"username"`
	Amount   int64  `json:"amount"`
	IsAdd    bool   `json:"isAdd"`
}

type getBalanceRequest struct {
	Username string `json:"username" validate:"required"`
}

type saveSpinRequest struct {
	WinningNumber *int `json:"winningNumber" validate:"required"`
}

// --- Response types ---

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Message string `json:"message"`
	Balance int64  `json:"balance"`
	Token   string `json:"token,omitempty"`
}

type updateBalanceResponse struct {
	Message string `json:"message"`
	Balance int64  `json:"balance"`
}

type balanceResponse struct {
	Balance int64 `json:"balance"`
}

type spinResponse struct {
	ID            int64     `json:"id"`
	WinningNumber int       `json:"winning_number"`
	SpinTime      time.Time `json:"spin_time"`
}
