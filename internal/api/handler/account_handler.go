package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/spinhouse/roulette-backend/internal/core/domain"
	"github.com/spinhouse/roulette-backend/internal/core/ports"
)

// AccountHandler serves the signup, login and balance endpoints. Response
// shapes differ per endpoint (plain text for signup, JSON elsewhere) and are
// kept that way for existing clients.
type AccountHandler struct {
	service ports.AccountService
	log     zerolog.Logger
}

func NewAccountHandler(service ports.AccountService, log zerolog.Logger) *AccountHandler {
	return &AccountHandler{service: service, log: log}
}

// Signup creates a new account with the starting balance.
//
// @Summary      Register a new player
// @Tags         accounts
// @Accept       json
// @Produce      plain
// @Param        body  body      signupRequest  true  "Credentials"
// @Success      201   {string}  string  "User created successfully"
// @Failure      400   {string}  string  "Username already exists"
// @Failure      500   {string}  string  "Error inserting user"
// @Router       /signup [post]
func (h *AccountHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request body")
	}

	err := h.service.Signup(c.Request().Context(), req.Username, req.Password)
	switch {
	case err == nil:
		return c.String(http.StatusCreated, "User created successfully")
	case errors.Is(err, domain.ErrUserExists):
		return c.String(http.StatusBadRequest, "Username already exists")
	case errors.Is(err, domain.ErrHashPassword):
		h.logFailure(c, err, "signup failed")
		return c.String(http.StatusInternalServerError, "Error hashing password")
	default:
		h.logFailure(c, err, "signup failed")
		return c.String(http.StatusInternalServerError, "Error inserting user")
	}
}

// Login checks credentials and returns the current balance.
//
// @Summary      Login
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  messageResponse
// @Failure      429   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Username and password are required"})
	}

	res, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "User not found"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid password"})
		case errors.Is(err, domain.ErrTooManyAttempts):
			return c.JSON(http.StatusTooManyRequests, messageResponse{Message: "Too many login attempts"})
		case errors.Is(err, domain.ErrComparePassword):
			h.logFailure(c, err, "login failed")
			return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Error comparing passwords"})
		case errors.Is(err, domain.ErrIssueToken):
			h.logFailure(c, err, "login failed")
			return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Error generating token"})
		default:
			h.logFailure(c, err, "login failed")
			return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Error querying user"})
		}
	}

	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login successful",
		Balance: res.Balance,
		Token:   res.Token,
	})
}

// UpdateBalance credits or debits an account.
//
// @Summary      Adjust a balance
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      updateBalanceRequest  true  "Adjustment"
// @Success      200   {object}  updateBalanceResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /update-balance [post]
func (h *AccountHandler) UpdateBalance(c echo.Context) error {
	var req updateBalanceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}
	if done, err := rejectForeignSubject(c, req.Username); done {
		return err
	}

	balance, err := h.service.UpdateBalance(c.Request().Context(), req.Username, req.Amount, req.IsAdd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		case errors.Is(err, domain.ErrInsufficientBalance):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Insufficient balance"})
		default:
			h.logFailure(c, err, "balance update failed")
			return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Error updating balance"})
		}
	}

	return c.JSON(http.StatusOK, updateBalanceResponse{
		Message: "Balance updated successfully",
		Balance: balance,
	})
}

// GetBalance returns the stored balance for a username.
//
// @Summary      Read a balance
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      getBalanceRequest  true  "Username"
// @Success      200   {object}  balanceResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /get-balance [post]
func (h *AccountHandler) GetBalance(c echo.Context) error {
	var req getBalanceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Username is required"})
	}
	if done, err := rejectForeignSubject(c, req.Username); done {
		return err
	}

	balance, err := h.service.GetBalance(c.Request().Context(), req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		h.logFailure(c, err, "balance lookup failed")
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Error retrieving balance"})
	}

	return c.JSON(http.StatusOK, balanceResponse{Balance: balance})
}

func (h *AccountHandler) logFailure(c echo.Context, err error, msg string) {
	h.log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg(msg)
}
