package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/spinhouse/roulette-backend/internal/core/ports"
)

// SpinHandler records roulette outcomes and serves the recent history.
type SpinHandler struct {
	service ports.SpinService
	log     zerolog.Logger
}

func NewSpinHandler(service ports.SpinService, log zerolog.Logger) *SpinHandler {
	return &SpinHandler{service: service, log: log}
}

// SaveSpin stores one winning number.
//
// @Summary      Save a spin result
// @Tags         spins
// @Accept       json
// @Produce      plain
// @Param        body  body      saveSpinRequest  true  "Winning number"
// @Success      201   {string}  string  "Spin result saved."
// @Failure      400   {string}  string  "Winning number is required."
// @Failure      500   {string}  string  "Error saving spin result."
// @Router       /save-spin [post]
func (h *SpinHandler) SaveSpin(c echo.Context) error {
	var req saveSpinRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Winning number is required.")
	}
	if err := c.Validate(&req); err != nil {
		return c.String(http.StatusBadRequest, "Winning number is required.")
	}

	if _, err := h.service.SaveSpin(c.Request().Context(), *req.WinningNumber); err != nil {
		h.log.Error().Err(err).Str("path", c.Path()).Msg("error saving spin result")
		return c.String(http.StatusInternalServerError, "Error saving spin result.")
	}

	return c.String(http.StatusCreated, "Spin result saved.")
}

// History returns the latest spins, newest first.
//
// @Summary      Recent spin history
// @Tags         spins
// @Produce      json
// @Success      200  {array}   spinResponse
// @Failure      500  {string}  string  "Error retrieving spin history."
// @Router       /spin-history [get]
func (h *SpinHandler) History(c echo.Context) error {
	spins, err := h.service.History(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Str("path", c.Path()).Msg("error retrieving spin history")
		return c.String(http.StatusInternalServerError, "Error retrieving spin history.")
	}

	out := make([]spinResponse, len(spins))
	for i, s := range spins {
		out[i] = spinResponse{
			ID:            s.ID,
			WinningNumber: s.WinningNumber,
			SpinTime:      s.SpinTime.UTC(),
		}
	}
	return c.JSON(http.StatusOK, out)
}
