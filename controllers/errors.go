package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-engine/engine"
	"github.com/yeremiapane/restaurant-engine/utils"
)

var (
	errInvalidLimit     = errors.New("query parameter 'limit' must be a non-negative integer")
	errInvalidPartySize = errors.New("query parameter 'party_size' must be a positive integer")
)

// statusFor maps engine failures onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrConflict),
		errors.Is(err, engine.ErrAlreadyPaid):
		return http.StatusConflict
	case errors.Is(err, engine.ErrInvalidTransition),
		errors.Is(err, engine.ErrNothingToBill),
		errors.Is(err, engine.ErrInvalidAmount):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respondEngineError(c *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		utils.ErrorLogger.Printf("operation failed: %v", err)
	}
	utils.RespondError(c, code, err)
}
