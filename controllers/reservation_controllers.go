package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-engine/engine"
	"github.com/yeremiapane/restaurant-engine/events"
	"github.com/yeremiapane/restaurant-engine/utils"
)

type ReservationController struct {
	Engine *engine.Engine
}

func NewReservationController(e *engine.Engine) *ReservationController {
	return &ReservationController{Engine: e}
}

// CreateReservation -> book a reservation; availability is checked at seating time
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		CustomerID string `json:"customer_id" binding:"required"`
		Date       string `json:"date" binding:"required"`
		Time       string `json:"time" binding:"required"`
		PartySize  int    `json:"party_size" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	r, err := rc.Engine.CreateReservation(req.CustomerID, req.Date, req.Time, req.PartySize)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	events.BroadcastReservationUpdate(r)
	utils.InfoLogger.Printf("Reservation %s for customer %s on %s %s (party of %d)",
		r.ID, r.CustomerID, r.Date, r.Time, r.PartySize)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created", r)
}

// GetReservations -> list, optionally filtered by customer_id and/or date
func (rc *ReservationController) GetReservations(c *gin.Context) {
	reservations := rc.Engine.Reservations(c.Query("customer_id"), c.Query("date"))
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}
