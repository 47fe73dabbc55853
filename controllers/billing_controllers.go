package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-engine/engine"
	"github.com/yeremiapane/restaurant-engine/events"
	"github.com/yeremiapane/restaurant-engine/utils"
)

type BillingController struct {
	Engine *engine.Engine
}

func NewBillingController(e *engine.Engine) *BillingController {
	return &BillingController{Engine: e}
}

// GenerateBill -> bill every not-yet-billed order of the customer
func (bc *BillingController) GenerateBill(c *gin.Context) {
	var req struct {
		CustomerID string `json:"customer_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	bill, err := bc.Engine.GenerateBill(req.CustomerID)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	events.BroadcastBillUpdate(bill)
	utils.InfoLogger.Printf("Bill %s generated for customer %s, total %s",
		bill.ID, bill.CustomerID, utils.FormatUSD(bill.Total))
	utils.RespondJSON(c, http.StatusCreated, "Bill generated", bill)
}

// GetBillByID -> one bill
func (bc *BillingController) GetBillByID(c *gin.Context) {
	bill, err := bc.Engine.BillByID(c.Param("bill_id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Bill detail", bill)
}

// ProcessPayment -> settle a pending bill exactly once
func (bc *BillingController) ProcessPayment(c *gin.Context) {
	billID := c.Param("bill_id")

	var req struct {
		Method string `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	bill, err := bc.Engine.ProcessPayment(billID, req.Method)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	events.BroadcastBillUpdate(bill)
	utils.InfoLogger.Printf("Bill %s paid via %s (%s)",
		bill.ID, bill.PaymentMethod, utils.FormatUSD(bill.Total))
	utils.RespondJSON(c, http.StatusOK, "Payment processed", bill)
}
