package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-engine/engine"
	"github.com/yeremiapane/restaurant-engine/events"
	"github.com/yeremiapane/restaurant-engine/utils"
)

type CustomerController struct {
	Engine *engine.Engine
}

func NewCustomerController(e *engine.Engine) *CustomerController {
	return &CustomerController{Engine: e}
}

// GetOrCreateCustomer -> lookup by (name, phone), creating on first sighting
func (cc *CustomerController) GetOrCreateCustomer(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cu, created, err := cc.Engine.GetOrCreateCustomer(req.Name, req.Phone)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	if created {
		events.BroadcastCustomerUpdate(cu)
		utils.InfoLogger.Printf("New customer %s (%s)", cu.ID, cu.Name)
		utils.RespondJSON(c, http.StatusCreated, "Customer created", cu)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer found", cu)
}

// GetCustomerOrders -> order history, most recent first
func (cc *CustomerController) GetCustomerOrders(c *gin.Context) {
	customerID := c.Param("customer_id")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondError(c, http.StatusBadRequest, errInvalidLimit)
			return
		}
		limit = n
	}

	orders, err := cc.Engine.CustomerOrders(customerID, limit)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer orders", orders)
}

// AddToTab -> accrue an amount onto the customer's open tab
func (cc *CustomerController) AddToTab(c *gin.Context) {
	customerID := c.Param("customer_id")

	var req struct {
		Amount *float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cu, err := cc.Engine.AddToTab(customerID, *req.Amount)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	events.BroadcastCustomerUpdate(cu)
	utils.InfoLogger.Printf("Tab for customer %s now %s", cu.ID, utils.FormatUSD(cu.TabBalance))
	utils.RespondJSON(c, http.StatusOK, "Tab updated", cu)
}
