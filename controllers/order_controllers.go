package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-engine/engine"
	"github.com/yeremiapane/restaurant-engine/events"
	"github.com/yeremiapane/restaurant-engine/models"
	"github.com/yeremiapane/restaurant-engine/utils"
)

type OrderController struct {
	Engine *engine.Engine
}

func NewOrderController(e *engine.Engine) *OrderController {
	return &OrderController{Engine: e}
}

// CreateOrder -> pending order for the customer seated at the table
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		TableID    string             `json:"table_id" binding:"required"`
		CustomerID string             `json:"customer_id" binding:"required"`
		Items      []engine.OrderLine `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Engine.CreateOrder(req.TableID, req.CustomerID, req.Items)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	events.BroadcastOrderUpdate(order)
	utils.InfoLogger.Printf("Order %s created at table %s, total %s",
		order.ID, order.TableID, utils.FormatUSD(order.Total))
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrderByID -> one order with its status and line items
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, err := oc.Engine.OrderByID(c.Param("order_id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus -> advance one step along the kitchen pipeline
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Engine.UpdateOrderStatus(orderID, models.OrderStatus(req.Status))
	if err != nil {
		respondEngineError(c, err)
		return
	}

	events.BroadcastOrderUpdate(order)
	utils.InfoLogger.Printf("Order %s status changed to %s", order.ID, order.Status)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}
