package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-engine/engine"
	"github.com/yeremiapane/restaurant-engine/events"
	"github.com/yeremiapane/restaurant-engine/utils"
)

type TableController struct {
	Engine *engine.Engine
}

func NewTableController(e *engine.Engine) *TableController {
	return &TableController{Engine: e}
}

// GetAllTables -> every table with its occupancy
func (tc *TableController) GetAllTables(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of tables", tc.Engine.ListTables())
}

// CheckAvailability -> best-fit free table for a party size, or null
func (tc *TableController) CheckAvailability(c *gin.Context) {
	partySize, err := strconv.Atoi(c.Query("party_size"))
	if err != nil || partySize <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errInvalidPartySize)
		return
	}

	table := tc.Engine.CheckTableAvailability(partySize)
	if table == nil {
		utils.RespondJSON(c, http.StatusOK, "No table available", nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table available", table)
}

// AssignTable -> seat a customer; pending reservation becomes seated
func (tc *TableController) AssignTable(c *gin.Context) {
	tableID := c.Param("table_id")

	var req struct {
		CustomerID string `json:"customer_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Engine.AssignTable(tableID, req.CustomerID)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	events.BroadcastTableUpdate(table)
	utils.InfoLogger.Printf("Table %s assigned to customer %s", table.ID, req.CustomerID)
	utils.RespondJSON(c, http.StatusOK, "Table assigned", table)
}

// ReleaseTable -> free the lowest-id occupied table of exactly this capacity
func (tc *TableController) ReleaseTable(c *gin.Context) {
	var req struct {
		Capacity int `json:"capacity" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Engine.ReleaseTable(req.Capacity)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	events.BroadcastTableUpdate(table)
	utils.InfoLogger.Printf("Table %s (capacity %d) released", table.ID, table.Capacity)
	utils.RespondJSON(c, http.StatusOK, "Table released", table)
}
