package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-engine/engine"
	"github.com/yeremiapane/restaurant-engine/utils"
)

type MenuController struct {
	Engine *engine.Engine
}

func NewMenuController(e *engine.Engine) *MenuController {
	return &MenuController{Engine: e}
}

// GetMenu -> full menu, or one category; unknown categories yield an empty list
func (mc *MenuController) GetMenu(c *gin.Context) {
	items := mc.Engine.Menu(c.Query("category"))
	utils.RespondJSON(c, http.StatusOK, "Menu items", items)
}
