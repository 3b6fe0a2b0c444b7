package controllers

import (
	"github.com/gin-gonic/gin"

	"paypya-resto/services"
)

type HistoryController struct {
	history *services.HistoryService
}

func NewHistoryController(history *services.HistoryService) *HistoryController {
	return &HistoryController{history: history}
}

// @Summary Get order history
// @Description Get the device-local list of past orders, most recent first
// @Tags History
// @Produce json
// @Success 200 {object} models.Response
// @Router /history [get]
func (ctrl *HistoryController) GetHistory(c *gin.Context) {
	deviceID := c.GetString("device_id")
	orders := ctrl.history.List(c.Request.Context(), deviceID)

	c.JSON(200, gin.H{"success": true, "message": "Order history retrieved", "data": orders})
}

// @Summary Find order in history
// @Description Look up a past order on this device by its order number
// @Tags History
// @Produce json
// @Param orderNumber path string true "Order number"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /history/{orderNumber} [get]
func (ctrl *HistoryController) GetByOrderNumber(c *gin.Context) {
	deviceID := c.GetString("device_id")

	order, found := ctrl.history.FindByOrderNumber(c.Request.Context(), deviceID, c.Param("orderNumber"))
	if !found {
		c.JSON(404, gin.H{"success": false, "message": "Order not found in history"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved", "data": order})
}
