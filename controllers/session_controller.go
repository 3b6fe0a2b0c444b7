package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"paypya-resto/models"
	"paypya-resto/services"
)

type SessionController struct {
	sessions *services.SessionService
}

func NewSessionController(sessions *services.SessionService) *SessionController {
	return &SessionController{sessions: sessions}
}

// @Summary Get device session
// @Description Get the remembered customer name and table number. A table query param (from a table QR code) locks the table for this device.
// @Tags Session
// @Produce json
// @Param table query string false "Table number from QR code"
// @Success 200 {object} models.Response
// @Router /session [get]
func (ctrl *SessionController) GetSession(c *gin.Context) {
	deviceID := c.GetString("device_id")

	if table := strings.TrimSpace(c.Query("table")); table != "" {
		if err := ctrl.sessions.LockTable(c.Request.Context(), deviceID, table); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to save session"})
			return
		}
	}

	session := ctrl.sessions.Get(c.Request.Context(), deviceID)
	c.JSON(200, gin.H{"success": true, "message": "Session retrieved", "data": session})
}

// @Summary Update device session
// @Description Remember the customer name and, unless locked by QR, the table number
// @Tags Session
// @Accept json
// @Produce json
// @Param request body models.UpdateSessionRequest true "Fields to remember"
// @Success 200 {object} models.Response
// @Router /session [patch]
func (ctrl *SessionController) UpdateSession(c *gin.Context) {
	var req models.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	deviceID := c.GetString("device_id")
	session := ctrl.sessions.Get(c.Request.Context(), deviceID)

	if req.CustomerName != nil {
		session.CustomerName = strings.TrimSpace(*req.CustomerName)
	}
	if req.TableNumber != nil && !session.TableLocked {
		session.TableNumber = strings.TrimSpace(*req.TableNumber)
	}

	if err := ctrl.sessions.Save(c.Request.Context(), deviceID, session); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save session"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Session updated", "data": session})
}
