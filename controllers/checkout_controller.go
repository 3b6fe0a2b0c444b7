package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"paypya-resto/models"
	"paypya-resto/services"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// @Summary Checkout
// @Description Submit the device's cart as a new order
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Customer name, table number, payment method"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	deviceID := c.GetString("device_id")

	resp, err := ctrl.checkout.Submit(c.Request.Context(), deviceID, req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		// Cart is left intact; the customer can retry the submission.
		c.JSON(500, gin.H{"success": false, "message": "Failed to place order. Please try again."})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Order placed successfully", "data": resp})
}
