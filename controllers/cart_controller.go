package controllers

import (
	"github.com/gin-gonic/gin"

	"paypya-resto/models"
	"paypya-resto/services"
	"paypya-resto/utils"
)

type CartController struct {
	carts   *services.CartService
	catalog *services.CatalogService
}

func NewCartController(carts *services.CartService, catalog *services.CatalogService) *CartController {
	return &CartController{carts: carts, catalog: catalog}
}

func cartPayload(cart *models.Cart) gin.H {
	return gin.H{
		"lines":              cart.Lines,
		"count":              cart.Count(),
		"subtotal":           cart.Subtotal(),
		"subtotal_formatted": utils.FormatIDR(cart.Subtotal()),
	}
}

// @Summary Get cart
// @Description Get the device's current cart with its subtotal
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	deviceID := c.GetString("device_id")
	cart := ctrl.carts.Load(c.Request.Context(), deviceID)

	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": cartPayload(cart)})
}

// @Summary Add item to cart
// @Description Add a menu item; an existing line's quantity is incremented
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item and quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	product, err := ctrl.catalog.GetProductByID(req.ProductID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}
	if !product.IsAvailable {
		c.JSON(400, gin.H{"success": false, "message": "Product is not available"})
		return
	}

	deviceID := c.GetString("device_id")
	cart := ctrl.carts.Load(c.Request.Context(), deviceID)

	if err := cart.AddItem(*product, req.Quantity); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := ctrl.carts.Save(c.Request.Context(), deviceID, cart); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Item added to cart", "data": cartPayload(cart)})
}

// @Summary Update cart item quantity
// @Description Set a line's quantity; values below 1 are ignored
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	deviceID := c.GetString("device_id")
	cart := ctrl.carts.Load(c.Request.Context(), deviceID)
	cart.UpdateQuantity(c.Param("id"), req.Quantity)

	if err := ctrl.carts.Save(c.Request.Context(), deviceID, cart); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": cartPayload(cart)})
}

// @Summary Remove cart item
// @Description Delete a line from the cart
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	deviceID := c.GetString("device_id")
	cart := ctrl.carts.Load(c.Request.Context(), deviceID)
	cart.RemoveItem(c.Param("id"))

	if err := ctrl.carts.Save(c.Request.Context(), deviceID, cart); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Item removed", "data": cartPayload(cart)})
}
