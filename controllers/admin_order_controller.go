package controllers

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"paypya-resto/models"
	"paypya-resto/repositories"
)

type AdminOrderController struct {
	orders *repositories.OrderRepository
}

func NewAdminOrderController(orders *repositories.OrderRepository) *AdminOrderController {
	return &AdminOrderController{orders: orders}
}

func (ctrl *AdminOrderController) getPaginationParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}

	return page, limit
}

func (ctrl *AdminOrderController) generateLinks(c *gin.Context, page, limit, totalPages int) models.PaginationLinks {
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}

	host := c.Request.Host
	path := c.Request.URL.Path
	queryParams := c.Request.URL.Query()

	makeURL := func(pageNum int) string {
		newParams := url.Values{}
		for key, values := range queryParams {
			if key != "page" {
				for _, value := range values {
					newParams.Add(key, value)
				}
			}
		}
		newParams.Set("page", strconv.Itoa(pageNum))
		newParams.Set("limit", strconv.Itoa(limit))
		return fmt.Sprintf("%s://%s%s?%s", scheme, host, path, newParams.Encode())
	}

	links := models.PaginationLinks{
		Self: makeURL(page),
	}

	if page > 1 {
		links.Prev = makeURL(page - 1)
	}

	if page < totalPages {
		links.Next = makeURL(page + 1)
	}

	return links
}

func (ctrl *AdminOrderController) buildResponse(c *gin.Context, message string, data interface{}, page, limit, totalItems int) models.HATEOASResponse {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}

	if page > totalPages && totalPages > 0 {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	meta := models.PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}

	links := ctrl.generateLinks(c, page, limit, totalPages)

	return models.HATEOASResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
		Links:   links,
	}
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description Get all orders with pagination
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Param search query string false "Search by order number"
// @Success 200 {object} models.HATEOASResponse
// @Router /admin/orders [get]
func (ctrl *AdminOrderController) GetAllOrders(c *gin.Context) {
	page, limit := ctrl.getPaginationParams(c, 10)
	status := strings.TrimSpace(c.Query("status"))
	search := strings.TrimSpace(c.Query("search"))

	if status != "" && status != "All" && !models.OrderStatus(status).Valid() {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order status"})
		return
	}

	orders, total, err := ctrl.orders.FindAll(page, limit, status, search)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch orders"})
		return
	}

	c.JSON(200, ctrl.buildResponse(c, "Orders retrieved successfully", orders, page, limit, total))
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Description Get a single order with its items
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *AdminOrderController) GetOrderByID(c *gin.Context) {
	order, err := ctrl.orders.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch order"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved successfully", "data": order})
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Advance an order along Pending, Cooking, Completed, or cancel it
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "Status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/orders/{id}/status [patch]
func (ctrl *AdminOrderController) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	next := models.OrderStatus(req.Status)
	if !next.Valid() {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order status"})
		return
	}

	id := c.Param("id")
	if err := ctrl.orders.UpdateStatus(c.Request.Context(), id, next); err != nil {
		switch {
		case errors.Is(err, repositories.ErrOrderNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		case errors.Is(err, repositories.ErrInvalidTransition):
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to update order status"})
		}
		return
	}

	order, err := ctrl.orders.FindByID(id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch order"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order status updated successfully", "data": order})
}

// UpdatePaymentStatus godoc
// @Summary Update payment status
// @Description Mark an order Paid or Refunded
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body models.UpdatePaymentStatusRequest true "Payment Status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/orders/{id}/payment-status [patch]
func (ctrl *AdminOrderController) UpdatePaymentStatus(c *gin.Context) {
	var req models.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	next := models.PaymentStatus(req.PaymentStatus)
	if !next.Valid() {
		c.JSON(400, gin.H{"success": false, "message": "Invalid payment status"})
		return
	}

	id := c.Param("id")
	if err := ctrl.orders.UpdatePaymentStatus(c.Request.Context(), id, next); err != nil {
		switch {
		case errors.Is(err, repositories.ErrOrderNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		case errors.Is(err, repositories.ErrInvalidTransition):
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to update payment status"})
		}
		return
	}

	order, err := ctrl.orders.FindByID(id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch order"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Payment status updated successfully", "data": order})
}

// DeleteOrder godoc
// @Summary Delete order
// @Description Delete an order and its items
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [delete]
func (ctrl *AdminOrderController) DeleteOrder(c *gin.Context) {
	if err := ctrl.orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete order"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order deleted successfully"})
}

// GetDashboard godoc
// @Summary Dashboard statistics
// @Description Get revenue and order counts by status
// @Tags Admin - Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/dashboard [get]
func (ctrl *AdminOrderController) GetDashboard(c *gin.Context) {
	stats, err := ctrl.orders.GetStats()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch dashboard statistics"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Dashboard statistics retrieved successfully", "data": stats})
}
