package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"paypya-resto/models"
	"paypya-resto/services"
)

type InvoiceController struct {
	history  *services.HistoryService
	invoices *services.InvoiceService
}

func NewInvoiceController(history *services.HistoryService, invoices *services.InvoiceService) *InvoiceController {
	return &InvoiceController{history: history, invoices: invoices}
}

func (ctrl *InvoiceController) resolveOrder(c *gin.Context) (*models.Order, bool) {
	deviceID := c.GetString("device_id")
	order, found := ctrl.history.FindByOrderNumber(c.Request.Context(), deviceID, c.Param("orderNumber"))
	if !found {
		c.JSON(404, gin.H{"success": false, "message": "Order not found in history"})
		return nil, false
	}
	return order, true
}

// @Summary Printable invoice
// @Description Render the invoice as a printable HTML document
// @Tags Invoice
// @Produce html
// @Param orderNumber path string true "Order number"
// @Success 200 {string} string "HTML invoice"
// @Failure 404 {object} models.ErrorResponse
// @Router /invoice/{orderNumber} [get]
func (ctrl *InvoiceController) GetInvoice(c *gin.Context) {
	order, ok := ctrl.resolveOrder(c)
	if !ok {
		return
	}

	c.HTML(200, "invoice.html", gin.H{
		"Order":     order,
		"Business":  models.Business,
		"ShareLink": ctrl.invoices.WhatsAppLink(ctrl.invoices.ShareMessage(order)),
	})
}

// @Summary Download invoice PDF
// @Description Export the invoice as a PDF file named after the order
// @Tags Invoice
// @Produce application/pdf
// @Param orderNumber path string true "Order number"
// @Success 200 {file} file "PDF invoice"
// @Failure 404 {object} models.ErrorResponse
// @Router /invoice/{orderNumber}/pdf [get]
func (ctrl *InvoiceController) DownloadPDF(c *gin.Context) {
	order, ok := ctrl.resolveOrder(c)
	if !ok {
		return
	}

	pdfBytes, err := ctrl.invoices.RenderPDF(order)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to generate invoice PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ctrl.invoices.PDFFileName(order)))
	c.Data(200, "application/pdf", pdfBytes)
}

// @Summary Share invoice
// @Description Get the pre-filled WhatsApp deep link for this invoice
// @Tags Invoice
// @Produce json
// @Param orderNumber path string true "Order number"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /invoice/{orderNumber}/share [get]
func (ctrl *InvoiceController) Share(c *gin.Context) {
	order, ok := ctrl.resolveOrder(c)
	if !ok {
		return
	}

	message := ctrl.invoices.ShareMessage(order)
	c.JSON(200, gin.H{
		"success": true,
		"message": "Share link generated",
		"data": gin.H{
			"text":          message,
			"whatsapp_link": ctrl.invoices.WhatsAppLink(message),
		},
	})
}
