package services

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-pdf/fpdf"

	"paypya-resto/models"
	"paypya-resto/utils"
)

// InvoiceService turns a placed order into its three presentations:
// the printable HTML view (data + template), the exported PDF, and the
// pre-filled WhatsApp drafts. All of them are pure transformations of
// the order plus the static business identity.
type InvoiceService struct {
	staffWhatsApp string
}

func NewInvoiceService(staffWhatsApp string) *InvoiceService {
	return &InvoiceService{staffWhatsApp: staffWhatsApp}
}

func (s *InvoiceService) PDFFileName(order *models.Order) string {
	return fmt.Sprintf("Invoice-%s.pdf", order.ID)
}

// WhatsAppLink wraps a message as a wa.me deep link to the staff
// contact. Opening it is the client's job and is fire-and-forget.
func (s *InvoiceService) WhatsAppLink(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.staffWhatsApp, url.QueryEscape(message))
}

// NewOrderMessage is the draft sent at checkout when the customer pays
// through WhatsApp.
func (s *InvoiceService) NewOrderMessage(order *models.Order) string {
	var b strings.Builder
	b.WriteString("*PESANAN BARU*\n")
	fmt.Fprintf(&b, "Nama: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "Meja: %s\n", order.TableNumber)
	fmt.Fprintf(&b, "No. Order: %s\n", order.OrderNumber)
	b.WriteString("Metode: WhatsApp Checkout\n")
	b.WriteString("----------------------------\n\n")

	for _, item := range order.Items {
		fmt.Fprintf(&b, "%dx %s - %s\n", item.Quantity, item.Name, utils.FormatIDR(item.LineTotal()))
	}

	b.WriteString("\n----------------------------\n")
	fmt.Fprintf(&b, "*Total: %s*", utils.FormatIDR(order.Total))
	b.WriteString("\n\nMohon segera diproses ya Kaka, Terima Kasih!")
	return b.String()
}

// ShareMessage is the itemized receipt summary shared from the invoice
// view.
func (s *InvoiceService) ShareMessage(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*INVOICE ORDER %s*\n", order.OrderNumber)
	fmt.Fprintf(&b, "Customer: %s\n", customerOrGuest(order))
	if order.TableNumber != "" {
		fmt.Fprintf(&b, "Meja: %s\n", order.TableNumber)
	}
	fmt.Fprintf(&b, "Tanggal: %s\n", order.CreatedAt.Format("02/01/2006"))
	fmt.Fprintf(&b, "Total: %s\n\n", utils.FormatIDR(order.Total))
	b.WriteString("Detail Pesanan:\n")

	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %dx %s (%s)\n", item.Quantity, item.Name, utils.FormatIDR(item.LineTotal()))
	}

	fmt.Fprintf(&b, "\nTerima kasih telah memesan di %s!", models.Business.Name)
	return b.String()
}

// RenderPDF builds the downloadable A4 invoice.
func (s *InvoiceService) RenderPDF(order *models.Order) ([]byte, error) {
	biz := models.Business

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", order.OrderNumber), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(120, 10, biz.Name)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 10, "INVOICE", "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(120, 5, biz.Address)
	pdf.CellFormat(0, 5, order.OrderNumber, "", 1, "R", false, 0, "")
	pdf.Cell(120, 5, biz.City)
	pdf.CellFormat(0, 5, "Date: "+order.CreatedAt.Format("2 January 2006 15:04"), "", 1, "R", false, 0, "")
	pdf.Cell(120, 5, biz.Email+" | "+biz.Phone)
	pdf.CellFormat(0, 5, "Status: "+string(order.Status), "", 1, "R", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.Cell(95, 6, "Billed To")
	pdf.CellFormat(0, 6, "Payment", "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(95, 6, customerOrGuest(order))
	pdf.CellFormat(0, 6, paymentLabel(order), "", 1, "R", false, 0, "")
	if order.TableNumber != "" {
		pdf.Cell(95, 6, "Table "+order.TableNumber)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(245, 240, 235)
	pdf.CellFormat(90, 8, "Item Description", "B", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "B", 0, "C", true, 0, "")
	pdf.CellFormat(40, 8, "Unit Price", "B", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Total", "B", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range order.Items {
		pdf.CellFormat(90, 8, item.Name, "B", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.Quantity), "B", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, utils.FormatIDR(item.PriceAtTime), "B", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, utils.FormatIDR(item.LineTotal()), "B", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(150, 7, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, utils.FormatIDR(order.Total), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(150, 9, "Grand Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(40, 9, utils.FormatIDR(order.Total), "T", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, fmt.Sprintf("Wifi: %s  |  Instagram: %s", biz.WifiPass, biz.Instagram), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "Thank you for dining with us!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func customerOrGuest(order *models.Order) string {
	if order.CustomerName == "" {
		return "Guest Customer"
	}
	return order.CustomerName
}

func paymentLabel(order *models.Order) string {
	label := "Pay at Counter"
	if order.PaymentMethod == models.PaymentMethodWhatsApp {
		label = "WhatsApp Checkout"
	}
	return fmt.Sprintf("%s (%s)", label, order.PaymentStatus)
}
