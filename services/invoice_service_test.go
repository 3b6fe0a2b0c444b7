package services

import (
	"bytes"
	"net/url"
	"strings"
	"testing"
	"time"

	"paypya-resto/models"
)

func invoiceOrder() *models.Order {
	return &models.Order{
		ID:            "7d5c1f2a-9f44-4d1b-8a60-0c2f3cfb2a11",
		OrderNumber:   "ORD-07032026-K4T9ZQ",
		CustomerName:  "Budi Santoso",
		TableNumber:   "4",
		Total:         88000,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
		PaymentMethod: models.PaymentMethodWhatsApp,
		Items: []models.OrderLine{
			{Name: "Nasi Goreng PAYPYA", Quantity: 2, PriceAtTime: 35000},
			{Name: "Es Kopi Susu PAYPYA", Quantity: 1, PriceAtTime: 18000},
		},
		CreatedAt: time.Date(2026, time.March, 7, 14, 30, 0, 0, time.UTC),
	}
}

func TestPDFFileName(t *testing.T) {
	svc := NewInvoiceService("6282324093711")
	order := invoiceOrder()

	want := "Invoice-7d5c1f2a-9f44-4d1b-8a60-0c2f3cfb2a11.pdf"
	if got := svc.PDFFileName(order); got != want {
		t.Errorf("PDFFileName() = %q, want %q", got, want)
	}

	// Same order, same name: the download is deterministic.
	if first, second := svc.PDFFileName(order), svc.PDFFileName(order); first != second {
		t.Errorf("PDFFileName() not deterministic: %q vs %q", first, second)
	}
}

func TestWhatsAppLink(t *testing.T) {
	svc := NewInvoiceService("6282324093711")

	link := svc.WhatsAppLink("*PESANAN BARU*\nNama: Budi & Sari")

	if !strings.HasPrefix(link, "https://wa.me/6282324093711?text=") {
		t.Fatalf("WhatsAppLink() = %q", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if got := parsed.Query().Get("text"); got != "*PESANAN BARU*\nNama: Budi & Sari" {
		t.Errorf("decoded text = %q, message not preserved through encoding", got)
	}
}

func TestNewOrderMessage(t *testing.T) {
	svc := NewInvoiceService("6282324093711")
	msg := svc.NewOrderMessage(invoiceOrder())

	for _, want := range []string{
		"*PESANAN BARU*",
		"Nama: Budi Santoso",
		"Meja: 4",
		"No. Order: ORD-07032026-K4T9ZQ",
		"2x Nasi Goreng PAYPYA - Rp 70.000",
		"1x Es Kopi Susu PAYPYA - Rp 18.000",
		"*Total: Rp 88.000*",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("NewOrderMessage() missing %q\nmessage:\n%s", want, msg)
		}
	}
}

func TestShareMessage(t *testing.T) {
	svc := NewInvoiceService("6282324093711")
	msg := svc.ShareMessage(invoiceOrder())

	for _, want := range []string{
		"*INVOICE ORDER ORD-07032026-K4T9ZQ*",
		"Customer: Budi Santoso",
		"Meja: 4",
		"Tanggal: 07/03/2026",
		"Total: Rp 88.000",
		"- 2x Nasi Goreng PAYPYA (Rp 70.000)",
		"Terima kasih telah memesan di PAYPYA Cafe & Resto!",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("ShareMessage() missing %q\nmessage:\n%s", want, msg)
		}
	}
}

func TestShareMessageGuestFallback(t *testing.T) {
	svc := NewInvoiceService("6282324093711")
	order := invoiceOrder()
	order.CustomerName = ""

	if msg := svc.ShareMessage(order); !strings.Contains(msg, "Customer: Guest Customer") {
		t.Errorf("ShareMessage() missing guest fallback:\n%s", msg)
	}
}

func TestRenderPDF(t *testing.T) {
	svc := NewInvoiceService("6282324093711")

	raw, err := svc.RenderPDF(invoiceOrder())
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("RenderPDF() returned empty output")
	}
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header: %q", raw[:4])
	}
}
