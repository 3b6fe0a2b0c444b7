package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"paypya-resto/models"
	"paypya-resto/utils"
)

var (
	ErrValidation = errors.New("validation failed")

	ErrEmptyCart            = fmt.Errorf("%w: cart is empty", ErrValidation)
	ErrCustomerNameRequired = fmt.Errorf("%w: customer name is required", ErrValidation)
	ErrTableNumberRequired  = fmt.Errorf("%w: table number is required", ErrValidation)
	ErrInvalidPaymentMethod = fmt.Errorf("%w: invalid payment method", ErrValidation)
)

// OrderCreator is the slice of the order repository the checkout
// workflow needs.
type OrderCreator interface {
	CreateOrder(ctx context.Context, order *models.Order) error
}

type CheckoutService struct {
	orders   OrderCreator
	carts    *CartService
	history  *HistoryService
	invoices *InvoiceService
	email    *models.EmailService
}

func NewCheckoutService(orders OrderCreator, carts *CartService, history *HistoryService,
	invoices *InvoiceService, email *models.EmailService) *CheckoutService {
	return &CheckoutService{
		orders:   orders,
		carts:    carts,
		history:  history,
		invoices: invoices,
		email:    email,
	}
}

// Submit runs the order submission workflow: local validation, order
// number assignment, atomic persistence, then cart clearing, history
// recording and best-effort post-commit side effects. On any
// persistence failure the cart is left intact so the customer can
// simply resubmit.
func (s *CheckoutService) Submit(ctx context.Context, deviceID string, req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	cart := s.carts.Load(ctx, deviceID)
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	customerName := strings.TrimSpace(req.CustomerName)
	tableNumber := strings.TrimSpace(req.TableNumber)
	if customerName == "" {
		return nil, ErrCustomerNameRequired
	}
	if tableNumber == "" {
		return nil, ErrTableNumberRequired
	}

	method := models.PaymentMethod(req.PaymentMethod)
	if method == "" {
		method = models.PaymentMethodCashier
	}
	if !method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	order := &models.Order{
		OrderNumber:   utils.GenerateOrderNumber(time.Now()),
		CustomerName:  customerName,
		TableNumber:   tableNumber,
		Total:         cart.Subtotal(),
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
		PaymentMethod: method,
	}
	for _, line := range cart.Lines {
		order.Items = append(order.Items, models.OrderLine{
			ProductID:   line.Item.ID,
			Name:        line.Item.Name,
			Description: line.Item.Description,
			ImageURL:    line.Item.ImageURL,
			Quantity:    line.Quantity,
			PriceAtTime: line.Item.Price,
		})
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	// Order is committed from here on. Nothing below may fail the
	// submission; problems are logged and the confirmation returned.
	cart.Clear()
	if err := s.carts.Save(ctx, deviceID, cart); err != nil {
		log.Printf("failed to persist cleared cart for device %s: %v", deviceID, err)
	}

	if err := s.history.Record(ctx, deviceID, *order); err != nil {
		log.Printf("failed to record order %s in device history: %v", order.OrderNumber, err)
	}

	resp := &models.CheckoutResponse{
		Order:      *order,
		InvoiceURL: "/invoice/" + order.OrderNumber,
	}
	if method == models.PaymentMethodWhatsApp {
		resp.WhatsAppLink = s.invoices.WhatsAppLink(s.invoices.NewOrderMessage(order))
	}

	if req.Email != "" && s.email != nil {
		go func(toEmail string, confirmed models.Order) {
			if err := s.email.SendOrderConfirmationEmail(toEmail, &confirmed); err != nil {
				log.Printf("failed to send confirmation email for order %s: %v", confirmed.OrderNumber, err)
			}
		}(req.Email, *order)
	}

	return resp, nil
}
