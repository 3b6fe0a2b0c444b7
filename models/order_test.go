package models

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{name: "pending to cooking", from: OrderStatusPending, to: OrderStatusCooking, want: true},
		{name: "pending to cancelled", from: OrderStatusPending, to: OrderStatusCancelled, want: true},
		{name: "pending skips cooking", from: OrderStatusPending, to: OrderStatusCompleted, want: false},
		{name: "cooking to completed", from: OrderStatusCooking, to: OrderStatusCompleted, want: true},
		{name: "cooking to cancelled", from: OrderStatusCooking, to: OrderStatusCancelled, want: true},
		{name: "cooking back to pending", from: OrderStatusCooking, to: OrderStatusPending, want: false},
		{name: "completed is terminal", from: OrderStatusCompleted, to: OrderStatusCancelled, want: false},
		{name: "cancelled is terminal", from: OrderStatusCancelled, to: OrderStatusPending, want: false},
		{name: "cancelled cannot resume", from: OrderStatusCancelled, to: OrderStatusCooking, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusCooking, OrderStatusCompleted, OrderStatusCancelled} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []OrderStatus{"", "pending", "Done", "Preparing"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestPaymentStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from PaymentStatus
		to   PaymentStatus
		want bool
	}{
		{name: "unpaid to paid", from: PaymentStatusUnpaid, to: PaymentStatusPaid, want: true},
		{name: "unpaid cannot refund", from: PaymentStatusUnpaid, to: PaymentStatusRefunded, want: false},
		{name: "paid to refunded", from: PaymentStatusPaid, to: PaymentStatusRefunded, want: true},
		{name: "paid back to unpaid", from: PaymentStatusPaid, to: PaymentStatusUnpaid, want: false},
		{name: "refunded is terminal", from: PaymentStatusRefunded, to: PaymentStatusPaid, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestPaymentMethodValid(t *testing.T) {
	tests := []struct {
		method PaymentMethod
		want   bool
	}{
		{method: PaymentMethodCashier, want: true},
		{method: PaymentMethodWhatsApp, want: true},
		{method: "", want: false},
		{method: "cash", want: false},
		{method: "Cashier", want: false},
	}

	for _, tt := range tests {
		if got := tt.method.Valid(); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.method, got, tt.want)
		}
	}
}
