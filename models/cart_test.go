package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func menuItem(id, name string, price int) MenuItem {
	return MenuItem{ID: id, Name: name, Price: price, IsAvailable: true}
}

func TestCartAddItem(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantErr  error
	}{
		{name: "positive quantity", quantity: 2, wantErr: nil},
		{name: "quantity of one", quantity: 1, wantErr: nil},
		{name: "zero quantity", quantity: 0, wantErr: ErrInvalidQuantity},
		{name: "negative quantity", quantity: -3, wantErr: ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &Cart{}
			err := cart.AddItem(menuItem("p1", "Nasi Goreng", 35000), tt.quantity)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddItem() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil && !cart.IsEmpty() {
				t.Error("rejected add must leave the cart unchanged")
			}
		})
	}
}

func TestCartAddItemMergesExistingLine(t *testing.T) {
	cart := &Cart{}
	item := menuItem("p1", "Es Kopi Susu", 18000)

	if err := cart.AddItem(item, 1); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if err := cart.AddItem(item, 2); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	if len(cart.Lines) != 1 {
		t.Fatalf("got %d lines, want 1 line per item", len(cart.Lines))
	}
	if cart.Lines[0].Quantity != 3 {
		t.Errorf("got quantity %d, want 3", cart.Lines[0].Quantity)
	}
}

func TestCartPreservesInsertionOrder(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(menuItem("p1", "A", 1000), 1)
	cart.AddItem(menuItem("p2", "B", 2000), 1)
	cart.AddItem(menuItem("p3", "C", 3000), 1)
	cart.AddItem(menuItem("p1", "A", 1000), 5)

	want := []string{"p1", "p2", "p3"}
	for i, id := range want {
		if cart.Lines[i].Item.ID != id {
			t.Errorf("line %d = %s, want %s", i, cart.Lines[i].Item.ID, id)
		}
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		itemID   string
		quantity int
		want     int
	}{
		{name: "valid update", itemID: "p1", quantity: 5, want: 5},
		{name: "zero is ignored", itemID: "p1", quantity: 0, want: 2},
		{name: "negative is ignored", itemID: "p1", quantity: -1, want: 2},
		{name: "unknown item is a no-op", itemID: "nope", quantity: 9, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &Cart{}
			cart.AddItem(menuItem("p1", "Teh Tarik", 15000), 2)

			cart.UpdateQuantity(tt.itemID, tt.quantity)

			if got := cart.Lines[0].Quantity; got != tt.want {
				t.Errorf("quantity = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCartRemoveItem(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(menuItem("p1", "A", 1000), 1)
	cart.AddItem(menuItem("p2", "B", 2000), 2)

	cart.RemoveItem("p1")

	if len(cart.Lines) != 1 || cart.Lines[0].Item.ID != "p2" {
		t.Errorf("unexpected lines after remove: %+v", cart.Lines)
	}

	// Removing an absent item must not panic or change anything.
	cart.RemoveItem("p1")
	if len(cart.Lines) != 1 {
		t.Errorf("got %d lines, want 1", len(cart.Lines))
	}
}

func TestCartSubtotalAndCount(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(menuItem("p1", "Nasi Goreng", 35000), 2)
	cart.AddItem(menuItem("p2", "Es Kopi Susu", 18000), 3)

	if got := cart.Subtotal(); got != 2*35000+3*18000 {
		t.Errorf("Subtotal() = %d, want %d", got, 2*35000+3*18000)
	}
	if got := cart.Count(); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}

	cart.UpdateQuantity("p2", 1)
	if got := cart.Subtotal(); got != 2*35000+18000 {
		t.Errorf("Subtotal() after update = %d, want %d", got, 2*35000+18000)
	}
}

func TestCartClear(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(menuItem("p1", "A", 1000), 4)

	cart.Clear()

	if !cart.IsEmpty() {
		t.Error("Clear() must empty the cart")
	}
	if got := cart.Subtotal(); got != 0 {
		t.Errorf("Subtotal() = %d, want 0", got)
	}
}

func TestCartSurvivesSnapshotRoundTrip(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(menuItem("p1", "Nasi Goreng", 35000), 2)
	cart.AddItem(menuItem("p2", "Pisang Goreng", 20000), 1)

	raw, err := json.Marshal(cart)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	restored := &Cart{}
	if err := json.Unmarshal(raw, restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if restored.Subtotal() != cart.Subtotal() {
		t.Errorf("restored subtotal = %d, want %d", restored.Subtotal(), cart.Subtotal())
	}
	if restored.Count() != cart.Count() {
		t.Errorf("restored count = %d, want %d", restored.Count(), cart.Count())
	}
}
