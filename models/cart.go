package models

import "errors"

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

type CartLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

func (l CartLine) LineTotal() int {
	return l.Item.Price * l.Quantity
}

// Cart holds at most one line per menu item, in insertion order.
// All operations are in-memory; persistence is the session layer's job.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c *Cart) find(itemID string) int {
	for i := range c.Lines {
		if c.Lines[i].Item.ID == itemID {
			return i
		}
	}
	return -1
}

// AddItem increments the existing line for the item, or appends a new
// one. The item is snapshotted as-is, so later catalog changes do not
// affect lines already in the cart.
func (c *Cart) AddItem(item MenuItem, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if idx := c.find(item.ID); idx >= 0 {
		c.Lines[idx].Quantity += quantity
		return nil
	}

	c.Lines = append(c.Lines, CartLine{Item: item, Quantity: quantity})
	return nil
}

// UpdateQuantity sets the line's quantity. Quantities below 1 are
// ignored; removing a line takes an explicit RemoveItem call.
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	if quantity < 1 {
		return
	}

	if idx := c.find(itemID); idx >= 0 {
		c.Lines[idx].Quantity = quantity
	}
}

func (c *Cart) RemoveItem(itemID string) {
	if idx := c.find(itemID); idx >= 0 {
		c.Lines = append(c.Lines[:idx], c.Lines[idx+1:]...)
	}
}

// Subtotal is recomputed on every call, never cached.
func (c *Cart) Subtotal() int {
	total := 0
	for _, line := range c.Lines {
		total += line.LineTotal()
	}
	return total
}

func (c *Cart) Count() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) Clear() {
	c.Lines = nil
}
