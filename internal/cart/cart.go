// Package cart holds the client-side shopping cart: an ordered collection of
// line items merged by (id, size, color), with optional local persistence so
// the cart survives a restart of the client process.
package cart

import (
	"encoding/json"
	"os"

	"github.com/zeromade/storefront/internal/models"
	"github.com/zeromade/storefront/internal/pricing"
)

type Cart struct {
	path  string
	items []models.LineItem
}

// New returns an empty in-memory cart.
func New() *Cart {
	return &Cart{}
}

// Load restores a cart persisted at path. Corrupt, unreadable or non-array
// state is discarded and treated as an empty cart, never an error.
func Load(path string) *Cart {
	c := &Cart{path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	var items []models.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return c
	}
	for _, it := range items {
		if it.ID != "" {
			c.items = append(c.items, it)
		}
	}
	return c
}

// AddItem merges into an existing entry with the same (id, size, color),
// otherwise appends. Entry order is preserved.
func (c *Cart) AddItem(item models.LineItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].ID == item.ID && c.items[i].Size == item.Size && c.items[i].Color == item.Color {
			c.items[i].Quantity += quantity
			c.save()
			return
		}
	}
	item.Quantity = quantity
	c.items = append(c.items, item)
	c.save()
}

// RemoveItem drops every entry with the given id, regardless of size or
// color. This matches the storefront's observed behavior: removing one
// variant removes all variants of that product.
func (c *Cart) RemoveItem(id string) {
	kept := c.items[:0]
	for _, it := range c.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.save()
}

// UpdateQuantity sets the quantity for every entry with the given id,
// clamped to a floor of 1, then drops any entry left non-positive.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = max(1, quantity)
		}
	}
	kept := c.items[:0]
	for _, it := range c.items {
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.save()
}

func (c *Cart) Clear() {
	c.items = nil
	c.save()
}

// Items returns a snapshot copy, safe to hand to order placement.
func (c *Cart) Items() []models.LineItem {
	out := make([]models.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Subtotal() int {
	return pricing.Subtotal(c.Lines())
}

func (c *Cart) Lines() []pricing.Line {
	lines := make([]pricing.Line, len(c.items))
	for i, it := range c.items {
		lines[i] = pricing.Line{Price: it.Price, Quantity: it.Quantity}
	}
	return lines
}

// save persists after every mutation. Storage errors are non-fatal: the
// in-memory cart stays authoritative for the session.
func (c *Cart) save() {
	if c.path == "" {
		return
	}
	items := c.items
	if items == nil {
		items = []models.LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = os.WriteFile(c.path, data, 0o644)
}
