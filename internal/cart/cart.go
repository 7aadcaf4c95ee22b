// Package cart implements the session cart state machine. A cart is a
// mapping from product id to one line; the transition methods are its only
// mutation surface. Invalid input (unknown id, depleted stock) degrades to
// a no-op, never to an error.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/ekarimov/restoran/internal/models"
	"github.com/ekarimov/restoran/internal/pricing"
)

type Line struct {
	ProductID uint            `json:"product_id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"price"`
	Discount  float64         `json:"discount"`
	Stock     uint            `json:"stock"`
	Quantity  uint            `json:"quantity"`
}

type Cart struct {
	lines []Line
}

func New(lines []Line) *Cart {
	c := &Cart{lines: make([]Line, len(lines))}
	copy(c.lines, lines)
	return c
}

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) find(productID uint) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem inserts a new line with quantity 1, copying price, discount and
// stock from the product at this instant. If the line already exists the
// quantity is incremented, bounded by the product's current stock. Products
// without stock are not added.
func (c *Cart) AddItem(p models.Product) {
	if p.Stock == 0 {
		return
	}
	if i := c.find(p.ID); i >= 0 {
		c.lines[i].Stock = p.Stock
		if c.lines[i].Quantity < p.Stock {
			c.lines[i].Quantity++
		}
		return
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Title:     p.Title,
		UnitPrice: p.Price,
		Discount:  p.Discount,
		Stock:     p.Stock,
		Quantity:  1,
	})
}

// IncreaseQuantity raises the line's quantity by 1 while it is below the
// stock bound. At the bound the call is a silent no-op.
func (c *Cart) IncreaseQuantity(productID uint) {
	i := c.find(productID)
	if i < 0 {
		return
	}
	if c.lines[i].Quantity < c.lines[i].Stock {
		c.lines[i].Quantity++
	}
}

// DecreaseQuantity lowers the line's quantity by 1. A line never stores a
// zero quantity; at 1 the line is removed instead.
func (c *Cart) DecreaseQuantity(productID uint) {
	i := c.find(productID)
	if i < 0 {
		return
	}
	if c.lines[i].Quantity <= 1 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return
	}
	c.lines[i].Quantity--
}

func (c *Cart) RemoveItem(productID uint) {
	if i := c.find(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) TotalItems() uint {
	var n uint
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) TotalPrice() decimal.Decimal {
	return pricing.Total(c.pricingLines())
}

func (c *Cart) TotalSavings() decimal.Decimal {
	return pricing.TotalSavings(c.pricingLines())
}

func (c *Cart) pricingLines() []pricing.Line {
	out := make([]pricing.Line, len(c.lines))
	for i, l := range c.lines {
		out[i] = pricing.Line{UnitPrice: l.UnitPrice, Discount: l.Discount, Quantity: l.Quantity}
	}
	return out
}
