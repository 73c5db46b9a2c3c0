package pricing

// Line is the minimal view of an order line the engine needs.
type Line struct {
	Price    int
	Quantity int
}

// Config holds the shipping rule as named configuration so the threshold and
// fee live in exactly one place.
type Config struct {
	FreeShippingThreshold int
	ShippingFee           int
}

var Default = Config{
	FreeShippingThreshold: 999,
	ShippingFee:           99,
}

type Breakdown struct {
	Subtotal int `json:"subtotal"`
	Shipping int `json:"shipping"`
	Total    int `json:"total"`
}

// Subtotal sums price*quantity over all lines. A zero quantity counts as 1.
func Subtotal(lines []Line) int {
	sum := 0
	for _, l := range lines {
		qty := l.Quantity
		if qty == 0 {
			qty = 1
		}
		sum += l.Price * qty
	}
	return sum
}

// Compute prices a set of lines. Shipping is free once the subtotal exceeds
// the configured threshold, otherwise the flat fee applies.
func (c Config) Compute(lines []Line) Breakdown {
	subtotal := Subtotal(lines)
	shipping := c.ShippingFee
	if subtotal > c.FreeShippingThreshold {
		shipping = 0
	}
	return Breakdown{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}
