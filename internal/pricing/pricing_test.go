package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cfg   Config
		lines []Line
		want  Breakdown
	}{
		{
			name:  "empty order ships at flat fee",
			cfg:   Default,
			lines: nil,
			want:  Breakdown{Subtotal: 0, Shipping: 99, Total: 99},
		},
		{
			name:  "subtotal above threshold ships free",
			cfg:   Default,
			lines: []Line{{Price: 1000, Quantity: 2}},
			want:  Breakdown{Subtotal: 2000, Shipping: 0, Total: 2000},
		},
		{
			name:  "subtotal at threshold still pays shipping",
			cfg:   Default,
			lines: []Line{{Price: 999, Quantity: 1}},
			want:  Breakdown{Subtotal: 999, Shipping: 99, Total: 1098},
		},
		{
			name:  "zero quantity counts as one",
			cfg:   Default,
			lines: []Line{{Price: 500}},
			want:  Breakdown{Subtotal: 500, Shipping: 99, Total: 599},
		},
		{
			name:  "missing price counts as zero",
			cfg:   Default,
			lines: []Line{{Quantity: 3}},
			want:  Breakdown{Subtotal: 0, Shipping: 99, Total: 99},
		},
		{
			name:  "custom threshold and fee",
			cfg:   Config{FreeShippingThreshold: 2000, ShippingFee: 50},
			lines: []Line{{Price: 1500, Quantity: 1}},
			want:  Breakdown{Subtotal: 1500, Shipping: 50, Total: 1550},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.Compute(tt.lines))
		})
	}
}

func TestSubtotal_SumsAllLines(t *testing.T) {
	t.Parallel()

	lines := []Line{
		{Price: 100, Quantity: 2},
		{Price: 250, Quantity: 1},
		{Price: 10, Quantity: 10},
	}
	assert.Equal(t, 550, Subtotal(lines))
}
