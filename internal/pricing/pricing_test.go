package pricing_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sk-sazzad/tinystepsbd/internal/domain"
	"github.com/sk-sazzad/tinystepsbd/internal/pricing"
	apperrors "github.com/sk-sazzad/tinystepsbd/pkg/errors"
)

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.LineItem
		want  int64
	}{
		{
			name:  "empty cart",
			items: nil,
			want:  0,
		},
		{
			name: "single item",
			items: []domain.LineItem{
				{ID: "P1", UnitPrice: 500, Quantity: 1},
			},
			want: 500,
		},
		{
			name: "multiple items and quantities",
			items: []domain.LineItem{
				{ID: "P1", UnitPrice: 500, Quantity: 2},
				{ID: "P2", UnitPrice: 850, Quantity: 1},
				{ID: "P3", UnitPrice: 120, Quantity: 3},
			},
			want: 500*2 + 850 + 120*3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.Subtotal(tt.items)
			assert.Equal(t, tt.want, got)

			// Repeated calls with no mutation return the same value
			assert.Equal(t, got, pricing.Subtotal(tt.items))
		})
	}
}

func TestSubtotal_MatchesSumOverRandomCart(t *testing.T) {
	items := make([]domain.LineItem, 0, 20)
	var want int64
	for i := 0; i < 20; i++ {
		price := int64(gofakeit.Number(1, 5000))
		qty := gofakeit.Number(1, 10)
		items = append(items, domain.LineItem{
			ID:        gofakeit.UUID(),
			UnitPrice: price,
			Quantity:  qty,
		})
		want += price * int64(qty)
	}

	assert.Equal(t, want, pricing.Subtotal(items))
}

func TestDeliveryFee(t *testing.T) {
	tests := []struct {
		name     string
		area     domain.DeliveryArea
		subtotal int64
		want     int64
	}{
		{name: "inside dhaka", area: domain.DeliveryAreaInsideDhaka, subtotal: 500, want: 80},
		{name: "outside dhaka", area: domain.DeliveryAreaOutsideDhaka, subtotal: 1800, want: 150},
		{name: "outside divisional", area: domain.DeliveryAreaOutsideDivisional, subtotal: 500, want: 200},
		{name: "unknown area charged outside dhaka rate", area: "mars", subtotal: 500, want: 150},
		{name: "free delivery at threshold", area: domain.DeliveryAreaOutsideDhaka, subtotal: 2000, want: 0},
		{name: "free delivery above threshold", area: domain.DeliveryAreaOutsideDivisional, subtotal: 2500, want: 0},
		{name: "just below threshold", area: domain.DeliveryAreaOutsideDhaka, subtotal: 1999, want: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.DeliveryFee(tt.area, tt.subtotal))
		})
	}
}

func TestDiscount(t *testing.T) {
	tests := []struct {
		name      string
		subtotal  int64
		code      string
		want      int64
		wantError bool
	}{
		{name: "no coupon applied", subtotal: 1000, code: "", want: 0},
		{name: "WELCOME15 on 1000", subtotal: 1000, code: "WELCOME15", want: 150},
		{name: "TINY10 on 999 rounds", subtotal: 999, code: "TINY10", want: 100},
		{name: "TINYSTEP5 on 1000", subtotal: 1000, code: "TINYSTEP5", want: 50},
		{name: "unknown code", subtotal: 1000, code: "NOPE", want: 0, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.Discount(tt.subtotal, tt.code)
			assert.Equal(t, tt.want, got)
			if tt.wantError {
				var unknownErr *apperrors.ErrUnknownCoupon
				require.ErrorAs(t, err, &unknownErr)
				assert.Equal(t, tt.code, unknownErr.Code)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTotal(t *testing.T) {
	assert.Equal(t, int64(1000), pricing.Total(1000, 150, 150))
	assert.Equal(t, int64(0), pricing.Total(100, 0, 500), "total clamps at zero")
}

func TestSummarize(t *testing.T) {
	items := []domain.LineItem{
		{ID: "P1", UnitPrice: 500, Quantity: 2}, // subtotal 1000
	}

	summary, err := pricing.Summarize(items, domain.DeliveryAreaOutsideDhaka, "WELCOME15")
	require.NoError(t, err)

	assert.Equal(t, pricing.Summary{
		Subtotal:    1000,
		DeliveryFee: 150,
		Discount:    150,
		Total:       1000,
	}, summary)
}

func TestSummarize_UnknownCouponStillUsable(t *testing.T) {
	items := []domain.LineItem{{ID: "P1", UnitPrice: 2000, Quantity: 1}}

	summary, err := pricing.Summarize(items, domain.DeliveryAreaInsideDhaka, "BOGUS")
	require.Error(t, err)

	// Free delivery threshold reached, discount zero
	assert.Equal(t, pricing.Summary{Subtotal: 2000, DeliveryFee: 0, Discount: 0, Total: 2000}, summary)
}
