// Package pricing computes subtotal, delivery fee, discount and grand
// total from a cart snapshot. Every function is pure: handlers call
// these on each render without side effects.
package pricing

import (
	"math"

	"github.com/sk-sazzad/tinystepsbd/internal/domain"
	"github.com/sk-sazzad/tinystepsbd/pkg/errors"
)

// FreeDeliveryThreshold is the subtotal (BDT) at which delivery
// becomes free regardless of area
const FreeDeliveryThreshold = 2000

// deliveryRates maps each area tier to its flat fee in BDT
var deliveryRates = map[domain.DeliveryArea]int64{
	domain.DeliveryAreaInsideDhaka:       80,
	domain.DeliveryAreaOutsideDhaka:      150,
	domain.DeliveryAreaOutsideDivisional: 200,
}

// coupons maps code to discount rate on the subtotal
var coupons = map[string]float64{
	"TINY10":    0.10,
	"TINYSTEP5": 0.05,
	"WELCOME15": 0.15,
}

// Subtotal sums unit price times quantity over all line items
func Subtotal(items []domain.LineItem) int64 {
	var sum int64
	for _, item := range items {
		sum += item.LineTotal()
	}
	return sum
}

// DeliveryFee returns the fee for the area, 0 at or above the
// free-delivery threshold. An unrecognized area is charged the
// outside_dhaka rate.
func DeliveryFee(area domain.DeliveryArea, subtotal int64) int64 {
	if subtotal >= FreeDeliveryThreshold {
		return 0
	}
	if fee, ok := deliveryRates[area]; ok {
		return fee
	}
	return deliveryRates[domain.DeliveryAreaOutsideDhaka]
}

// Discount returns round(subtotal * rate) for a known coupon code. An
// empty code means no coupon was applied and discounts nothing; an
// unknown code discounts nothing and reports ErrUnknownCoupon.
func Discount(subtotal int64, code string) (int64, error) {
	if code == "" {
		return 0, nil
	}
	rate, ok := coupons[code]
	if !ok {
		return 0, &errors.ErrUnknownCoupon{Code: code}
	}
	return int64(math.Round(float64(subtotal) * rate)), nil
}

// CouponRate reports the discount rate for a code, false when unknown
func CouponRate(code string) (float64, bool) {
	rate, ok := coupons[code]
	return rate, ok
}

// Total is subtotal plus delivery minus discount, clamped to zero
func Total(subtotal, deliveryFee, discount int64) int64 {
	total := subtotal + deliveryFee - discount
	if total < 0 {
		return 0
	}
	return total
}

// Summary is the order-summary box: every figure recomputed from the
// line items, never carried over from a previous mutation.
type Summary struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"delivery_fee"`
	Discount    int64 `json:"discount"`
	Total       int64 `json:"total"`
}

// Summarize computes the full summary for a cart snapshot. The error
// is non-nil only for an unknown coupon code; the returned summary is
// still usable with a zero discount in that case.
func Summarize(items []domain.LineItem, area domain.DeliveryArea, couponCode string) (Summary, error) {
	subtotal := Subtotal(items)
	fee := DeliveryFee(area, subtotal)
	discount, err := Discount(subtotal, couponCode)
	return Summary{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Discount:    discount,
		Total:       Total(subtotal, fee, discount),
	}, err
}
