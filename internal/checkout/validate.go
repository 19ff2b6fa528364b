package checkout

import (
	"regexp"
	"unicode/utf8"

	"github.com/sk-sazzad/tinystepsbd/internal/domain"
	"github.com/sk-sazzad/tinystepsbd/internal/pricing"
)

const (
	minNameLength    = 2
	minAddressLength = 10
)

// phoneRegex matches Bangladeshi mobile numbers, optionally prefixed
// with the country code (+88 or 88)
var phoneRegex = regexp.MustCompile(`^(?:\+?88)?01[3-9]\d{8}$`)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateForm checks every field and returns the full set of failures
// rather than stopping at the first one. An empty map means the form
// is valid.
func ValidateForm(form domain.ShippingForm) map[string]string {
	fields := make(map[string]string)

	if utf8.RuneCountInString(form.CustomerName) < minNameLength {
		fields["customer_name"] = "name must be at least 2 characters"
	}
	if !phoneRegex.MatchString(form.Phone) {
		fields["phone"] = "enter a valid mobile number (01XXXXXXXXX)"
	}
	if form.Email != "" && !emailRegex.MatchString(form.Email) {
		fields["email"] = "enter a valid email address"
	}
	if utf8.RuneCountInString(form.Address) < minAddressLength {
		fields["address"] = "enter a detailed address (at least 10 characters)"
	}
	if !form.DeliveryArea.IsValid() {
		fields["delivery_area"] = "select a delivery area"
	}
	if form.CouponCode != "" {
		if _, ok := pricing.CouponRate(form.CouponCode); !ok {
			fields["coupon_code"] = "unknown coupon code"
		}
	}

	return fields
}
