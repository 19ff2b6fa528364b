package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sk-sazzad/tinystepsbd/internal/checkout"
	"github.com/sk-sazzad/tinystepsbd/internal/domain"
)

func validForm() domain.ShippingForm {
	return domain.ShippingForm{
		CustomerName: "Ayesha Rahman",
		Phone:        "01712345678",
		Email:        "ayesha@example.com",
		Address:      "House 12, Road 5, Dhanmondi, Dhaka",
		DeliveryArea: domain.DeliveryAreaInsideDhaka,
	}
}

func TestValidateForm(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*domain.ShippingForm)
		wantFields []string
	}{
		{
			name:   "valid form",
			mutate: func(f *domain.ShippingForm) {},
		},
		{
			name:       "name too short",
			mutate:     func(f *domain.ShippingForm) { f.CustomerName = "A" },
			wantFields: []string{"customer_name"},
		},
		{
			name:       "phone missing a digit",
			mutate:     func(f *domain.ShippingForm) { f.Phone = "0171234567" },
			wantFields: []string{"phone"},
		},
		{
			name:       "phone with wrong operator prefix",
			mutate:     func(f *domain.ShippingForm) { f.Phone = "01212345678" },
			wantFields: []string{"phone"},
		},
		{
			name:   "phone with country code",
			mutate: func(f *domain.ShippingForm) { f.Phone = "+8801712345678" },
		},
		{
			name:   "phone with bare country code",
			mutate: func(f *domain.ShippingForm) { f.Phone = "8801712345678" },
		},
		{
			name:       "malformed email",
			mutate:     func(f *domain.ShippingForm) { f.Email = "not-an-email" },
			wantFields: []string{"email"},
		},
		{
			name:   "empty email is allowed",
			mutate: func(f *domain.ShippingForm) { f.Email = "" },
		},
		{
			name:       "address too short",
			mutate:     func(f *domain.ShippingForm) { f.Address = "Dhaka" },
			wantFields: []string{"address"},
		},
		{
			name:       "unknown delivery area",
			mutate:     func(f *domain.ShippingForm) { f.DeliveryArea = "moon" },
			wantFields: []string{"delivery_area"},
		},
		{
			name:       "unknown coupon code",
			mutate:     func(f *domain.ShippingForm) { f.CouponCode = "BOGUS" },
			wantFields: []string{"coupon_code"},
		},
		{
			name:   "known coupon code",
			mutate: func(f *domain.ShippingForm) { f.CouponCode = "TINY10" },
		},
		{
			name: "all failures reported together",
			mutate: func(f *domain.ShippingForm) {
				f.CustomerName = ""
				f.Phone = "123"
				f.Address = "x"
				f.DeliveryArea = ""
			},
			wantFields: []string{"customer_name", "phone", "address", "delivery_area"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			fields := checkout.ValidateForm(form)

			assert.Len(t, fields, len(tt.wantFields))
			for _, name := range tt.wantFields {
				assert.Contains(t, fields, name)
			}
		})
	}
}
