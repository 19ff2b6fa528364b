package domain

// DeliveryArea is the geographic tier determining the delivery fee
type DeliveryArea string

const (
	// INSIDE_DHAKA - delivery within Dhaka metro
	DeliveryAreaInsideDhaka DeliveryArea = "inside_dhaka"
	// OUTSIDE_DHAKA - delivery to other district towns
	DeliveryAreaOutsideDhaka DeliveryArea = "outside_dhaka"
	// OUTSIDE_DIVISIONAL - delivery beyond divisional cities
	DeliveryAreaOutsideDivisional DeliveryArea = "outside_divisional"
)

// IsValid checks if the delivery area is a known tier
func (a DeliveryArea) IsValid() bool {
	switch a {
	case DeliveryAreaInsideDhaka, DeliveryAreaOutsideDhaka, DeliveryAreaOutsideDivisional:
		return true
	default:
		return false
	}
}

// PaymentMethodCash is the default payment method when the form leaves
// it blank (cash on delivery)
const PaymentMethodCash = "cash"

// CheckoutState tracks a checkout attempt through its pipeline
type CheckoutState string

const (
	CheckoutStateIdle       CheckoutState = "IDLE"
	CheckoutStateValidating CheckoutState = "VALIDATING"
	CheckoutStateSubmitting CheckoutState = "SUBMITTING"
	CheckoutStateSuccess    CheckoutState = "SUCCESS"
	CheckoutStateFailed     CheckoutState = "FAILED"
)

// CanTransitionTo checks if a checkout state transition is valid.
// Failed returns to Idle so the form stays editable; Success is
// terminal for that cart.
func (s CheckoutState) CanTransitionTo(next CheckoutState) bool {
	switch s {
	case CheckoutStateIdle:
		return next == CheckoutStateValidating
	case CheckoutStateValidating:
		return next == CheckoutStateSubmitting || next == CheckoutStateFailed
	case CheckoutStateSubmitting:
		return next == CheckoutStateSuccess || next == CheckoutStateFailed
	case CheckoutStateFailed:
		return next == CheckoutStateIdle || next == CheckoutStateValidating
	case CheckoutStateSuccess:
		return false
	default:
		return false
	}
}
