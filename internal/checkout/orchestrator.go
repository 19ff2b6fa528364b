// Package checkout runs the order submission pipeline: empty-cart
// check, form validation, snapshot assembly, remote submission and
// cart clearing on success.
package checkout

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sk-sazzad/tinystepsbd/internal/cart"
	"github.com/sk-sazzad/tinystepsbd/internal/domain"
	"github.com/sk-sazzad/tinystepsbd/internal/pricing"
	"github.com/sk-sazzad/tinystepsbd/pkg/errors"
)

// DefaultSubmitTimeout bounds one order submission attempt
const DefaultSubmitTimeout = 15 * time.Second

// OrderSubmitter is the order endpoint collaborator
type OrderSubmitter interface {
	CreateOrder(ctx context.Context, order domain.OrderRequest) (domain.OrderConfirmation, error)
}

// Orchestrator drives a checkout attempt through
// Idle -> Validating -> Submitting -> {Success, Failed}. Failed
// returns to Idle so the customer can fix the form and retry without
// losing the cart.
type Orchestrator struct {
	cart    *cart.Manager
	client  OrderSubmitter
	timeout time.Duration
	logger  *zap.Logger

	mu    sync.Mutex
	state domain.CheckoutState
}

// NewOrchestrator creates a checkout orchestrator. A non-positive
// timeout uses the default.
func NewOrchestrator(cartMgr *cart.Manager, client OrderSubmitter, timeout time.Duration, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = DefaultSubmitTimeout
	}
	return &Orchestrator{
		cart:    cartMgr,
		client:  client,
		timeout: timeout,
		logger:  logger,
		state:   domain.CheckoutStateIdle,
	}
}

// State reports the current checkout state
func (o *Orchestrator) State() domain.CheckoutState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) transition(next domain.CheckoutState) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.state.CanTransitionTo(next) {
		o.logger.Warn("Invalid checkout state transition",
			zap.String("from", string(o.state)),
			zap.String("to", string(next)))
		return
	}
	o.state = next
}

// Submit runs one checkout attempt. On success the cart is cleared
// (in memory and in the store) and the confirmation carries the order
// id and total; on any failure the cart and form remain untouched so
// the customer can resubmit.
func (o *Orchestrator) Submit(ctx context.Context, form domain.ShippingForm) (domain.OrderConfirmation, error) {
	o.transition(domain.CheckoutStateValidating)

	// Empty cart blocks submission before any network call
	if o.cart.IsEmpty() {
		o.fail()
		return domain.OrderConfirmation{}, &errors.ErrEmptyCart{}
	}

	if fields := ValidateForm(form); len(fields) > 0 {
		o.fail()
		return domain.OrderConfirmation{}, &errors.ErrValidation{Fields: fields}
	}

	order := BuildOrderRequest(o.cart.Items(), form)

	o.transition(domain.CheckoutStateSubmitting)
	submitCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	confirmation, err := o.client.CreateOrder(submitCtx, order)
	if err != nil {
		o.fail()
		return domain.OrderConfirmation{}, err
	}

	o.cart.Clear()
	o.transition(domain.CheckoutStateSuccess)
	o.logger.Info("Order placed",
		zap.String("order_id", confirmation.OrderID),
		zap.Int64("total_amount", confirmation.TotalAmount),
		zap.Bool("confirmed", confirmation.Confirmed))

	// A new cart may start immediately after a successful checkout
	o.reset()
	return confirmation, nil
}

// BuildOrderRequest assembles the immutable order snapshot from the
// cart items and the shipping form. A fresh snapshot is built on every
// submission; editing the form never mutates a previous one.
func BuildOrderRequest(items []domain.LineItem, form domain.ShippingForm) domain.OrderRequest {
	summary, _ := pricing.Summarize(items, form.DeliveryArea, form.CouponCode)

	products := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		products = append(products, domain.OrderItem{
			ProductID:   item.ID,
			ProductName: item.Name,
			Price:       item.UnitPrice,
			Quantity:    item.Quantity,
			Color:       item.Color,
			Image:       item.ImageURL,
		})
	}

	paymentMethod := form.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = domain.PaymentMethodCash
	}

	return domain.OrderRequest{
		CustomerName:  form.CustomerName,
		Phone:         form.Phone,
		Email:         form.Email,
		Address:       form.Address,
		DeliveryArea:  form.DeliveryArea,
		PaymentMethod: paymentMethod,
		SpecialNotes:  form.SpecialNotes,
		Products:      products,
		DeliveryFee:   summary.DeliveryFee,
		TotalAmount:   summary.Total,
	}
}

func (o *Orchestrator) fail() {
	o.transition(domain.CheckoutStateFailed)
	o.transition(domain.CheckoutStateIdle)
}

func (o *Orchestrator) reset() {
	o.mu.Lock()
	o.state = domain.CheckoutStateIdle
	o.mu.Unlock()
}
