package checkout_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sk-sazzad/tinystepsbd/internal/cart"
	"github.com/sk-sazzad/tinystepsbd/internal/checkout"
	"github.com/sk-sazzad/tinystepsbd/internal/domain"
	"github.com/sk-sazzad/tinystepsbd/internal/orders"
	"github.com/sk-sazzad/tinystepsbd/internal/store"
	apperrors "github.com/sk-sazzad/tinystepsbd/pkg/errors"
)

// fakeSubmitter records calls and plays back a scripted outcome
type fakeSubmitter struct {
	calls        int
	lastOrder    domain.OrderRequest
	confirmation domain.OrderConfirmation
	err          error
}

func (f *fakeSubmitter) CreateOrder(ctx context.Context, order domain.OrderRequest) (domain.OrderConfirmation, error) {
	f.calls++
	f.lastOrder = order
	if f.err != nil {
		return domain.OrderConfirmation{}, f.err
	}
	return f.confirmation, nil
}

type fixedCatalog struct{}

func (fixedCatalog) Product(id string) (domain.Product, bool) {
	products := map[string]domain.Product{
		"TSB_001": {ID: "TSB_001", Name: "Cotton Romper", Price: 550, ImageURL: "assets/images/romper.jpg"},
		"TSB_002": {ID: "TSB_002", Name: "Baby Blanket", Price: 1200, ImageURL: "assets/images/blanket.jpg"},
	}
	p, ok := products[id]
	return p, ok
}

func newTestCart(t *testing.T) *cart.Manager {
	t.Helper()
	return cart.NewManager(store.NewMemoryStore(), fixedCatalog{}, nil)
}

func TestOrchestrator_Submit_Success(t *testing.T) {
	cartMgr := newTestCart(t)
	require.NoError(t, cartMgr.AddItem("TSB_001", 2, "blue", "0-3m"))

	submitter := &fakeSubmitter{
		confirmation: domain.OrderConfirmation{OrderID: "TS-2026-0001", TotalAmount: 1180, Confirmed: true},
	}
	orch := checkout.NewOrchestrator(cartMgr, submitter, time.Second, nil)

	confirmation, err := orch.Submit(context.Background(), validForm())
	require.NoError(t, err)

	assert.Equal(t, "TS-2026-0001", confirmation.OrderID)
	assert.True(t, confirmation.Confirmed)
	assert.True(t, cartMgr.IsEmpty(), "successful checkout clears the cart")
	assert.Equal(t, domain.CheckoutStateIdle, orch.State(), "ready for the next cart")

	// Submitted snapshot carries the cart and computed charges
	assert.Equal(t, 1, submitter.calls)
	assert.Equal(t, int64(80), submitter.lastOrder.DeliveryFee)
	assert.Equal(t, int64(1180), submitter.lastOrder.TotalAmount)
	require.Len(t, submitter.lastOrder.Products, 1)
	assert.Equal(t, "TSB_001", submitter.lastOrder.Products[0].ProductID)
	assert.Equal(t, 2, submitter.lastOrder.Products[0].Quantity)
}

func TestOrchestrator_Submit_EmptyCart(t *testing.T) {
	submitter := &fakeSubmitter{}
	orch := checkout.NewOrchestrator(newTestCart(t), submitter, time.Second, nil)

	_, err := orch.Submit(context.Background(), validForm())

	var emptyErr *apperrors.ErrEmptyCart
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, 0, submitter.calls, "empty cart must not reach the network")
	assert.Equal(t, domain.CheckoutStateIdle, orch.State())
}

func TestOrchestrator_Submit_InvalidForm(t *testing.T) {
	cartMgr := newTestCart(t)
	require.NoError(t, cartMgr.AddItem("TSB_001", 1, "", ""))

	submitter := &fakeSubmitter{}
	orch := checkout.NewOrchestrator(cartMgr, submitter, time.Second, nil)

	form := validForm()
	form.Phone = "0171234567" // ten digits, one short

	_, err := orch.Submit(context.Background(), form)

	var validationErr *apperrors.ErrValidation
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "phone")
	assert.Equal(t, 0, submitter.calls, "invalid form must not reach the network")
	assert.False(t, cartMgr.IsEmpty(), "failed checkout leaves the cart intact")
}

func TestOrchestrator_Submit_FailureThenRetry(t *testing.T) {
	cartMgr := newTestCart(t)
	require.NoError(t, cartMgr.AddItem("TSB_001", 2, "", ""))

	submitter := &fakeSubmitter{err: &apperrors.ErrServerRejected{Message: "duplicate order"}}
	orch := checkout.NewOrchestrator(cartMgr, submitter, time.Second, nil)

	_, err := orch.Submit(context.Background(), validForm())
	var rejected *apperrors.ErrServerRejected
	require.ErrorAs(t, err, &rejected)

	assert.False(t, cartMgr.IsEmpty(), "rejected order leaves the cart intact")
	assert.Equal(t, domain.CheckoutStateIdle, orch.State(), "failure returns to idle for retry")

	// Same cart submits cleanly once the endpoint recovers
	submitter.err = nil
	submitter.confirmation = domain.OrderConfirmation{OrderID: "TS-2026-0002", TotalAmount: 1180, Confirmed: true}

	confirmation, err := orch.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, "TS-2026-0002", confirmation.OrderID)
	assert.True(t, cartMgr.IsEmpty())
	assert.Equal(t, 2, submitter.calls)
}

func TestOrchestrator_Submit_TimeoutKeepsCart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"success": true, "data": {"order_id": "TS-LATE"}}`))
	}))
	defer srv.Close()

	cartMgr := newTestCart(t)
	require.NoError(t, cartMgr.AddItem("TSB_001", 2, "", ""))

	client := orders.NewClient(srv.URL, false, nil)
	orch := checkout.NewOrchestrator(cartMgr, client, 30*time.Millisecond, nil)

	_, err := orch.Submit(context.Background(), validForm())

	var timeout *apperrors.ErrTimeout
	require.ErrorAs(t, err, &timeout)
	assert.False(t, cartMgr.IsEmpty(), "timed-out submission leaves the cart intact")
	assert.Equal(t, domain.CheckoutStateIdle, orch.State(), "resubmission stays possible")
}

func TestOrchestrator_Submit_StalledResponseKeepsCart(t *testing.T) {
	// The endpoint accepts the request but the body stalls past the
	// deadline. Even with unconfirmed orders allowed the attempt is a
	// timeout and the cart survives for resubmission.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.(http.Flusher).Flush()
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"success": false, "error": "duplicate order"}`))
	}))
	defer srv.Close()

	cartMgr := newTestCart(t)
	require.NoError(t, cartMgr.AddItem("TSB_001", 2, "", ""))

	client := orders.NewClient(srv.URL, true, nil)
	orch := checkout.NewOrchestrator(cartMgr, client, 30*time.Millisecond, nil)

	_, err := orch.Submit(context.Background(), validForm())

	var timeout *apperrors.ErrTimeout
	require.ErrorAs(t, err, &timeout)
	assert.False(t, cartMgr.IsEmpty(), "stalled submission must not clear the cart")
}

func TestBuildOrderRequest(t *testing.T) {
	items := []domain.LineItem{
		{ID: "TSB_001", Name: "Cotton Romper", ImageURL: "assets/images/romper.jpg", UnitPrice: 550, Quantity: 2, Color: "blue", MaxQuantity: 10},
		{ID: "TSB_002", Name: "Baby Blanket", ImageURL: "assets/images/blanket.jpg", UnitPrice: 1200, Quantity: 1, MaxQuantity: 10},
	}

	form := validForm()
	form.DeliveryArea = domain.DeliveryAreaOutsideDhaka
	form.CouponCode = "TINY10"
	form.SpecialNotes = "Call before delivery"

	order := checkout.BuildOrderRequest(items, form)

	// Subtotal 2300 clears the free-delivery threshold; TINY10 takes 230
	want := domain.OrderRequest{
		CustomerName:  form.CustomerName,
		Phone:         form.Phone,
		Email:         form.Email,
		Address:       form.Address,
		DeliveryArea:  domain.DeliveryAreaOutsideDhaka,
		PaymentMethod: domain.PaymentMethodCash,
		SpecialNotes:  "Call before delivery",
		Products: []domain.OrderItem{
			{ProductID: "TSB_001", ProductName: "Cotton Romper", Price: 550, Quantity: 2, Color: "blue", Image: "assets/images/romper.jpg"},
			{ProductID: "TSB_002", ProductName: "Baby Blanket", Price: 1200, Quantity: 1, Image: "assets/images/blanket.jpg"},
		},
		DeliveryFee: 0,
		TotalAmount: 2070,
	}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("order request mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildOrderRequest_FreshSnapshotPerSubmission(t *testing.T) {
	items := []domain.LineItem{{ID: "TSB_001", Name: "Cotton Romper", UnitPrice: 550, Quantity: 1, MaxQuantity: 10}}

	form := validForm()
	first := checkout.BuildOrderRequest(items, form)

	form.SpecialNotes = "changed after first build"
	second := checkout.BuildOrderRequest(items, form)

	assert.Empty(t, first.SpecialNotes, "earlier snapshot must not see later form edits")
	assert.Equal(t, "changed after first build", second.SpecialNotes)
}
