package domain

// DefaultMaxQuantity is the per-line-item quantity cap
const DefaultMaxQuantity = 10

// Product is one catalog entry as normalized from the remote sheet
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"` // BDT, smallest unit
	Category    string   `json:"category"`
	Size        string   `json:"size"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Images      []string `json:"images,omitempty"`
}

// LineItem is one SKU's presence in the cart. Name, price and image are
// copied from the catalog at add time and do not track later catalog
// changes.
type LineItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"image"`
	UnitPrice   int64  `json:"price"`
	Quantity    int    `json:"quantity"`
	Color       string `json:"color,omitempty"`
	Size        string `json:"size,omitempty"`
	MaxQuantity int    `json:"max_quantity"`
}

// LineTotal returns unit price times quantity for this item
func (li LineItem) LineTotal() int64 {
	return li.UnitPrice * int64(li.Quantity)
}

// ShippingForm carries the checkout contact and shipping fields as
// entered by the customer
type ShippingForm struct {
	CustomerName  string       `json:"customer_name"`
	Phone         string       `json:"phone"`
	Email         string       `json:"email"`
	Address       string       `json:"address"`
	DeliveryArea  DeliveryArea `json:"delivery_area"`
	PaymentMethod string       `json:"payment_method"`
	SpecialNotes  string       `json:"special_notes"`
	CouponCode    string       `json:"coupon_code"`
}

// OrderItem is one product row inside an order payload
type OrderItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
	Color       string `json:"color"`
	Image       string `json:"main_image"`
}

// OrderRequest is the immutable snapshot submitted to the order
// endpoint. It is built fresh on every submission and never mutated.
type OrderRequest struct {
	CustomerName  string       `json:"customer_name"`
	Phone         string       `json:"phone"`
	Email         string       `json:"email"`
	Address       string       `json:"address"`
	DeliveryArea  DeliveryArea `json:"delivery_area"`
	PaymentMethod string       `json:"payment_method"`
	SpecialNotes  string       `json:"special_notes"`
	Products      []OrderItem  `json:"products"`
	DeliveryFee   int64        `json:"delivery_fee"`
	TotalAmount   int64        `json:"total_amount"`
}

// OrderConfirmation is the outcome of a successful submission.
// Confirmed is false when the order id was synthesized locally because
// the endpoint response could not be read (degraded success).
type OrderConfirmation struct {
	OrderID     string `json:"order_id"`
	TotalAmount int64  `json:"total_amount"`
	Confirmed   bool   `json:"confirmed"`
}

// ProductCache is the persisted catalog snapshot with its fetch time
// in epoch milliseconds
type ProductCache struct {
	Products  []Product `json:"products"`
	Timestamp int64     `json:"timestamp"`
}
