package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

// Payment method tags offered by the checkout picker. The backend treats them as opaque.
const (
	PaymentMethodCreditCard     PaymentMethod = "credit"
	PaymentMethodCashOnDelivery PaymentMethod = "cod"
	PaymentMethodGooglePay      PaymentMethod = "gpay"
)

// OrderLine is one cart line snapshotted into an order.
type OrderLine struct {
	ItemName     string  `json:"itemName"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	MainImageURL string  `json:"mainImageUrl,omitempty"`
}

type Order struct {
	ID            string        `json:"_id"`
	CartItems     []OrderLine   `json:"cartItems"`
	OrderedBy     string        `json:"orderedBy"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Address       string        `json:"address"`
	CustomerEmail string        `json:"customerEmail"`
	CustomerPhone string        `json:"customerPhone"`
	IsShipped     bool          `json:"isShipped"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// Total is Σ quantity × price over the order lines.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero

	for _, line := range o.CartItems {
		total = total.Add(decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return total
}

type CreateOrderRequest struct {
	CartItems     []OrderLine   `json:"cartItems"`
	OrderedBy     string        `json:"orderedBy"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Address       string        `json:"address"`
	CustomerEmail string        `json:"customerEmail"`
	CustomerPhone string        `json:"customerPhone"`
}

type OrderListResponse struct {
	Orders []Order `json:"orders"`
}

// CheckoutForm holds the fields the user fills in before placing an order.
// Only presence is checked here; format checks belong to the session forms.
type CheckoutForm struct {
	Address       string        `json:"address" validate:"required"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"required"`
	Email         string        `json:"email" validate:"required"`
	Phone         string        `json:"phone" validate:"required"`
}

type CheckoutState string

const (
	CheckoutIdle       CheckoutState = "idle"
	CheckoutValidating CheckoutState = "validating"
	CheckoutSubmitting CheckoutState = "submitting"
	CheckoutSuccess    CheckoutState = "success"
	CheckoutFailed     CheckoutState = "failed"
)

type CheckoutResult struct {
	State CheckoutState   `json:"state"`
	Total decimal.Decimal `json:"total"`
	Lines []OrderLine     `json:"lines"`
}

type TrackedOrder struct {
	Order
	Total decimal.Decimal `json:"total"`
}

type EmailReceipt struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type CheckoutStateResponse struct {
	State CheckoutState `json:"state"`
}

type TrackedOrderListResponse struct {
	Orders []TrackedOrder `json:"orders"`
}
