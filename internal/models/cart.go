package models

import "github.com/shopspring/decimal"

// CartEntry wraps one product held in the cart. Quantity is tracked by the
// checkout calculator, not persisted with the entry.
type CartEntry struct {
	Product Product `json:"product" validate:"required"`
}

func (e CartEntry) ProductID() string {
	return e.Product.ID
}

type WishlistEntry struct {
	Product Product `json:"product" validate:"required"`
}

func (e WishlistEntry) ProductID() string {
	return e.Product.ID
}

type AddCartEntryRequest struct {
	Product Product `json:"product" validate:"required"`
}

type AddWishlistEntryRequest struct {
	Product Product `json:"product" validate:"required"`
}

type CartLine struct {
	Product  Product         `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartSummary is the cart screen payload.
type CartSummary struct {
	Items      []CartLine      `json:"items"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

// CartEntriesResponse is the durable cart snapshot as stored.
type CartEntriesResponse struct {
	Items []CartEntry `json:"items"`
}

type WishlistResponse struct {
	Items []WishlistEntry `json:"items"`
}
