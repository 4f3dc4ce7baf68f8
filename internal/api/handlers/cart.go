package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/shopity/internal/api/middleware"
	"github.com/aaravmahajanofficial/shopity/internal/models"
	service "github.com/aaravmahajanofficial/shopity/internal/services"
	"github.com/aaravmahajanofficial/shopity/internal/utils"
	"github.com/aaravmahajanofficial/shopity/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService     service.CartService
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCartHandler(cartService service.CartService, checkoutService service.CheckoutService) *CartHandler {
	return &CartHandler{cartService: cartService, checkoutService: checkoutService, validator: utils.NewValidator()}
}

// GetCart godoc
//	@Summary		Get the cart
//	@Description	Returns every cart line with its quantity and subtotal, plus the grand total.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartSummary	"Cart summary"
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.checkoutService.Summary())
	}
}

// GetPersistedCart godoc
//	@Summary		Get the stored cart
//	@Description	Reads the cart snapshot straight from storage.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartEntriesResponse	"Stored cart entries"
//	@Failure		500	{object}	response.ErrorResponse		"Storage failure"
//	@Router			/cart/persisted [get]
func (h *CartHandler) GetPersistedCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		items, err := h.cartService.ListPersisted(r.Context())
		if err != nil {
			logger.Error("Failed to read stored cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.CartEntriesResponse{Items: items})
	}
}

// AddItem godoc
//	@Summary		Add a product to the cart
//	@Description	Adds the product once. Adding a product already in the cart changes nothing.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddCartEntryRequest	true	"Product to add"
//	@Success		201		{object}	models.CartSummary			"Cart after the add"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		500		{object}	response.ErrorResponse		"Storage failure"
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddCartEntryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		logger = logger.With(slog.String("productId", req.Product.ID))

		if err := h.cartService.Add(r.Context(), models.CartEntry{Product: req.Product}); err != nil {
			logger.Error("Failed to add item to cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart")
		response.Success(w, http.StatusCreated, h.checkoutService.Summary())
	}
}

// RemoveItem godoc
//	@Summary		Remove a product from the cart
//	@Description	Removes the product and resets every quantity to 1.
//	@Tags			Cart
//	@Produce		json
//	@Param			id	path		string					true	"Product ID"
//	@Success		200	{object}	models.CartSummary		"Cart after the removal"
//	@Failure		500	{object}	response.ErrorResponse	"Storage failure"
//	@Router			/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")
		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("productId", id))

		if err := h.cartService.Remove(r.Context(), id); err != nil {
			logger.Error("Failed to remove item from cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item removed from cart")
		response.Success(w, http.StatusOK, h.checkoutService.Summary())
	}
}

// IncreaseQuantity godoc
//	@Summary		Increase a quantity
//	@Tags			Cart
//	@Produce		json
//	@Param			id	path		string					true	"Product ID"
//	@Success		200	{object}	models.CartSummary		"Cart after the change"
//	@Failure		404	{object}	response.ErrorResponse	"Item not in cart"
//	@Router			/cart/items/{id}/increase [post]
func (h *CartHandler) IncreaseQuantity() http.HandlerFunc {
	return h.changeQuantity(h.checkoutService.Increase)
}

// DecreaseQuantity godoc
//	@Summary		Decrease a quantity
//	@Description	Quantities never drop below 1.
//	@Tags			Cart
//	@Produce		json
//	@Param			id	path		string					true	"Product ID"
//	@Success		200	{object}	models.CartSummary		"Cart after the change"
//	@Failure		404	{object}	response.ErrorResponse	"Item not in cart"
//	@Router			/cart/items/{id}/decrease [post]
func (h *CartHandler) DecreaseQuantity() http.HandlerFunc {
	return h.changeQuantity(h.checkoutService.Decrease)
}

func (h *CartHandler) changeQuantity(change func(productID string) (int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")
		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("productId", id))

		quantity, err := change(id)
		if err != nil {
			logger.Warn("Failed to change quantity", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Debug("Quantity changed", slog.Int("quantity", quantity))
		response.Success(w, http.StatusOK, h.checkoutService.Summary())
	}
}

// ClearCart godoc
//	@Summary		Clear the cart
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartSummary		"Empty cart"
//	@Failure		500	{object}	response.ErrorResponse	"Storage failure"
//	@Router			/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.cartService.Clear(r.Context()); err != nil {
			logger.Error("Failed to clear cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart cleared")
		response.Success(w, http.StatusOK, h.checkoutService.Summary())
	}
}
