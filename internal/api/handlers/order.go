package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/shopity/internal/api/middleware"
	"github.com/aaravmahajanofficial/shopity/internal/models"
	service "github.com/aaravmahajanofficial/shopity/internal/services"
	"github.com/aaravmahajanofficial/shopity/internal/utils"
	"github.com/aaravmahajanofficial/shopity/internal/utils/response"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// PlaceOrder godoc
//	@Summary		Place an order
//	@Description	Submits the current cart with the given shipping and payment details, then clears the cart. Requires a signed-in user.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.CheckoutForm		true	"Address, payment method, email and phone"
//	@Success		201		{object}	models.CheckoutResult	"Order placed"
//	@Failure		400		{object}	response.ErrorResponse	"Missing fields or empty cart"
//	@Failure		401		{object}	response.ErrorResponse	"No signed-in user"
//	@Failure		502		{object}	response.ErrorResponse	"Commerce backend rejected or unreachable"
//	@Router			/checkout [post]
func (h *OrderHandler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var form models.CheckoutForm
		if !utils.ParseBody(r, w, &form) {
			logger.Warn("Invalid checkout input")
			return
		}

		result, err := h.orderService.Submit(r.Context(), &form)
		if err != nil {
			logger.Error("Failed to place order", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order placed successfully", slog.String("total", result.Total.StringFixed(2)))
		response.Success(w, http.StatusCreated, result)
	}
}

// GetCheckoutState godoc
//	@Summary		Get the checkout state
//	@Tags			Checkout
//	@Produce		json
//	@Success		200	{object}	models.CheckoutStateResponse	"Current checkout state"
//	@Router			/checkout/state [get]
func (h *OrderHandler) GetCheckoutState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, models.CheckoutStateResponse{State: h.orderService.State()})
	}
}

// ListOrders godoc
//	@Summary		List the user's orders
//	@Description	Fetches the signed-in user's orders with their totals. Requires a signed-in user.
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{object}	models.TrackedOrderListResponse	"Orders"
//	@Failure		401	{object}	response.ErrorResponse			"No signed-in user"
//	@Failure		502	{object}	response.ErrorResponse			"Commerce backend unreachable"
//	@Router			/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		orders, err := h.orderService.ListOrders(r.Context())
		if err != nil {
			logger.Error("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Orders listed", slog.Int("count", len(orders)))
		response.Success(w, http.StatusOK, models.TrackedOrderListResponse{Orders: orders})
	}
}
