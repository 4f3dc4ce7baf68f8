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

type WishlistHandler struct {
	wishlistService service.WishlistService
	validator       *validator.Validate
}

func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService, validator: utils.NewValidator()}
}

// GetWishlist godoc
//	@Summary		Get the wishlist
//	@Tags			Wishlist
//	@Produce		json
//	@Success		200	{object}	models.WishlistResponse	"Wishlist entries"
//	@Router			/wishlist [get]
func (h *WishlistHandler) GetWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, models.WishlistResponse{Items: h.wishlistService.List()})
	}
}

// GetPersistedWishlist godoc
//	@Summary		Get the stored wishlist
//	@Tags			Wishlist
//	@Produce		json
//	@Success		200	{object}	models.WishlistResponse	"Stored wishlist entries"
//	@Failure		500	{object}	response.ErrorResponse	"Storage failure"
//	@Router			/wishlist/persisted [get]
func (h *WishlistHandler) GetPersistedWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		items, err := h.wishlistService.ListPersisted(r.Context())
		if err != nil {
			logger.Error("Failed to read stored wishlist", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.WishlistResponse{Items: items})
	}
}

// AddItem godoc
//	@Summary		Add a product to the wishlist
//	@Tags			Wishlist
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddWishlistEntryRequest	true	"Product to add"
//	@Success		201		{object}	models.WishlistResponse			"Wishlist after the add"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Failure		500		{object}	response.ErrorResponse			"Storage failure"
//	@Router			/wishlist [post]
func (h *WishlistHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddWishlistEntryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to wishlist input")
			return
		}

		logger = logger.With(slog.String("productId", req.Product.ID))

		if err := h.wishlistService.Add(r.Context(), models.WishlistEntry{Product: req.Product}); err != nil {
			logger.Error("Failed to add item to wishlist", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to wishlist")
		response.Success(w, http.StatusCreated, models.WishlistResponse{Items: h.wishlistService.List()})
	}
}

// RemoveItem godoc
//	@Summary		Remove a product from the wishlist
//	@Tags			Wishlist
//	@Produce		json
//	@Param			id	path		string					true	"Product ID"
//	@Success		200	{object}	models.WishlistResponse	"Wishlist after the removal"
//	@Failure		500	{object}	response.ErrorResponse	"Storage failure"
//	@Router			/wishlist/items/{id} [delete]
func (h *WishlistHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")
		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("productId", id))

		if err := h.wishlistService.Remove(r.Context(), id); err != nil {
			logger.Error("Failed to remove item from wishlist", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item removed from wishlist")
		response.Success(w, http.StatusOK, models.WishlistResponse{Items: h.wishlistService.List()})
	}
}
