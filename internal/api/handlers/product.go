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

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts godoc
//	@Summary		List products
//	@Description	Fetches the catalog from the commerce backend, with locally added reviews merged in.
//	@Tags			Products
//	@Produce		json
//	@Success		200	{object}	models.ProductListResponse	"Catalog"
//	@Failure		502	{object}	response.ErrorResponse		"Commerce backend unreachable"
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		products, err := h.productService.ListProducts(r.Context())
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Products listed", slog.Int("count", len(products)))
		response.Success(w, http.StatusOK, models.ProductListResponse{Products: products})
	}
}

// GetProduct godoc
//	@Summary		Get a product
//	@Description	Returns one product with its average rating and whether it is in the wishlist.
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		string					true	"Product ID"
//	@Success		200	{object}	models.ProductDetail	"Product detail"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Failure		502	{object}	response.ErrorResponse	"Commerce backend unreachable"
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")
		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("productId", id))

		detail, err := h.productService.GetProduct(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, detail)
	}
}

// AddReview godoc
//	@Summary		Review a product
//	@Description	Appends a review to the local overlay of a product. The backend is not updated.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Product ID"
//	@Param			review	body		models.AddReviewRequest	true	"Rating (1-5) and text"
//	@Success		201		{object}	models.Review			"Stored review"
//	@Failure		400		{object}	response.ErrorResponse	"Missing or invalid fields"
//	@Router			/products/{id}/reviews [post]
func (h *ProductHandler) AddReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")
		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("productId", id))

		var req models.AddReviewRequest
		if !utils.ParseBody(r, w, &req) {
			logger.Warn("Invalid review input")
			return
		}

		review, err := h.productService.AddReview(r.Context(), id, &req)
		if err != nil {
			logger.Warn("Failed to add review", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Review added", slog.Int("rating", review.Rating))
		response.Success(w, http.StatusCreated, review)
	}
}
