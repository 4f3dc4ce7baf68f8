package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/shopity/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/shopity/internal/errors"
	"github.com/aaravmahajanofficial/shopity/internal/models"
	"github.com/aaravmahajanofficial/shopity/internal/services/mocks"
	"github.com/aaravmahajanofficial/shopity/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockProductService := new(mocks.ProductService)
		productHandler := handlers.NewProductHandler(mockProductService)

		products := []models.Product{{ID: "p1", ItemName: "Lamp", Price: 20}}
		mockProductService.On("ListProducts", mock.Anything).Return(products, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		productHandler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope[models.ProductListResponse](t, rr.Body)
		assert.True(t, env.Success)
		assert.Equal(t, products, env.Data.Products)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Backend Unreachable", func(t *testing.T) {
		mockProductService := new(mocks.ProductService)
		productHandler := handlers.NewProductHandler(mockProductService)

		mockProductService.On("ListProducts", mock.Anything).Return(nil, appErrors.NetworkError("Could not reach the store")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products", nil, nil)
		rr := httptest.NewRecorder()

		productHandler.ListProducts().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		env := decodeEnvelope[any](t, rr.Body)
		require.NotNil(t, env.Error)
		assert.Equal(t, appErrors.ErrCodeNetwork, env.Error.Code)
		mockProductService.AssertExpectations(t)
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockProductService := new(mocks.ProductService)
		productHandler := handlers.NewProductHandler(mockProductService)

		detail := &models.ProductDetail{Product: models.Product{ID: "p1"}, AverageRating: 4.5, InWishlist: true}
		mockProductService.On("GetProduct", mock.Anything, "p1").Return(detail, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products/p1", nil, map[string]string{"id": "p1"})
		rr := httptest.NewRecorder()

		// Act
		productHandler.GetProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope[models.ProductDetail](t, rr.Body)
		assert.Equal(t, 4.5, env.Data.AverageRating)
		assert.True(t, env.Data.InWishlist)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		mockProductService := new(mocks.ProductService)
		productHandler := handlers.NewProductHandler(mockProductService)

		mockProductService.On("GetProduct", mock.Anything, "missing").Return(nil, appErrors.NotFoundError("Product not found")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products/missing", nil, map[string]string{"id": "missing"})
		rr := httptest.NewRecorder()

		productHandler.GetProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockProductService.AssertExpectations(t)
	})
}

func TestAddReview(t *testing.T) {
	t.Run("Success - Review Created", func(t *testing.T) {
		// Arrange
		mockProductService := new(mocks.ProductService)
		productHandler := handlers.NewProductHandler(mockProductService)

		reqBody := models.AddReviewRequest{Rating: 5, Review: "Great"}
		review := &models.Review{Rating: 5, Review: "Great", Timestamp: time.Date(2024, 12, 8, 0, 0, 0, 0, time.UTC)}
		mockProductService.On("AddReview", mock.Anything, "p1", &reqBody).Return(review, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/products/p1/reviews", jsonBody(t, reqBody), map[string]string{"id": "p1"})
		rr := httptest.NewRecorder()

		// Act
		productHandler.AddReview().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		env := decodeEnvelope[models.Review](t, rr.Body)
		assert.Equal(t, *review, env.Data)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Invalid Input - Bad JSON", func(t *testing.T) {
		mockProductService := new(mocks.ProductService)
		productHandler := handlers.NewProductHandler(mockProductService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/products/p1/reviews", strings.NewReader("{bad"), map[string]string{"id": "p1"})
		rr := httptest.NewRecorder()

		productHandler.AddReview().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockProductService.AssertNotCalled(t, "AddReview", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid Input - Missing Fields", func(t *testing.T) {
		mockProductService := new(mocks.ProductService)
		productHandler := handlers.NewProductHandler(mockProductService)

		mockProductService.On("AddReview", mock.Anything, "p1", mock.Anything).
			Return(nil, appErrors.MissingFieldsError([]string{"rating", "review"})).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/products/p1/reviews", strings.NewReader("{}"), map[string]string{"id": "p1"})
		rr := httptest.NewRecorder()

		productHandler.AddReview().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env := decodeEnvelope[any](t, rr.Body)
		require.NotNil(t, env.Error)
		assert.Equal(t, appErrors.ErrCodeValidation, env.Error.Code)
		mockProductService.AssertExpectations(t)
	})
}
