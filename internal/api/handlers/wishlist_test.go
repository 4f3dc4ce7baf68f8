package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/shopity/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/shopity/internal/errors"
	"github.com/aaravmahajanofficial/shopity/internal/models"
	"github.com/aaravmahajanofficial/shopity/internal/services/mocks"
	"github.com/aaravmahajanofficial/shopity/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWishlistHandler(t *testing.T) {
	mug := models.Product{ID: "p2", ItemName: "Mug", Price: 5}

	t.Run("Get", func(t *testing.T) {
		// Arrange
		mockWishlistService := new(mocks.WishlistService)
		wishlistHandler := handlers.NewWishlistHandler(mockWishlistService)
		items := []models.WishlistEntry{{Product: mug}}
		mockWishlistService.On("List").Return(items).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/wishlist", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		wishlistHandler.GetWishlist().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope[models.WishlistResponse](t, rr.Body)
		assert.Equal(t, items, env.Data.Items)
	})

	t.Run("Get Persisted", func(t *testing.T) {
		mockWishlistService := new(mocks.WishlistService)
		wishlistHandler := handlers.NewWishlistHandler(mockWishlistService)
		mockWishlistService.On("ListPersisted", mock.Anything).Return([]models.WishlistEntry{}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/wishlist/persisted", nil, nil)
		rr := httptest.NewRecorder()

		wishlistHandler.GetPersistedWishlist().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockWishlistService.AssertExpectations(t)
	})

	t.Run("Add", func(t *testing.T) {
		mockWishlistService := new(mocks.WishlistService)
		wishlistHandler := handlers.NewWishlistHandler(mockWishlistService)
		mockWishlistService.On("Add", mock.Anything, models.WishlistEntry{Product: mug}).Return(nil).Once()
		mockWishlistService.On("List").Return([]models.WishlistEntry{{Product: mug}}).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/wishlist", jsonBody(t, models.AddWishlistEntryRequest{Product: mug}), nil)
		rr := httptest.NewRecorder()

		wishlistHandler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		env := decodeEnvelope[models.WishlistResponse](t, rr.Body)
		assert.Len(t, env.Data.Items, 1)
		mockWishlistService.AssertExpectations(t)
	})

	t.Run("Add - Empty Body", func(t *testing.T) {
		mockWishlistService := new(mocks.WishlistService)
		wishlistHandler := handlers.NewWishlistHandler(mockWishlistService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/wishlist", strings.NewReader(""), nil)
		rr := httptest.NewRecorder()

		wishlistHandler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env := decodeEnvelope[any](t, rr.Body)
		assert.Equal(t, appErrors.ErrCodeBadRequest, env.Error.Code)
		mockWishlistService.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("Remove", func(t *testing.T) {
		mockWishlistService := new(mocks.WishlistService)
		wishlistHandler := handlers.NewWishlistHandler(mockWishlistService)
		mockWishlistService.On("Remove", mock.Anything, "p2").Return(nil).Once()
		mockWishlistService.On("List").Return([]models.WishlistEntry{}).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodDelete, "/api/v1/wishlist/items/p2", nil, map[string]string{"id": "p2"})
		rr := httptest.NewRecorder()

		wishlistHandler.RemoveItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockWishlistService.AssertExpectations(t)
	})
}
