package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/shopity/internal/errors"
	"github.com/aaravmahajanofficial/shopity/internal/models"
	service "github.com/aaravmahajanofficial/shopity/internal/services"
	"github.com/aaravmahajanofficial/shopity/internal/services/mocks"
	"github.com/aaravmahajanofficial/shopity/pkg/commerceapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, service.AverageRating(nil))
	assert.Equal(t, 4.5, service.AverageRating([]models.Review{{Rating: 4}, {Rating: 5}}))
	assert.InDelta(t, 3.667, service.AverageRating([]models.Review{{Rating: 5}, {Rating: 5}, {Rating: 1}}), 0.001)
}

func TestCatalogGetProduct(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Detail with rating and wishlist flag", func(t *testing.T) {
		// Arrange
		api := new(mocks.CommerceClient)
		wishlist := new(mocks.WishlistService)
		catalog := service.NewCatalog(api, wishlist)

		api.On("GetProduct", mock.Anything, "p1").Return(&models.Product{
			ID: "p1", ItemName: "Lamp", Price: 20,
			Reviews: []models.Review{{Rating: 4, Review: "good"}, {Rating: 2, Review: "meh"}},
		}, nil).Once()
		wishlist.On("Contains", mock.Anything, "p1").Return(true, nil).Once()

		// Act
		detail, err := catalog.GetProduct(ctx, "p1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Lamp", detail.Product.ItemName)
		assert.Equal(t, 3.0, detail.AverageRating)
		assert.True(t, detail.InWishlist)
		api.AssertExpectations(t)
		wishlist.AssertExpectations(t)
	})

	t.Run("Wishlist failure degrades to false", func(t *testing.T) {
		api := new(mocks.CommerceClient)
		wishlist := new(mocks.WishlistService)
		catalog := service.NewCatalog(api, wishlist)

		api.On("GetProduct", mock.Anything, "p1").Return(&models.Product{ID: "p1"}, nil).Once()
		wishlist.On("Contains", mock.Anything, "p1").Return(false, appErrors.StorageError("Failed to read wishlist")).Once()

		detail, err := catalog.GetProduct(ctx, "p1")

		require.NoError(t, err)
		assert.False(t, detail.InWishlist)
		assert.Equal(t, 0.0, detail.AverageRating)
	})

	t.Run("Not found", func(t *testing.T) {
		api := new(mocks.CommerceClient)
		catalog := service.NewCatalog(api, new(mocks.WishlistService))

		api.On("GetProduct", mock.Anything, "missing").
			Return(nil, &commerceapi.StatusError{StatusCode: http.StatusNotFound, Message: "Product not found"}).Once()

		detail, err := catalog.GetProduct(ctx, "missing")

		assert.Nil(t, detail)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
		appErr, _ := appErrors.IsAppError(err)
		assert.Equal(t, "Product not found", appErr.Message)
	})

	t.Run("Network error", func(t *testing.T) {
		api := new(mocks.CommerceClient)
		catalog := service.NewCatalog(api, new(mocks.WishlistService))

		api.On("GetProduct", mock.Anything, "p1").Return(nil, errors.New("timeout")).Once()

		_, err := catalog.GetProduct(ctx, "p1")

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNetwork))
		appErr, _ := appErrors.IsAppError(err)
		assert.Equal(t, "Failed to fetch product", appErr.Message)
	})

	t.Run("Backend error status", func(t *testing.T) {
		api := new(mocks.CommerceClient)
		catalog := service.NewCatalog(api, new(mocks.WishlistService))

		api.On("GetProduct", mock.Anything, "p1").
			Return(nil, &commerceapi.StatusError{StatusCode: http.StatusInternalServerError, Message: "db down"}).Once()

		_, err := catalog.GetProduct(ctx, "p1")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeRemote, appErr.Code)
		assert.Equal(t, "Failed to fetch product", appErr.Message)
		assert.Equal(t, "db down", appErr.Detail)
	})

	t.Run("Concurrent lookups share a backend call", func(t *testing.T) {
		// Arrange
		api := new(mocks.CommerceClient)
		wishlist := new(mocks.WishlistService)
		catalog := service.NewCatalog(api, wishlist)

		api.On("GetProduct", mock.Anything, "p1").
			WaitUntil(time.After(200*time.Millisecond)).
			Return(&models.Product{ID: "p1"}, nil)
		wishlist.On("Contains", mock.Anything, "p1").Return(false, nil)

		// Act
		var wg sync.WaitGroup
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := catalog.GetProduct(ctx, "p1")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		// Assert
		api.AssertNumberOfCalls(t, "GetProduct", 1)
	})

	t.Run("Cancelled caller does not fail a shared lookup", func(t *testing.T) {
		// Arrange
		api := &blockingProductAPI{release: make(chan struct{})}
		wishlist := new(mocks.WishlistService)
		catalog := service.NewCatalog(api, wishlist)
		wishlist.On("Contains", mock.Anything, "p1").Return(false, nil)

		shortCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()

		// Act
		firstErr := make(chan error, 1)
		go func() {
			_, err := catalog.GetProduct(shortCtx, "p1")
			firstErr <- err
		}()
		require.Eventually(t, func() bool { return api.calls.Load() == 1 }, time.Second, time.Millisecond)

		second := make(chan *models.ProductDetail, 1)
		secondErr := make(chan error, 1)
		go func() {
			detail, err := catalog.GetProduct(context.Background(), "p1")
			second <- detail
			secondErr <- err
		}()

		err := <-firstErr
		time.Sleep(50 * time.Millisecond)
		close(api.release)

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNetwork))
		require.NoError(t, <-secondErr)
		detail := <-second
		require.NotNil(t, detail)
		assert.Equal(t, "p1", detail.Product.ID)
		assert.Equal(t, int32(1), api.calls.Load())
	})
}

// blockingProductAPI holds GetProduct until release is closed or the call's
// context is cancelled.
type blockingProductAPI struct {
	mocks.CommerceClient
	calls   atomic.Int32
	release chan struct{}
}

func (b *blockingProductAPI) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	b.calls.Add(1)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-b.release:
		return &models.Product{ID: id}, nil
	}
}

func TestCatalogReviews(t *testing.T) {
	ctx := t.Context()

	t.Run("Local reviews are merged into later reads", func(t *testing.T) {
		// Arrange
		api := new(mocks.CommerceClient)
		wishlist := new(mocks.WishlistService)
		catalog := service.NewCatalog(api, wishlist)

		api.On("GetProduct", mock.Anything, "p1").Return(&models.Product{
			ID: "p1", Reviews: []models.Review{{Rating: 2, Review: "ok"}},
		}, nil)
		api.On("ListProducts", mock.Anything).Return([]models.Product{{ID: "p1"}, {ID: "p2"}}, nil).Once()
		wishlist.On("Contains", mock.Anything, "p1").Return(false, nil)

		// Act
		review, err := catalog.AddReview(ctx, "p1", &models.AddReviewRequest{Rating: 4, Review: "<b>Great</b> lamp<script>x()</script>"})
		require.NoError(t, err)

		detail, err := catalog.GetProduct(ctx, "p1")
		require.NoError(t, err)

		products, err := catalog.ListProducts(ctx)
		require.NoError(t, err)

		// Assert
		assert.Equal(t, "Great lamp", review.Review)
		assert.False(t, review.Timestamp.IsZero())

		require.Len(t, detail.Product.Reviews, 2)
		assert.Equal(t, "Great lamp", detail.Product.Reviews[1].Review)
		assert.Equal(t, 3.0, detail.AverageRating)

		require.Len(t, products, 2)
		assert.Len(t, products[0].Reviews, 1)
		assert.Empty(t, products[1].Reviews)
	})

	t.Run("Validation", func(t *testing.T) {
		catalog := service.NewCatalog(new(mocks.CommerceClient), new(mocks.WishlistService))

		_, err := catalog.AddReview(ctx, "p1", &models.AddReviewRequest{Rating: 6, Review: "x"})
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))

		_, err = catalog.AddReview(ctx, "p1", &models.AddReviewRequest{Rating: 3})
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))

		_, err = catalog.AddReview(ctx, "p1", &models.AddReviewRequest{Rating: 3, Review: "<script>x()</script>"})
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation), "markup-only body is empty")

		_, err = catalog.AddReview(ctx, " ", &models.AddReviewRequest{Rating: 3, Review: "fine"})
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
	})

	t.Run("Plain text punctuation is kept as written", func(t *testing.T) {
		catalog := service.NewCatalog(new(mocks.CommerceClient), new(mocks.WishlistService))

		review, err := catalog.AddReview(ctx, "p1", &models.AddReviewRequest{Rating: 5, Review: "Tom & Jerry's lamp, 5 > 3"})

		require.NoError(t, err)
		assert.Equal(t, "Tom & Jerry's lamp, 5 > 3", review.Review)
	})
}

func TestCatalogListProducts(t *testing.T) {
	api := new(mocks.CommerceClient)
	catalog := service.NewCatalog(api, new(mocks.WishlistService))
	api.On("ListProducts", mock.Anything).Return(nil, &commerceapi.StatusError{StatusCode: http.StatusBadGateway}).Once()

	products, err := catalog.ListProducts(t.Context())

	assert.Nil(t, products)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeRemote))
}
