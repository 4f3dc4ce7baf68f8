package service

import (
	"context"
	"html"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/shopity/internal/errors"
	"github.com/aaravmahajanofficial/shopity/internal/models"
	"github.com/aaravmahajanofficial/shopity/internal/utils"
	"github.com/aaravmahajanofficial/shopity/pkg/commerceapi"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/singleflight"
)

type ProductService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.ProductDetail, error)
	AddReview(ctx context.Context, id string, req *models.AddReviewRequest) (*models.Review, error)
}

// Catalog reads products from the commerce API. Reviews added here are kept in
// a process-local overlay merged into every product it returns.
type Catalog struct {
	api      commerceapi.Client
	wishlist WishlistService
	group    singleflight.Group
	policy   *bluemonday.Policy
	validate *validator.Validate
	now      func() time.Time

	mu      sync.RWMutex
	reviews map[string][]models.Review
}

func NewCatalog(api commerceapi.Client, wishlist WishlistService) *Catalog {
	return &Catalog{
		api:      api,
		wishlist: wishlist,
		policy:   bluemonday.StrictPolicy(),
		validate: utils.NewValidator(),
		now:      time.Now,
		reviews:  make(map[string][]models.Review),
	}
}

// ListProducts implements ProductService.
func (c *Catalog) ListProducts(ctx context.Context) ([]models.Product, error) {

	products, err := c.api.ListProducts(ctx)
	if err != nil {
		return nil, remoteFailure(err, "Failed to fetch products")
	}

	for i := range products {
		products[i].Reviews = c.withLocalReviews(products[i].ID, products[i].Reviews)
	}

	return products, nil
}

// GetProduct implements ProductService. Concurrent lookups of one id share a
// single backend call, which runs detached from any one caller's cancellation.
func (c *Catalog) GetProduct(ctx context.Context, id string) (*models.ProductDetail, error) {

	ch := c.group.DoChan(id, func() (any, error) {
		return c.api.GetProduct(context.WithoutCancel(ctx), id)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, errors.NetworkError("Failed to fetch product").WithError(ctx.Err())
	case res = <-ch:
	}

	if res.Err != nil {
		return nil, lookupFailure(res.Err, "Failed to fetch product", "Product not found")
	}

	v, shared := res.Val, res.Shared
	if shared {
		slog.Debug("Coalesced product lookup", slog.String("productId", id))
	}

	product := *v.(*models.Product)
	product.SecondaryImageURLs = slices.Clone(product.SecondaryImageURLs)
	product.Reviews = c.withLocalReviews(id, product.Reviews)

	inWishlist, err := c.wishlist.Contains(ctx, id)
	if err != nil {
		slog.Warn("Failed to read wishlist for product", slog.String("productId", id), slog.String("error", err.Error()))
	}

	return &models.ProductDetail{
		Product:       product,
		AverageRating: AverageRating(product.Reviews),
		InWishlist:    inWishlist,
	}, nil
}

// AddReview implements ProductService. The review is not sent to the backend.
func (c *Catalog) AddReview(ctx context.Context, id string, req *models.AddReviewRequest) (*models.Review, error) {

	if strings.TrimSpace(id) == "" {
		return nil, errors.ValidationError("Product id is required")
	}

	if err := c.validate.Struct(req); err != nil {
		if missing := utils.FailedFields(err, "required"); len(missing) > 0 {
			return nil, errors.MissingFieldsError(missing)
		}

		return nil, errors.AddValidationError("rating", "must be between 1 and 5").WithError(err)
	}

	// StrictPolicy escapes the text it keeps; reviews are stored as plain text.
	body := strings.TrimSpace(html.UnescapeString(c.policy.Sanitize(req.Review)))
	if body == "" {
		return nil, errors.AddValidationError("review", "must contain text")
	}

	review := models.Review{Rating: req.Rating, Review: body, Timestamp: c.now().UTC()}

	c.mu.Lock()
	c.reviews[id] = append(c.reviews[id], review)
	c.mu.Unlock()

	slog.Info("Review added", slog.String("productId", id), slog.Int("rating", review.Rating))

	return &review, nil
}

func (c *Catalog) withLocalReviews(id string, remote []models.Review) []models.Review {
	c.mu.RLock()
	defer c.mu.RUnlock()

	merged := make([]models.Review, 0, len(remote)+len(c.reviews[id]))
	merged = append(merged, remote...)

	return append(merged, c.reviews[id]...)
}

// AverageRating is the mean rating of reviews, 0 when there are none.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0

	for _, r := range reviews {
		sum += r.Rating
	}

	return float64(sum) / float64(len(reviews))
}

var _ ProductService = (*Catalog)(nil)
