package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/shopity/internal/errors"
	"github.com/aaravmahajanofficial/shopity/internal/models"
	"github.com/aaravmahajanofficial/shopity/internal/notify"
	"github.com/aaravmahajanofficial/shopity/internal/storage"
)

type CartService interface {
	Load(ctx context.Context) error
	Add(ctx context.Context, entry models.CartEntry) error
	Remove(ctx context.Context, productID string) error
	Clear(ctx context.Context) error
	List() []models.CartEntry
	ListPersisted(ctx context.Context) ([]models.CartEntry, error)
	Subscribe(fn func([]models.CartEntry))
}

// CartStore holds the cart entries of the session, persisted under "cartItems".
// A product appears at most once; quantities live in the CheckoutCalculator.
type CartStore struct {
	list     *entryList[models.CartEntry]
	notifier notify.Notifier
}

func NewCartStore(store storage.Store, notifier notify.Notifier) *CartStore {
	return &CartStore{
		list:     newEntryList[models.CartEntry]("cart", storage.CartItemsKey, store),
		notifier: notifier,
	}
}

// Load implements CartService. The cart is usable (empty) even when an error is returned.
func (s *CartStore) Load(ctx context.Context) error {
	return s.list.load(ctx)
}

// Add implements CartService.
func (s *CartStore) Add(ctx context.Context, entry models.CartEntry) error {

	productID := entry.ProductID()
	if productID == "" {
		return errors.ValidationError("Product id is required")
	}

	added, err := s.list.mutate(ctx, "add", func(current []models.CartEntry) ([]models.CartEntry, bool) {
		if containsProduct(current, productID) {
			return current, false
		}

		return append(current, entry), true
	})
	if err != nil {
		s.notifier.Notify(ctx, models.NotificationError, err.Error())
		return err
	}

	if !added {
		slog.Debug("Product already in cart", slog.String("productId", productID))
		s.notifier.Notify(ctx, models.NotificationInfo, MsgItemAlreadyInCart)
		return nil
	}

	s.notifier.Notify(ctx, models.NotificationSuccess, MsgItemAddedToCart)

	return nil
}

// Remove implements CartService. Removing an absent product is not an error.
func (s *CartStore) Remove(ctx context.Context, productID string) error {

	_, err := s.list.mutate(ctx, "remove", func(current []models.CartEntry) ([]models.CartEntry, bool) {
		return withoutProduct(current, productID), true
	})
	if err != nil {
		s.notifier.Notify(ctx, models.NotificationError, err.Error())
	}

	return err
}

// Clear implements CartService.
func (s *CartStore) Clear(ctx context.Context) error {

	if err := s.list.clear(ctx); err != nil {
		s.notifier.Notify(ctx, models.NotificationError, err.Error())
		return err
	}

	s.notifier.Notify(ctx, models.NotificationSuccess, MsgCartCleared)

	return nil
}

// List implements CartService.
func (s *CartStore) List() []models.CartEntry {
	return s.list.snapshot()
}

// ListPersisted implements CartService.
func (s *CartStore) ListPersisted(ctx context.Context) ([]models.CartEntry, error) {
	return s.list.persisted(ctx)
}

// Subscribe implements CartService.
func (s *CartStore) Subscribe(fn func([]models.CartEntry)) {
	s.list.subscribe(fn)
}

var _ CartService = (*CartStore)(nil)
