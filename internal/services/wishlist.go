package service

import (
	"context"

	"github.com/aaravmahajanofficial/shopity/internal/errors"
	"github.com/aaravmahajanofficial/shopity/internal/models"
	"github.com/aaravmahajanofficial/shopity/internal/notify"
	"github.com/aaravmahajanofficial/shopity/internal/storage"
)

type WishlistService interface {
	Load(ctx context.Context) error
	Add(ctx context.Context, entry models.WishlistEntry) error
	Remove(ctx context.Context, productID string) error
	List() []models.WishlistEntry
	ListPersisted(ctx context.Context) ([]models.WishlistEntry, error)
	Contains(ctx context.Context, productID string) (bool, error)
}

// WishlistStore holds the favourite products, persisted under "wishlistItems".
type WishlistStore struct {
	list     *entryList[models.WishlistEntry]
	notifier notify.Notifier
}

func NewWishlistStore(store storage.Store, notifier notify.Notifier) *WishlistStore {
	return &WishlistStore{
		list:     newEntryList[models.WishlistEntry]("wishlist", storage.WishlistItemsKey, store),
		notifier: notifier,
	}
}

// Load implements WishlistService.
func (s *WishlistStore) Load(ctx context.Context) error {
	return s.list.load(ctx)
}

// Add implements WishlistService.
func (s *WishlistStore) Add(ctx context.Context, entry models.WishlistEntry) error {

	productID := entry.ProductID()
	if productID == "" {
		return errors.ValidationError("Product id is required")
	}

	added, err := s.list.mutate(ctx, "add", func(current []models.WishlistEntry) ([]models.WishlistEntry, bool) {
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
		s.notifier.Notify(ctx, models.NotificationInfo, MsgItemAlreadyInWishlist)
		return nil
	}

	s.notifier.Notify(ctx, models.NotificationSuccess, MsgItemAddedToWishlist)

	return nil
}

// Remove implements WishlistService.
func (s *WishlistStore) Remove(ctx context.Context, productID string) error {

	_, err := s.list.mutate(ctx, "remove", func(current []models.WishlistEntry) ([]models.WishlistEntry, bool) {
		return withoutProduct(current, productID), true
	})
	if err != nil {
		s.notifier.Notify(ctx, models.NotificationError, err.Error())
		return err
	}

	s.notifier.Notify(ctx, models.NotificationSuccess, MsgItemRemovedFromWishlist)

	return nil
}

// List implements WishlistService.
func (s *WishlistStore) List() []models.WishlistEntry {
	return s.list.snapshot()
}

// ListPersisted implements WishlistService.
func (s *WishlistStore) ListPersisted(ctx context.Context) ([]models.WishlistEntry, error) {
	return s.list.persisted(ctx)
}

// Contains reports whether the durable snapshot holds productID.
func (s *WishlistStore) Contains(ctx context.Context, productID string) (bool, error) {

	items, err := s.list.persisted(ctx)
	if err != nil {
		return false, err
	}

	return containsProduct(items, productID), nil
}

var _ WishlistService = (*WishlistStore)(nil)
