package redis_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/aaravmahajanofficial/shopity/internal/models"
	"github.com/aaravmahajanofficial/shopity/internal/storage"
	redisstore "github.com/aaravmahajanofficial/shopity/internal/storage/redis"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (storage.Store, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()

	return redisstore.New(client, "test"), mock
}

func setupMiniredis(t *testing.T) (storage.Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() {
		client.Close()
	})

	return redisstore.New(client, "shopity"), mr
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	entries := []models.CartEntry{{Product: models.Product{ID: "p1", Price: 20}}}
	jsonData, err := json.Marshal(entries)
	require.NoError(t, err)

	t.Run("Success - Key Found", func(t *testing.T) {
		// Arrange
		store, mock := setupMock(t)
		mock.ExpectGet("test:cartItems").SetVal(string(jsonData))

		// Act
		var result []models.CartEntry
		found, err := store.Get(ctx, storage.CartItemsKey, &result)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, entries, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Key Not Found", func(t *testing.T) {
		// Arrange
		store, mock := setupMock(t)
		mock.ExpectGet("test:cartItems").SetErr(redis.Nil)

		// Act
		var result []models.CartEntry
		found, err := store.Get(ctx, storage.CartItemsKey, &result)

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		store, mock := setupMock(t)
		expectedErr := errors.New("redis connection error")
		mock.ExpectGet("test:cartItems").SetErr(expectedErr)

		// Act
		var result []models.CartEntry
		found, err := store.Get(ctx, storage.CartItemsKey, &result)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, expectedErr)
		assert.Contains(t, err.Error(), "failed to get key cartItems from redis")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unmarshal Error", func(t *testing.T) {
		// Arrange
		store, mock := setupMock(t)
		mock.ExpectGet("test:cartItems").SetVal("[{")

		// Act
		var result []models.CartEntry
		found, err := store.Get(ctx, storage.CartItemsKey, &result)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
		assert.Contains(t, err.Error(), "failed to unmarshal data for key cartItems")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	entries := []models.WishlistEntry{{Product: models.Product{ID: "p2"}}}
	jsonData, err := json.Marshal(entries)
	require.NoError(t, err)

	t.Run("Success - No Expiry", func(t *testing.T) {
		// Arrange
		store, mock := setupMock(t)
		mock.ExpectSet("test:wishlistItems", jsonData, 0).SetVal("OK")

		// Act
		err := store.Set(ctx, storage.WishlistItemsKey, entries)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Marshal Error", func(t *testing.T) {
		// Arrange
		store, mock := setupMock(t)

		// Act
		err := store.Set(ctx, storage.WishlistItemsKey, make(chan int))

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal value for key wishlistItems")

		var jsonErr *json.UnsupportedTypeError
		assert.ErrorAs(t, err, &jsonErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		store, mock := setupMock(t)
		expectedErr := errors.New("redis SET failed")
		mock.ExpectSet("test:wishlistItems", jsonData, 0).SetErr(expectedErr)

		// Act
		err := store.Set(ctx, storage.WishlistItemsKey, entries)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		assert.Contains(t, err.Error(), "failed to set key wishlistItems in redis")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRemove(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		store, mock := setupMock(t)
		mock.ExpectDel("test:cartItems").SetVal(1)

		err := store.Remove(ctx, storage.CartItemsKey)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		store, mock := setupMock(t)
		expectedErr := errors.New("redis DEL failed")
		mock.ExpectDel("test:cartItems").SetErr(expectedErr)

		err := store.Remove(ctx, storage.CartItemsKey)

		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		assert.Contains(t, err.Error(), "failed to delete key cartItems from redis")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRoundTripAgainstMiniredis(t *testing.T) {
	ctx := t.Context()
	store, mr := setupMiniredis(t)

	entries := []models.CartEntry{
		{Product: models.Product{ID: "p1", ItemName: "Lamp", Price: 20}},
		{Product: models.Product{ID: "p2", ItemName: "Mug", Price: 5}},
	}

	require.NoError(t, store.Set(ctx, storage.CartItemsKey, entries))
	assert.True(t, mr.Exists("shopity:cartItems"), "keys are namespaced")
	assert.Equal(t, 0, int(mr.TTL("shopity:cartItems")), "snapshots never expire")

	var loaded []models.CartEntry
	found, err := store.Get(ctx, storage.CartItemsKey, &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, entries, loaded)

	require.NoError(t, store.Remove(ctx, storage.CartItemsKey))
	assert.False(t, mr.Exists("shopity:cartItems"))

	found, err = store.Get(ctx, storage.CartItemsKey, &loaded)
	require.NoError(t, err)
	assert.False(t, found)
}
