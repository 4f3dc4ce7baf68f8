package notify_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/aaravmahajanofficial/shopity/internal/models"
	"github.com/aaravmahajanofficial/shopity/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed(t *testing.T) {
	ctx := t.Context()

	t.Run("Drain returns pending notifications oldest first", func(t *testing.T) {
		// Arrange
		feed := notify.NewFeed(10)
		feed.Notify(ctx, models.NotificationSuccess, "Item added to cart")
		feed.Notify(ctx, models.NotificationError, "Error while placing order")

		// Act
		items := feed.Drain()

		// Assert
		require.Len(t, items, 2)
		assert.Equal(t, "Item added to cart", items[0].Message)
		assert.Equal(t, models.NotificationSuccess, items[0].Level)
		assert.Equal(t, "Error while placing order", items[1].Message)
		assert.NotEqual(t, items[0].ID, items[1].ID)
		assert.False(t, items[0].CreatedAt.IsZero())
		assert.Equal(t, 0, feed.Len())
	})

	t.Run("Empty drain is an empty slice", func(t *testing.T) {
		feed := notify.NewFeed(10)

		items := feed.Drain()

		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("Oldest entries are dropped when full", func(t *testing.T) {
		feed := notify.NewFeed(3)

		for i := range 5 {
			feed.Notify(ctx, models.NotificationInfo, fmt.Sprintf("msg-%d", i))
		}

		items := feed.Drain()
		require.Len(t, items, 3)
		assert.Equal(t, "msg-2", items[0].Message)
		assert.Equal(t, "msg-4", items[2].Message)
	})

	t.Run("Non-positive size falls back to default", func(t *testing.T) {
		feed := notify.NewFeed(0)

		for range notify.DefaultFeedSize + 5 {
			feed.Notify(ctx, models.NotificationInfo, "x")
		}

		assert.Equal(t, notify.DefaultFeedSize, feed.Len())
	})

	t.Run("Concurrent writers", func(t *testing.T) {
		feed := notify.NewFeed(1000)
		var wg sync.WaitGroup

		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				feed.Notify(ctx, models.NotificationInfo, "x")
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, feed.Len())
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := notify.NewLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	logger.Notify(t.Context(), models.NotificationError, "Error while placing order")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "User notification", line["msg"])
	assert.Equal(t, "Error while placing order", line["message"])
	assert.Equal(t, "error", line["notification_level"])
}

func TestFanout(t *testing.T) {
	first := notify.NewFeed(5)
	second := notify.NewFeed(5)

	notify.Fanout{first, second}.Notify(t.Context(), models.NotificationSuccess, "Cart cleared")

	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 1, second.Len())
}
