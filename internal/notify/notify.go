// Package notify delivers transient user-facing messages (toasts) to the UI
// and to the structured log.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/shopity/internal/models"
	"github.com/google/uuid"
)

const DefaultFeedSize = 50

type Notifier interface {
	Notify(ctx context.Context, level models.NotificationLevel, message string)
}

// Feed keeps the most recent notifications until the UI drains them.
type Feed struct {
	mu    sync.Mutex
	size  int
	items []models.Notification
	now   func() time.Time
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = DefaultFeedSize
	}

	return &Feed{size: size, now: time.Now}
}

// Notify implements Notifier. The oldest entry is dropped once the feed is full.
func (f *Feed) Notify(_ context.Context, level models.NotificationLevel, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append(f.items, models.Notification{
		ID:        uuid.New(),
		Level:     level,
		Message:   message,
		CreatedAt: f.now().UTC(),
	})

	if overflow := len(f.items) - f.size; overflow > 0 {
		f.items = append([]models.Notification(nil), f.items[overflow:]...)
	}
}

// Drain returns the pending notifications, oldest first, and empties the feed.
func (f *Feed) Drain() []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := f.items
	f.items = nil

	if items == nil {
		return []models.Notification{}
	}

	return items
}

func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.items)
}

// Logger writes every notification to a slog.Logger.
type Logger struct {
	logger *slog.Logger
}

func NewLogger(logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}

	return &Logger{logger: logger}
}

// Notify implements Notifier.
func (l *Logger) Notify(ctx context.Context, level models.NotificationLevel, message string) {
	logLevel := slog.LevelInfo
	if level == models.NotificationError {
		logLevel = slog.LevelWarn
	}

	l.logger.LogAttrs(ctx, logLevel, "User notification",
		slog.String("notification_level", string(level)),
		slog.String("message", message),
	)
}

// Fanout forwards every notification to each of its notifiers in order.
type Fanout []Notifier

// Notify implements Notifier.
func (f Fanout) Notify(ctx context.Context, level models.NotificationLevel, message string) {
	for _, n := range f {
		n.Notify(ctx, level, message)
	}
}
