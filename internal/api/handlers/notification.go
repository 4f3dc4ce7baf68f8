package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/shopity/internal/models"
	"github.com/aaravmahajanofficial/shopity/internal/utils/response"
)

// NotificationFeed is the pending toast queue shown by the UI.
type NotificationFeed interface {
	Drain() []models.Notification
}

type NotificationHandler struct {
	feed NotificationFeed
}

func NewNotificationHandler(feed NotificationFeed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// ListNotifications godoc
//	@Summary		Drain pending notifications
//	@Description	Returns the queued toasts, oldest first, and empties the queue.
//	@Tags			Notifications
//	@Produce		json
//	@Success		200	{object}	models.NotificationListResponse	"Pending notifications"
//	@Router			/notifications [get]
func (h *NotificationHandler) ListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, models.NotificationListResponse{Notifications: h.feed.Drain()})
	}
}
