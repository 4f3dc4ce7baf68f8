package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/shopity/internal/errors"
	"github.com/aaravmahajanofficial/shopity/internal/models"
	service "github.com/aaravmahajanofficial/shopity/internal/services"
	"github.com/aaravmahajanofficial/shopity/internal/utils/response"
)

type userContextKey struct{}

var UserContextKey = userContextKey{}

// SessionGuard rejects requests made while no user is signed in.
type SessionGuard struct {
	session service.SessionService
}

func NewSessionGuard(session service.SessionService) *SessionGuard {
	return &SessionGuard{session: session}
}

func (g *SessionGuard) RequireSession(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		user, ok := g.session.Current()
		if !ok {
			logger.Warn("Request requires a signed-in user")
			response.Error(w, errors.UnauthorizedError("User not found"))
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)

		requestScopedLogger := logger.With(slog.String("userId", user.ID))
		ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*models.User)

	return user, ok
}
