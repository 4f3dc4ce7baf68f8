package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/shopity/internal/api/middleware"
	"github.com/aaravmahajanofficial/shopity/internal/models"
	service "github.com/aaravmahajanofficial/shopity/internal/services"
	"github.com/aaravmahajanofficial/shopity/internal/utils"
	"github.com/aaravmahajanofficial/shopity/internal/utils/response"
)

type SessionHandler struct {
	sessionService service.SessionService
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// GetSession godoc
//	@Summary		Get the session
//	@Description	Reports whether a user is signed in and, if so, who.
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	models.SessionResponse	"Session state"
//	@Router			/session [get]
func (h *SessionHandler) GetSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		user, ok := h.sessionService.Current()

		response.Success(w, http.StatusOK, models.SessionResponse{Authenticated: ok, User: user})
	}
}

// Login godoc
//	@Summary		Sign in
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest		true	"Email and password"
//	@Success		200			{object}	models.SessionResponse	"Signed in"
//	@Failure		400			{object}	response.ErrorResponse	"Missing or malformed fields"
//	@Failure		502			{object}	response.ErrorResponse	"Invalid email or password"
//	@Router			/session/login [post]
func (h *SessionHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseBody(r, w, &req) {
			logger.Warn("Invalid login input")
			return
		}

		user, err := h.sessionService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Login failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User logged in", slog.String("userId", user.ID))
		response.Success(w, http.StatusOK, models.SessionResponse{Authenticated: true, User: user})
	}
}

// Register godoc
//	@Summary		Create an account
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.RegisterRequest	true	"Full name, email and password"
//	@Success		201		{object}	models.SessionResponse	"Registered and signed in"
//	@Failure		400		{object}	response.ErrorResponse	"Missing or malformed fields"
//	@Failure		502		{object}	response.ErrorResponse	"Registration rejected"
//	@Router			/session/register [post]
func (h *SessionHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseBody(r, w, &req) {
			logger.Warn("Invalid registration input")
			return
		}

		user, err := h.sessionService.Register(r.Context(), &req)
		if err != nil {
			logger.Warn("Registration failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User registered", slog.String("userId", user.ID))
		response.Success(w, http.StatusCreated, models.SessionResponse{Authenticated: true, User: user})
	}
}

// Logout godoc
//	@Summary		Sign out
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	models.SessionResponse	"Signed out"
//	@Failure		500	{object}	response.ErrorResponse	"Storage failure"
//	@Router			/session [delete]
func (h *SessionHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.sessionService.Logout(r.Context()); err != nil {
			logger.Error("Logout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User logged out")
		response.Success(w, http.StatusOK, models.SessionResponse{Authenticated: false})
	}
}

// AddAddress godoc
//	@Summary		Add a shipping address
//	@Description	Appends an address to the signed-in user's address book. Requires a signed-in user.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			address	body		models.AddAddressRequest	true	"Address line"
//	@Success		201		{object}	models.AddressBookResponse	"Updated address book"
//	@Failure		400		{object}	response.ErrorResponse		"Empty address"
//	@Failure		401		{object}	response.ErrorResponse		"No signed-in user"
//	@Router			/session/addresses [post]
func (h *SessionHandler) AddAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddAddressRequest
		if !utils.ParseBody(r, w, &req) {
			logger.Warn("Invalid address input")
			return
		}

		addresses, err := h.sessionService.AppendAddress(r.Context(), req.Address)
		if err != nil {
			logger.Warn("Failed to add address", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Address added", slog.Int("count", len(addresses)))
		response.Success(w, http.StatusCreated, models.AddressBookResponse{Addresses: addresses})
	}
}
