package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/shopity/internal/errors"
	"github.com/aaravmahajanofficial/shopity/internal/models"
	"github.com/aaravmahajanofficial/shopity/internal/notify"
	"github.com/aaravmahajanofficial/shopity/internal/storage"
	"github.com/aaravmahajanofficial/shopity/internal/utils"
	"github.com/aaravmahajanofficial/shopity/pkg/commerceapi"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
)

type SessionService interface {
	Load(ctx context.Context) error
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Logout(ctx context.Context) error
	AppendAddress(ctx context.Context, address string) ([]string, error)
	Current() (*models.User, bool)
	AccessToken() string
}

// Session owns the "user" and "accessToken" keys. It is authenticated only
// while both are held and the token has not expired.
type Session struct {
	api      commerceapi.Client
	store    storage.Store
	notifier notify.Notifier
	validate *validator.Validate
	now      func() time.Time

	writeMu sync.Mutex
	mu      sync.RWMutex
	user    *models.User
	token   string
}

func NewSession(api commerceapi.Client, store storage.Store, notifier notify.Notifier) *Session {
	return &Session{
		api:      api,
		store:    store,
		notifier: notifier,
		validate: utils.NewValidator(),
		now:      time.Now,
	}
}

// Load implements SessionService. A missing or expired session is not an error.
func (s *Session) Load(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var token string
	var user models.User

	tokenFound, err := s.store.Get(ctx, storage.AccessTokenKey, &token)
	if err != nil {
		s.set(nil, "")
		return errors.StorageError("Failed to load session").WithError(err)
	}

	userFound, err := s.store.Get(ctx, storage.UserKey, &user)
	if err != nil {
		s.set(nil, "")
		return errors.StorageError("Failed to load session").WithError(err)
	}

	if !tokenFound || !userFound || token == "" {
		s.set(nil, "")
		return nil
	}

	if s.expired(token) {
		slog.Info("Stored access token has expired", slog.String("userId", user.ID))
		s.set(nil, token)
		return nil
	}

	s.set(&user, token)

	return nil
}

// Login implements SessionService.
func (s *Session) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {

	if err := s.validate.Struct(req); err != nil {
		return nil, formError(err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	resp, err := s.api.Login(ctx, req)
	if err != nil {
		appErr := remoteFailure(err, "Invalid email or password")
		s.notifier.Notify(ctx, models.NotificationError, appErr.Message)
		return nil, appErr
	}

	if err := s.persist(ctx, resp); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, models.NotificationSuccess, MsgLoggedIn)

	return cloneUser(&resp.User), nil
}

// Register implements SessionService.
func (s *Session) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {

	if err := s.validate.Struct(req); err != nil {
		return nil, formError(err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	resp, err := s.api.Register(ctx, req)
	if err != nil {
		appErr := remoteFailure(err, "Registration failed")
		s.notifier.Notify(ctx, models.NotificationError, appErr.Message)
		return nil, appErr
	}

	if err := s.persist(ctx, resp); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, models.NotificationSuccess, MsgRegistered)

	return cloneUser(&resp.User), nil
}

// Logout implements SessionService.
func (s *Session) Logout(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	for _, key := range []string{storage.AccessTokenKey, storage.UserKey} {
		if err := s.store.Remove(ctx, key); err != nil {
			return errors.StorageError("Failed to clear session").WithError(err)
		}
	}

	s.set(nil, "")
	s.notifier.Notify(ctx, models.NotificationInfo, MsgLoggedOut)

	return nil
}

// AppendAddress implements SessionService. It returns the persisted address book.
func (s *Session) AppendAddress(ctx context.Context, address string) ([]string, error) {

	address = strings.TrimSpace(address)
	if address == "" {
		s.notifier.Notify(ctx, models.NotificationError, MsgEnterAddress)
		return nil, errors.ValidationError(MsgEnterAddress)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current, ok := s.Current()
	if !ok {
		return nil, errors.UnauthorizedError("User not found")
	}

	current.Addresses = append(current.Addresses, address)

	if err := s.store.Set(ctx, storage.UserKey, current); err != nil {
		slog.Error("Failed to persist address book", slog.String("userId", current.ID), slog.String("error", err.Error()))
		return nil, errors.StorageError("Failed to save address").WithError(err)
	}

	s.mu.Lock()
	s.user = current
	s.mu.Unlock()

	s.notifier.Notify(ctx, models.NotificationSuccess, MsgAddressAdded)

	return slices.Clone(current.Addresses), nil
}

// Current implements SessionService. The returned user is a copy.
func (s *Session) Current() (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil, false
	}

	return cloneUser(s.user), true
}

// AccessToken implements SessionService and commerceapi.TokenSource.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

func (s *Session) persist(ctx context.Context, resp *models.AuthResponse) error {

	if err := s.store.Set(ctx, storage.AccessTokenKey, resp.AccessToken); err != nil {
		return errors.StorageError("Failed to save session").WithError(err)
	}

	if err := s.store.Set(ctx, storage.UserKey, resp.User); err != nil {
		if rmErr := s.store.Remove(ctx, storage.AccessTokenKey); rmErr != nil {
			slog.Error("Failed to roll back access token", slog.String("error", rmErr.Error()))
		}

		return errors.StorageError("Failed to save session").WithError(err)
	}

	s.set(cloneUser(&resp.User), resp.AccessToken)

	return nil
}

func (s *Session) set(user *models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
	s.token = token
}

// expired reports whether token is a JWT whose exp claim has passed. Opaque
// tokens never expire locally; the signature is the backend's concern.
func (s *Session) expired(token string) bool {
	claims := jwt.MapClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Time.Before(s.now())
}

func formError(err error) *errors.AppError {
	if missing := utils.FailedFields(err, "required"); len(missing) > 0 {
		return errors.MissingFieldsError(missing)
	}

	if invalid := utils.FailedFields(err, "email"); len(invalid) > 0 {
		return errors.AddValidationError(invalid[0], "must be a valid email address")
	}

	if weak := utils.FailedFields(err, "strongpassword"); len(weak) > 0 {
		return errors.AddValidationError(weak[0], "must be at least 8 characters with an upper-case letter, a lower-case letter and a digit")
	}

	return errors.ValidationError("Invalid input data").WithError(err)
}

func cloneUser(u *models.User) *models.User {
	c := *u
	c.Addresses = slices.Clone(u.Addresses)

	return &c
}

var (
	_ SessionService          = (*Session)(nil)
	_ commerceapi.TokenSource = (*Session)(nil)
)
