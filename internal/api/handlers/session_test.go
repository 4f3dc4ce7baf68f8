package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/shopity/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/shopity/internal/errors"
	"github.com/aaravmahajanofficial/shopity/internal/models"
	"github.com/aaravmahajanofficial/shopity/internal/services/mocks"
	"github.com/aaravmahajanofficial/shopity/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetSession(t *testing.T) {
	t.Run("Signed in", func(t *testing.T) {
		mockSessionService := new(mocks.SessionService)
		sessionHandler := handlers.NewSessionHandler(mockSessionService)
		mockSessionService.On("Current").Return(&models.User{ID: "u1", FullName: "Ada"}, true).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/session", nil, nil)
		rr := httptest.NewRecorder()

		sessionHandler.GetSession().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope[models.SessionResponse](t, rr.Body)
		assert.True(t, env.Data.Authenticated)
		require.NotNil(t, env.Data.User)
		assert.Equal(t, "Ada", env.Data.User.FullName)
	})

	t.Run("Signed out", func(t *testing.T) {
		mockSessionService := new(mocks.SessionService)
		sessionHandler := handlers.NewSessionHandler(mockSessionService)
		mockSessionService.On("Current").Return(nil, false).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/session", nil, nil)
		rr := httptest.NewRecorder()

		sessionHandler.GetSession().ServeHTTP(rr, req)

		env := decodeEnvelope[models.SessionResponse](t, rr.Body)
		assert.False(t, env.Data.Authenticated)
		assert.Nil(t, env.Data.User)
	})
}

func TestLogin(t *testing.T) {
	creds := models.LoginRequest{Email: "ada@example.com", Password: "Secret123"}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockSessionService := new(mocks.SessionService)
		sessionHandler := handlers.NewSessionHandler(mockSessionService)
		mockSessionService.On("Login", mock.Anything, &creds).Return(&models.User{ID: "u1"}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/session/login", jsonBody(t, creds), nil)
		rr := httptest.NewRecorder()

		// Act
		sessionHandler.Login().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope[models.SessionResponse](t, rr.Body)
		assert.True(t, env.Data.Authenticated)
		assert.Equal(t, "u1", env.Data.User.ID)
		mockSessionService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Credentials", func(t *testing.T) {
		mockSessionService := new(mocks.SessionService)
		sessionHandler := handlers.NewSessionHandler(mockSessionService)
		mockSessionService.On("Login", mock.Anything, &creds).
			Return(nil, appErrors.RemoteError("Invalid email or password").WithDetail("Invalid credentials")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/session/login", jsonBody(t, creds), nil)
		rr := httptest.NewRecorder()

		sessionHandler.Login().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		env := decodeEnvelope[any](t, rr.Body)
		require.NotNil(t, env.Error)
		assert.Equal(t, "Invalid email or password", env.Error.Message)
		assert.Equal(t, []string{"Invalid credentials"}, env.Error.Details)
	})
}

func TestRegister(t *testing.T) {
	reqBody := models.RegisterRequest{FullName: "Ada", Email: "ada@example.com", Password: "Secret123"}

	mockSessionService := new(mocks.SessionService)
	sessionHandler := handlers.NewSessionHandler(mockSessionService)
	mockSessionService.On("Register", mock.Anything, &reqBody).Return(&models.User{ID: "u1"}, nil).Once()

	req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/session/register", jsonBody(t, reqBody), nil)
	rr := httptest.NewRecorder()

	sessionHandler.Register().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	mockSessionService.AssertExpectations(t)
}

func TestLogout(t *testing.T) {
	mockSessionService := new(mocks.SessionService)
	sessionHandler := handlers.NewSessionHandler(mockSessionService)
	mockSessionService.On("Logout", mock.Anything).Return(nil).Once()

	req := testutils.CreateTestRequestWithoutContext(http.MethodDelete, "/api/v1/session", nil, nil)
	rr := httptest.NewRecorder()

	sessionHandler.Logout().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope[models.SessionResponse](t, rr.Body)
	assert.False(t, env.Data.Authenticated)
}

func TestAddAddress(t *testing.T) {
	user := &models.User{ID: "u1"}

	t.Run("Success", func(t *testing.T) {
		mockSessionService := new(mocks.SessionService)
		sessionHandler := handlers.NewSessionHandler(mockSessionService)
		mockSessionService.On("AppendAddress", mock.Anything, "2 Side St").Return([]string{"1 Main St", "2 Side St"}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/session/addresses", jsonBody(t, models.AddAddressRequest{Address: "2 Side St"}), user, nil)
		rr := httptest.NewRecorder()

		sessionHandler.AddAddress().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		env := decodeEnvelope[models.AddressBookResponse](t, rr.Body)
		assert.Equal(t, []string{"1 Main St", "2 Side St"}, env.Data.Addresses)
	})

	t.Run("Failure - Empty Address", func(t *testing.T) {
		mockSessionService := new(mocks.SessionService)
		sessionHandler := handlers.NewSessionHandler(mockSessionService)
		mockSessionService.On("AppendAddress", mock.Anything, "").Return(nil, appErrors.ValidationError("Please enter an address")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/session/addresses", jsonBody(t, models.AddAddressRequest{}), user, nil)
		rr := httptest.NewRecorder()

		sessionHandler.AddAddress().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env := decodeEnvelope[any](t, rr.Body)
		assert.Equal(t, "Please enter an address", env.Error.Message)
	})
}
