package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/shopity/internal/models"
	service "github.com/aaravmahajanofficial/shopity/internal/services"
	"github.com/stretchr/testify/mock"
)

var (
	_ service.CartService     = (*CartService)(nil)
	_ service.WishlistService = (*WishlistService)(nil)
	_ service.CheckoutService = (*CheckoutService)(nil)
	_ service.OrderService    = (*OrderService)(nil)
	_ service.SessionService  = (*SessionService)(nil)
	_ service.ProductService  = (*ProductService)(nil)
)

type CartService struct {
	mock.Mock
}

func (m *CartService) Load(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *CartService) Add(ctx context.Context, entry models.CartEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *CartService) Remove(ctx context.Context, productID string) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *CartService) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *CartService) List() []models.CartEntry {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).([]models.CartEntry)
}

func (m *CartService) ListPersisted(ctx context.Context) ([]models.CartEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.CartEntry), args.Error(1)
}

func (m *CartService) Subscribe(fn func([]models.CartEntry)) {
	m.Called(fn)
}

type WishlistService struct {
	mock.Mock
}

func (m *WishlistService) Load(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *WishlistService) Add(ctx context.Context, entry models.WishlistEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *WishlistService) Remove(ctx context.Context, productID string) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *WishlistService) List() []models.WishlistEntry {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).([]models.WishlistEntry)
}

func (m *WishlistService) ListPersisted(ctx context.Context) ([]models.WishlistEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.WishlistEntry), args.Error(1)
}

func (m *WishlistService) Contains(ctx context.Context, productID string) (bool, error) {
	args := m.Called(ctx, productID)

	return args.Bool(0), args.Error(1)
}

type CheckoutService struct {
	mock.Mock
}

func (m *CheckoutService) Increase(productID string) (int, error) {
	args := m.Called(productID)

	return args.Int(0), args.Error(1)
}

func (m *CheckoutService) Decrease(productID string) (int, error) {
	args := m.Called(productID)

	return args.Int(0), args.Error(1)
}

func (m *CheckoutService) Quantity(productID string) int {
	return m.Called(productID).Int(0)
}

func (m *CheckoutService) Quantities() map[string]int {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).(map[string]int)
}

func (m *CheckoutService) Summary() models.CartSummary {
	return m.Called().Get(0).(models.CartSummary)
}

func (m *CheckoutService) Lines() []models.OrderLine {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).([]models.OrderLine)
}

type OrderService struct {
	mock.Mock
}

func (m *OrderService) Submit(ctx context.Context, form *models.CheckoutForm) (*models.CheckoutResult, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CheckoutResult), args.Error(1)
}

func (m *OrderService) State() models.CheckoutState {
	return m.Called().Get(0).(models.CheckoutState)
}

func (m *OrderService) ListOrders(ctx context.Context) ([]models.TrackedOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.TrackedOrder), args.Error(1)
}

type SessionService struct {
	mock.Mock
}

func (m *SessionService) Load(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *SessionService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.User), args.Error(1)
}

func (m *SessionService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.User), args.Error(1)
}

func (m *SessionService) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *SessionService) AppendAddress(ctx context.Context, address string) ([]string, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]string), args.Error(1)
}

func (m *SessionService) Current() (*models.User, bool) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}

	return args.Get(0).(*models.User), args.Bool(1)
}

func (m *SessionService) AccessToken() string {
	return m.Called().String(0)
}

type ProductService struct {
	mock.Mock
}

func (m *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *ProductService) GetProduct(ctx context.Context, id string) (*models.ProductDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.ProductDetail), args.Error(1)
}

func (m *ProductService) AddReview(ctx context.Context, id string, req *models.AddReviewRequest) (*models.Review, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Review), args.Error(1)
}
