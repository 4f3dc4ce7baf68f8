package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/shopity/internal/models"
	"github.com/aaravmahajanofficial/shopity/internal/storage"
	"github.com/aaravmahajanofficial/shopity/pkg/commerceapi"
	sendgrid_client "github.com/aaravmahajanofficial/shopity/pkg/sendgrid"
	"github.com/sendgrid/sendgrid-go"
	"github.com/stretchr/testify/mock"
)

var (
	_ commerceapi.Client            = (*CommerceClient)(nil)
	_ sendgrid_client.ReceiptSender = (*ReceiptSender)(nil)
	_ storage.Store                 = (*Store)(nil)
)

type CommerceClient struct {
	mock.Mock
}

func (m *CommerceClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *CommerceClient) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *CommerceClient) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) error {
	args := m.Called(ctx, req)

	return args.Error(0)
}

func (m *CommerceClient) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *CommerceClient) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

func (m *CommerceClient) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

type ReceiptSender struct {
	mock.Mock
}

func (m *ReceiptSender) Send(ctx context.Context, receipt *models.EmailReceipt) error {
	args := m.Called(ctx, receipt)

	return args.Error(0)
}

func (m *ReceiptSender) GetSendGridClient() *sendgrid.Client {
	return nil
}

// Store is a storage.Store whose calls are scripted per test.
type Store struct {
	mock.Mock
}

func (m *Store) Get(ctx context.Context, key string, value any) (bool, error) {
	args := m.Called(ctx, key, value)

	return args.Bool(0), args.Error(1)
}

func (m *Store) Set(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)

	return args.Error(0)
}

func (m *Store) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)

	return args.Error(0)
}

func (m *Store) Close() error {
	return m.Called().Error(0)
}
