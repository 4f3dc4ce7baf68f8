package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/aaravmahajanofficial/shopity/internal/errors"
	"github.com/aaravmahajanofficial/shopity/internal/metrics"
	"github.com/aaravmahajanofficial/shopity/internal/models"
	"github.com/aaravmahajanofficial/shopity/internal/notify"
	"github.com/aaravmahajanofficial/shopity/internal/utils"
	"github.com/aaravmahajanofficial/shopity/pkg/commerceapi"
	"github.com/aaravmahajanofficial/shopity/pkg/sendgrid"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type OrderService interface {
	Submit(ctx context.Context, form *models.CheckoutForm) (*models.CheckoutResult, error)
	State() models.CheckoutState
	ListOrders(ctx context.Context) ([]models.TrackedOrder, error)
}

// OrderSubmitter places orders for the signed-in user. One submission runs at
// a time; the state returns to idle once the attempt settles.
type OrderSubmitter struct {
	api      commerceapi.Client
	cart     CartService
	checkout CheckoutService
	session  SessionService
	notifier notify.Notifier
	receipts sendgrid.ReceiptSender
	validate *validator.Validate

	submitMu sync.Mutex
	mu       sync.RWMutex
	state    models.CheckoutState
}

type OrderOption func(*OrderSubmitter)

// WithReceipts mails a receipt to the customer after each placed order.
func WithReceipts(sender sendgrid.ReceiptSender) OrderOption {
	return func(s *OrderSubmitter) { s.receipts = sender }
}

func NewOrderSubmitter(api commerceapi.Client, cart CartService, checkout CheckoutService, session SessionService, notifier notify.Notifier, opts ...OrderOption) *OrderSubmitter {
	s := &OrderSubmitter{
		api:      api,
		cart:     cart,
		checkout: checkout,
		session:  session,
		notifier: notifier,
		validate: utils.NewValidator(),
		state:    models.CheckoutIdle,
	}

	for _, o := range opts {
		o(s)
	}

	return s
}

// State implements OrderService.
func (s *OrderSubmitter) State() models.CheckoutState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Submit implements OrderService.
func (s *OrderSubmitter) Submit(ctx context.Context, form *models.CheckoutForm) (*models.CheckoutResult, error) {

	user, ok := s.session.Current()
	if !ok {
		return nil, errors.UnauthorizedError("User not found")
	}

	s.submitMu.Lock()
	defer s.submitMu.Unlock()
	defer s.setState(models.CheckoutIdle)

	logger := slog.Default().With(slog.String("userId", user.ID))

	// Validating
	s.setState(models.CheckoutValidating)

	if err := s.validateForm(form); err != nil {
		logger.Warn("Checkout form incomplete", slog.String("error", err.Detail))
		s.fail(ctx, metrics.ResultInvalid, err.Message)
		return nil, err
	}

	lines := s.checkout.Lines()
	if len(lines) == 0 {
		err := errors.BadRequestError("Cannot place an order with an empty cart")
		s.fail(ctx, metrics.ResultInvalid, err.Message)
		return nil, err
	}

	req := &models.CreateOrderRequest{
		CartItems:     lines,
		OrderedBy:     user.ID,
		PaymentMethod: form.PaymentMethod,
		Address:       strings.TrimSpace(form.Address),
		CustomerEmail: strings.TrimSpace(form.Email),
		CustomerPhone: strings.TrimSpace(form.Phone),
	}
	total := orderTotal(lines)

	// Submitting
	s.setState(models.CheckoutSubmitting)

	if err := s.api.CreateOrder(ctx, req); err != nil {
		logger.Error("Order submission failed", slog.String("error", err.Error()))
		s.fail(ctx, metrics.ResultFailed, MsgOrderFailed)
		return nil, remoteFailure(err, MsgOrderFailed)
	}

	// Success
	s.setState(models.CheckoutSuccess)
	metrics.RecordOrderSubmission(metrics.ResultSuccess)
	logger.Info("Order placed", slog.String("total", total.StringFixed(2)), slog.Int("lines", len(lines)))

	if err := s.cart.Clear(ctx); err != nil {
		logger.Error("Failed to clear cart after order", slog.String("error", err.Error()))
	}

	s.notifier.Notify(ctx, models.NotificationSuccess, MsgOrderPlaced)
	s.sendReceipt(ctx, logger, req, total)

	return &models.CheckoutResult{State: models.CheckoutSuccess, Total: total, Lines: lines}, nil
}

// ListOrders implements OrderService. Orders are fetched for the signed-in user.
func (s *OrderSubmitter) ListOrders(ctx context.Context) ([]models.TrackedOrder, error) {

	user, ok := s.session.Current()
	if !ok {
		return nil, errors.UnauthorizedError("User not found")
	}

	orders, err := s.api.ListOrders(ctx, user.ID)
	if err != nil {
		return nil, remoteFailure(err, "Failed to fetch orders")
	}

	tracked := make([]models.TrackedOrder, 0, len(orders))
	for _, o := range orders {
		tracked = append(tracked, models.TrackedOrder{Order: o, Total: o.Total()})
	}

	return tracked, nil
}

func (s *OrderSubmitter) validateForm(form *models.CheckoutForm) *errors.AppError {
	if form == nil {
		return errors.MissingFieldsError([]string{"address", "paymentMethod", "email", "phone"})
	}

	trimmed := models.CheckoutForm{
		Address:       strings.TrimSpace(form.Address),
		PaymentMethod: models.PaymentMethod(strings.TrimSpace(string(form.PaymentMethod))),
		Email:         strings.TrimSpace(form.Email),
		Phone:         strings.TrimSpace(form.Phone),
	}

	if err := s.validate.Struct(trimmed); err != nil {
		if missing := utils.FailedFields(err, "required"); len(missing) > 0 {
			return errors.MissingFieldsError(missing)
		}

		return errors.ValidationError("Invalid checkout details").WithError(err)
	}

	return nil
}

func (s *OrderSubmitter) fail(ctx context.Context, result, message string) {
	s.setState(models.CheckoutFailed)
	metrics.RecordOrderSubmission(result)
	s.notifier.Notify(ctx, models.NotificationError, message)
}

func (s *OrderSubmitter) setState(state models.CheckoutState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state
}

func (s *OrderSubmitter) sendReceipt(ctx context.Context, logger *slog.Logger, req *models.CreateOrderRequest, total decimal.Decimal) {
	if s.receipts == nil {
		return
	}

	var text strings.Builder

	for _, line := range req.CartItems {
		fmt.Fprintf(&text, "%d x %s  %s\n", line.Quantity, line.ItemName,
			decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity))).StringFixed(2))
	}

	fmt.Fprintf(&text, "\nTotal: %s\nPayment: %s\nShipping to: %s\n", total.StringFixed(2), req.PaymentMethod, req.Address)

	receipt := &models.EmailReceipt{
		To:      req.CustomerEmail,
		Subject: "Your Shopity order",
		Text:    text.String(),
	}

	if err := s.receipts.Send(ctx, receipt); err != nil {
		logger.Warn("Failed to send order receipt", slog.String("error", err.Error()))
	}
}

func orderTotal(lines []models.OrderLine) decimal.Decimal {
	return models.Order{CartItems: lines}.Total()
}

var _ OrderService = (*OrderSubmitter)(nil)
