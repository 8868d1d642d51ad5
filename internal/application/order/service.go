package order

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/HarmanGIT10/Ironic-gym-backend/internal/domain"
	"github.com/HarmanGIT10/Ironic-gym-backend/internal/pkg/id"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldStatus      = "status"
	fieldDeliveredAt = "delivered_at"
)

type Service interface {
	Create(ctx context.Context, userID string, req domain.CreateOrderRequest) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, req domain.UpdateOrderStatusRequest) (*domain.Order, error)
}

type orderStore interface {
	Put(ctx context.Context, o *domain.Order) error
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, orderID string, updates map[string]interface{}) error
}

type mailer interface {
	SendHTML(to, subject, htmlBody string) error
}

type smsSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

type service struct {
	repo   orderStore
	mailer mailer
	sms    smsSender // nil when SNS is not configured
}

func NewService(repo orderStore, mailer mailer, sms smsSender) Service {
	return &service{repo: repo, mailer: mailer, sms: sms}
}

// Create persists the order as paid and sends the receipt email.
// The email is best-effort: a dispatch failure is logged and the order is
// still reported as created.
func (s *service) Create(ctx context.Context, userID string, req domain.CreateOrderRequest) (*domain.Order, error) {
	now := time.Now().UTC()
	o := &domain.Order{
		OrderID:         id.New(),
		UserID:          userID,
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
		TotalPrice:      req.TotalPrice,
		IsPaid:          true,
		PaidAt:          &now,
		Status:          domain.OrderStatusReceived,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Put(ctx, o); err != nil {
		return nil, err
	}

	html, err := renderReceipt(o)
	if err != nil {
		slog.Warn("failed to render order receipt", "order_id", o.OrderID, "err", err)
		return o, nil
	}
	subject := fmt.Sprintf("Your IRONIC Store Order Confirmation (#%s)", o.OrderID)
	if err := s.mailer.SendHTML(o.ShippingAddress.Email, subject, html); err != nil {
		slog.Warn("failed to send order confirmation email", "order_id", o.OrderID, "to", o.ShippingAddress.Email, "err", err)
	}
	return o, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListAll(ctx)
}

// UpdateStatus applies a status and/or delivery-date change. When the order
// transitions into Dispatched, the customer gets a best-effort SMS.
func (s *service) UpdateStatus(ctx context.Context, orderID string, req domain.UpdateOrderStatusRequest) (*domain.Order, error) {
	o, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Status != nil {
		if !domain.ValidOrderStatus(*req.Status) {
			return nil, fmt.Errorf("invalid order status %q: %w", *req.Status, domain.ErrBadRequest)
		}
		updates[fieldStatus] = *req.Status
	}
	if req.DeliveredAt != nil {
		updates[fieldDeliveredAt] = req.DeliveredAt.UTC().Format(time.RFC3339)
	}
	if len(updates) == 0 {
		return o, nil
	}
	if err := s.repo.Update(ctx, orderID, updates); err != nil {
		return nil, err
	}

	dispatched := req.Status != nil &&
		*req.Status == domain.OrderStatusDispatched &&
		o.Status != domain.OrderStatusDispatched
	if dispatched && s.sms != nil && o.ShippingAddress.Phone != "" {
		msg := fmt.Sprintf("IRONIC Store: your order #%s has been dispatched.", o.OrderID)
		if err := s.sms.SendSMS(ctx, o.ShippingAddress.Phone, msg); err != nil {
			slog.Warn("failed to send dispatch SMS", "order_id", o.OrderID, "err", err)
		}
	}

	return s.repo.Get(ctx, orderID)
}
