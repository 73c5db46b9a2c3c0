package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zeromade/storefront/internal/events"
	"github.com/zeromade/storefront/internal/logging"
	"github.com/zeromade/storefront/internal/models"
	"github.com/zeromade/storefront/internal/pricing"
	"github.com/zeromade/storefront/internal/service"
	"github.com/zeromade/storefront/internal/store"
)

type Service struct {
	Store    store.Store
	Pricing  pricing.Config
	Producer *events.Producer
}

type PlaceOrderInput struct {
	Items    []models.LineItem `json:"items"`
	Customer *models.Customer  `json:"customer"`
	Payment  *models.Payment   `json:"payment"`
}

// PlaceOrder prices the items, fills in defaults and appends the order to
// the snapshot. The caller owns clearing its cart on success.
func (s *Service) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "orders.place_order")

	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", service.ErrValidation)
	}

	lines := make([]pricing.Line, len(in.Items))
	for i, it := range in.Items {
		lines[i] = pricing.Line{Price: it.Price, Quantity: it.Quantity}
	}
	breakdown := s.Pricing.Compute(lines)

	payment := models.Payment{Status: "pending"}
	if in.Payment != nil {
		payment = *in.Payment
	}

	items := make([]models.LineItem, len(in.Items))
	copy(items, in.Items)

	order := models.Order{
		ID:        "order_" + uuid.NewString(),
		Items:     items,
		Customer:  in.Customer,
		Payment:   payment,
		Subtotal:  breakdown.Subtotal,
		Shipping:  breakdown.Shipping,
		Total:     breakdown.Total,
		Status:    models.OrderStatusCreated,
		CreatedAt: time.Now().UTC(),
	}

	err := s.Store.Update(ctx, func(snap *store.Snapshot) error {
		snap.Orders = append(snap.Orders, order)
		return nil
	})
	if err != nil {
		return nil, err
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	event := map[string]any{
		"type":    "order_created",
		"orderID": order.ID,
		"total":   order.Total,
	}
	if err := s.Producer.Publish(pubCtx, events.TopicOrderEvents, order.ID, event); err != nil {
		l.Error("event_publish_failed", "order_id", order.ID, "error", err)
	}

	l.Info("order_created", "order_id", order.ID, "total", order.Total)
	return &order, nil
}

func (s *Service) Order(ctx context.Context, id string) (*models.Order, error) {
	snap, err := s.Store.Read(ctx)
	if err != nil {
		return nil, err
	}
	for i := range snap.Orders {
		if snap.Orders[i].ID == id {
			return &snap.Orders[i], nil
		}
	}
	return nil, fmt.Errorf("%w: order %q", service.ErrNotFound, id)
}

// Orders filters by exact, case-sensitive customer email when one is given,
// otherwise returns everything.
func (s *Service) Orders(ctx context.Context, email string) ([]models.Order, error) {
	snap, err := s.Store.Read(ctx)
	if err != nil {
		return nil, err
	}
	if email == "" {
		return snap.Orders, nil
	}
	matched := []models.Order{}
	for _, o := range snap.Orders {
		if o.Customer != nil && o.Customer.Email == email {
			matched = append(matched, o)
		}
	}
	return matched, nil
}
