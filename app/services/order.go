package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/pkg/validate"
)

// OrderStore is the slice of the order repository the service uses.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error)
}

// OrderItemInput carries one line of an order. Name and price are the
// caller's snapshot of the product at purchase time and are stored as
// given, never recomputed from the catalog.
type OrderItemInput struct {
	ProductID       primitive.ObjectID
	Quantity        int
	PriceAtPurchase float64
	ProductName     string
}

// OrderInput carries a new order for a client.
type OrderInput struct {
	Items           []OrderItemInput
	Total           float64
	DeliveryMethod  string
	ShippingAddress *AddressInput
}

type OrderService struct {
	orders   OrderStore
	clients  ClientFinder
	products ProductFinder
}

func NewOrderService(orders OrderStore, clients ClientFinder, products ProductFinder) *OrderService {
	return &OrderService{orders: orders, clients: clients, products: products}
}

// Create places an order. Product references must resolve at creation
// time, but each line keeps the submitted name and price, so later catalog
// edits or deletions do not touch it.
func (s *OrderService) Create(ctx context.Context, clientID primitive.ObjectID, in OrderInput) (*models.Order, error) {
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return nil, refCheck(err, "client")
	}

	order := &models.Order{
		ClientID:       clientID,
		Total:          in.Total,
		Status:         models.OrderStatusNew,
		DeliveryMethod: models.DeliveryMethod(in.DeliveryMethod),
		CreatedAt:      time.Now().UTC(),
	}
	for _, it := range in.Items {
		if _, err := s.products.FindByID(ctx, it.ProductID); err != nil {
			return nil, refCheck(err, "product")
		}
		order.Items = append(order.Items, models.OrderItem{
			ProductID:       it.ProductID,
			Quantity:        it.Quantity,
			PriceAtPurchase: it.PriceAtPurchase,
			ProductName:     it.ProductName,
		})
	}
	if in.ShippingAddress != nil {
		addr := in.ShippingAddress.model()
		addr.ID = primitive.NewObjectID()
		order.ShippingAddress = &addr
	}
	if errs := validate.Struct(order); validate.HasErrors(errs) {
		return nil, validationErr(errs)
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ChangeStatus sets the order's status. There is no transition graph: any
// status can follow any other.
func (s *OrderService) ChangeStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error) {
	st := models.OrderStatus(status)
	if !st.Valid() {
		return nil, validationErr(map[string]string{"status": "status is not a valid value"})
	}
	return s.orders.SetStatus(ctx, id, st)
}

// RequestCancellation moves the order straight to Cancelled. The reason is
// accepted for the caller's benefit but not persisted.
func (s *OrderService) RequestCancellation(ctx context.Context, id primitive.ObjectID, reason string) (*models.Order, error) {
	_ = reason
	return s.orders.SetStatus(ctx, id, models.OrderStatusCancelled)
}
