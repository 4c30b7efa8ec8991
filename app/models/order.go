package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderCollection is the entity store collection for orders.
const OrderCollection = "orders"

// OrderStatus is the fulfilment state of an order. Any status may move to
// any other status; no transition graph is enforced.
type OrderStatus string

const (
	OrderStatusNew            OrderStatus = "New"
	OrderStatusPreparing      OrderStatus = "Preparing"
	OrderStatusReadyForPickup OrderStatus = "ReadyForPickup"
	OrderStatusOutForDelivery OrderStatus = "OutForDelivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusCancelled      OrderStatus = "Cancelled"
)

// OrderStatuses lists every recognised value.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusNew, OrderStatusPreparing, OrderStatusReadyForPickup,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled,
	}
}

// Valid reports whether s is a member of the enumeration.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusPreparing, OrderStatusReadyForPickup,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// DeliveryMethod is how an order reaches the client.
type DeliveryMethod string

const (
	DeliveryMethodShipping DeliveryMethod = "Shipping"
	DeliveryMethodPickup   DeliveryMethod = "Pickup"
)

// Valid reports whether m is a member of the enumeration.
func (m DeliveryMethod) Valid() bool {
	return m == DeliveryMethodShipping || m == DeliveryMethodPickup
}

// OrderItem is an immutable snapshot of a product at order-creation time.
// PriceAtPurchase and ProductName are captured once and never re-read from
// the live Product.
type OrderItem struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID       primitive.ObjectID `bson:"productId" json:"productId" validate:"required"`
	Quantity        int                `bson:"quantity" json:"quantity" validate:"gte=1"`
	PriceAtPurchase float64            `bson:"priceAtPurchase" json:"priceAtPurchase" validate:"gte=0"`
	ProductName     string             `bson:"productName" json:"productName" validate:"required"`
}

// Order is a placed order. ShippingAddress is a value copy owned by the
// order, not a reference into the client's address list.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID        primitive.ObjectID `bson:"clientId" json:"clientId" validate:"required"`
	Items           []OrderItem        `bson:"items" json:"items" validate:"dive"`
	Total           float64            `bson:"total" json:"total" validate:"gte=0"`
	Status          OrderStatus        `bson:"status" json:"status" validate:"required,oneof=New Preparing ReadyForPickup OutForDelivery Delivered Cancelled"`
	DeliveryMethod  DeliveryMethod     `bson:"deliveryMethod" json:"deliveryMethod" validate:"required,oneof=Shipping Pickup"`
	ShippingAddress *Address           `bson:"shippingAddress,omitempty" json:"shippingAddress,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
