package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/pkg/validate"
)

func TestCartItemQuantityBound(t *testing.T) {
	item := CartItem{ProductID: primitive.NewObjectID(), Quantity: 0}
	errs := validate.Struct(item)
	assert.Equal(t, "must be at least 1", errs["quantity"])

	item.Quantity = 1
	assert.False(t, validate.HasErrors(validate.Struct(item)))
}

func TestUserEmailAndStatus(t *testing.T) {
	u := User{
		Email:     "not-an-email",
		Password:  "secret",
		Status:    "Suspended",
		ClientID:  primitive.NewObjectID(),
		ProfileID: primitive.NewObjectID(),
	}
	errs := validate.Struct(u)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "status")

	u.Email = "ana@example.com"
	u.Status = UserStatusPendingValidation
	assert.False(t, validate.HasErrors(validate.Struct(u)))
}

func TestUserRequiredReferences(t *testing.T) {
	u := User{Email: "ana@example.com", Password: "secret", Status: UserStatusActive}
	errs := validate.Struct(u)
	assert.Contains(t, errs, "clientId")
	assert.Contains(t, errs, "profileId")
}

func TestProductPriceNeverNegative(t *testing.T) {
	p := Product{Name: "Roll", Price: -1, CategoryID: primitive.NewObjectID()}
	errs := validate.Struct(p)
	assert.Equal(t, "must be at least 0", errs["price"])

	p.Price = 0
	assert.False(t, validate.HasErrors(validate.Struct(p)))
}

func TestOrderEnumMembership(t *testing.T) {
	for _, s := range OrderStatuses() {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, OrderStatus("Shipped").Valid())

	assert.True(t, DeliveryMethodShipping.Valid())
	assert.True(t, DeliveryMethodPickup.Valid())
	assert.False(t, DeliveryMethod("Courier").Valid())
}

func TestOrderValidation(t *testing.T) {
	o := Order{
		ClientID:       primitive.NewObjectID(),
		Total:          -10,
		Status:         OrderStatusNew,
		DeliveryMethod: DeliveryMethodPickup,
		Items: []OrderItem{
			{ProductID: primitive.NewObjectID(), Quantity: 0, PriceAtPurchase: -5, ProductName: ""},
		},
	}
	errs := validate.Struct(o)
	assert.Contains(t, errs, "total")
	assert.Contains(t, errs, "items[0].quantity")
	assert.Contains(t, errs, "items[0].priceAtPurchase")
	assert.Contains(t, errs, "items[0].productName")
}

func TestAddressRequiredFields(t *testing.T) {
	errs := validate.Struct(Address{Street: "Av. Italia 1000"})
	assert.Contains(t, errs, "district")
	assert.Contains(t, errs, "region")
	assert.NotContains(t, errs, "instructions")
}
