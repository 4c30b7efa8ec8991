package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/pkg/errors"
)

func orderFixtures(t *testing.T) (*OrderService, *fakeProductStore, *models.Client, *models.Product) {
	t.Helper()
	ctx := context.Background()

	clients := newFakeClientStore()
	client := &models.Client{FullName: "Ana Sato", NationalID: "12345678-9", Phone: "+56 9 1234 5678"}
	require.NoError(t, clients.Create(ctx, client))

	products := newFakeProductStore()
	product := &models.Product{Name: "Acevichado Roll", Price: 5000, Available: true, CategoryID: primitive.NewObjectID()}
	require.NoError(t, products.Create(ctx, product))

	return NewOrderService(newFakeOrderStore(), clients, products), products, client, product
}

func orderInput(product *models.Product) OrderInput {
	return OrderInput{
		Items: []OrderItemInput{{
			ProductID:       product.ID,
			Quantity:        2,
			PriceAtPurchase: product.Price,
			ProductName:     product.Name,
		}},
		Total:          2 * product.Price,
		DeliveryMethod: "Pickup",
	}
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()
	svc, _, client, product := orderFixtures(t)

	o, err := svc.Create(ctx, client.ID, orderInput(product))
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusNew, o.Status)
	assert.False(t, o.CreatedAt.IsZero())
	require.Len(t, o.Items, 1)
	assert.Equal(t, product.Price, o.Items[0].PriceAtPurchase)
}

func TestOrderService_Create_SnapshotSurvivesCatalogEdit(t *testing.T) {
	ctx := context.Background()
	svc, products, client, product := orderFixtures(t)

	o, err := svc.Create(ctx, client.ID, orderInput(product))
	require.NoError(t, err)

	// Catalog changes after the fact do not touch the order's lines.
	_, err = products.UpdateByID(ctx, product.ID, bson.M{"price": 9900.0, "name": "Renamed"})
	require.NoError(t, err)
	require.NoError(t, products.DeleteByID(ctx, product.ID))

	assert.Equal(t, 5000.0, o.Items[0].PriceAtPurchase)
	assert.Equal(t, "Acevichado Roll", o.Items[0].ProductName)
}

func TestOrderService_Create_UnknownClient(t *testing.T) {
	svc, _, _, product := orderFixtures(t)

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), orderInput(product))
	require.Error(t, err)
	assert.Equal(t, errors.CodeBadInput, errors.CodeOf(err))
}

func TestOrderService_Create_UnknownProduct(t *testing.T) {
	svc, _, client, product := orderFixtures(t)

	in := orderInput(product)
	in.Items[0].ProductID = primitive.NewObjectID()
	_, err := svc.Create(context.Background(), client.ID, in)
	require.Error(t, err)
	assert.Equal(t, errors.CodeBadInput, errors.CodeOf(err))
}

func TestOrderService_Create_BadDeliveryMethod(t *testing.T) {
	svc, _, client, product := orderFixtures(t)

	in := orderInput(product)
	in.DeliveryMethod = "Drone"
	_, err := svc.Create(context.Background(), client.ID, in)
	require.Error(t, err)
	assert.Equal(t, errors.CodeValidation, errors.CodeOf(err))
}

func TestOrderService_Create_WithShippingAddress(t *testing.T) {
	ctx := context.Background()
	svc, _, client, product := orderFixtures(t)

	in := orderInput(product)
	in.DeliveryMethod = "Shipping"
	in.ShippingAddress = &AddressInput{Street: "Av. Providencia 1234", District: "Providencia", Region: "RM"}

	o, err := svc.Create(ctx, client.ID, in)
	require.NoError(t, err)
	require.NotNil(t, o.ShippingAddress)
	assert.False(t, o.ShippingAddress.ID.IsZero())
}

func TestOrderService_ChangeStatus_AnyTransition(t *testing.T) {
	ctx := context.Background()
	svc, _, client, product := orderFixtures(t)

	o, err := svc.Create(ctx, client.ID, orderInput(product))
	require.NoError(t, err)

	got, err := svc.ChangeStatus(ctx, o.ID, "Delivered")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, got.Status)

	// No transition graph: Delivered back to New is allowed.
	got, err = svc.ChangeStatus(ctx, o.ID, "New")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusNew, got.Status)

	_, err = svc.ChangeStatus(ctx, o.ID, "Shipped")
	require.Error(t, err)
	assert.Equal(t, errors.CodeValidation, errors.CodeOf(err))
}

func TestOrderService_RequestCancellation(t *testing.T) {
	ctx := context.Background()
	svc, _, client, product := orderFixtures(t)

	o, err := svc.Create(ctx, client.ID, orderInput(product))
	require.NoError(t, err)

	got, err := svc.RequestCancellation(ctx, o.ID, "changed my mind")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, got.Status)
}
