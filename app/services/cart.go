package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
)

// CartStore is the slice of the cart repository the service uses.
type CartStore interface {
	FindByClient(ctx context.Context, clientID primitive.ObjectID) (*models.Cart, error)
	PushItem(ctx context.Context, clientID primitive.ObjectID, item models.CartItem) (*models.Cart, error)
	SetItemQuantity(ctx context.Context, clientID, itemID primitive.ObjectID, quantity int) (*models.Cart, error)
	PullItem(ctx context.Context, clientID, itemID primitive.ObjectID) (*models.Cart, error)
}

type CartService struct {
	carts    CartStore
	products ProductFinder
}

func NewCartService(carts CartStore, products ProductFinder) *CartService {
	return &CartService{carts: carts, products: products}
}

// AddItem appends a line item to the client's cart. Carts are provisioned
// out of band, so a client without one gets NotFound rather than a fresh
// cart. Adding the same product twice leaves two separate lines.
func (s *CartService) AddItem(ctx context.Context, clientID, productID primitive.ObjectID, quantity int) (*models.Cart, error) {
	if _, err := s.carts.FindByClient(ctx, clientID); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, validationErr(map[string]string{"quantity": "quantity must be at least 1"})
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, refCheck(err, "product")
	}
	item := models.CartItem{
		ID:        primitive.NewObjectID(),
		ProductID: productID,
		Quantity:  quantity,
	}
	return s.carts.PushItem(ctx, clientID, item)
}

// UpdateItemQuantity sets the quantity of a single line item.
func (s *CartService) UpdateItemQuantity(ctx context.Context, clientID, itemID primitive.ObjectID, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, validationErr(map[string]string{"quantity": "quantity must be at least 1"})
	}
	return s.carts.SetItemQuantity(ctx, clientID, itemID, quantity)
}

// RemoveItem deletes a line item from the cart. Removing an item that is
// not there succeeds and returns the cart unchanged.
func (s *CartService) RemoveItem(ctx context.Context, clientID, itemID primitive.ObjectID) (*models.Cart, error) {
	return s.carts.PullItem(ctx, clientID, itemID)
}
