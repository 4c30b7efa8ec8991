package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/pkg/validate"
)

// ClientAddressStore is the slice of the client repository the address
// flow uses.
type ClientAddressStore interface {
	PushAddress(ctx context.Context, clientID primitive.ObjectID, addr models.Address) (*models.Client, error)
	SetAddress(ctx context.Context, clientID, addressID primitive.ObjectID, addr models.Address) (*models.Client, error)
}

type ClientService struct {
	clients ClientAddressStore
}

func NewClientService(clients ClientAddressStore) *ClientService {
	return &ClientService{clients: clients}
}

// AddAddress appends a new address to the client's address list.
func (s *ClientService) AddAddress(ctx context.Context, clientID primitive.ObjectID, in AddressInput) (*models.Client, error) {
	addr := in.model()
	if errs := validate.Struct(&addr); validate.HasErrors(errs) {
		return nil, validationErr(errs)
	}
	addr.ID = primitive.NewObjectID()
	return s.clients.PushAddress(ctx, clientID, addr)
}

// EditAddress replaces the address with the given id in place. A client or
// address id that does not match reports NotFound and modifies nothing.
func (s *ClientService) EditAddress(ctx context.Context, clientID, addressID primitive.ObjectID, in AddressInput) (*models.Client, error) {
	addr := in.model()
	if errs := validate.Struct(&addr); validate.HasErrors(errs) {
		return nil, validationErr(errs)
	}
	return s.clients.SetAddress(ctx, clientID, addressID, addr)
}
