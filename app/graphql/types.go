package graphql

import (
	"context"

	"github.com/graphql-go/graphql"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/pkg/errors"
)

// builder owns the object types. Reference fields close over the readers so
// User inlines its Client and Profile, Product its Category, and Cart/Order
// their Client and per-item Product. A dangling reference resolves to null
// rather than failing the read.
type builder struct {
	deps Deps

	ack       *graphql.Object
	profile   *graphql.Object
	category  *graphql.Object
	product   *graphql.Object
	address   *graphql.Object
	client    *graphql.Object
	user      *graphql.Object
	cartItem  *graphql.Object
	cart      *graphql.Object
	orderItem *graphql.Object
	order     *graphql.Object
}

func newBuilder(deps Deps) *builder {
	b := &builder{deps: deps}
	b.ack = ackType()
	b.profile = profileType()
	b.category = categoryType()
	b.product = b.productType()
	b.address = addressType()
	b.client = b.clientType()
	b.user = b.userType()
	b.cartItem = b.cartItemType()
	b.cart = b.cartType()
	b.orderItem = b.orderItemType()
	b.order = b.orderType()
	return b
}

// toPtrs re-slices value elements as pointers so every object resolver sees
// the same source shape.
func toPtrs[T any](xs []T) []*T {
	out := make([]*T, len(xs))
	for i := range xs {
		out[i] = &xs[i]
	}
	return out
}

// nilOnDangle maps a NotFound from a reference lookup to a null field.
func nilOnDangle[T any](doc *T, err error) (interface{}, error) {
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

func (b *builder) findClient(ctx context.Context, id primitive.ObjectID) (interface{}, error) {
	c, err := b.deps.Clients.FindByID(ctx, id)
	return nilOnDangle(c, err)
}

func (b *builder) findProduct(ctx context.Context, id primitive.ObjectID) (interface{}, error) {
	p, err := b.deps.Products.FindByID(ctx, id)
	return nilOnDangle(p, err)
}

func ackType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Ack",
		Fields: graphql.Fields{
			"status":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})
}

// Ack acknowledges a mutation with no entity to return.
type Ack struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func deleted(what string) *Ack {
	return &Ack{Status: "200", Message: what + " deleted"}
}

func profileType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Profile",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Profile).ID.Hex(), nil
				},
			},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
		},
	})
}

func categoryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Category).ID.Hex(), nil
				},
			},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
		},
	})
}

func (b *builder) productType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Product).ID.Hex(), nil
				},
			},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
			"price":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"imageUrl":    &graphql.Field{Type: graphql.String},
			"available":   &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"categoryId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Product).CategoryID.Hex(), nil
				},
			},
			"category": &graphql.Field{
				Type: b.category,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					prod := p.Source.(*models.Product)
					c, err := b.deps.Categories.FindByID(p.Context, prod.CategoryID)
					return nilOnDangle(c, err)
				},
			},
		},
	})
}

func addressType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Address",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Address).ID.Hex(), nil
				},
			},
			"street":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"district":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"region":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"instructions": &graphql.Field{Type: graphql.String},
		},
	})
}

func (b *builder) clientType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Client",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Client).ID.Hex(), nil
				},
			},
			"fullName":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"nationalId": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"birthDate":  &graphql.Field{Type: graphql.DateTime},
			"sex":        &graphql.Field{Type: graphql.String},
			"phone":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"addresses": &graphql.Field{
				Type: graphql.NewList(b.address),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return toPtrs(p.Source.(*models.Client).Addresses), nil
				},
			},
		},
	})
}

func (b *builder) userType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.User).ID.Hex(), nil
				},
			},
			"email":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"status": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"clientId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.User).ClientID.Hex(), nil
				},
			},
			"profileId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.User).ProfileID.Hex(), nil
				},
			},
			"client": &graphql.Field{
				Type: b.client,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.findClient(p.Context, p.Source.(*models.User).ClientID)
				},
			},
			"profile": &graphql.Field{
				Type: b.profile,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					pr, err := b.deps.Profiles.FindByID(p.Context, p.Source.(*models.User).ProfileID)
					return nilOnDangle(pr, err)
				},
			},
		},
	})
}

func (b *builder) cartItemType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "CartItem",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.CartItem).ID.Hex(), nil
				},
			},
			"quantity": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"productId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.CartItem).ProductID.Hex(), nil
				},
			},
			"product": &graphql.Field{
				Type: b.product,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.findProduct(p.Context, p.Source.(*models.CartItem).ProductID)
				},
			},
		},
	})
}

func (b *builder) cartType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Cart",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Cart).ID.Hex(), nil
				},
			},
			"clientId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Cart).ClientID.Hex(), nil
				},
			},
			"client": &graphql.Field{
				Type: b.client,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.findClient(p.Context, p.Source.(*models.Cart).ClientID)
				},
			},
			"items": &graphql.Field{
				Type: graphql.NewList(b.cartItem),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return toPtrs(p.Source.(*models.Cart).Items), nil
				},
			},
			"lastAccessed": &graphql.Field{Type: graphql.DateTime},
		},
	})
}

func (b *builder) orderItemType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "OrderItem",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.OrderItem).ID.Hex(), nil
				},
			},
			"quantity":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"priceAtPurchase": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"productName":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"productId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.OrderItem).ProductID.Hex(), nil
				},
			},
			"product": &graphql.Field{
				Type: b.product,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.findProduct(p.Context, p.Source.(*models.OrderItem).ProductID)
				},
			},
		},
	})
}

func (b *builder) orderType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Order",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Order).ID.Hex(), nil
				},
			},
			"clientId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Order).ClientID.Hex(), nil
				},
			},
			"client": &graphql.Field{
				Type: b.client,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.findClient(p.Context, p.Source.(*models.Order).ClientID)
				},
			},
			"items": &graphql.Field{
				Type: graphql.NewList(b.orderItem),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return toPtrs(p.Source.(*models.Order).Items), nil
				},
			},
			"total":          &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"status":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"deliveryMethod": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"shippingAddress": &graphql.Field{
				Type: b.address,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					addr := p.Source.(*models.Order).ShippingAddress
					if addr == nil {
						return nil, nil
					}
					return addr, nil
				},
			},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})
}
