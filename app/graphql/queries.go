package graphql

import (
	"github.com/graphql-go/graphql"
)

func (b *builder) queryRoot() *graphql.Object {
	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}
	clientIDArg := graphql.FieldConfigArgument{
		"clientId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"profiles": &graphql.Field{
				Type: graphql.NewList(b.profile),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					profiles, err := b.deps.Profiles.All(p.Context)
					if err != nil {
						return nil, err
					}
					return toPtrs(profiles), nil
				},
			},
			"users": &graphql.Field{
				Type: graphql.NewList(b.user),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					users, err := b.deps.Users.All(p.Context)
					if err != nil {
						return nil, err
					}
					return toPtrs(users), nil
				},
			},
			"user": &graphql.Field{
				Type: b.user,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := objectIDArg(p.Args, "id")
					if err != nil {
						return nil, err
					}
					return b.deps.Users.FindByID(p.Context, id)
				},
			},
			"client": &graphql.Field{
				Type: b.client,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := objectIDArg(p.Args, "id")
					if err != nil {
						return nil, err
					}
					return b.deps.Clients.FindByID(p.Context, id)
				},
			},
			"categories": &graphql.Field{
				Type: graphql.NewList(b.category),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					categories, err := b.deps.Categories.All(p.Context)
					if err != nil {
						return nil, err
					}
					return toPtrs(categories), nil
				},
			},
			"products": &graphql.Field{
				Type: graphql.NewList(b.product),
				Args: graphql.FieldConfigArgument{
					"categoryId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, ok := p.Args["categoryId"]; ok {
						categoryID, err := objectIDArg(p.Args, "categoryId")
						if err != nil {
							return nil, err
						}
						products, err := b.deps.Products.ByCategory(p.Context, categoryID)
						if err != nil {
							return nil, err
						}
						return toPtrs(products), nil
					}
					products, err := b.deps.Products.All(p.Context)
					if err != nil {
						return nil, err
					}
					return toPtrs(products), nil
				},
			},
			"product": &graphql.Field{
				Type: b.product,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := objectIDArg(p.Args, "id")
					if err != nil {
						return nil, err
					}
					return b.deps.Products.FindByID(p.Context, id)
				},
			},
			"cart": &graphql.Field{
				Type: b.cart,
				Args: clientIDArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					clientID, err := objectIDArg(p.Args, "clientId")
					if err != nil {
						return nil, err
					}
					return b.deps.Carts.FindByClient(p.Context, clientID)
				},
			},
			"orders": &graphql.Field{
				Type: graphql.NewList(b.order),
				Args: clientIDArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					clientID, err := objectIDArg(p.Args, "clientId")
					if err != nil {
						return nil, err
					}
					orders, err := b.deps.Orders.ByClient(p.Context, clientID)
					if err != nil {
						return nil, err
					}
					return toPtrs(orders), nil
				},
			},
			"order": &graphql.Field{
				Type: b.order,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := objectIDArg(p.Args, "id")
					if err != nil {
						return nil, err
					}
					return b.deps.Orders.FindByID(p.Context, id)
				},
			},
		},
	})
}
