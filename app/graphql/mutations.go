package graphql

import (
	"github.com/graphql-go/graphql"
)

func (b *builder) mutationRoot() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createProfile": &graphql.Field{
				Type: b.profile,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(profileInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.deps.ProfileService.Create(p.Context, decodeProfileInput(inputMap(p.Args["input"])))
				},
			},
			"updateProfile": &graphql.Field{
				Type: b.profile,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(profileInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := objectIDArg(p.Args, "id")
					if err != nil {
						return nil, err
					}
					return b.deps.ProfileService.Update(p.Context, id, decodeProfileInput(inputMap(p.Args["input"])))
				},
			},
			"deleteProfile": &graphql.Field{
				Type: b.ack,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := objectIDArg(p.Args, "id")
					if err != nil {
						return nil, err
					}
					if err := b.deps.ProfileService.Delete(p.Context, id); err != nil {
						return nil, err
					}
					return deleted("profile"), nil
				},
			},

			"createUser": &graphql.Field{
				Type: b.user,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(userInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in, err := decodeUserInput(inputMap(p.Args["input"]))
					if err != nil {
						return nil, err
					}
					return b.deps.UserService.Create(p.Context, in)
				},
			},
			"updateUser": &graphql.Field{
				Type: b.user,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(userUpdateInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := objectIDArg(p.Args, "id")
					if err != nil {
						return nil, err
					}
					in, err := decodeUserUpdateInput(inputMap(p.Args["input"]))
					if err != nil {
						return nil, err
					}
					return b.deps.UserService.Update(p.Context, id, in)
				},
			},
			"deleteUser": &graphql.Field{
				Type: b.ack,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := objectIDArg(p.Args, "id")
					if err != nil {
						return nil, err
					}
					if err := b.deps.UserService.Delete(p.Context, id); err != nil {
						return nil, err
					}
					return deleted("user"), nil
				},
			},
			"changeUserStatus": &graphql.Field{
				Type: b.user,
				Args: graphql.FieldConfigArgument{
					"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"status": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := objectIDArg(p.Args, "id")
					if err != nil {
						return nil, err
					}
					return b.deps.UserService.ChangeStatus(p.Context, id, strArg(p.Args, "status"))
				},
			},

			"addAddress": &graphql.Field{
				Type: b.client,
				Args: graphql.FieldConfigArgument{
					"clientId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"address":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(addressInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					clientID, err := objectIDArg(p.Args, "clientId")
					if err != nil {
						return nil, err
					}
					return b.deps.ClientService.AddAddress(p.Context, clientID, decodeAddressInput(inputMap(p.Args["address"])))
				},
			},
			"editAddress": &graphql.Field{
				Type: b.client,
				Args: graphql.FieldConfigArgument{
					"clientId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"addressId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"address":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(addressInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					clientID, err := objectIDArg(p.Args, "clientId")
					if err != nil {
						return nil, err
					}
					addressID, err := objectIDArg(p.Args, "addressId")
					if err != nil {
						return nil, err
					}
					return b.deps.ClientService.EditAddress(p.Context, clientID, addressID, decodeAddressInput(inputMap(p.Args["address"])))
				},
			},

			"createCategory": &graphql.Field{
				Type: b.category,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(categoryInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.deps.CategoryService.Create(p.Context, decodeCategoryInput(inputMap(p.Args["input"])))
				},
			},
			"updateCategory": &graphql.Field{
				Type: b.category,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(categoryInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := objectIDArg(p.Args, "id")
					if err != nil {
						return nil, err
					}
					return b.deps.CategoryService.Update(p.Context, id, decodeCategoryInput(inputMap(p.Args["input"])))
				},
			},
			"deleteCategory": &graphql.Field{
				Type: b.ack,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := objectIDArg(p.Args, "id")
					if err != nil {
						return nil, err
					}
					if err := b.deps.CategoryService.Delete(p.Context, id); err != nil {
						return nil, err
					}
					return deleted("category"), nil
				},
			},

			"createProduct": &graphql.Field{
				Type: b.product,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in, err := decodeProductInput(inputMap(p.Args["input"]))
					if err != nil {
						return nil, err
					}
					return b.deps.ProductService.Create(p.Context, in)
				},
			},
			"updateProduct": &graphql.Field{
				Type: b.product,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := objectIDArg(p.Args, "id")
					if err != nil {
						return nil, err
					}
					in, err := decodeProductInput(inputMap(p.Args["input"]))
					if err != nil {
						return nil, err
					}
					return b.deps.ProductService.Update(p.Context, id, in)
				},
			},
			"deleteProduct": &graphql.Field{
				Type: b.ack,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := objectIDArg(p.Args, "id")
					if err != nil {
						return nil, err
					}
					if err := b.deps.ProductService.Delete(p.Context, id); err != nil {
						return nil, err
					}
					return deleted("product"), nil
				},
			},
			"changeProductAvailability": &graphql.Field{
				Type: b.product,
				Args: graphql.FieldConfigArgument{
					"id":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"available": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Boolean)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := objectIDArg(p.Args, "id")
					if err != nil {
						return nil, err
					}
					available, _ := p.Args["available"].(bool)
					return b.deps.ProductService.SetAvailability(p.Context, id, available)
				},
			},

			"addCartItem": &graphql.Field{
				Type: b.cart,
				Args: graphql.FieldConfigArgument{
					"clientId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"productId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"quantity":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					clientID, err := objectIDArg(p.Args, "clientId")
					if err != nil {
						return nil, err
					}
					productID, err := objectIDArg(p.Args, "productId")
					if err != nil {
						return nil, err
					}
					return b.deps.CartService.AddItem(p.Context, clientID, productID, intArg(p.Args, "quantity"))
				},
			},
			"updateCartItemQuantity": &graphql.Field{
				Type: b.cart,
				Args: graphql.FieldConfigArgument{
					"clientId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"itemId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"quantity": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					clientID, err := objectIDArg(p.Args, "clientId")
					if err != nil {
						return nil, err
					}
					itemID, err := objectIDArg(p.Args, "itemId")
					if err != nil {
						return nil, err
					}
					return b.deps.CartService.UpdateItemQuantity(p.Context, clientID, itemID, intArg(p.Args, "quantity"))
				},
			},
			"removeCartItem": &graphql.Field{
				Type: b.cart,
				Args: graphql.FieldConfigArgument{
					"clientId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"itemId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					clientID, err := objectIDArg(p.Args, "clientId")
					if err != nil {
						return nil, err
					}
					itemID, err := objectIDArg(p.Args, "itemId")
					if err != nil {
						return nil, err
					}
					return b.deps.CartService.RemoveItem(p.Context, clientID, itemID)
				},
			},

			"createOrder": &graphql.Field{
				Type: b.order,
				Args: graphql.FieldConfigArgument{
					"clientId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(orderInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					clientID, err := objectIDArg(p.Args, "clientId")
					if err != nil {
						return nil, err
					}
					in, err := decodeOrderInput(inputMap(p.Args["input"]))
					if err != nil {
						return nil, err
					}
					return b.deps.OrderService.Create(p.Context, clientID, in)
				},
			},
			"changeOrderStatus": &graphql.Field{
				Type: b.order,
				Args: graphql.FieldConfigArgument{
					"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"status": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := objectIDArg(p.Args, "id")
					if err != nil {
						return nil, err
					}
					return b.deps.OrderService.ChangeStatus(p.Context, id, strArg(p.Args, "status"))
				},
			},
			"requestOrderCancellation": &graphql.Field{
				Type: b.order,
				Args: graphql.FieldConfigArgument{
					"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"reason": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := objectIDArg(p.Args, "id")
					if err != nil {
						return nil, err
					}
					return b.deps.OrderService.RequestCancellation(p.Context, id, strArg(p.Args, "reason"))
				},
			},
		},
	})
}
