package graphql

import (
	"time"

	"github.com/graphql-go/graphql"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/services"
	"github.com/shashiranjanraj/nikkei/pkg/errors"
)

// Input object types and the helpers that decode graphql-go's
// map-shaped arguments into service inputs. A malformed hex id anywhere
// in a document is a validation error, not an internal one.

func objectIDArg(args map[string]interface{}, key string) (primitive.ObjectID, error) {
	s, _ := args[key].(string)
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, errors.Newf(errors.CodeValidation, "%s is not a valid id", key)
	}
	return id, nil
}

func strArg(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func intArg(m map[string]interface{}, key string) int {
	n, _ := m[key].(int)
	return n
}

func floatArg(m map[string]interface{}, key string) float64 {
	f, _ := m[key].(float64)
	return f
}

func optString(m map[string]interface{}, key string) *string {
	if s, ok := m[key].(string); ok {
		return &s
	}
	return nil
}

func optBool(m map[string]interface{}, key string) *bool {
	if v, ok := m[key].(bool); ok {
		return &v
	}
	return nil
}

func optTime(m map[string]interface{}, key string) *time.Time {
	if t, ok := m[key].(time.Time); ok {
		return &t
	}
	return nil
}

func inputMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

var profileInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProfileInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

func decodeProfileInput(m map[string]interface{}) services.ProfileInput {
	return services.ProfileInput{
		Name:        strArg(m, "name"),
		Description: optString(m, "description"),
	}
}

var categoryInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CategoryInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

func decodeCategoryInput(m map[string]interface{}) services.CategoryInput {
	return services.CategoryInput{
		Name:        strArg(m, "name"),
		Description: optString(m, "description"),
	}
}

var productInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"price":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"imageUrl":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"available":   &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"categoryId":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
	},
})

func decodeProductInput(m map[string]interface{}) (services.ProductInput, error) {
	categoryID, err := objectIDArg(m, "categoryId")
	if err != nil {
		return services.ProductInput{}, err
	}
	return services.ProductInput{
		Name:        strArg(m, "name"),
		Description: optString(m, "description"),
		Price:       floatArg(m, "price"),
		ImageURL:    optString(m, "imageUrl"),
		Available:   optBool(m, "available"),
		CategoryID:  categoryID,
	}, nil
}

var addressInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "AddressInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"street":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"district":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"region":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"instructions": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

func decodeAddressInput(m map[string]interface{}) services.AddressInput {
	return services.AddressInput{
		Street:       strArg(m, "street"),
		District:     strArg(m, "district"),
		Region:       strArg(m, "region"),
		Instructions: optString(m, "instructions"),
	}
}

var clientInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ClientInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"fullName":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"nationalId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"birthDate":  &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"sex":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"phone":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"addresses":  &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(addressInput))},
	},
})

func decodeClientInput(m map[string]interface{}) services.ClientInput {
	in := services.ClientInput{
		FullName:   strArg(m, "fullName"),
		NationalID: strArg(m, "nationalId"),
		BirthDate:  optTime(m, "birthDate"),
		Sex:        optString(m, "sex"),
		Phone:      strArg(m, "phone"),
	}
	if raw, ok := m["addresses"].([]interface{}); ok {
		for _, a := range raw {
			in.Addresses = append(in.Addresses, decodeAddressInput(inputMap(a)))
		}
	}
	return in
}

var userInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"profileId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"client":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(clientInput)},
	},
})

func decodeUserInput(m map[string]interface{}) (services.UserInput, error) {
	profileID, err := objectIDArg(m, "profileId")
	if err != nil {
		return services.UserInput{}, err
	}
	return services.UserInput{
		Email:     strArg(m, "email"),
		Password:  strArg(m, "password"),
		ProfileID: profileID,
		Client:    decodeClientInput(inputMap(m["client"])),
	}, nil
}

var userUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"password":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"profileId": &graphql.InputObjectFieldConfig{Type: graphql.ID},
		"status":    &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

func decodeUserUpdateInput(m map[string]interface{}) (services.UserUpdateInput, error) {
	in := services.UserUpdateInput{
		Email:    optString(m, "email"),
		Password: optString(m, "password"),
		Status:   optString(m, "status"),
	}
	if _, ok := m["profileId"]; ok {
		profileID, err := objectIDArg(m, "profileId")
		if err != nil {
			return services.UserUpdateInput{}, err
		}
		in.ProfileID = &profileID
	}
	return in, nil
}

var orderItemInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderItemInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"productId":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"quantity":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"priceAtPurchase": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"productName":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var orderInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"items":           &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderItemInput)))},
		"total":           &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"deliveryMethod":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"shippingAddress": &graphql.InputObjectFieldConfig{Type: addressInput},
	},
})

func decodeOrderInput(m map[string]interface{}) (services.OrderInput, error) {
	in := services.OrderInput{
		Total:          floatArg(m, "total"),
		DeliveryMethod: strArg(m, "deliveryMethod"),
	}
	if raw, ok := m["items"].([]interface{}); ok {
		for _, it := range raw {
			im := inputMap(it)
			productID, err := objectIDArg(im, "productId")
			if err != nil {
				return services.OrderInput{}, err
			}
			in.Items = append(in.Items, services.OrderItemInput{
				ProductID:       productID,
				Quantity:        intArg(im, "quantity"),
				PriceAtPurchase: floatArg(im, "priceAtPurchase"),
				ProductName:     strArg(im, "productName"),
			})
		}
	}
	if am, ok := m["shippingAddress"].(map[string]interface{}); ok {
		addr := decodeAddressInput(am)
		in.ShippingAddress = &addr
	}
	return in, nil
}
