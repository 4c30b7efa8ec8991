package graphql

import (
	"context"
	"fmt"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/app/services"
	"github.com/shashiranjanraj/nikkei/pkg/errors"
)

// In-memory fixtures implementing both the reader interfaces and the
// service store interfaces, so documents execute end to end without a
// running store.

type memProfiles struct {
	docs map[primitive.ObjectID]*models.Profile
}

func (m *memProfiles) FindByID(_ context.Context, id primitive.ObjectID) (*models.Profile, error) {
	p, ok := m.docs[id]
	if !ok {
		return nil, errors.New(errors.CodeNotFound, "profile not found")
	}
	return p, nil
}

func (m *memProfiles) All(_ context.Context) ([]models.Profile, error) {
	var out []models.Profile
	for _, p := range m.docs {
		out = append(out, *p)
	}
	return out, nil
}

func (m *memProfiles) Create(_ context.Context, profile *models.Profile) error {
	profile.ID = primitive.NewObjectID()
	m.docs[profile.ID] = profile
	return nil
}

func (m *memProfiles) UpdateByID(_ context.Context, id primitive.ObjectID, fields bson.M) (*models.Profile, error) {
	p, ok := m.docs[id]
	if !ok {
		return nil, errors.New(errors.CodeNotFound, "profile not found")
	}
	if v, ok := fields["name"]; ok {
		p.Name = v.(string)
	}
	return p, nil
}

func (m *memProfiles) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	delete(m.docs, id)
	return nil
}

func (m *memProfiles) ExistsByName(_ context.Context, name string, exclude primitive.ObjectID) (bool, error) {
	for id, p := range m.docs {
		if p.Name == name && id != exclude {
			return true, nil
		}
	}
	return false, nil
}

type memCategories struct {
	docs map[primitive.ObjectID]*models.Category
}

func (m *memCategories) FindByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	c, ok := m.docs[id]
	if !ok {
		return nil, errors.New(errors.CodeNotFound, "category not found")
	}
	return c, nil
}

func (m *memCategories) All(_ context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, c := range m.docs {
		out = append(out, *c)
	}
	return out, nil
}

type memProducts struct {
	docs map[primitive.ObjectID]*models.Product
}

func (m *memProducts) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, ok := m.docs[id]
	if !ok {
		return nil, errors.New(errors.CodeNotFound, "product not found")
	}
	return p, nil
}

func (m *memProducts) All(_ context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.docs {
		out = append(out, *p)
	}
	return out, nil
}

func (m *memProducts) ByCategory(_ context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.docs {
		if p.CategoryID == categoryID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type memCarts struct {
	docs map[primitive.ObjectID]*models.Cart
}

func (m *memCarts) FindByClient(_ context.Context, clientID primitive.ObjectID) (*models.Cart, error) {
	c, ok := m.docs[clientID]
	if !ok {
		return nil, errors.New(errors.CodeNotFound, "cart not found")
	}
	return c, nil
}

func (m *memCarts) PushItem(ctx context.Context, clientID primitive.ObjectID, item models.CartItem) (*models.Cart, error) {
	c, err := m.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	c.Items = append(c.Items, item)
	return c, nil
}

func (m *memCarts) SetItemQuantity(ctx context.Context, clientID, itemID primitive.ObjectID, quantity int) (*models.Cart, error) {
	c, err := m.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items[i].Quantity = quantity
			return c, nil
		}
	}
	return nil, errors.New(errors.CodeNotFound, "cart not found")
}

func (m *memCarts) PullItem(ctx context.Context, clientID, itemID primitive.ObjectID) (*models.Cart, error) {
	c, err := m.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
	return c, nil
}

type fixture struct {
	schema     graphql.Schema
	profiles   *memProfiles
	categories *memCategories
	products   *memProducts
	carts      *memCarts
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		profiles:   &memProfiles{docs: map[primitive.ObjectID]*models.Profile{}},
		categories: &memCategories{docs: map[primitive.ObjectID]*models.Category{}},
		products:   &memProducts{docs: map[primitive.ObjectID]*models.Product{}},
		carts:      &memCarts{docs: map[primitive.ObjectID]*models.Cart{}},
	}
	schema, err := NewSchema(Deps{
		Profiles:   f.profiles,
		Categories: f.categories,
		Products:   f.products,
		Carts:      f.carts,

		ProfileService: services.NewProfileService(f.profiles),
		CartService:    services.NewCartService(f.carts, f.products),
	})
	require.NoError(t, err)
	f.schema = schema
	return f
}

func (f *fixture) exec(t *testing.T, query string, vars map[string]interface{}) *graphql.Result {
	t.Helper()
	return graphql.Do(graphql.Params{
		Schema:         f.schema,
		RequestString:  query,
		VariableValues: vars,
		Context:        context.Background(),
	})
}

func (f *fixture) seedCatalog() (*models.Category, *models.Product) {
	category := &models.Category{ID: primitive.NewObjectID(), Name: "Rolls"}
	f.categories.docs[category.ID] = category
	product := &models.Product{
		ID:         primitive.NewObjectID(),
		Name:       "Acevichado Roll",
		Price:      5000,
		Available:  true,
		CategoryID: category.ID,
	}
	f.products.docs[product.ID] = product
	return category, product
}

func errCode(t *testing.T, result *graphql.Result) string {
	t.Helper()
	require.NotEmpty(t, result.Errors)
	code, _ := result.Errors[0].Extensions["code"].(string)
	return code
}

func TestSchema_ProductInlinesCategory(t *testing.T) {
	f := newFixture(t)
	_, product := f.seedCatalog()

	result := f.exec(t, fmt.Sprintf(
		`{ product(id: %q) { name price category { name } } }`, product.ID.Hex()), nil)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})["product"].(map[string]interface{})
	assert.Equal(t, "Acevichado Roll", data["name"])
	assert.Equal(t, 5000.0, data["price"])
	assert.Equal(t, "Rolls", data["category"].(map[string]interface{})["name"])
}

func TestSchema_DanglingReferenceResolvesNull(t *testing.T) {
	f := newFixture(t)
	category, product := f.seedCatalog()
	delete(f.categories.docs, category.ID)

	result := f.exec(t, fmt.Sprintf(
		`{ product(id: %q) { name category { name } } }`, product.ID.Hex()), nil)
	require.Empty(t, result.Errors, "a dangling reference must not fail the read")

	data := result.Data.(map[string]interface{})["product"].(map[string]interface{})
	assert.Nil(t, data["category"])
}

func TestSchema_ProductsFilteredByCategory(t *testing.T) {
	f := newFixture(t)
	category, _ := f.seedCatalog()
	other := &models.Product{ID: primitive.NewObjectID(), Name: "Lemonade", Price: 1500, Available: true, CategoryID: primitive.NewObjectID()}
	f.products.docs[other.ID] = other

	result := f.exec(t, fmt.Sprintf(
		`{ products(categoryId: %q) { name } }`, category.ID.Hex()), nil)
	require.Empty(t, result.Errors)

	list := result.Data.(map[string]interface{})["products"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "Acevichado Roll", list[0].(map[string]interface{})["name"])
}

func TestSchema_NotFoundCode(t *testing.T) {
	f := newFixture(t)

	result := f.exec(t, fmt.Sprintf(
		`{ product(id: %q) { name } }`, primitive.NewObjectID().Hex()), nil)
	assert.Equal(t, "NOT_FOUND", errCode(t, result))
}

func TestSchema_InvalidIDIsValidationError(t *testing.T) {
	f := newFixture(t)

	result := f.exec(t, `{ product(id: "not-a-hex-id") { name } }`, nil)
	assert.Equal(t, "VALIDATION_ERROR", errCode(t, result))
}

func TestSchema_CreateProfile(t *testing.T) {
	f := newFixture(t)

	result := f.exec(t,
		`mutation { createProfile(input: {name: "Administrator"}) { id name } }`, nil)
	require.Empty(t, result.Errors)
	data := result.Data.(map[string]interface{})["createProfile"].(map[string]interface{})
	assert.Equal(t, "Administrator", data["name"])
	assert.NotEmpty(t, data["id"])

	// Same name again hits the uniqueness constraint.
	result = f.exec(t,
		`mutation { createProfile(input: {name: "Administrator"}) { id } }`, nil)
	assert.Equal(t, "VALIDATION_ERROR", errCode(t, result))
}

func TestSchema_AddCartItemWithoutCart(t *testing.T) {
	f := newFixture(t)
	_, product := f.seedCatalog()

	result := f.exec(t, fmt.Sprintf(
		`mutation { addCartItem(clientId: %q, productId: %q, quantity: 1) { id } }`,
		primitive.NewObjectID().Hex(), product.ID.Hex()), nil)
	assert.Equal(t, "NOT_FOUND", errCode(t, result))
}

func TestSchema_CartItemFlow(t *testing.T) {
	f := newFixture(t)
	_, product := f.seedCatalog()
	clientID := primitive.NewObjectID()
	f.carts.docs[clientID] = &models.Cart{ID: primitive.NewObjectID(), ClientID: clientID}

	result := f.exec(t, fmt.Sprintf(
		`mutation { addCartItem(clientId: %q, productId: %q, quantity: 2) { items { quantity product { name } } } }`,
		clientID.Hex(), product.ID.Hex()), nil)
	require.Empty(t, result.Errors)

	items := result.Data.(map[string]interface{})["addCartItem"].(map[string]interface{})["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, 2, item["quantity"])
	assert.Equal(t, "Acevichado Roll", item["product"].(map[string]interface{})["name"])
}
