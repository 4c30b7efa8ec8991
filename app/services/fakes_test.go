package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/pkg/errors"
)

// In-memory stand-ins for the repositories. They mirror the store
// behaviour the services rely on: generated ids on insert, NotFound on
// missing documents, and no-op pulls on missing array elements.

func notFound(kind string) error {
	return errors.Newf(errors.CodeNotFound, "%s not found", kind)
}

type fakeProfileStore struct {
	profiles map[primitive.ObjectID]*models.Profile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: map[primitive.ObjectID]*models.Profile{}}
}

func (f *fakeProfileStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, notFound("profile")
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileStore) Create(_ context.Context, profile *models.Profile) error {
	if profile.ID.IsZero() {
		profile.ID = primitive.NewObjectID()
	}
	cp := *profile
	f.profiles[profile.ID] = &cp
	return nil
}

func (f *fakeProfileStore) UpdateByID(_ context.Context, id primitive.ObjectID, fields bson.M) (*models.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, notFound("profile")
	}
	if v, ok := fields["name"]; ok {
		p.Name = v.(string)
	}
	if v, ok := fields["description"]; ok {
		p.Description = v.(string)
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileStore) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	delete(f.profiles, id)
	return nil
}

func (f *fakeProfileStore) ExistsByName(_ context.Context, name string, exclude primitive.ObjectID) (bool, error) {
	for id, p := range f.profiles {
		if p.Name == name && id != exclude {
			return true, nil
		}
	}
	return false, nil
}

type fakeCategoryStore struct {
	categories map[primitive.ObjectID]*models.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: map[primitive.ObjectID]*models.Category{}}
}

func (f *fakeCategoryStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, notFound("category")
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryStore) Create(_ context.Context, category *models.Category) error {
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	cp := *category
	f.categories[category.ID] = &cp
	return nil
}

func (f *fakeCategoryStore) UpdateByID(_ context.Context, id primitive.ObjectID, fields bson.M) (*models.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, notFound("category")
	}
	if v, ok := fields["name"]; ok {
		c.Name = v.(string)
	}
	if v, ok := fields["description"]; ok {
		c.Description = v.(string)
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryStore) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryStore) ExistsByName(_ context.Context, name string, exclude primitive.ObjectID) (bool, error) {
	for id, c := range f.categories {
		if c.Name == name && id != exclude {
			return true, nil
		}
	}
	return false, nil
}

type fakeProductStore struct {
	products map[primitive.ObjectID]*models.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[primitive.ObjectID]*models.Product{}}
}

func (f *fakeProductStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, notFound("product")
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductStore) Create(_ context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	cp := *product
	f.products[product.ID] = &cp
	return nil
}

func (f *fakeProductStore) UpdateByID(_ context.Context, id primitive.ObjectID, fields bson.M) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, notFound("product")
	}
	if v, ok := fields["name"]; ok {
		p.Name = v.(string)
	}
	if v, ok := fields["description"]; ok {
		p.Description = v.(string)
	}
	if v, ok := fields["price"]; ok {
		p.Price = v.(float64)
	}
	if v, ok := fields["imageUrl"]; ok {
		p.ImageURL = v.(string)
	}
	if v, ok := fields["available"]; ok {
		p.Available = v.(bool)
	}
	if v, ok := fields["categoryId"]; ok {
		p.CategoryID = v.(primitive.ObjectID)
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductStore) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	delete(f.products, id)
	return nil
}

type fakeUserStore struct {
	users      map[primitive.ObjectID]*models.User
	failCreate bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[primitive.ObjectID]*models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if f.failCreate {
		return fmt.Errorf("insert users: connection reset")
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) UpdateByID(_ context.Context, id primitive.ObjectID, fields bson.M) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, notFound("user")
	}
	if v, ok := fields["email"]; ok {
		u.Email = v.(string)
	}
	if v, ok := fields["password"]; ok {
		u.Password = v.(string)
	}
	if v, ok := fields["status"]; ok {
		u.Status = v.(models.UserStatus)
	}
	if v, ok := fields["profileId"]; ok {
		u.ProfileID = v.(primitive.ObjectID)
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserStore) ExistsByEmail(_ context.Context, email string, exclude primitive.ObjectID) (bool, error) {
	for id, u := range f.users {
		if u.Email == email && id != exclude {
			return true, nil
		}
	}
	return false, nil
}

type fakeClientStore struct {
	clients map[primitive.ObjectID]*models.Client
}

func newFakeClientStore() *fakeClientStore {
	return &fakeClientStore{clients: map[primitive.ObjectID]*models.Client{}}
}

func (f *fakeClientStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, notFound("client")
	}
	cp := *c
	cp.Addresses = append([]models.Address(nil), c.Addresses...)
	return &cp, nil
}

func (f *fakeClientStore) Create(_ context.Context, client *models.Client) error {
	if client.ID.IsZero() {
		client.ID = primitive.NewObjectID()
	}
	for i := range client.Addresses {
		if client.Addresses[i].ID.IsZero() {
			client.Addresses[i].ID = primitive.NewObjectID()
		}
	}
	cp := *client
	cp.Addresses = append([]models.Address(nil), client.Addresses...)
	f.clients[client.ID] = &cp
	return nil
}

func (f *fakeClientStore) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	delete(f.clients, id)
	return nil
}

func (f *fakeClientStore) ExistsByNationalID(_ context.Context, nationalID string, exclude primitive.ObjectID) (bool, error) {
	for id, c := range f.clients {
		if c.NationalID == nationalID && id != exclude {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeClientStore) PushAddress(ctx context.Context, clientID primitive.ObjectID, addr models.Address) (*models.Client, error) {
	c, ok := f.clients[clientID]
	if !ok {
		return nil, notFound("client")
	}
	c.Addresses = append(c.Addresses, addr)
	return f.FindByID(ctx, clientID)
}

func (f *fakeClientStore) SetAddress(ctx context.Context, clientID, addressID primitive.ObjectID, addr models.Address) (*models.Client, error) {
	c, ok := f.clients[clientID]
	if !ok {
		return nil, notFound("client")
	}
	for i := range c.Addresses {
		if c.Addresses[i].ID == addressID {
			addr.ID = addressID
			c.Addresses[i] = addr
			return f.FindByID(ctx, clientID)
		}
	}
	return nil, notFound("client")
}

type fakeCartStore struct {
	carts map[primitive.ObjectID]*models.Cart
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: map[primitive.ObjectID]*models.Cart{}}
}

func (f *fakeCartStore) put(cart *models.Cart) {
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	f.carts[cart.ClientID] = cart
}

func (f *fakeCartStore) FindByClient(_ context.Context, clientID primitive.ObjectID) (*models.Cart, error) {
	c, ok := f.carts[clientID]
	if !ok {
		return nil, notFound("cart")
	}
	cp := *c
	cp.Items = append([]models.CartItem(nil), c.Items...)
	return &cp, nil
}

func (f *fakeCartStore) PushItem(ctx context.Context, clientID primitive.ObjectID, item models.CartItem) (*models.Cart, error) {
	c, ok := f.carts[clientID]
	if !ok {
		return nil, notFound("cart")
	}
	c.Items = append(c.Items, item)
	return f.FindByClient(ctx, clientID)
}

func (f *fakeCartStore) SetItemQuantity(ctx context.Context, clientID, itemID primitive.ObjectID, quantity int) (*models.Cart, error) {
	c, ok := f.carts[clientID]
	if !ok {
		return nil, notFound("cart")
	}
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items[i].Quantity = quantity
			return f.FindByClient(ctx, clientID)
		}
	}
	return nil, notFound("cart")
}

func (f *fakeCartStore) PullItem(ctx context.Context, clientID, itemID primitive.ObjectID) (*models.Cart, error) {
	c, ok := f.carts[clientID]
	if !ok {
		return nil, notFound("cart")
	}
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
	return f.FindByClient(ctx, clientID)
}

type fakeOrderStore struct {
	orders map[primitive.ObjectID]*models.Order
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: map[primitive.ObjectID]*models.Order{}}
}

func (f *fakeOrderStore) Create(_ context.Context, order *models.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	for i := range order.Items {
		if order.Items[i].ID.IsZero() {
			order.Items[i].ID = primitive.NewObjectID()
		}
	}
	cp := *order
	cp.Items = append([]models.OrderItem(nil), order.Items...)
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderStore) SetStatus(_ context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, notFound("order")
	}
	o.Status = status
	cp := *o
	cp.Items = append([]models.OrderItem(nil), o.Items...)
	return &cp, nil
}
