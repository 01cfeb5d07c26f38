// Package storetest provides in-memory store implementations for handler
// tests. They honor the same sentinel errors as the Mongo stores.
package storetest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/models"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/stores"
)

// UserStore is an in-memory stores.UserStore.
type UserStore struct {
	mu    sync.Mutex
	Users map[primitive.ObjectID]*models.User
}

func NewUserStore() *UserStore {
	return &UserStore{Users: map[primitive.ObjectID]*models.User{}}
}

// Seed inserts a user directly, assigning an id when absent.
func (s *UserStore) Seed(user *models.User) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.Id.IsZero() {
		user.Id = primitive.NewObjectID()
	}
	s.Users[user.Id] = user
	return user
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.Users {
		if existing.Email == user.Email {
			return stores.ErrDuplicateEmail
		}
	}
	now := time.Now()
	user.Id = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.Users[user.Id] = user
	return nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.Users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, stores.ErrNotFound
}

func (s *UserStore) FindById(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.Users[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	return user, nil
}

func (s *UserStore) Update(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Users[user.Id]; !ok {
		return stores.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	s.Users[user.Id] = user
	return nil
}

// ProductStore is an in-memory stores.ProductStore.
type ProductStore struct {
	mu       sync.Mutex
	Products map[primitive.ObjectID]*models.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{Products: map[primitive.ObjectID]*models.Product{}}
}

func (s *ProductStore) Seed(product *models.Product) *models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if product.Id.IsZero() {
		product.Id = primitive.NewObjectID()
	}
	s.Products[product.Id] = product
	return product
}

func (s *ProductStore) Find(ctx context.Context, filter stores.ProductFilter) ([]models.Product, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []models.Product{}
	for _, product := range s.Products {
		if filter.Search != "" && !strings.Contains(strings.ToLower(product.Name), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Category != "" && product.Category != filter.Category {
			continue
		}
		matched = append(matched, *product)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, int64(len(matched)), nil
}

func (s *ProductStore) FindFeatured(ctx context.Context, limit int64) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	featured := []models.Product{}
	for _, product := range s.Products {
		if product.Featured && int64(len(featured)) < limit {
			featured = append(featured, *product)
		}
	}
	return featured, nil
}

func (s *ProductStore) FindById(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.Products[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	return product, nil
}

func (s *ProductStore) Create(ctx context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	product.Id = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now
	s.Products[product.Id] = product
	return nil
}

func (s *ProductStore) Update(ctx context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Products[product.Id]; !ok {
		return stores.ErrNotFound
	}
	product.UpdatedAt = time.Now()
	s.Products[product.Id] = product
	return nil
}

func (s *ProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Products[id]; !ok {
		return stores.ErrNotFound
	}
	delete(s.Products, id)
	return nil
}

func (s *ProductStore) ReserveStock(ctx context.Context, id primitive.ObjectID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.Products[id]
	if !ok {
		return stores.ErrNotFound
	}
	if product.Stock < quantity {
		return stores.ErrInsufficientStock
	}
	product.Stock -= quantity
	return nil
}

func (s *ProductStore) ReleaseStock(ctx context.Context, id primitive.ObjectID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.Products[id]
	if !ok {
		return stores.ErrNotFound
	}
	product.Stock += quantity
	return nil
}

// CartStore is an in-memory stores.CartStore keyed by owner.
type CartStore struct {
	mu    sync.Mutex
	Carts map[primitive.ObjectID]*models.Cart
}

func NewCartStore() *CartStore {
	return &CartStore{Carts: map[primitive.ObjectID]*models.Cart{}}
}

func (s *CartStore) Seed(cart *models.Cart) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cart.Id.IsZero() {
		cart.Id = primitive.NewObjectID()
	}
	s.Carts[cart.UserId] = cart
	return cart
}

func (s *CartStore) FindByUser(ctx context.Context, userId primitive.ObjectID) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.Carts[userId]
	if !ok {
		return nil, stores.ErrNotFound
	}
	return cart, nil
}

func (s *CartStore) Save(ctx context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	if cart.Id.IsZero() {
		cart.Id = primitive.NewObjectID()
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now
	s.Carts[cart.UserId] = cart
	return nil
}

func (s *CartStore) Clear(ctx context.Context, userId primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.Carts[userId]
	if !ok {
		return nil
	}
	cart.Items = []models.CartItem{}
	cart.TotalPrice = 0
	cart.UpdatedAt = time.Now()
	return nil
}

// OrderStore is an in-memory stores.OrderStore.
type OrderStore struct {
	mu      sync.Mutex
	Orders  map[primitive.ObjectID]*models.Order
	created int
}

func NewOrderStore() *OrderStore {
	return &OrderStore{Orders: map[primitive.ObjectID]*models.Order{}}
}

func (s *OrderStore) Seed(order *models.Order) *models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.Id.IsZero() {
		order.Id = primitive.NewObjectID()
	}
	s.Orders[order.Id] = order
	return order
}

func (s *OrderStore) Create(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Stagger timestamps so newest-first ordering is deterministic.
	s.created++
	now := time.Now().Add(time.Duration(s.created) * time.Millisecond)
	order.Id = primitive.NewObjectID()
	order.CreatedAt = now
	order.UpdatedAt = now
	s.Orders[order.Id] = order
	return nil
}

func (s *OrderStore) FindByUser(ctx context.Context, userId primitive.ObjectID) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := []models.Order{}
	for _, order := range s.Orders {
		if order.UserId == userId {
			orders = append(orders, *order)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *OrderStore) FindById(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	return order, nil
}

func (s *OrderStore) Update(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Orders[order.Id]; !ok {
		return stores.ErrNotFound
	}
	order.UpdatedAt = time.Now()
	s.Orders[order.Id] = order
	return nil
}
