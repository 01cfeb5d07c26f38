package stores

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/models"
)

var (
	// ErrNotFound means the referenced document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientStock means a stock reservation asked for more units
	// than the product currently has.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrDuplicateEmail means a user with the same email already exists.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserStore persists user accounts.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindById(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// ProductFilter narrows and pages a catalog listing.
type ProductFilter struct {
	Search   string
	Category string
	Sort     string
	Page     int64
	Limit    int64
}

// ProductStore persists the catalog. ReserveStock and ReleaseStock are the
// two halves of the order-placement reservation: ReserveStock decrements
// stock only when enough units remain (a single conditional update, so two
// concurrent purchases of the last unit cannot both succeed), and
// ReleaseStock returns units when a later step of the placement fails.
type ProductStore interface {
	Find(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error)
	FindFeatured(ctx context.Context, limit int64) ([]models.Product, error)
	FindById(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ReserveStock(ctx context.Context, id primitive.ObjectID, quantity int) error
	ReleaseStock(ctx context.Context, id primitive.ObjectID, quantity int) error
}

// CartStore persists one cart per user.
type CartStore interface {
	FindByUser(ctx context.Context, userId primitive.ObjectID) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Clear(ctx context.Context, userId primitive.ObjectID) error
}

// OrderStore persists orders.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindByUser(ctx context.Context, userId primitive.ObjectID) ([]models.Order, error)
	FindById(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
}
