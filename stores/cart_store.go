package stores

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/models"
)

// MongoCartStore implements CartStore on the carts collection.
type MongoCartStore struct {
	coll *mongo.Collection
}

func NewMongoCartStore(db *mongo.Database) *MongoCartStore {
	return &MongoCartStore{coll: db.Collection("carts")}
}

func (s *MongoCartStore) FindByUser(ctx context.Context, userId primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := s.coll.FindOne(ctx, bson.M{"userId": userId}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find cart: %w", err)
	}
	return &cart, nil
}

// Save upserts the user's cart. A cart document is created the first time a
// user adds an item.
func (s *MongoCartStore) Save(ctx context.Context, cart *models.Cart) error {
	now := time.Now()
	if cart.Id.IsZero() {
		cart.Id = primitive.NewObjectID()
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now

	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"userId": cart.UserId},
		cart,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Clear empties the cart without deleting the document. A user with no cart
// document has nothing to clear, which is not an error.
func (s *MongoCartStore) Clear(ctx context.Context, userId primitive.ObjectID) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"userId": userId},
		bson.M{"$set": bson.M{
			"items":      []models.CartItem{},
			"totalPrice": 0,
			"updatedAt":  time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
