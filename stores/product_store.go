package stores

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/models"
)

// MongoProductStore implements ProductStore on the products collection.
type MongoProductStore struct {
	coll *mongo.Collection
}

func NewMongoProductStore(db *mongo.Database) *MongoProductStore {
	return &MongoProductStore{coll: db.Collection("products")}
}

// buildQuery translates a ProductFilter into a Mongo filter document.
func buildQuery(filter ProductFilter) bson.M {
	query := bson.M{}
	if filter.Search != "" {
		query["name"] = primitive.Regex{Pattern: filter.Search, Options: "i"}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	return query
}

// buildSort translates a mongoose-style sort key ("price", "-rating") into a
// Mongo sort document. Unset keys sort newest first.
func buildSort(sort string) bson.D {
	if sort == "" {
		sort = "-createdAt"
	}
	direction := 1
	if strings.HasPrefix(sort, "-") {
		direction = -1
		sort = strings.TrimPrefix(sort, "-")
	}
	return bson.D{{Key: sort, Value: direction}}
}

func (s *MongoProductStore) Find(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error) {
	query := buildQuery(filter)

	total, err := s.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 12
	}

	findOptions := options.Find().
		SetSort(buildSort(filter.Sort)).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := s.coll.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("find products: %w", err)
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("decode products: %w", err)
	}
	return products, total, nil
}

func (s *MongoProductStore) FindFeatured(ctx context.Context, limit int64) ([]models.Product, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.coll.Find(ctx, bson.M{"featured": true}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find featured products: %w", err)
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode featured products: %w", err)
	}
	return products, nil
}

func (s *MongoProductStore) FindById(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return &product, nil
}

func (s *MongoProductStore) Create(ctx context.Context, product *models.Product) error {
	now := time.Now()
	product.Id = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := s.coll.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (s *MongoProductStore) Update(ctx context.Context, product *models.Product) error {
	product.UpdatedAt = time.Now()

	result, err := s.coll.ReplaceOne(ctx, bson.M{"_id": product.Id}, product)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ReserveStock decrements stock by quantity only when the product still has
// at least that many units. The guard and the decrement are one document
// update, so the invariant stock >= 0 holds under concurrent placements.
func (s *MongoProductStore) ReserveStock(ctx context.Context, id primitive.ObjectID, quantity int) error {
	result, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id, "stock": bson.M{"$gte": quantity}},
		bson.M{
			"$inc": bson.M{"stock": -quantity},
			"$set": bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("reserve stock: %w", err)
	}
	if result.MatchedCount == 0 {
		// Distinguish a missing product from an out-of-stock one.
		count, err := s.coll.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return fmt.Errorf("reserve stock: %w", err)
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrInsufficientStock
	}
	return nil
}

// ReleaseStock returns previously reserved units after a failed placement.
func (s *MongoProductStore) ReleaseStock(ctx context.Context, id primitive.ObjectID, quantity int) error {
	result, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"stock": quantity},
			"$set": bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("release stock: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
