package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

const cartCollection = "carts"

type CartRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{db: db, coll: db.Collection(cartCollection)}
}

func (r *CartRepository) FindAll(ctx context.Context) ([]domain.Cart, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find carts: %w", err)
	}
	var carts []domain.Cart
	if err := cur.All(ctx, &carts); err != nil {
		return nil, fmt.Errorf("decode carts: %w", err)
	}
	return carts, nil
}

func (r *CartRepository) FindByID(ctx context.Context, id int) (*domain.Cart, error) {
	var c domain.Cart
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("find cart: %w", err)
	}
	return &c, nil
}

func (r *CartRepository) Create(ctx context.Context, c *domain.Cart) (*domain.Cart, error) {
	if c.ID == 0 {
		id, err := nextID(ctx, r.db, cartCollection)
		if err != nil {
			return nil, err
		}
		c.ID = id
	}
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return nil, fmt.Errorf("insert cart: %w", err)
	}
	return c, nil
}

func (r *CartRepository) Update(ctx context.Context, c *domain.Cart) (*domain.Cart, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return nil, fmt.Errorf("update cart: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCartNotFound
	}
	return c, nil
}

func (r *CartRepository) DeleteByID(ctx context.Context, id int) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
