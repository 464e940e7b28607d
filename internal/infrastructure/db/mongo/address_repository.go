package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

const addressCollection = "addresses"

type AddressRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewAddressRepository(db *mongo.Database) *AddressRepository {
	return &AddressRepository{db: db, coll: db.Collection(addressCollection)}
}

func (r *AddressRepository) FindAll(ctx context.Context) ([]domain.Address, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find addresses: %w", err)
	}
	var addresses []domain.Address
	if err := cur.All(ctx, &addresses); err != nil {
		return nil, fmt.Errorf("decode addresses: %w", err)
	}
	return addresses, nil
}

func (r *AddressRepository) FindByID(ctx context.Context, id int) (*domain.Address, error) {
	var a domain.Address
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAddressNotFound
		}
		return nil, fmt.Errorf("find address: %w", err)
	}
	return &a, nil
}

func (r *AddressRepository) Create(ctx context.Context, a *domain.Address) (*domain.Address, error) {
	if a.ID == 0 {
		id, err := nextID(ctx, r.db, addressCollection)
		if err != nil {
			return nil, err
		}
		a.ID = id
	}
	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return nil, fmt.Errorf("insert address: %w", err)
	}
	return a, nil
}

func (r *AddressRepository) Update(ctx context.Context, a *domain.Address) (*domain.Address, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if err != nil {
		return nil, fmt.Errorf("update address: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrAddressNotFound
	}
	return a, nil
}

func (r *AddressRepository) DeleteByID(ctx context.Context, id int) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}
