package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

const favouriteCollection = "favourites"

// FavouriteRepository stores favourites keyed by their (user, product) pair;
// there is no surrogate id.
type FavouriteRepository struct {
	coll *mongo.Collection
}

func NewFavouriteRepository(db *mongo.Database) *FavouriteRepository {
	return &FavouriteRepository{coll: db.Collection(favouriteCollection)}
}

func favouriteKey(userID, productID int) bson.M {
	return bson.M{"user_id": userID, "product_id": productID}
}

func (r *FavouriteRepository) FindAll(ctx context.Context) ([]domain.Favourite, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find favourites: %w", err)
	}
	var favourites []domain.Favourite
	if err := cur.All(ctx, &favourites); err != nil {
		return nil, fmt.Errorf("decode favourites: %w", err)
	}
	return favourites, nil
}

func (r *FavouriteRepository) FindByKey(ctx context.Context, userID, productID int) (*domain.Favourite, error) {
	var f domain.Favourite
	if err := r.coll.FindOne(ctx, favouriteKey(userID, productID)).Decode(&f); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrFavouriteNotFound
		}
		return nil, fmt.Errorf("find favourite: %w", err)
	}
	return &f, nil
}

func (r *FavouriteRepository) Create(ctx context.Context, f *domain.Favourite) (*domain.Favourite, error) {
	if f.LikeDate.IsZero() {
		f.LikeDate = time.Now().UTC()
	}
	if _, err := r.coll.InsertOne(ctx, f); err != nil {
		return nil, fmt.Errorf("insert favourite: %w", err)
	}
	return f, nil
}

func (r *FavouriteRepository) Update(ctx context.Context, f *domain.Favourite) (*domain.Favourite, error) {
	res, err := r.coll.ReplaceOne(ctx, favouriteKey(f.UserID, f.ProductID), f)
	if err != nil {
		return nil, fmt.Errorf("update favourite: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrFavouriteNotFound
	}
	return f, nil
}

func (r *FavouriteRepository) DeleteByKey(ctx context.Context, userID, productID int) error {
	if _, err := r.coll.DeleteOne(ctx, favouriteKey(userID, productID)); err != nil {
		return fmt.Errorf("delete favourite: %w", err)
	}
	return nil
}
