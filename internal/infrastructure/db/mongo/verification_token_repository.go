package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

const verificationTokenCollection = "verification_tokens"

type VerificationTokenRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewVerificationTokenRepository(db *mongo.Database) *VerificationTokenRepository {
	return &VerificationTokenRepository{db: db, coll: db.Collection(verificationTokenCollection)}
}

func (r *VerificationTokenRepository) FindAll(ctx context.Context) ([]domain.VerificationToken, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find verification tokens: %w", err)
	}
	var tokens []domain.VerificationToken
	if err := cur.All(ctx, &tokens); err != nil {
		return nil, fmt.Errorf("decode verification tokens: %w", err)
	}
	return tokens, nil
}

func (r *VerificationTokenRepository) FindByID(ctx context.Context, id int) (*domain.VerificationToken, error) {
	var vt domain.VerificationToken
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&vt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrVerificationTokenNotFound
		}
		return nil, fmt.Errorf("find verification token: %w", err)
	}
	return &vt, nil
}

func (r *VerificationTokenRepository) Create(ctx context.Context, vt *domain.VerificationToken) (*domain.VerificationToken, error) {
	if vt.ID == 0 {
		id, err := nextID(ctx, r.db, verificationTokenCollection)
		if err != nil {
			return nil, err
		}
		vt.ID = id
	}
	if _, err := r.coll.InsertOne(ctx, vt); err != nil {
		return nil, fmt.Errorf("insert verification token: %w", err)
	}
	return vt, nil
}

func (r *VerificationTokenRepository) Update(ctx context.Context, vt *domain.VerificationToken) (*domain.VerificationToken, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": vt.ID}, vt)
	if err != nil {
		return nil, fmt.Errorf("update verification token: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrVerificationTokenNotFound
	}
	return vt, nil
}

func (r *VerificationTokenRepository) DeleteByID(ctx context.Context, id int) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete verification token: %w", err)
	}
	return nil
}
