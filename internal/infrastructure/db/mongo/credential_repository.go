package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

const credentialCollection = "credentials"

type CredentialRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{db: db, coll: db.Collection(credentialCollection)}
}

func (r *CredentialRepository) FindAll(ctx context.Context) ([]domain.Credential, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find credentials: %w", err)
	}
	var creds []domain.Credential
	if err := cur.All(ctx, &creds); err != nil {
		return nil, fmt.Errorf("decode credentials: %w", err)
	}
	return creds, nil
}

func (r *CredentialRepository) FindByID(ctx context.Context, id int) (*domain.Credential, error) {
	var c domain.Credential
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCredentialNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}
	return &c, nil
}

func (r *CredentialRepository) FindByUsername(ctx context.Context, username string) (*domain.Credential, error) {
	var c domain.Credential
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCredentialNotFound
		}
		return nil, fmt.Errorf("find credential by username: %w", err)
	}
	return &c, nil
}

func (r *CredentialRepository) FindByUserID(ctx context.Context, userID int) (*domain.Credential, error) {
	var c domain.Credential
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCredentialNotFound
		}
		return nil, fmt.Errorf("find credential by user id: %w", err)
	}
	return &c, nil
}

func (r *CredentialRepository) Create(ctx context.Context, c *domain.Credential) (*domain.Credential, error) {
	if c.ID == 0 {
		id, err := nextID(ctx, r.db, credentialCollection)
		if err != nil {
			return nil, err
		}
		c.ID = id
	}
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return nil, fmt.Errorf("insert credential: %w", err)
	}
	return c, nil
}

func (r *CredentialRepository) Update(ctx context.Context, c *domain.Credential) (*domain.Credential, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return nil, fmt.Errorf("update credential: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCredentialNotFound
	}
	return c, nil
}

func (r *CredentialRepository) DeleteByID(ctx context.Context, id int) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}
