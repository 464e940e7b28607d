package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

const orderItemCollection = "order_items"

// OrderItemRepository stores order items keyed by their (order, product) pair.
type OrderItemRepository struct {
	coll *mongo.Collection
}

func NewOrderItemRepository(db *mongo.Database) *OrderItemRepository {
	return &OrderItemRepository{coll: db.Collection(orderItemCollection)}
}

func orderItemKey(orderID, productID int) bson.M {
	return bson.M{"order_id": orderID, "product_id": productID}
}

func (r *OrderItemRepository) FindAll(ctx context.Context) ([]domain.OrderItem, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find order items: %w", err)
	}
	var items []domain.OrderItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	return items, nil
}

func (r *OrderItemRepository) FindByKey(ctx context.Context, orderID, productID int) (*domain.OrderItem, error) {
	var oi domain.OrderItem
	if err := r.coll.FindOne(ctx, orderItemKey(orderID, productID)).Decode(&oi); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrOrderItemNotFound
		}
		return nil, fmt.Errorf("find order item: %w", err)
	}
	return &oi, nil
}

func (r *OrderItemRepository) Create(ctx context.Context, oi *domain.OrderItem) (*domain.OrderItem, error) {
	if _, err := r.coll.InsertOne(ctx, oi); err != nil {
		return nil, fmt.Errorf("insert order item: %w", err)
	}
	return oi, nil
}

func (r *OrderItemRepository) Update(ctx context.Context, oi *domain.OrderItem) (*domain.OrderItem, error) {
	res, err := r.coll.ReplaceOne(ctx, orderItemKey(oi.OrderID, oi.ProductID), oi)
	if err != nil {
		return nil, fmt.Errorf("update order item: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrOrderItemNotFound
	}
	return oi, nil
}

func (r *OrderItemRepository) DeleteByKey(ctx context.Context, orderID, productID int) error {
	if _, err := r.coll.DeleteOne(ctx, orderItemKey(orderID, productID)); err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	return nil
}
