package domain

import "errors"

var ErrOrderItemNotFound = errors.New("order item not found")

// OrderItem records how many units of a product belong to an order. It is
// keyed by the (order, product) pair; both referents live in peer services.
type OrderItem struct {
	OrderID         int `json:"order_id" bson:"order_id"`
	ProductID       int `json:"product_id" bson:"product_id"`
	OrderedQuantity int `json:"ordered_quantity" bson:"ordered_quantity"`
}
