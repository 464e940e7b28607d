package domain

import (
	"errors"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")
var ErrCartNotFound = errors.New("cart not found")

// Cart ties a shopping session to a user owned by the user service.
// UserID of zero means the cart is anonymous and no remote lookup is made.
type Cart struct {
	ID     int `json:"cart_id" bson:"_id,omitempty"`
	UserID int `json:"user_id,omitempty" bson:"user_id,omitempty"`
}

// Order references its cart by id; the cart lives in the same service.
type Order struct {
	ID        int       `json:"order_id" bson:"_id,omitempty"`
	OrderDate time.Time `json:"order_date" bson:"order_date"`
	OrderDesc string    `json:"order_desc,omitempty" bson:"order_desc,omitempty"`
	OrderFee  float64   `json:"order_fee" bson:"order_fee"`
	CartID    int       `json:"cart_id" bson:"cart_id"`
}
