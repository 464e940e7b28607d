package domain

import (
	"errors"
	"time"
)

var ErrFavouriteNotFound = errors.New("favourite not found")

// Favourite is keyed by the (user, product) pair it links. Both sides are
// owned by other services and resolved remotely on every read.
type Favourite struct {
	UserID    int       `json:"user_id" bson:"user_id"`
	ProductID int       `json:"product_id" bson:"product_id"`
	LikeDate  time.Time `json:"like_date" bson:"like_date"`
}
