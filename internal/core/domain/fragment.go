package domain

import (
	"errors"
	"time"
)

// ErrRemoteLookup wraps any failure while fetching a fragment from a peer
// service: connection errors, timeouts, non-2xx responses, decode errors.
// Composers never translate it into a resource-specific error — one failed
// lookup aborts the whole composite read.
var ErrRemoteLookup = errors.New("remote lookup failed")

// Fragments are the minimal projections of entities owned by peer services,
// decoded from their id-lookup endpoints and spliced into composite reads.

type UserFragment struct {
	ID        int    `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

type ProductFragment struct {
	ID        int     `json:"product_id"`
	Title     string  `json:"product_title"`
	PriceUnit float64 `json:"price_unit"`
	Quantity  int     `json:"quantity"`
}

type OrderFragment struct {
	ID        int       `json:"order_id"`
	OrderDate time.Time `json:"order_date"`
	OrderDesc string    `json:"order_desc,omitempty"`
	OrderFee  float64   `json:"order_fee"`
}
