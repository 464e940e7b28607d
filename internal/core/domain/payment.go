package domain

import "errors"

var ErrPaymentNotFound = errors.New("payment not found")

// PaymentStatus is the payment lifecycle state.
type PaymentStatus string

const (
	PaymentNotStarted PaymentStatus = "not_started"
	PaymentInProgress PaymentStatus = "in_progress"
	PaymentCompleted  PaymentStatus = "completed"
)

// Payment references the order it settles; the order is owned by the order
// service and fetched over the wire when the payment is read.
type Payment struct {
	ID      int           `json:"payment_id" bson:"_id,omitempty"`
	IsPayed bool          `json:"is_payed" bson:"is_payed"`
	Status  PaymentStatus `json:"payment_status" bson:"payment_status"`
	OrderID int           `json:"order_id" bson:"order_id"`
}
