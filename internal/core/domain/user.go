package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrAddressNotFound = errors.New("address not found")
var ErrVerificationTokenNotFound = errors.New("verification token not found")

// User is the person record owned by the user service. Credential material
// lives in a separate collection and is composed in at read time.
type User struct {
	ID        int    `json:"user_id" bson:"_id,omitempty"`
	FirstName string `json:"first_name" bson:"first_name"`
	LastName  string `json:"last_name" bson:"last_name"`
	ImageURL  string `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Email     string `json:"email" bson:"email"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// Address belongs to exactly one user, referenced by id.
type Address struct {
	ID          int    `json:"address_id" bson:"_id,omitempty"`
	FullAddress string `json:"full_address" bson:"full_address"`
	PostalCode  string `json:"postal_code" bson:"postal_code"`
	City        string `json:"city" bson:"city"`
	UserID      int    `json:"user_id" bson:"user_id"`
}

// VerificationToken is a one-shot account-verification secret tied to a
// credential. The token value is minted server-side, never caller-supplied.
type VerificationToken struct {
	ID           int       `json:"verification_token_id" bson:"_id,omitempty"`
	Token        string    `json:"token" bson:"token"`
	ExpireDate   time.Time `json:"expire_date" bson:"expire_date"`
	CredentialID int       `json:"credential_id" bson:"credential_id"`
}
