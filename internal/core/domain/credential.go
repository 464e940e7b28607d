package domain

import "errors"

const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountNotUsable = errors.New("account not usable")
var ErrCredentialNotFound = errors.New("credential not found")
var ErrMalformedToken = errors.New("malformed token")

// Credential holds the login material and account-state flags for one user.
// The four booleans gate authentication without deleting the record: a
// disabled or locked account keeps its credential row but cannot log in.
type Credential struct {
	ID                    int    `json:"credential_id" bson:"_id,omitempty"`
	Username              string `json:"username" bson:"username"`
	PasswordHash          string `json:"password,omitempty" bson:"password_hash"`
	Role                  string `json:"role" bson:"role"`
	Enabled               bool   `json:"enabled" bson:"enabled"`
	AccountNonExpired     bool   `json:"account_non_expired" bson:"account_non_expired"`
	AccountNonLocked      bool   `json:"account_non_locked" bson:"account_non_locked"`
	CredentialsNonExpired bool   `json:"credentials_non_expired" bson:"credentials_non_expired"`
	UserID                int    `json:"user_id" bson:"user_id"`
}

// Usable reports whether every account-state flag allows authentication.
func (c Credential) Usable() bool {
	return c.Enabled && c.AccountNonExpired && c.AccountNonLocked && c.CredentialsNonExpired
}
