package entities

import "errors"

// Role tags a session as belonging to a consumer or a merchant account.
type Role string

const (
	RoleConsumer Role = "consumer"
	RoleMerchant Role = "merchant"
)

func (r Role) Valid() bool {
	return r == RoleConsumer || r == RoleMerchant
}

type ConsumerProfile struct {
	ID        string `json:"_id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

var (
	// ErrAuthRequired is returned when a protected call has no usable
	// session, when the stored session has expired, and when the backend
	// rejects the token with a 401.
	ErrAuthRequired = errors.New("authentication required")

	// ErrBackendRejected marks envelope failures and 4xx responses that
	// must never be retried.
	ErrBackendRejected = errors.New("request rejected by backend")
)
