package models

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Actor is the request-scoped identity resolved from the bearer token.
type Actor struct {
	UserID int64
	Role   string
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// User is the public projection; the password hash never leaves the repository layer.
type User struct {
	ID        int64  `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ProfileUpdate carries the only two self-editable fields. Nil means "leave unchanged".
type ProfileUpdate struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
}
