package domain

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID            int32     `json:"id"`
	Email         string    `json:"email"` // stored lowercased, unique
	PasswordHash  string    `json:"-"`
	FullName      string    `json:"full_name"`
	PhoneNumber   string    `json:"phone_number"`
	LicenseNumber *string   `json:"license_number,omitempty"`
	Role          Role      `json:"role"`
	AgreeTerms    bool      `json:"agree_terms"`
	Active        bool      `json:"active"`
	CreatedOn     time.Time `json:"created_on"`
	UpdatedOn     time.Time `json:"updated_on"`

	VerificationToken *string    `json:"-"`
	ResetToken        *string    `json:"-"`
	ResetTokenExpires *time.Time `json:"-"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
