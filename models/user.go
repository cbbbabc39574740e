package models

// Role is the account type of a user. It is fixed once assigned.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// User represents a platform account.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Role       Role   `json:"role"`
	ProviderID string `json:"providerId,omitempty"` // Links a provider-role user to a Provider
	Active     bool   `json:"active"`
	// bcrypt hash; persisted in the users collection, stripped from sessions and responses.
	PasswordHash string `json:"passwordHash,omitempty"`
}

func (u User) GetID() string { return u.ID }

// Public returns a copy safe to hand out (no password hash).
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// UserUpdateRequest is a partial update; nil fields are left untouched.
type UserUpdateRequest struct {
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	ProviderID *string `json:"providerId,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}

// Apply merges the present fields over u.
func (p UserUpdateRequest) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.ProviderID != nil {
		u.ProviderID = *p.ProviderID
	}
	if p.Active != nil {
		u.Active = *p.Active
	}
}

// RegistrationData is the payload accepted by registration. Admins are never self-registered.
type RegistrationData struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password" validate:"required,min=6"`
	Role     Role   `json:"role,omitempty" validate:"omitempty,oneof=customer provider"`
}
