package models

import "time"

// Session is the persisted "current user" record of one login.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Principal is the acting user, passed explicitly to services. A nil *Principal is an anonymous caller.
type Principal struct {
	UserID     string
	Email      string
	Name       string
	Role       Role
	ProviderID string
	SessionID  string
}

// PrincipalFromSession builds the acting principal of a session.
func PrincipalFromSession(s Session) *Principal {
	return &Principal{
		UserID:     s.User.ID,
		Email:      s.User.Email,
		Name:       s.User.Name,
		Role:       s.User.Role,
		ProviderID: s.User.ProviderID,
		SessionID:  s.ID,
	}
}

// IsAdmin reports whether p is a logged-in admin.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
