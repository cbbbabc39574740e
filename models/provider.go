package models

// Provider is a car-service business listed on the marketplace.
type Provider struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Approved     bool     `json:"approved"`
	Rating       *float64 `json:"rating,omitempty"`
	RatingsCount *int     `json:"ratingsCount,omitempty"`
	Location     string   `json:"location,omitempty"`
	Phone        string   `json:"phone,omitempty"`
}

func (p Provider) GetID() string { return p.ID }

// ProviderUpdateRequest is a partial update; nil fields are left untouched.
type ProviderUpdateRequest struct {
	Name         *string  `json:"name,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Approved     *bool    `json:"approved,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	RatingsCount *int     `json:"ratingsCount,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
}

// Apply merges the present fields over p.
func (r ProviderUpdateRequest) Apply(p *Provider) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.Approved != nil {
		p.Approved = *r.Approved
	}
	if r.Rating != nil {
		v := *r.Rating
		p.Rating = &v
	}
	if r.RatingsCount != nil {
		v := *r.RatingsCount
		p.RatingsCount = &v
	}
	if r.Location != nil {
		p.Location = *r.Location
	}
	if r.Phone != nil {
		p.Phone = *r.Phone
	}
}
