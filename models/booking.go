package models

import "time"

type BookingStatus string

const (
	BookingUpcoming  BookingStatus = "upcoming"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// ProviderSnapshot is copied into the booking at creation; it is not kept in sync with the provider record.
type ProviderSnapshot struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// ServiceItem is one line of a booking.
type ServiceItem struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration,omitempty"` // minutes
	Category string  `json:"category,omitempty"`
}

// VehicleSnapshot is the vehicle as entered on the booking form.
type VehicleSnapshot struct {
	Make               string `json:"make,omitempty"`
	Model              string `json:"model,omitempty"`
	Year               string `json:"year,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	FuelType           string `json:"fuelType,omitempty"`
}

// Booking represents a service appointment.
type Booking struct {
	ID          string           `json:"id"`
	UserID      string           `json:"userId,omitempty"` // Empty means an anonymous/demo booking visible to everyone
	Status      BookingStatus    `json:"status"`
	Provider    ProviderSnapshot `json:"provider"`
	Date        string           `json:"date"` // RFC 3339
	Time        string           `json:"time"`
	Services    []ServiceItem    `json:"services"`
	Vehicle     *VehicleSnapshot `json:"vehicle,omitempty"`
	Total       float64          `json:"total"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   *time.Time       `json:"updatedAt,omitempty"`
	CancelledAt *time.Time       `json:"cancelledAt,omitempty"`
}

func (b Booking) GetID() string { return b.ID }

// ServicesTotal sums the line-item prices.
func (b Booking) ServicesTotal() float64 {
	var sum float64
	for _, s := range b.Services {
		sum += s.Price
	}
	return sum
}

// BookingUpdateRequest is a partial update; nil fields are left untouched.
type BookingUpdateRequest struct {
	Status      *BookingStatus   `json:"status,omitempty"`
	Date        *string          `json:"date,omitempty"`
	Time        *string          `json:"time,omitempty"`
	Vehicle     *VehicleSnapshot `json:"vehicle,omitempty"`
	CancelledAt *time.Time       `json:"cancelledAt,omitempty"`
}

// Apply merges the present fields over b.
func (r BookingUpdateRequest) Apply(b *Booking) {
	if r.Status != nil {
		b.Status = *r.Status
	}
	if r.Date != nil {
		b.Date = *r.Date
	}
	if r.Time != nil {
		b.Time = *r.Time
	}
	if r.Vehicle != nil {
		v := *r.Vehicle
		b.Vehicle = &v
	}
	if r.CancelledAt != nil {
		t := *r.CancelledAt
		b.CancelledAt = &t
	}
}

// BookingRequest is the confirmation form payload.
type BookingRequest struct {
	Provider ProviderSnapshot `json:"provider"`
	Date     string           `json:"date"`
	Time     string           `json:"time,omitempty"`
	Services []ServiceItem    `json:"services"`
	Vehicle  *VehicleSnapshot `json:"vehicle,omitempty"`
	// Total overrides the computed sum of service prices when present.
	Total *float64 `json:"total,omitempty"`
}
