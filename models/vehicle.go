package models

type Vehicle struct {
	ID                 string `json:"id"`
	UserID             string `json:"userId,omitempty"`
	Make               string `json:"make" validate:"required"`
	Model              string `json:"model" validate:"required"`
	Year               int    `json:"year" validate:"gte=1900,lte=2100"`
	RegistrationNumber string `json:"registrationNumber" validate:"required"`
	FuelType           string `json:"fuelType,omitempty" validate:"omitempty,oneof=petrol diesel cng electric hybrid Petrol Diesel CNG Electric Hybrid"`
	Mileage            int    `json:"mileage,omitempty" validate:"gte=0"`
}

func (v Vehicle) GetID() string { return v.ID }
