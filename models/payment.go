package models

import "time"

type PaymentStatus string

const (
	PaymentCreated  PaymentStatus = "created"
	PaymentSuccess  PaymentStatus = "success"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodRazorpay PaymentMethod = "razorpay"
	MethodUPI      PaymentMethod = "upi"
	MethodStripe   PaymentMethod = "stripe"
)

// Payment records one checkout attempt. Amount and TaxRate never change after creation.
type Payment struct {
	ID         string        `json:"id"`
	ProviderID string        `json:"providerId"`
	UserID     string        `json:"userId"`
	Amount     float64       `json:"amount"`  // before tax
	TaxRate    float64       `json:"taxRate"` // percentage, e.g. 18
	Status     PaymentStatus `json:"status"`
	Method     PaymentMethod `json:"method,omitempty"`
	Ref        string        `json:"ref,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
}

func (p Payment) GetID() string { return p.ID }

// CheckoutRequest is the payment form payload.
type CheckoutRequest struct {
	ProviderID string        `json:"providerId" validate:"required"`
	Amount     float64       `json:"amount" validate:"gt=0"`
	TaxRate    float64       `json:"taxRate" validate:"gte=0,lte=100"`
	Method     PaymentMethod `json:"method" validate:"required,oneof=razorpay upi stripe"`
}

// CheckoutOutcome is what the client-side gateway reports back. Only razorpay
// completes in the browser; upi and stripe outcomes are recorded server-side.
type CheckoutOutcome struct {
	ProviderID string        `json:"providerId" validate:"required"`
	Amount     float64       `json:"amount" validate:"gt=0"`
	TaxRate    float64       `json:"taxRate" validate:"gte=0,lte=100"`
	Method     PaymentMethod `json:"method" validate:"required,eq=razorpay"`
	Success    bool          `json:"success"`
	Ref        string        `json:"ref,omitempty"`
}
