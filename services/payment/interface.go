package payment

import (
	"context"
	"errors"
	"time"

	"autohub/database/repository"
	"autohub/models"
	"autohub/services/provider"
)

var (
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrGatewayUnavailable = errors.New("payment gateway is not configured")
	ErrLoginRequired      = errors.New("sign in to pay")
	ErrNotRefundable      = errors.New("only successful payments can be refunded")
	ErrForbidden          = errors.New("payment belongs to another user")
)

type PaymentService interface {
	// Checkout starts a payment with the requested method.
	Checkout(ctx context.Context, principal *models.Principal, req models.CheckoutRequest) (*CheckoutResult, error)
	// RecordOutcome stores the result reported by the razorpay checkout widget.
	RecordOutcome(ctx context.Context, principal *models.Principal, outcome models.CheckoutOutcome) (*models.Payment, error)
	// ListPayments returns the principal's payments, or all of them for admins.
	ListPayments(ctx context.Context, principal *models.Principal) ([]models.Payment, error)
	Refund(ctx context.Context, id string) (*models.Payment, error)
	Invoice(ctx context.Context, principal *models.Principal, id string) (string, error)
}

// CardGateway creates card payment intents.
type CardGateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*IntentResult, error)
}

// IntentResult is the gateway's view of a created intent.
type IntentResult struct {
	ID        string
	Succeeded bool
}

// CheckoutResult carries the stored payment and, for razorpay, the options the client needs to open checkout.
type CheckoutResult struct {
	Payment  *models.Payment  `json:"payment,omitempty"`
	Razorpay *RazorpayOptions `json:"razorpay,omitempty"`
}

// RazorpayOptions mirrors the object passed to the Razorpay checkout widget.
type RazorpayOptions struct {
	Key         string            `json:"key"`
	Amount      int64             `json:"amount"` // paise
	Currency    string            `json:"currency"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Prefill     RazorpayPrefill   `json:"prefill"`
	Notes       map[string]string `json:"notes"`
}

type RazorpayPrefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact,omitempty"`
}

// DefaultPaymentService is the store-backed implementation.
type DefaultPaymentService struct {
	Repo          repository.PaymentRepository
	Providers     provider.ProviderService
	RazorpayKeyID string
	// Card is nil when no card gateway is configured.
	Card CardGateway
	now  func() time.Time
}

func NewDefaultPaymentService(repo repository.PaymentRepository, providers provider.ProviderService, razorpayKeyID string, card CardGateway) *DefaultPaymentService {
	return &DefaultPaymentService{
		Repo:          repo,
		Providers:     providers,
		RazorpayKeyID: razorpayKeyID,
		Card:          card,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Tax returns the tax charged on p.
func Tax(p models.Payment) float64 { return taxOf(p.Amount, p.TaxRate) }

// Total returns amount plus tax for p.
func Total(p models.Payment) float64 { return totalOf(p.Amount, p.TaxRate) }
