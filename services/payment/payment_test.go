package payment

import (
	"context"
	"errors"
	"strings"
	"testing"

	"autohub/database"
	"autohub/database/repository"
	"autohub/models"
	"autohub/services/provider"
	"autohub/utils"
)

type fakeCard struct {
	result *IntentResult
	err    error
	amount int64
}

func (f *fakeCard) CreateIntent(_ context.Context, amountMinor int64, _ string, _ map[string]string) (*IntentResult, error) {
	f.amount = amountMinor
	return f.result, f.err
}

func newService(t *testing.T, razorpayKey string, card CardGateway) *DefaultPaymentService {
	t.Helper()
	store := database.NewMemoryStore()
	if _, err := database.Seed(context.Background(), store); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	repos := repository.New(store)
	return NewDefaultPaymentService(repos.Payments, provider.NewDefaultProviderService(repos.Providers), razorpayKey, card)
}

var riya = &models.Principal{UserID: "u1", Name: "Riya Shah", Email: "riya@example.com", Role: models.RoleCustomer}

func TestTotal(t *testing.T) {
	tests := []struct {
		amount, rate, wantTax, wantTotal float64
	}{
		{1500, 18, 270, 1770},
		{999, 18, 180, 1179},
		{100, 0, 0, 100},
	}
	for _, tt := range tests {
		p := models.Payment{Amount: tt.amount, TaxRate: tt.rate}
		if got := Tax(p); got != tt.wantTax {
			t.Errorf("Tax(%v@%v) = %v, want %v", tt.amount, tt.rate, got, tt.wantTax)
		}
		if got := Total(p); got != tt.wantTotal {
			t.Errorf("Total(%v@%v) = %v, want %v", tt.amount, tt.rate, got, tt.wantTotal)
		}
	}
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("upi records a success", func(t *testing.T) {
		svc := newService(t, "", nil)
		res, err := svc.Checkout(ctx, riya, models.CheckoutRequest{ProviderID: "p1", Amount: 1500, TaxRate: 18, Method: models.MethodUPI})
		if err != nil {
			t.Fatalf("Checkout: %v", err)
		}
		p := res.Payment
		if p.Status != models.PaymentSuccess || !strings.HasPrefix(p.Ref, "UPI_") || p.UserID != "u1" {
			t.Fatalf("unexpected payment: %+v", p)
		}
		all, _ := svc.Repo.GetAll(ctx)
		if len(all) != 2 || all[0].ID != p.ID {
			t.Fatalf("payment not prepended: %+v", all)
		}
	})

	t.Run("razorpay without key is unavailable", func(t *testing.T) {
		svc := newService(t, "", nil)
		_, err := svc.Checkout(ctx, riya, models.CheckoutRequest{ProviderID: "p1", Amount: 1500, TaxRate: 18, Method: models.MethodRazorpay})
		if !errors.Is(err, ErrGatewayUnavailable) {
			t.Fatalf("got %v, want ErrGatewayUnavailable", err)
		}
	})

	t.Run("razorpay returns checkout options", func(t *testing.T) {
		svc := newService(t, "rzp_test_123", nil)
		res, err := svc.Checkout(ctx, riya, models.CheckoutRequest{ProviderID: "p1", Amount: 1500, TaxRate: 18, Method: models.MethodRazorpay})
		if err != nil {
			t.Fatalf("Checkout: %v", err)
		}
		o := res.Razorpay
		if o == nil || o.Amount != 177000 || o.Currency != "INR" || o.Prefill.Email != "riya@example.com" || o.Notes["providerId"] != "p1" {
			t.Fatalf("unexpected options: %+v", o)
		}
		if res.Payment != nil {
			t.Fatalf("razorpay checkout should not record a payment yet")
		}
	})

	t.Run("card gateway failure records a failed payment", func(t *testing.T) {
		card := &fakeCard{err: errors.New("card declined")}
		svc := newService(t, "", card)
		res, err := svc.Checkout(ctx, riya, models.CheckoutRequest{ProviderID: "p1", Amount: 1500, TaxRate: 18, Method: models.MethodStripe})
		if err != nil {
			t.Fatalf("Checkout: %v", err)
		}
		if res.Payment.Status != models.PaymentFailed || card.amount != 177000 {
			t.Fatalf("got %+v (amount %d)", res.Payment, card.amount)
		}
	})

	t.Run("card gateway success", func(t *testing.T) {
		svc := newService(t, "", &fakeCard{result: &IntentResult{ID: "pi_123", Succeeded: true}})
		res, err := svc.Checkout(ctx, riya, models.CheckoutRequest{ProviderID: "p3", Amount: 800, TaxRate: 18, Method: models.MethodStripe})
		if err != nil {
			t.Fatalf("Checkout: %v", err)
		}
		if res.Payment.Status != models.PaymentSuccess || res.Payment.Ref != "pi_123" {
			t.Fatalf("got %+v", res.Payment)
		}
	})

	t.Run("unapproved provider is refused", func(t *testing.T) {
		svc := newService(t, "", nil)
		_, err := svc.Checkout(ctx, riya, models.CheckoutRequest{ProviderID: "p2", Amount: 1500, TaxRate: 18, Method: models.MethodUPI})
		if !errors.Is(err, provider.ErrProviderNotApproved) {
			t.Fatalf("got %v, want ErrProviderNotApproved", err)
		}
	})

	t.Run("anonymous caller", func(t *testing.T) {
		svc := newService(t, "", nil)
		_, err := svc.Checkout(ctx, nil, models.CheckoutRequest{ProviderID: "p1", Amount: 1500, TaxRate: 18, Method: models.MethodUPI})
		if !errors.Is(err, ErrLoginRequired) {
			t.Fatalf("got %v, want ErrLoginRequired", err)
		}
	})
}

func TestRecordOutcomeAndRefund(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, "rzp_test_123", nil)

	p, err := svc.RecordOutcome(ctx, riya, models.CheckoutOutcome{ProviderID: "p1", Amount: 1500, TaxRate: 18, Method: models.MethodRazorpay, Success: true, Ref: "pay_abc"})
	if err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}
	if p.Status != models.PaymentSuccess || p.Ref != "pay_abc" {
		t.Fatalf("unexpected payment: %+v", p)
	}

	for _, method := range []models.PaymentMethod{models.MethodUPI, models.MethodStripe} {
		_, err := svc.RecordOutcome(ctx, riya, models.CheckoutOutcome{ProviderID: "p1", Amount: 1500, TaxRate: 18, Method: method, Success: true})
		var verr *utils.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s outcome: got %v, want a validation error", method, err)
		}
	}
	if all, _ := svc.Repo.GetAll(ctx); len(all) != 2 {
		t.Fatalf("rejected outcomes were recorded: %d payments", len(all))
	}

	refunded, err := svc.Refund(ctx, p.ID)
	if err != nil {
		t.Fatalf("Refund: %v", err)
	}
	if refunded.Status != models.PaymentRefunded || refunded.Amount != 1500 || refunded.TaxRate != 18 {
		t.Fatalf("refund changed more than status: %+v", refunded)
	}
	if _, err := svc.Refund(ctx, p.ID); !errors.Is(err, ErrNotRefundable) {
		t.Fatalf("second refund: got %v, want ErrNotRefundable", err)
	}
	if _, err := svc.Refund(ctx, "missing"); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("got %v, want ErrPaymentNotFound", err)
	}
}

func TestInvoice(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, "", nil)
	all, _ := svc.Repo.GetAll(ctx)
	demo := all[0]

	html, err := svc.Invoice(ctx, riya, demo.ID)
	if err != nil {
		t.Fatalf("Invoice: %v", err)
	}
	for _, want := range []string{"₹1,500.00", "₹270.00", "₹1,770.00", "Ahmedabad Auto Care", "RZP_DEMO_001"} {
		if !strings.Contains(html, want) {
			t.Errorf("invoice missing %q", want)
		}
	}

	other := &models.Principal{UserID: "u9", Role: models.RoleCustomer}
	if _, err := svc.Invoice(ctx, other, demo.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}
	admin := &models.Principal{UserID: "u3", Role: models.RoleAdmin}
	if _, err := svc.Invoice(ctx, admin, demo.ID); err != nil {
		t.Fatalf("admin Invoice: %v", err)
	}
}
