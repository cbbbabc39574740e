package payment

import (
	"context"
	"fmt"
	"strconv"

	"autohub/models"
	"autohub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	currencyINR  = "INR"
	merchantName = "Ahmedabad Auto Hub"
)

func taxOf(amount, rate float64) float64   { return utils.TaxAmount(amount, rate) }
func totalOf(amount, rate float64) float64 { return utils.TotalWithTax(amount, rate) }

func (s *DefaultPaymentService) Checkout(ctx context.Context, principal *models.Principal, req models.CheckoutRequest) (*CheckoutResult, error) {
	if principal == nil {
		return nil, ErrLoginRequired
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	prov, err := s.Providers.RequireApproved(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}

	switch req.Method {
	case models.MethodUPI:
		ref := "UPI_" + strconv.FormatInt(s.now().UnixMilli(), 10)
		p, err := s.record(ctx, principal, req.ProviderID, req.Amount, req.TaxRate, req.Method, models.PaymentSuccess, ref)
		if err != nil {
			return nil, err
		}
		return &CheckoutResult{Payment: p}, nil

	case models.MethodRazorpay:
		if s.RazorpayKeyID == "" {
			return nil, ErrGatewayUnavailable
		}
		return &CheckoutResult{Razorpay: &RazorpayOptions{
			Key:         s.RazorpayKeyID,
			Amount:      utils.ToMinorUnits(totalOf(req.Amount, req.TaxRate)),
			Currency:    currencyINR,
			Name:        merchantName,
			Description: fmt.Sprintf("Payment to %s", prov.Name),
			Prefill: RazorpayPrefill{
				Name:  principal.Name,
				Email: principal.Email,
			},
			Notes: map[string]string{
				"providerId": req.ProviderID,
				"userId":     principal.UserID,
			},
		}}, nil

	case models.MethodStripe:
		return s.chargeCard(ctx, principal, req)
	}
	return nil, utils.NewValidationError("method", "unsupported payment method")
}

func (s *DefaultPaymentService) chargeCard(ctx context.Context, principal *models.Principal, req models.CheckoutRequest) (*CheckoutResult, error) {
	if s.Card == nil {
		return nil, ErrGatewayUnavailable
	}
	total := totalOf(req.Amount, req.TaxRate)
	intent, err := s.Card.CreateIntent(ctx, utils.ToMinorUnits(total), currencyINR, map[string]string{
		"providerId": req.ProviderID,
		"userId":     principal.UserID,
	})
	if err != nil {
		utils.GetLogger().Warn("Card gateway rejected payment", zap.String("providerID", req.ProviderID), zap.Error(err))
		p, recErr := s.record(ctx, principal, req.ProviderID, req.Amount, req.TaxRate, req.Method, models.PaymentFailed, "")
		if recErr != nil {
			return nil, recErr
		}
		return &CheckoutResult{Payment: p}, nil
	}

	status := models.PaymentCreated
	if intent.Succeeded {
		status = models.PaymentSuccess
	}
	p, err := s.record(ctx, principal, req.ProviderID, req.Amount, req.TaxRate, req.Method, status, intent.ID)
	if err != nil {
		return nil, err
	}
	return &CheckoutResult{Payment: p}, nil
}

func (s *DefaultPaymentService) RecordOutcome(ctx context.Context, principal *models.Principal, outcome models.CheckoutOutcome) (*models.Payment, error) {
	if principal == nil {
		return nil, ErrLoginRequired
	}
	if err := utils.ValidateStruct(outcome); err != nil {
		return nil, err
	}
	if _, err := s.Providers.RequireApproved(ctx, outcome.ProviderID); err != nil {
		return nil, err
	}
	status := models.PaymentFailed
	if outcome.Success {
		status = models.PaymentSuccess
	}
	return s.record(ctx, principal, outcome.ProviderID, outcome.Amount, outcome.TaxRate, outcome.Method, status, outcome.Ref)
}

func (s *DefaultPaymentService) record(ctx context.Context, principal *models.Principal, providerID string, amount, taxRate float64, method models.PaymentMethod, status models.PaymentStatus, ref string) (*models.Payment, error) {
	p := models.Payment{
		ID:         uuid.NewString(),
		ProviderID: providerID,
		UserID:     principal.UserID,
		Amount:     amount,
		TaxRate:    taxRate,
		Status:     status,
		Method:     method,
		Ref:        ref,
		CreatedAt:  s.now(),
	}
	created, err := s.Repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	utils.GetLogger().Info("Payment recorded",
		zap.String("paymentID", created.ID),
		zap.String("method", string(method)),
		zap.String("status", string(status)),
		zap.Float64("total", Total(created)))
	return &created, nil
}

func (s *DefaultPaymentService) ListPayments(ctx context.Context, principal *models.Principal) ([]models.Payment, error) {
	all, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if principal.IsAdmin() {
		return all, nil
	}
	out := make([]models.Payment, 0)
	if principal == nil {
		return out, nil
	}
	for _, p := range all {
		if p.UserID == principal.UserID {
			out = append(out, p)
		}
	}
	return out, nil
}

// Refund marks a successful payment as refunded. No reversing entry is written.
func (s *DefaultPaymentService) Refund(ctx context.Context, id string) (*models.Payment, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPaymentNotFound
	}
	if p.Status != models.PaymentSuccess {
		return nil, ErrNotRefundable
	}
	updated, err := s.Repo.SetStatus(ctx, id, models.PaymentRefunded)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrPaymentNotFound
	}
	utils.GetLogger().Info("Payment refunded", zap.String("paymentID", id))
	return updated, nil
}
