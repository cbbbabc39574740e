package paymentRepo

import (
	"context"

	"autohub/database"
	"autohub/database/repository/collection"
	"autohub/models"
	"autohub/utils"
)

// PaymentRepository defines methods for payment data access.
type PaymentRepository interface {
	GetAll(ctx context.Context) ([]models.Payment, error)
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	Create(ctx context.Context, p models.Payment) (models.Payment, error)
	// SetStatus changes only the status; amount and tax rate are never rewritten.
	SetStatus(ctx context.Context, id string, status models.PaymentStatus) (*models.Payment, error)
}

type storePaymentRepo struct {
	payments *collection.Collection[models.Payment]
}

func NewStorePaymentRepo(store database.Store) PaymentRepository {
	return &storePaymentRepo{payments: collection.New[models.Payment](store, utils.KeyPayments, collection.Prepend)}
}

func (r *storePaymentRepo) GetAll(ctx context.Context) ([]models.Payment, error) {
	return r.payments.List(ctx)
}

func (r *storePaymentRepo) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	return r.payments.Get(ctx, id)
}

func (r *storePaymentRepo) Create(ctx context.Context, p models.Payment) (models.Payment, error) {
	return r.payments.Add(ctx, p)
}

func (r *storePaymentRepo) SetStatus(ctx context.Context, id string, status models.PaymentStatus) (*models.Payment, error) {
	return r.payments.Update(ctx, id, func(p *models.Payment) { p.Status = status })
}
