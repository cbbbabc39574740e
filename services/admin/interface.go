package admin

import (
	"context"

	"autohub/database/repository"
	"autohub/models"
)

// AdminService aggregates dashboard figures across collections.
type AdminService interface {
	Stats(ctx context.Context) (*models.AdminStats, error)
	RevenueByMonth(ctx context.Context) ([]models.MonthlyRevenue, error)
}

type DefaultAdminService struct {
	Repos *repository.Repositories
}

func NewDefaultAdminService(repos *repository.Repositories) *DefaultAdminService {
	return &DefaultAdminService{Repos: repos}
}
