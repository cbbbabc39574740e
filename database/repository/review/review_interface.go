package reviewRepo

import (
	"context"

	"autohub/models"
)

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	GetAll(ctx context.Context) ([]models.Review, error)
	GetByID(ctx context.Context, id string) (*models.Review, error)
	// GetByProvider returns reviews of providerID, optionally limited to one status.
	GetByProvider(ctx context.Context, providerID string, status models.ReviewStatus) ([]models.Review, error)
	Create(ctx context.Context, r models.Review) (models.Review, error)
	SetStatus(ctx context.Context, id string, status models.ReviewStatus) (*models.Review, error)
}
