package providerRepo

import (
	"context"

	"autohub/models"
)

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	GetAll(ctx context.Context) ([]models.Provider, error)
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	Update(ctx context.Context, id string, patch models.ProviderUpdateRequest) (*models.Provider, error)
}
