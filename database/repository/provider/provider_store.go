package providerRepo

import (
	"context"

	"autohub/database"
	"autohub/database/repository/collection"
	"autohub/models"
	"autohub/utils"
)

type storeProviderRepo struct {
	providers *collection.Collection[models.Provider]
}

// NewStoreProviderRepo creates a ProviderRepository backed by store.
func NewStoreProviderRepo(store database.Store) ProviderRepository {
	return &storeProviderRepo{providers: collection.New[models.Provider](store, utils.KeyProviders, collection.Append)}
}

func (r *storeProviderRepo) GetAll(ctx context.Context) ([]models.Provider, error) {
	return r.providers.List(ctx)
}

func (r *storeProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	return r.providers.Get(ctx, id)
}

func (r *storeProviderRepo) Update(ctx context.Context, id string, patch models.ProviderUpdateRequest) (*models.Provider, error) {
	return r.providers.Update(ctx, id, patch.Apply)
}
