package reviewRepo

import (
	"context"

	"autohub/database"
	"autohub/database/repository/collection"
	"autohub/models"
	"autohub/utils"
)

type storeReviewRepo struct {
	reviews *collection.Collection[models.Review]
}

func NewStoreReviewRepo(store database.Store) ReviewRepository {
	return &storeReviewRepo{reviews: collection.New[models.Review](store, utils.KeyReviews, collection.Prepend)}
}

func (r *storeReviewRepo) GetAll(ctx context.Context) ([]models.Review, error) {
	return r.reviews.List(ctx)
}

func (r *storeReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	return r.reviews.Get(ctx, id)
}

// GetByProvider treats an empty status as "any".
func (r *storeReviewRepo) GetByProvider(ctx context.Context, providerID string, status models.ReviewStatus) ([]models.Review, error) {
	all, err := r.reviews.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Review, 0, len(all))
	for _, rv := range all {
		if rv.ProviderID != providerID {
			continue
		}
		if status != "" && rv.Status != status {
			continue
		}
		out = append(out, rv)
	}
	return out, nil
}

func (r *storeReviewRepo) Create(ctx context.Context, rv models.Review) (models.Review, error) {
	return r.reviews.Add(ctx, rv)
}

func (r *storeReviewRepo) SetStatus(ctx context.Context, id string, status models.ReviewStatus) (*models.Review, error) {
	return r.reviews.Update(ctx, id, func(rv *models.Review) { rv.Status = status })
}
