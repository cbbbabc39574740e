package vehicleRepo

import (
	"context"
	"sync"

	"autohub/database"
	"autohub/database/repository/collection"
	"autohub/models"
	"autohub/utils"
)

// VehicleRepository covers the global vehicles collection and the per-user garage map.
type VehicleRepository interface {
	GetAll(ctx context.Context) ([]models.Vehicle, error)
	// GetForUser returns the user's garage followed by any vehicles-collection
	// entries owned by the user that are not already in it.
	GetForUser(ctx context.Context, userID string) ([]models.Vehicle, error)
	// AddForUser prepends v to the user's garage.
	AddForUser(ctx context.Context, userID string, v models.Vehicle) (models.Vehicle, error)
}

type storeVehicleRepo struct {
	store    database.Store
	vehicles *collection.Collection[models.Vehicle]
	mu       sync.Mutex // guards user_vehicles
}

func NewStoreVehicleRepo(store database.Store) VehicleRepository {
	return &storeVehicleRepo{
		store:    store,
		vehicles: collection.New[models.Vehicle](store, utils.KeyVehicles, collection.Prepend),
	}
}

func (r *storeVehicleRepo) GetAll(ctx context.Context) ([]models.Vehicle, error) {
	return r.vehicles.List(ctx)
}

func (r *storeVehicleRepo) garages(ctx context.Context) map[string][]models.Vehicle {
	return database.GetJSON(ctx, r.store, utils.KeyUserVehicles, map[string][]models.Vehicle{})
}

func (r *storeVehicleRepo) GetForUser(ctx context.Context, userID string) ([]models.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := append([]models.Vehicle{}, r.garages(ctx)[userID]...)
	seen := make(map[string]bool, len(out))
	for _, v := range out {
		seen[v.ID] = true
	}
	all, err := r.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range all {
		if v.UserID == userID && !seen[v.ID] {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *storeVehicleRepo) AddForUser(ctx context.Context, userID string, v models.Vehicle) (models.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return v, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.garages(ctx)
	all[userID] = append([]models.Vehicle{v}, all[userID]...)
	if err := database.SetJSON(ctx, r.store, utils.KeyUserVehicles, all); err != nil {
		return v, err
	}
	return v, nil
}
