package userRepo

import (
	"context"
	"strings"

	"autohub/database"
	"autohub/database/repository/collection"
	"autohub/models"
	"autohub/utils"
)

// StoreUserRepo implements UserRepository over the users collection.
type StoreUserRepo struct {
	users *collection.Collection[models.User]
}

// NewStoreUserRepo creates a UserRepository backed by store.
func NewStoreUserRepo(store database.Store) UserRepository {
	return &StoreUserRepo{users: collection.New[models.User](store, utils.KeyUsers, collection.Append)}
}

func (r *StoreUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	return r.users.List(ctx)
}

func (r *StoreUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.users.Get(ctx, id)
}

func (r *StoreUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.find(ctx, func(u models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *StoreUserRepo) GetByExactEmail(ctx context.Context, email string) (*models.User, error) {
	return r.find(ctx, func(u models.User) bool { return u.Email == email })
}

func (r *StoreUserRepo) find(ctx context.Context, match func(models.User) bool) (*models.User, error) {
	users, err := r.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *StoreUserRepo) Create(ctx context.Context, user models.User) (models.User, error) {
	return r.users.AddIf(ctx, user, func(existing []models.User) error {
		for _, u := range existing {
			if strings.EqualFold(u.Email, user.Email) {
				return ErrDuplicateEmail
			}
		}
		for _, u := range existing {
			if u.ID == user.ID {
				return ErrDuplicateID
			}
		}
		return nil
	})
}

func (r *StoreUserRepo) Update(ctx context.Context, id string, patch models.UserUpdateRequest) (*models.User, error) {
	return r.users.Update(ctx, id, patch.Apply)
}
