package provider

import (
	"context"
	"errors"
	"fmt"

	"autohub/database/repository"
	"autohub/models"
	"autohub/utils"

	"go.uber.org/zap"
)

var (
	ErrProviderNotFound    = errors.New("provider not found")
	ErrProviderNotApproved = errors.New("provider is not approved")
)

type ProviderService interface {
	// ListApproved returns the providers offered for booking and payment.
	ListApproved(ctx context.Context) ([]models.Provider, error)
	ListAll(ctx context.Context) ([]models.Provider, error)
	GetProviderByID(ctx context.Context, id string) (*models.Provider, error)
	// RequireApproved returns the provider only when it exists and is approved.
	RequireApproved(ctx context.Context, id string) (*models.Provider, error)
	SetApproval(ctx context.Context, id string, approved bool) (*models.Provider, error)
	// UpdateRating stores an aggregate rating computed from approved reviews.
	UpdateRating(ctx context.Context, id string, rating float64, count int) (*models.Provider, error)
}

// DefaultProviderService is the store-backed implementation.
type DefaultProviderService struct {
	Repo repository.ProviderRepository
}

func NewDefaultProviderService(repo repository.ProviderRepository) *DefaultProviderService {
	return &DefaultProviderService{Repo: repo}
}

func (s *DefaultProviderService) ListApproved(ctx context.Context) ([]models.Provider, error) {
	all, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	approved := make([]models.Provider, 0, len(all))
	for _, p := range all {
		if p.Approved {
			approved = append(approved, p)
		}
	}
	return approved, nil
}

func (s *DefaultProviderService) ListAll(ctx context.Context) ([]models.Provider, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultProviderService) GetProviderByID(ctx context.Context, id string) (*models.Provider, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider %s: %w", id, err)
	}
	if p == nil {
		return nil, ErrProviderNotFound
	}
	return p, nil
}

func (s *DefaultProviderService) RequireApproved(ctx context.Context, id string) (*models.Provider, error) {
	p, err := s.GetProviderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Approved {
		return nil, ErrProviderNotApproved
	}
	return p, nil
}

func (s *DefaultProviderService) SetApproval(ctx context.Context, id string, approved bool) (*models.Provider, error) {
	p, err := s.Repo.Update(ctx, id, models.ProviderUpdateRequest{Approved: &approved})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProviderNotFound
	}
	utils.GetLogger().Info("Provider approval changed", zap.String("providerID", id), zap.Bool("approved", approved))
	return p, nil
}

func (s *DefaultProviderService) UpdateRating(ctx context.Context, id string, rating float64, count int) (*models.Provider, error) {
	p, err := s.Repo.Update(ctx, id, models.ProviderUpdateRequest{Rating: &rating, RatingsCount: &count})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProviderNotFound
	}
	return p, nil
}
