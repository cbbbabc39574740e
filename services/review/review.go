package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"autohub/database/repository"
	"autohub/models"
	"autohub/services/provider"
	"autohub/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrInvalidVerdict = errors.New("moderation verdict must be approved or rejected")
)

type ReviewService interface {
	// Submit stores a new pending review for providerID.
	Submit(ctx context.Context, providerID string, input models.ReviewInput) (*models.Review, error)
	// ListForProvider returns the provider's reviews with status (approved when empty).
	ListForProvider(ctx context.Context, providerID string, status models.ReviewStatus) ([]models.Review, error)
	ModerationQueue(ctx context.Context) ([]models.Review, error)
	Moderate(ctx context.Context, reviewID string, verdict models.ReviewStatus) (*models.Review, error)
}

type DefaultReviewService struct {
	Repo      repository.ReviewRepository
	Providers provider.ProviderService
	now       func() time.Time
}

func NewDefaultReviewService(repo repository.ReviewRepository, providers provider.ProviderService) *DefaultReviewService {
	return &DefaultReviewService{
		Repo:      repo,
		Providers: providers,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *DefaultReviewService) Submit(ctx context.Context, providerID string, input models.ReviewInput) (*models.Review, error) {
	input.ReviewerName = strings.TrimSpace(input.ReviewerName)
	input.Comment = strings.TrimSpace(input.Comment)
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	if _, err := s.Providers.GetProviderByID(ctx, providerID); err != nil {
		return nil, err
	}

	rv := models.Review{
		ID:           uuid.NewString(),
		ProviderID:   providerID,
		ReviewerName: input.ReviewerName,
		Rating:       input.Rating,
		Comment:      input.Comment,
		CreatedAt:    s.now(),
		Status:       models.ReviewPending,
	}
	created, err := s.Repo.Create(ctx, rv)
	if err != nil {
		return nil, fmt.Errorf("failed to store review: %w", err)
	}
	return &created, nil
}

func (s *DefaultReviewService) ListForProvider(ctx context.Context, providerID string, status models.ReviewStatus) ([]models.Review, error) {
	if status == "" {
		status = models.ReviewApproved
	}
	return s.Repo.GetByProvider(ctx, providerID, status)
}

func (s *DefaultReviewService) ModerationQueue(ctx context.Context) ([]models.Review, error) {
	all, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	pending := make([]models.Review, 0)
	for _, rv := range all {
		if rv.Status == models.ReviewPending {
			pending = append(pending, rv)
		}
	}
	return pending, nil
}

// Moderate sets the review's status and refreshes the provider's aggregate rating.
func (s *DefaultReviewService) Moderate(ctx context.Context, reviewID string, verdict models.ReviewStatus) (*models.Review, error) {
	if verdict != models.ReviewApproved && verdict != models.ReviewRejected {
		return nil, ErrInvalidVerdict
	}
	rv, err := s.Repo.SetStatus(ctx, reviewID, verdict)
	if err != nil {
		return nil, err
	}
	if rv == nil {
		return nil, ErrReviewNotFound
	}
	if err := s.refreshRating(ctx, rv.ProviderID); err != nil {
		// The verdict is already stored; a stale aggregate is corrected by the next moderation.
		utils.GetLogger().Warn("Moderate: failed to refresh provider rating",
			zap.String("providerID", rv.ProviderID), zap.Error(err))
	}
	return rv, nil
}

func (s *DefaultReviewService) refreshRating(ctx context.Context, providerID string) error {
	approved, err := s.Repo.GetByProvider(ctx, providerID, models.ReviewApproved)
	if err != nil {
		return err
	}
	sum := decimal.Zero
	for _, rv := range approved {
		sum = sum.Add(decimal.NewFromInt(int64(rv.Rating)))
	}
	avg := 0.0
	if len(approved) > 0 {
		avg = sum.Div(decimal.NewFromInt(int64(len(approved)))).Round(1).InexactFloat64()
	}
	_, err = s.Providers.UpdateRating(ctx, providerID, avg, len(approved))
	return err
}
