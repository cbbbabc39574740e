package vehicle

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"autohub/database/repository"
	"autohub/models"
	"autohub/utils"
)

type VehicleService interface {
	ListForUser(ctx context.Context, userID string) ([]models.Vehicle, error)
	AddForUser(ctx context.Context, userID string, v models.Vehicle) (*models.Vehicle, error)
}

type DefaultVehicleService struct {
	Repo repository.VehicleRepository
	now  func() time.Time
}

func NewDefaultVehicleService(repo repository.VehicleRepository) *DefaultVehicleService {
	return &DefaultVehicleService{Repo: repo, now: time.Now}
}

func (s *DefaultVehicleService) ListForUser(ctx context.Context, userID string) ([]models.Vehicle, error) {
	return s.Repo.GetForUser(ctx, userID)
}

// AddForUser validates v, assigns it an id and prepends it to the user's garage.
func (s *DefaultVehicleService) AddForUser(ctx context.Context, userID string, v models.Vehicle) (*models.Vehicle, error) {
	v.Make = strings.TrimSpace(v.Make)
	v.Model = strings.TrimSpace(v.Model)
	v.RegistrationNumber = strings.ToUpper(strings.TrimSpace(v.RegistrationNumber))
	if err := utils.ValidateStruct(v); err != nil {
		return nil, err
	}
	v.ID = "V" + strconv.FormatInt(s.now().UnixMilli(), 10)
	v.UserID = userID

	created, err := s.Repo.AddForUser(ctx, userID, v)
	if err != nil {
		return nil, fmt.Errorf("failed to add vehicle: %w", err)
	}
	return &created, nil
}
