package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"autohub/models"
	"autohub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	key   string
	build func(now time.Time) (any, error)
}

func fixtures() []fixture {
	return []fixture{
		{utils.KeyProviders, seedProviders},
		{utils.KeyUsers, seedUsers},
		{utils.KeyReviews, seedReviews},
		{utils.KeyNotifications, seedNotifications},
		{utils.KeyPayments, seedPayments},
		{utils.KeyVehicles, seedVehicles},
		{utils.KeyBookings, seedBookings},
	}
}

// Seed writes the demo fixture of every collection that is absent or empty and
// returns the keys it populated. Collections that already hold records are left alone.
func Seed(ctx context.Context, s Store) ([]string, error) {
	var seeded []string
	now := time.Now().UTC()
	for _, f := range fixtures() {
		if existing := GetJSON(ctx, s, f.key, []json.RawMessage{}); len(existing) > 0 {
			continue
		}
		value, err := f.build(now)
		if err != nil {
			return seeded, fmt.Errorf("failed to build %s fixture: %w", f.key, err)
		}
		if err := SetJSON(ctx, s, f.key, value); err != nil {
			return seeded, err
		}
		seeded = append(seeded, f.key)
	}
	if len(seeded) > 0 {
		utils.GetLogger().Info("Seeded demo data", zap.Strings("keys", seeded))
	}
	return seeded, nil
}

func seedProviders(time.Time) (any, error) {
	return []models.Provider{
		{ID: "p1", Name: "Ahmedabad Auto Care", Category: "Mechanic", Approved: true},
		{ID: "p2", Name: "Gujarat Shine Detailing", Category: "Detailing", Approved: false},
		{ID: "p3", Name: "Sarkhej Tyre & Wheel", Category: "Tyres", Approved: true},
	}, nil
}

func seedUsers(time.Time) (any, error) {
	demo := []struct {
		user     models.User
		password string
	}{
		{models.User{ID: "u1", Name: "Riya Shah", Email: "riya@example.com", Role: models.RoleCustomer, Active: true}, "password123"},
		{models.User{ID: "u2", Name: "Auto Care Owner", Email: "owner@aac.example", Role: models.RoleProvider, ProviderID: "p1", Active: true}, "ownerpass"},
		{models.User{ID: "u3", Name: "Platform Admin", Email: "admin@aah.example", Role: models.RoleAdmin, Active: true}, "adminpass"},
	}
	users := make([]models.User, 0, len(demo))
	for _, d := range demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u := d.user
		u.PasswordHash = string(hash)
		users = append(users, u)
	}
	return users, nil
}

func seedReviews(now time.Time) (any, error) {
	return []models.Review{
		{ID: uuid.NewString(), ProviderID: "p1", ReviewerName: "Riya", Rating: 5, Comment: "Great service!", CreatedAt: now, Status: models.ReviewApproved},
		{ID: uuid.NewString(), ProviderID: "p1", ReviewerName: "Amit", Rating: 4, Comment: "Quick & fair.", CreatedAt: now, Status: models.ReviewApproved},
		{ID: uuid.NewString(), ProviderID: "p3", ReviewerName: "Neha", Rating: 3, Comment: "Okay experience.", CreatedAt: now, Status: models.ReviewPending},
	}, nil
}

func seedNotifications(now time.Time) (any, error) {
	return []models.Notification{{
		ID:        uuid.NewString(),
		Title:     "Welcome!",
		Body:      "Thanks for joining Ahmedabad Auto Hub.",
		Channel:   models.ChannelInApp,
		CreatedAt: now,
	}}, nil
}

func seedPayments(now time.Time) (any, error) {
	return []models.Payment{{
		ID:         uuid.NewString(),
		ProviderID: "p1",
		UserID:     "u1",
		Amount:     1500,
		TaxRate:    18,
		Status:     models.PaymentSuccess,
		Method:     models.MethodRazorpay,
		Ref:        "RZP_DEMO_001",
		CreatedAt:  now,
	}}, nil
}

func seedVehicles(time.Time) (any, error) {
	return []models.Vehicle{{
		ID:                 "V001",
		UserID:             "u1",
		Make:               "Maruti Suzuki",
		Model:              "Swift",
		Year:               2020,
		RegistrationNumber: "GJ-01-XX-1234",
		FuelType:           "Petrol",
		Mileage:            45000,
	}}, nil
}

func seedBookings(now time.Time) (any, error) {
	return []models.Booking{{
		ID:     "BKG-demo-1",
		Status: models.BookingUpcoming,
		Provider: models.ProviderSnapshot{
			Name:     "AutoFix Solutions",
			Location: "Ahmedabad, Gujarat",
			Phone:    "+91 98765 43210",
		},
		Date:     now.Format(time.RFC3339),
		Time:     "10:00 AM",
		Services: []models.ServiceItem{{ID: "s1", Name: "Full Service", Price: 2500}},
		Vehicle: &models.VehicleSnapshot{
			Make:               "Maruti",
			Model:              "Swift",
			RegistrationNumber: "GJ-01-XX-1234",
		},
		Total:     2950,
		CreatedAt: now,
	}}, nil
}
