package bookingRepo

import (
	"context"
	"testing"
	"time"

	"autohub/database"
	"autohub/models"
)

func TestBookingRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreBookingRepo(database.NewMemoryStore())

	first := models.Booking{ID: "b1", Status: models.BookingUpcoming, Provider: models.ProviderSnapshot{Name: "X"}, Total: 500}
	second := models.Booking{ID: "b2", Status: models.BookingUpcoming, Provider: models.ProviderSnapshot{Name: "Y"}, Total: 700}
	for _, b := range []models.Booking{first, second} {
		if _, err := repo.Create(ctx, b); err != nil {
			t.Fatalf("Create(%s): %v", b.ID, err)
		}
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 2 || all[0].ID != "b2" {
		t.Fatalf("want newest first, got %+v", all)
	}

	tests := []struct {
		name      string
		id        string
		patch     models.BookingUpdateRequest
		wantNil   bool
		wantState models.BookingStatus
	}{
		{
			name:      "status patch keeps other fields",
			id:        "b1",
			patch:     models.BookingUpdateRequest{Status: ptr(models.BookingCancelled)},
			wantState: models.BookingCancelled,
		},
		{
			name:    "missing id",
			id:      "nope",
			patch:   models.BookingUpdateRequest{Status: ptr(models.BookingCancelled)},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Update(ctx, tt.id, tt.patch)
			if err != nil {
				t.Fatalf("Update: %v", err)
			}
			if tt.wantNil {
				if got != nil {
					t.Fatalf("got %+v, want nil", got)
				}
				return
			}
			if got.Status != tt.wantState {
				t.Errorf("status: got %s, want %s", got.Status, tt.wantState)
			}
			if got.Total != 500 || got.Provider.Name != "X" {
				t.Errorf("unpatched fields changed: %+v", got)
			}
			if got.UpdatedAt == nil || time.Since(*got.UpdatedAt) > time.Minute {
				t.Errorf("UpdatedAt not stamped: %v", got.UpdatedAt)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
