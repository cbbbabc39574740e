package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"autohub/database"
	"autohub/database/repository"
	"autohub/models"
	"autohub/services/provider"
	"autohub/utils"
)

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newService(t *testing.T, seed bool) *DefaultBookingService {
	t.Helper()
	store := database.NewMemoryStore()
	repos := repository.New(store)
	if seed {
		if _, err := database.Seed(context.Background(), store); err != nil {
			t.Fatalf("Seed: %v", err)
		}
	} else {
		_ = database.SetJSON(context.Background(), store, utils.KeyProviders, []models.Provider{
			{ID: "p1", Name: "Ahmedabad Auto Care", Category: "Mechanic", Approved: true, Location: "Navrangpura"},
			{ID: "p2", Name: "Gujarat Shine Detailing", Category: "Detailing"},
		})
	}
	svc := NewDefaultBookingService(repos.Bookings, provider.NewDefaultProviderService(repos.Providers), 48*time.Hour)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func customer(id string) *models.Principal {
	return &models.Principal{UserID: id, Role: models.RoleCustomer}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	explicit := 1200.0

	tests := []struct {
		name      string
		req       models.BookingRequest
		wantErr   error
		wantTotal float64
		wantTime  string
	}{
		{
			name: "total is the sum of service prices",
			req: models.BookingRequest{
				Provider: models.ProviderSnapshot{Name: "Corner Garage"},
				Date:     "2025-03-12",
				Services: []models.ServiceItem{{Name: "Oil Change", Price: 500}},
			},
			wantTotal: 500,
			wantTime:  "10:00",
		},
		{
			name: "explicit total wins",
			req: models.BookingRequest{
				Provider: models.ProviderSnapshot{Name: "Corner Garage"},
				Date:     "2025-03-12T11:30:00Z",
				Time:     "11:30",
				Services: []models.ServiceItem{{Name: "Wash", Price: 300}, {Name: "Polish", Price: 400}},
				Total:    &explicit,
			},
			wantTotal: 1200,
			wantTime:  "11:30",
		},
		{
			name: "approved provider id fills the snapshot",
			req: models.BookingRequest{
				Provider: models.ProviderSnapshot{ID: "p1"},
				Date:     "2025-03-12",
				Services: []models.ServiceItem{{Name: "Brake Check", Price: 800}},
			},
			wantTotal: 800,
			wantTime:  "10:00",
		},
		{
			name: "unapproved provider is refused",
			req: models.BookingRequest{
				Provider: models.ProviderSnapshot{ID: "p2", Name: "Gujarat Shine Detailing"},
				Date:     "2025-03-12",
				Services: []models.ServiceItem{{Name: "Detailing", Price: 1500}},
			},
			wantErr: provider.ErrProviderNotApproved,
		},
		{
			name: "unknown provider is refused",
			req: models.BookingRequest{
				Provider: models.ProviderSnapshot{ID: "p9", Name: "Ghost"},
				Date:     "2025-03-12",
				Services: []models.ServiceItem{{Name: "Anything", Price: 1}},
			},
			wantErr: provider.ErrProviderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, false)
			b, err := svc.CreateBooking(ctx, customer("u1"), tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got %v, want %v", err, tt.wantErr)
				}
				all, _ := svc.Repo.GetAll(ctx)
				if len(all) != 0 {
					t.Fatalf("refused booking was stored: %+v", all)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateBooking: %v", err)
			}
			if b.Status != models.BookingUpcoming {
				t.Errorf("status: got %s, want upcoming", b.Status)
			}
			if b.Total != tt.wantTotal {
				t.Errorf("total: got %v, want %v", b.Total, tt.wantTotal)
			}
			if b.Time != tt.wantTime {
				t.Errorf("time: got %q, want %q", b.Time, tt.wantTime)
			}
			if b.UserID != "u1" || b.ID == "" || b.Provider.Name == "" {
				t.Errorf("unexpected booking: %+v", b)
			}
			if _, err := time.Parse(time.RFC3339, b.Date); err != nil {
				t.Errorf("date %q is not RFC 3339", b.Date)
			}
			stored, _ := svc.Repo.GetByID(ctx, b.ID)
			if stored == nil || stored.Total != tt.wantTotal {
				t.Errorf("stored booking mismatch: %+v", stored)
			}
		})
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc := newService(t, false)
	ctx := context.Background()

	cases := map[string]models.BookingRequest{
		"missing provider": {Date: "2025-03-12", Services: []models.ServiceItem{{Name: "x", Price: 1}}},
		"no services":      {Provider: models.ProviderSnapshot{Name: "G"}, Date: "2025-03-12"},
		"bad date":         {Provider: models.ProviderSnapshot{Name: "G"}, Date: "next tuesday", Services: []models.ServiceItem{{Name: "x", Price: 1}}},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateBooking(ctx, nil, req)
			var verr *utils.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got %v, want a ValidationError", err)
			}
		})
	}
}

func TestListBookingsScope(t *testing.T) {
	svc := newService(t, true)
	ctx := context.Background()
	req := models.BookingRequest{
		Provider: models.ProviderSnapshot{Name: "Corner Garage"},
		Date:     "2025-03-12",
		Services: []models.ServiceItem{{Name: "Oil Change", Price: 500}},
	}
	mine, _ := svc.CreateBooking(ctx, customer("u1"), req)
	_, _ = svc.CreateBooking(ctx, customer("u2"), req)
	_, _ = svc.CancelBooking(ctx, customer("u1"), mine.ID)

	tests := []struct {
		name      string
		principal *models.Principal
		status    string
		want      int
	}{
		{"anonymous sees everything", nil, "", 3},
		{"user sees own and demo", customer("u1"), "", 2},
		{"status filter", customer("u1"), "upcoming", 1},
		{"all disables filter", customer("u1"), "all", 2},
		{"admin sees everything", &models.Principal{UserID: "u3", Role: models.RoleAdmin}, "", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ListBookings(ctx, tt.principal, tt.status)
			if err != nil {
				t.Fatalf("ListBookings: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("got %d bookings, want %d", len(got), tt.want)
			}
		})
	}
}

func TestCancelBooking(t *testing.T) {
	svc := newService(t, false)
	ctx := context.Background()
	b, err := svc.CreateBooking(ctx, customer("u1"), models.BookingRequest{
		Provider: models.ProviderSnapshot{Name: "Corner Garage", Phone: "+91 90000 00000"},
		Date:     "2025-03-12",
		Services: []models.ServiceItem{{ID: "s1", Name: "Oil Change", Price: 500}},
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if _, err := svc.CancelBooking(ctx, customer("u2"), b.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("other user: got %v, want ErrForbidden", err)
	}
	if _, err := svc.CancelBooking(ctx, nil, b.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("guest: got %v, want ErrForbidden", err)
	}
	if _, err := svc.RescheduleBooking(ctx, nil, b.ID, ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("guest reschedule: got %v, want ErrForbidden", err)
	}
	if still, _ := svc.GetBooking(ctx, nil, b.ID); still.Status != models.BookingUpcoming {
		t.Fatalf("guest changed an owned booking: %+v", still)
	}

	got, err := svc.CancelBooking(ctx, customer("u1"), b.ID)
	if err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if got.Status != models.BookingCancelled || got.CancelledAt == nil || got.CancelledAt.IsZero() {
		t.Fatalf("not cancelled: %+v", got)
	}
	if got.ID != b.ID || got.Provider != b.Provider || len(got.Services) != 1 || got.Services[0] != b.Services[0] {
		t.Fatalf("cancel changed identity fields: before %+v after %+v", b, got)
	}

	if _, err := svc.CancelBooking(ctx, customer("u1"), b.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second cancel: got %v, want ErrInvalidTransition", err)
	}
	if _, err := svc.CancelBooking(ctx, customer("u1"), "missing"); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("missing: got %v, want ErrBookingNotFound", err)
	}
}

func TestRescheduleBooking(t *testing.T) {
	svc := newService(t, true)
	ctx := context.Background()

	got, err := svc.RescheduleBooking(ctx, customer("u1"), "BKG-demo-1", "")
	if err != nil {
		t.Fatalf("RescheduleBooking: %v", err)
	}
	want := fixedNow.Add(48 * time.Hour).Format(time.RFC3339)
	if got.Date != want || got.Status != models.BookingUpcoming {
		t.Fatalf("got date %s status %s, want %s upcoming", got.Date, got.Status, want)
	}
	if got.UpdatedAt == nil {
		t.Fatalf("UpdatedAt not stamped")
	}

	got, err = svc.RescheduleBooking(ctx, customer("u1"), "BKG-demo-1", "2025-04-01")
	if err != nil {
		t.Fatalf("RescheduleBooking with date: %v", err)
	}
	if got.Date != "2025-04-01T00:00:00Z" {
		t.Fatalf("got date %s", got.Date)
	}

	_, _ = svc.CancelBooking(ctx, nil, "BKG-demo-1")
	if _, err := svc.RescheduleBooking(ctx, nil, "BKG-demo-1", ""); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("reschedule after cancel: got %v, want ErrInvalidTransition", err)
	}
}
