package provider

import (
	"context"
	"errors"
	"testing"

	"autohub/database"
	"autohub/database/repository"
)

func newService(t *testing.T) *DefaultProviderService {
	t.Helper()
	store := database.NewMemoryStore()
	if _, err := database.Seed(context.Background(), store); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return NewDefaultProviderService(repository.New(store).Providers)
}

func TestListApproved(t *testing.T) {
	svc := newService(t)
	got, err := svc.ListApproved(context.Background())
	if err != nil {
		t.Fatalf("ListApproved: %v", err)
	}
	if len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p3" {
		t.Fatalf("got %+v, want p1 and p3", got)
	}
}

func TestRequireApproved(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	tests := []struct {
		id      string
		wantErr error
	}{
		{"p1", nil},
		{"p2", ErrProviderNotApproved},
		{"p9", ErrProviderNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			_, err := svc.RequireApproved(ctx, tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := svc.SetApproval(ctx, "p2", true); err != nil {
		t.Fatalf("SetApproval: %v", err)
	}
	if _, err := svc.RequireApproved(ctx, "p2"); err != nil {
		t.Fatalf("p2 should be approved now: %v", err)
	}
}
