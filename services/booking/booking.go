package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"autohub/models"
	"autohub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultBookingTime = "10:00"

// dateLayouts are the accepted input forms of a booking date, tried in order.
var dateLayouts = []string{time.RFC3339, time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"}

func normalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(time.RFC3339), nil
		}
	}
	return "", utils.NewValidationError("date", "date must be an ISO-8601 date or timestamp")
}

func (s *DefaultBookingService) CreateBooking(ctx context.Context, principal *models.Principal, req models.BookingRequest) (*models.Booking, error) {
	snapshot := req.Provider
	if snapshot.ID != "" {
		p, err := s.Providers.RequireApproved(ctx, snapshot.ID)
		if err != nil {
			return nil, err
		}
		if snapshot.Name == "" {
			snapshot.Name = p.Name
		}
		if snapshot.Location == "" {
			snapshot.Location = p.Location
		}
		if snapshot.Phone == "" {
			snapshot.Phone = p.Phone
		}
	}
	if strings.TrimSpace(snapshot.Name) == "" {
		return nil, utils.NewValidationError("provider", "provider name is required")
	}
	if len(req.Services) == 0 {
		return nil, utils.NewValidationError("services", "at least one service is required")
	}
	for _, svc := range req.Services {
		if svc.Price < 0 {
			return nil, utils.NewValidationError("services", "service price cannot be negative")
		}
	}
	date, err := normalizeDate(req.Date)
	if err != nil {
		return nil, err
	}

	bookingTime := strings.TrimSpace(req.Time)
	if bookingTime == "" {
		bookingTime = defaultBookingTime
	}

	b := models.Booking{
		ID:        uuid.NewString(),
		Status:    models.BookingUpcoming,
		Provider:  snapshot,
		Date:      date,
		Time:      bookingTime,
		Services:  req.Services,
		Vehicle:   req.Vehicle,
		CreatedAt: s.now(),
	}
	if principal != nil {
		b.UserID = principal.UserID
	}
	if req.Total != nil {
		b.Total = *req.Total
	} else {
		b.Total = b.ServicesTotal()
	}

	created, err := s.Repo.Create(ctx, b)
	if err != nil {
		utils.GetLogger().Error("CreateBooking: failed to persist booking", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	utils.GetLogger().Info("Booking created",
		zap.String("bookingID", created.ID),
		zap.String("userID", created.UserID),
		zap.Float64("total", created.Total))
	return &created, nil
}

// visibleTo reports whether principal may see b. Anonymous bookings are visible to everyone.
func visibleTo(b models.Booking, principal *models.Principal) bool {
	if principal == nil || principal.IsAdmin() {
		return true
	}
	return b.UserID == "" || b.UserID == principal.UserID
}

func (s *DefaultBookingService) ListBookings(ctx context.Context, principal *models.Principal, status string) ([]models.Booking, error) {
	all, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	status = strings.ToLower(strings.TrimSpace(status))
	out := make([]models.Booking, 0, len(all))
	for _, b := range all {
		if !visibleTo(b, principal) {
			continue
		}
		if status != "" && status != "all" && string(b.Status) != status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, principal *models.Principal, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if !visibleTo(*b, principal) {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *DefaultBookingService) UpdateBooking(ctx context.Context, id string, patch models.BookingUpdateRequest) (*models.Booking, error) {
	b, err := s.Repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

// changeableBy reports whether principal may cancel or reschedule b.
// Guests may only act on anonymous bookings even though they can see every booking.
func changeableBy(b models.Booking, principal *models.Principal) bool {
	if principal == nil {
		return b.UserID == ""
	}
	return visibleTo(b, principal)
}

// changeable loads a booking the principal may act on and that is still upcoming.
func (s *DefaultBookingService) changeable(ctx context.Context, principal *models.Principal, id string) (*models.Booking, error) {
	b, err := s.GetBooking(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if !changeableBy(*b, principal) {
		return nil, ErrForbidden
	}
	if b.Status != models.BookingUpcoming {
		return nil, ErrInvalidTransition
	}
	return b, nil
}

func (s *DefaultBookingService) CancelBooking(ctx context.Context, principal *models.Principal, id string) (*models.Booking, error) {
	if _, err := s.changeable(ctx, principal, id); err != nil {
		return nil, err
	}
	status := models.BookingCancelled
	at := s.now()
	b, err := s.UpdateBooking(ctx, id, models.BookingUpdateRequest{Status: &status, CancelledAt: &at})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Booking cancelled", zap.String("bookingID", id))
	return b, nil
}

func (s *DefaultBookingService) RescheduleBooking(ctx context.Context, principal *models.Principal, id, date string) (*models.Booking, error) {
	if _, err := s.changeable(ctx, principal, id); err != nil {
		return nil, err
	}
	var next string
	if strings.TrimSpace(date) == "" {
		next = s.now().Add(s.RescheduleOffset).Format(time.RFC3339)
	} else {
		normalized, err := normalizeDate(date)
		if err != nil {
			return nil, err
		}
		next = normalized
	}
	status := models.BookingUpcoming
	b, err := s.UpdateBooking(ctx, id, models.BookingUpdateRequest{Status: &status, Date: &next})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Booking rescheduled", zap.String("bookingID", id), zap.String("date", next))
	return b, nil
}
