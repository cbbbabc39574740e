package admin

import (
	"context"
	"sort"

	"autohub/models"
	"autohub/utils"

	"github.com/shopspring/decimal"
)

func (s *DefaultAdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	payments, err := s.Repos.Payments.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	providers, err := s.Repos.Providers.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := s.Repos.Reviews.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.Repos.Users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.AdminStats{
		Users:     len(users),
		Providers: len(providers),
		Payments:  len(payments),
	}
	revenue := decimal.Zero
	for _, p := range payments {
		if p.Status == models.PaymentSuccess {
			revenue = revenue.Add(decimal.NewFromFloat(utils.TotalWithTax(p.Amount, p.TaxRate)))
		}
	}
	stats.TotalRevenue = revenue.InexactFloat64()
	for _, p := range providers {
		if p.Approved {
			stats.ApprovedProviders++
		}
	}
	for _, r := range reviews {
		switch r.Status {
		case models.ReviewApproved:
			stats.ApprovedReviews++
		case models.ReviewPending:
			stats.PendingReviews++
		}
	}
	return stats, nil
}

// RevenueByMonth buckets the totals of all payments by creation month, oldest first.
func (s *DefaultAdminService) RevenueByMonth(ctx context.Context) ([]models.MonthlyRevenue, error) {
	payments, err := s.Repos.Payments.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	buckets := map[string]decimal.Decimal{}
	for _, p := range payments {
		month := p.CreatedAt.Format("2006-01")
		buckets[month] = buckets[month].Add(decimal.NewFromFloat(utils.TotalWithTax(p.Amount, p.TaxRate)))
	}
	out := make([]models.MonthlyRevenue, 0, len(buckets))
	for month, total := range buckets {
		out = append(out, models.MonthlyRevenue{Month: month, Total: total.InexactFloat64()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}
