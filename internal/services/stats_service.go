// internal/services/stats_service.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/wholesalenaija/admin-gateway/internal/models"
)

// DashboardStats aggregates headline counts across the admin resources.
type DashboardStats struct {
	TotalProducts        int     `json:"total_products"`
	PendingProducts      int     `json:"pending_products"`
	TotalUsers           int     `json:"total_users"`
	VerifiedSellers      int     `json:"verified_sellers"`
	PendingReports       int     `json:"pending_reports"`
	PendingVerifications int     `json:"pending_verifications"`
	TotalTransactions    int     `json:"total_transactions"`
	TransactionVolume    float64 `json:"transaction_volume"`
}

type StatsService struct {
	products      *ProductService
	users         *UserService
	reports       *ReportService
	verifications *VerificationService
	transactions  *TransactionService
}

func NewStatsService(products *ProductService, users *UserService, reports *ReportService, verifications *VerificationService, transactions *TransactionService) *StatsService {
	return &StatsService{
		products:      products,
		users:         users,
		reports:       reports,
		verifications: verifications,
		transactions:  transactions,
	}
}

// GetDashboardStats composes counts from the per-resource lists. A single
// failing resource zeroes its own counters instead of failing the dashboard.
func (s *StatsService) GetDashboardStats(ctx context.Context) DashboardStats {
	var stats DashboardStats

	if products, err := s.products.All(ctx); err != nil {
		logrus.WithError(err).Warn("Dashboard stats: products unavailable")
	} else {
		stats.TotalProducts = len(products)
		for _, p := range products {
			if p.Status == models.StatusPending {
				stats.PendingProducts++
			}
		}
	}

	if users, err := s.users.All(ctx); err != nil {
		logrus.WithError(err).Warn("Dashboard stats: users unavailable")
	} else {
		stats.TotalUsers = len(users)
		for _, u := range users {
			if u.IsVerifiedSeller {
				stats.VerifiedSellers++
			}
		}
	}

	if reports, err := s.reports.All(ctx); err != nil {
		logrus.WithError(err).Warn("Dashboard stats: reports unavailable")
	} else {
		for _, r := range reports {
			if r.Status == models.StatusPending {
				stats.PendingReports++
			}
		}
	}

	if verifications, err := s.verifications.All(ctx); err != nil {
		logrus.WithError(err).Warn("Dashboard stats: verifications unavailable")
	} else {
		for _, v := range verifications {
			if v.Status == models.StatusPending {
				stats.PendingVerifications++
			}
		}
	}

	if transactions, err := s.transactions.All(ctx); err != nil {
		logrus.WithError(err).Warn("Dashboard stats: transactions unavailable")
	} else {
		stats.TotalTransactions = len(transactions)
		for _, t := range transactions {
			stats.TransactionVolume += t.Amount
		}
	}

	return stats
}
