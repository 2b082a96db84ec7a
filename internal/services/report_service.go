// internal/services/report_service.go
package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wholesalenaija/admin-gateway/internal/controller"
	"github.com/wholesalenaija/admin-gateway/internal/models"
	"github.com/wholesalenaija/admin-gateway/internal/upstream"
)

type ReportService struct {
	client *upstream.Client
	list   *controller.List[models.ReportView]
}

func NewReportService(client *upstream.Client, notifier controller.Notifier) *ReportService {
	s := &ReportService{client: client}
	s.list = controller.NewList("reports", 8, s.fetch, notifier)
	return s
}

func (s *ReportService) fetch(ctx context.Context) ([]models.ReportView, error) {
	var raw []models.RawReport
	if err := s.client.GetList(ctx, "/v1/reports", &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch reports: %w", err)
	}
	return models.NormalizeReports(raw), nil
}

func (s *ReportService) List(ctx context.Context, search string, page, limit int) ([]models.ReportView, int, int, error) {
	if err := s.list.Load(ctx); err != nil && s.list.Len() == 0 {
		return nil, 0, page, err
	}
	items, total, effectivePage := s.list.View(search, page, limit)
	return items, total, effectivePage, nil
}

func (s *ReportService) All(ctx context.Context) ([]models.ReportView, error) {
	if err := s.list.Load(ctx); err != nil && s.list.Len() == 0 {
		return nil, err
	}
	return s.list.Items(), nil
}

// Resolve marks a report resolved, attaching the admin's free-text notes.
func (s *ReportService) Resolve(ctx context.Context, id, adminNotes string) (models.ReportView, error) {
	return s.list.Mutate(ctx, id,
		func(r models.ReportView) models.ReportView {
			r.Status = models.StatusResolved
			r.AdminNotes = adminNotes
			return r
		},
		func(ctx context.Context) (*models.ReportView, error) {
			payload := map[string]string{"adminNotes": adminNotes}
			resp, err := s.client.DoJSON(ctx, http.MethodPut, "/v1/reports/"+id+"/resolve", payload, nil)
			if err != nil {
				return nil, err
			}

			var raw models.RawReport
			if resp.DecodeEntity(&raw) {
				view := models.NormalizeReport(raw)
				if view.ID != "" {
					return &view, nil
				}
			}
			return nil, nil
		})
}

// Reject dismisses a report, attaching the rejection reason.
func (s *ReportService) Reject(ctx context.Context, id, reason string) (models.ReportView, error) {
	return s.list.Mutate(ctx, id,
		func(r models.ReportView) models.ReportView {
			r.Status = models.StatusRejected
			r.RejectionReason = reason
			return r
		},
		func(ctx context.Context) (*models.ReportView, error) {
			payload := map[string]string{"rejectionReason": reason}
			resp, err := s.client.DoJSON(ctx, http.MethodPut, "/v1/reports/"+id+"/reject", payload, nil)
			if err != nil {
				return nil, err
			}

			var raw models.RawReport
			if resp.DecodeEntity(&raw) {
				view := models.NormalizeReport(raw)
				if view.ID != "" {
					return &view, nil
				}
			}
			return nil, nil
		})
}
