// internal/services/verification_service.go
package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wholesalenaija/admin-gateway/internal/controller"
	"github.com/wholesalenaija/admin-gateway/internal/models"
	"github.com/wholesalenaija/admin-gateway/internal/upstream"
)

type VerificationService struct {
	client *upstream.Client
	list   *controller.List[models.VerificationView]
}

func NewVerificationService(client *upstream.Client, notifier controller.Notifier) *VerificationService {
	s := &VerificationService{client: client}
	s.list = controller.NewList("seller-verifications", 8, s.fetch, notifier)
	return s
}

func (s *VerificationService) fetch(ctx context.Context) ([]models.VerificationView, error) {
	var raw []models.RawVerification
	if err := s.client.GetList(ctx, "/admin/seller-verifications", &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch seller verifications: %w", err)
	}
	return models.NormalizeVerifications(raw), nil
}

func (s *VerificationService) List(ctx context.Context, search string, page, limit int) ([]models.VerificationView, int, int, error) {
	if err := s.list.Load(ctx); err != nil && s.list.Len() == 0 {
		return nil, 0, page, err
	}
	items, total, effectivePage := s.list.View(search, page, limit)
	return items, total, effectivePage, nil
}

func (s *VerificationService) All(ctx context.Context) ([]models.VerificationView, error) {
	if err := s.list.Load(ctx); err != nil && s.list.Len() == 0 {
		return nil, err
	}
	return s.list.Items(), nil
}

func (s *VerificationService) Approve(ctx context.Context, id string) (models.VerificationView, error) {
	return s.decide(ctx, id, "approve", models.StatusApproved)
}

func (s *VerificationService) Reject(ctx context.Context, id string) (models.VerificationView, error) {
	return s.decide(ctx, id, "reject", models.StatusRejected)
}

func (s *VerificationService) decide(ctx context.Context, id, action, display string) (models.VerificationView, error) {
	return s.list.Mutate(ctx, id,
		func(v models.VerificationView) models.VerificationView {
			v.Status = display
			return v
		},
		func(ctx context.Context) (*models.VerificationView, error) {
			resp, err := s.client.DoJSON(ctx, http.MethodPatch, "/admin/seller-verifications/"+id+"/"+action, nil, nil)
			if err != nil {
				return nil, err
			}

			var raw models.RawVerification
			if resp.DecodeEntity(&raw) {
				view := models.NormalizeVerification(raw)
				if view.ID != "" {
					return &view, nil
				}
			}
			return nil, nil
		})
}
