// internal/services/starterpack_service.go
package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wholesalenaija/admin-gateway/internal/controller"
	"github.com/wholesalenaija/admin-gateway/internal/models"
	"github.com/wholesalenaija/admin-gateway/internal/upstream"
)

type StarterPackService struct {
	client *upstream.Client
	list   *controller.List[models.StarterPackView]
}

type StarterPackInput struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	VendorIDs   []string `json:"vendor_ids" validate:"required,min=1"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount" validate:"required,gt=0"`
}

func NewStarterPackService(client *upstream.Client, notifier controller.Notifier) *StarterPackService {
	s := &StarterPackService{client: client}
	s.list = controller.NewList("starter-packs", 8, s.fetch, notifier)
	return s
}

func (s *StarterPackService) fetch(ctx context.Context) ([]models.StarterPackView, error) {
	var raw []models.RawStarterPack
	if err := s.client.GetList(ctx, "/v1/starter-packs", &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch starter packs: %w", err)
	}
	return models.NormalizeStarterPacks(raw), nil
}

func (s *StarterPackService) List(ctx context.Context, search string, page, limit int) ([]models.StarterPackView, int, int, error) {
	if err := s.list.Load(ctx); err != nil && s.list.Len() == 0 {
		return nil, 0, page, err
	}
	items, total, effectivePage := s.list.View(search, page, limit)
	return items, total, effectivePage, nil
}

func (s *StarterPackService) Create(ctx context.Context, input StarterPackInput) (models.StarterPackView, error) {
	payload := map[string]interface{}{
		"name":        input.Name,
		"vendorIds":   input.VendorIDs,
		"description": input.Description,
		"amount":      input.Amount,
	}

	resp, err := s.client.DoJSON(ctx, http.MethodPost, "/v1/starter-packs", payload, nil)
	if err != nil {
		return models.StarterPackView{}, fmt.Errorf("failed to create starter pack: %w", err)
	}

	var raw models.RawStarterPack
	if resp.DecodeEntity(&raw) {
		view := models.NormalizeStarterPack(raw)
		s.list.Load(ctx)
		return view, nil
	}

	s.list.Load(ctx)
	return models.StarterPackView{}, nil
}
