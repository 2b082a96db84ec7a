// internal/services/product_service.go
package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/wholesalenaija/admin-gateway/internal/controller"
	"github.com/wholesalenaija/admin-gateway/internal/models"
	"github.com/wholesalenaija/admin-gateway/internal/upstream"
)

type ProductService struct {
	client *upstream.Client
	list   *controller.List[models.ProductView]
}

func NewProductService(client *upstream.Client, notifier controller.Notifier) *ProductService {
	s := &ProductService{client: client}
	s.list = controller.NewList("products", 8, s.fetch, notifier)
	return s
}

func (s *ProductService) fetch(ctx context.Context) ([]models.ProductView, error) {
	var raw []models.RawProduct
	if err := s.client.GetList(ctx, "/admin/products", &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return models.NormalizeProducts(raw), nil
}

// List refreshes the collection and returns the searched, paginated window.
// A load failure still serves the previously held list when one exists.
func (s *ProductService) List(ctx context.Context, search string, page, limit int) ([]models.ProductView, int, int, error) {
	if err := s.list.Load(ctx); err != nil && s.list.Len() == 0 {
		return nil, 0, page, err
	}
	items, total, effectivePage := s.list.View(search, page, limit)
	return items, total, effectivePage, nil
}

// All returns the full collection, loading it first when necessary.
func (s *ProductService) All(ctx context.Context) ([]models.ProductView, error) {
	if err := s.list.Load(ctx); err != nil && s.list.Len() == 0 {
		return nil, err
	}
	return s.list.Items(), nil
}

func (s *ProductService) Get(id string) (models.ProductView, bool) {
	return s.list.Get(id)
}

// UpdateStatus flips a product between Approved/Pending/Rejected with the
// optimistic patch-then-confirm contract.
func (s *ProductService) UpdateStatus(ctx context.Context, id, status string) (models.ProductView, error) {
	display := models.NormalizeTriState(status)

	return s.list.Mutate(ctx, id,
		func(p models.ProductView) models.ProductView {
			p.Status = display
			return p
		},
		func(ctx context.Context) (*models.ProductView, error) {
			payload := map[string]string{"status": strings.ToLower(display)}
			resp, err := s.client.DoJSON(ctx, http.MethodPatch, "/admin/products/"+id, payload, nil)
			if err != nil {
				return nil, err
			}

			var raw models.RawProduct
			if resp.DecodeEntity(&raw) {
				view := models.NormalizeProduct(raw)
				if view.ID != "" {
					return &view, nil
				}
			}
			return nil, nil
		})
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.list.Remove(ctx, id, func(ctx context.Context) error {
		_, err := s.client.Do(ctx, http.MethodDelete, "/admin/products/"+id, nil, nil)
		return err
	})
}
