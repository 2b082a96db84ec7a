// internal/services/category_service.go
package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/wholesalenaija/admin-gateway/internal/controller"
	"github.com/wholesalenaija/admin-gateway/internal/models"
	"github.com/wholesalenaija/admin-gateway/internal/upstream"
)

type CategoryService struct {
	client  *upstream.Client
	storage *StorageService
	list    *controller.List[models.CategoryView]
}

type CategoryInput struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

func NewCategoryService(client *upstream.Client, storage *StorageService, notifier controller.Notifier) *CategoryService {
	s := &CategoryService{client: client, storage: storage}
	s.list = controller.NewList("categories", 8, s.fetch, notifier)
	return s
}

func (s *CategoryService) fetch(ctx context.Context) ([]models.CategoryView, error) {
	var raw []models.RawCategory
	if err := s.client.GetList(ctx, "/admin/categories", &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return models.NormalizeCategories(raw), nil
}

func (s *CategoryService) List(ctx context.Context, search string, page, limit int) ([]models.CategoryView, int, int, error) {
	if err := s.list.Load(ctx); err != nil && s.list.Len() == 0 {
		return nil, 0, page, err
	}
	items, total, effectivePage := s.list.View(search, page, limit)
	return items, total, effectivePage, nil
}

func (s *CategoryService) All(ctx context.Context) ([]models.CategoryView, error) {
	if err := s.list.Load(ctx); err != nil && s.list.Len() == 0 {
		return nil, err
	}
	return s.list.Items(), nil
}

func (s *CategoryService) Get(id string) (models.CategoryView, bool) {
	return s.list.Get(id)
}

func (s *CategoryService) Create(ctx context.Context, input CategoryInput, file multipart.File, header *multipart.FileHeader) (models.CategoryView, error) {
	var resp *upstream.Response
	var err error

	if s.storage.Enabled() && file != nil {
		var upload *UploadResult
		upload, err = s.storage.UploadImage(file, header, s.storage.GetDefaultUploadOptions("categories"))
		if err != nil {
			return models.CategoryView{}, fmt.Errorf("failed to stage category image: %w", err)
		}

		payload := map[string]string{"name": input.Name, "image": upload.URL}
		resp, err = s.client.DoJSON(ctx, http.MethodPost, "/admin/categories", payload, nil)
	} else {
		body, contentType, mErr := buildMultipart(map[string]string{"name": input.Name}, "image", file, header)
		if mErr != nil {
			return models.CategoryView{}, mErr
		}
		resp, err = s.client.Do(ctx, http.MethodPost, "/admin/categories", body, &upstream.RequestOptions{ContentType: contentType})
	}

	if err != nil {
		return models.CategoryView{}, fmt.Errorf("failed to create category: %w", err)
	}

	var raw models.RawCategory
	if resp.DecodeEntity(&raw) {
		view := models.NormalizeCategory(raw)
		s.list.Load(ctx)
		return view, nil
	}

	s.list.Load(ctx)
	return models.CategoryView{}, nil
}

func (s *CategoryService) Rename(ctx context.Context, id, name string) (models.CategoryView, error) {
	return s.list.Mutate(ctx, id,
		func(cat models.CategoryView) models.CategoryView {
			cat.Name = name
			return cat
		},
		func(ctx context.Context) (*models.CategoryView, error) {
			resp, err := s.client.DoJSON(ctx, http.MethodPatch, "/admin/categories/"+id, map[string]string{"name": name}, nil)
			if err != nil {
				return nil, err
			}

			var raw models.RawCategory
			if resp.DecodeEntity(&raw) {
				view := models.NormalizeCategory(raw)
				if view.ID != "" {
					return &view, nil
				}
			}
			return nil, nil
		})
}

// SetArchived toggles the stored active boolean; the display status is the
// derived Active/Archived label.
func (s *CategoryService) SetArchived(ctx context.Context, id string, archived bool) (models.CategoryView, error) {
	display := models.StatusActive
	if archived {
		display = models.StatusArchived
	}

	return s.list.Mutate(ctx, id,
		func(cat models.CategoryView) models.CategoryView {
			cat.Status = display
			return cat
		},
		func(ctx context.Context) (*models.CategoryView, error) {
			resp, err := s.client.DoJSON(ctx, http.MethodPatch, "/admin/categories/"+id, map[string]bool{"status": !archived}, nil)
			if err != nil {
				return nil, err
			}

			var raw models.RawCategory
			if resp.DecodeEntity(&raw) {
				view := models.NormalizeCategory(raw)
				if view.ID != "" {
					return &view, nil
				}
			}
			return nil, nil
		})
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.list.Remove(ctx, id, func(ctx context.Context) error {
		_, err := s.client.Do(ctx, http.MethodDelete, "/admin/categories/"+id, nil, nil)
		return err
	})
}
