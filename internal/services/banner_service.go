// internal/services/banner_service.go
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

type BannerService struct {
	client  *upstream.Client
	storage *StorageService
	list    *controller.List[models.BannerView]
}

type BannerInput struct {
	Title     string `json:"title" validate:"required"`
	Type      string `json:"type" validate:"required"`
	Device    string `json:"device"`
	Position  string `json:"position"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func NewBannerService(client *upstream.Client, storage *StorageService, notifier controller.Notifier) *BannerService {
	s := &BannerService{client: client, storage: storage}
	s.list = controller.NewList("banners", 8, s.fetch, notifier)
	return s
}

func (s *BannerService) fetch(ctx context.Context) ([]models.BannerView, error) {
	var raw []models.RawBanner
	if err := s.client.GetList(ctx, "/v1/banners", &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch banners: %w", err)
	}
	return models.NormalizeBanners(raw), nil
}

func (s *BannerService) List(ctx context.Context, search string, page, limit int) ([]models.BannerView, int, int, error) {
	if err := s.list.Load(ctx); err != nil && s.list.Len() == 0 {
		return nil, 0, page, err
	}
	items, total, effectivePage := s.list.View(search, page, limit)
	return items, total, effectivePage, nil
}

// Create posts a new banner. With S3 configured the image is staged there and
// the backend receives JSON with the image URL; otherwise the multipart form
// is forwarded unchanged.
func (s *BannerService) Create(ctx context.Context, input BannerInput, file multipart.File, header *multipart.FileHeader) (models.BannerView, error) {
	var resp *upstream.Response
	var err error

	if s.storage.Enabled() && file != nil {
		var upload *UploadResult
		upload, err = s.storage.UploadImage(file, header, s.storage.GetDefaultUploadOptions("banners"))
		if err != nil {
			return models.BannerView{}, fmt.Errorf("failed to stage banner image: %w", err)
		}

		payload := map[string]string{
			"title":     input.Title,
			"type":      input.Type,
			"device":    input.Device,
			"position":  input.Position,
			"startDate": input.StartDate,
			"endDate":   input.EndDate,
			"image":     upload.URL,
		}
		resp, err = s.client.DoJSON(ctx, http.MethodPost, "/v1/banners", payload, nil)
	} else {
		fields := map[string]string{
			"title":     input.Title,
			"type":      input.Type,
			"device":    input.Device,
			"position":  input.Position,
			"startDate": input.StartDate,
			"endDate":   input.EndDate,
		}
		body, contentType, mErr := buildMultipart(fields, "image", file, header)
		if mErr != nil {
			return models.BannerView{}, mErr
		}
		resp, err = s.client.Do(ctx, http.MethodPost, "/v1/banners", body, &upstream.RequestOptions{ContentType: contentType})
	}

	if err != nil {
		return models.BannerView{}, fmt.Errorf("failed to create banner: %w", err)
	}

	var raw models.RawBanner
	if resp.DecodeEntity(&raw) {
		view := models.NormalizeBanner(raw)
		s.list.Load(ctx)
		return view, nil
	}

	s.list.Load(ctx)
	return models.BannerView{}, nil
}

func (s *BannerService) Update(ctx context.Context, id string, input BannerInput) (models.BannerView, error) {
	return s.list.Mutate(ctx, id,
		func(b models.BannerView) models.BannerView {
			b.Title = input.Title
			b.Type = input.Type
			b.Device = input.Device
			b.Position = input.Position
			b.StartDate = input.StartDate
			b.EndDate = input.EndDate
			return b
		},
		func(ctx context.Context) (*models.BannerView, error) {
			payload := map[string]string{
				"title":     input.Title,
				"type":      input.Type,
				"device":    input.Device,
				"position":  input.Position,
				"startDate": input.StartDate,
				"endDate":   input.EndDate,
			}
			resp, err := s.client.DoJSON(ctx, http.MethodPut, "/v1/banners/"+id, payload, nil)
			if err != nil {
				return nil, err
			}

			var raw models.RawBanner
			if resp.DecodeEntity(&raw) {
				view := models.NormalizeBanner(raw)
				if view.ID != "" {
					return &view, nil
				}
			}
			return nil, nil
		})
}

// SetActive toggles a banner's stored active boolean. The optimistic label
// comes from the same boolean-to-label mapping the normalizer uses.
func (s *BannerService) SetActive(ctx context.Context, id string, active bool) (models.BannerView, error) {
	return s.list.Mutate(ctx, id,
		func(b models.BannerView) models.BannerView {
			b.Status = models.BannerLabel(active, false)
			return b
		},
		func(ctx context.Context) (*models.BannerView, error) {
			payload := map[string]bool{"status": active}
			resp, err := s.client.DoJSON(ctx, http.MethodPatch, "/v1/banners/"+id, payload, nil)
			if err != nil {
				return nil, err
			}

			var raw models.RawBanner
			if resp.DecodeEntity(&raw) {
				view := models.NormalizeBanner(raw)
				if view.ID != "" {
					return &view, nil
				}
			}
			return nil, nil
		})
}

func (s *BannerService) Delete(ctx context.Context, id string) error {
	return s.list.Remove(ctx, id, func(ctx context.Context) error {
		_, err := s.client.Do(ctx, http.MethodDelete, "/v1/banners/"+id, nil, nil)
		return err
	})
}
