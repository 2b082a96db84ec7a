// internal/services/user_service.go
package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wholesalenaija/admin-gateway/internal/controller"
	"github.com/wholesalenaija/admin-gateway/internal/models"
	"github.com/wholesalenaija/admin-gateway/internal/upstream"
)

type UserService struct {
	client *upstream.Client
	list   *controller.List[models.UserView]
}

func NewUserService(client *upstream.Client, notifier controller.Notifier) *UserService {
	s := &UserService{client: client}
	s.list = controller.NewList("users", 20, s.fetch, notifier)
	return s
}

func (s *UserService) fetch(ctx context.Context) ([]models.UserView, error) {
	var raw []models.RawUser
	if err := s.client.GetList(ctx, "/v1/users", &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return models.NormalizeUsers(raw), nil
}

func (s *UserService) List(ctx context.Context, search string, page, limit int) ([]models.UserView, int, int, error) {
	if err := s.list.Load(ctx); err != nil && s.list.Len() == 0 {
		return nil, 0, page, err
	}
	items, total, effectivePage := s.list.View(search, page, limit)
	return items, total, effectivePage, nil
}

func (s *UserService) All(ctx context.Context) ([]models.UserView, error) {
	if err := s.list.Load(ctx); err != nil && s.list.Len() == 0 {
		return nil, err
	}
	return s.list.Items(), nil
}

func (s *UserService) Get(id string) (models.UserView, bool) {
	return s.list.Get(id)
}

// Sellers fetches the seller subset from its dedicated endpoint.
func (s *UserService) Sellers(ctx context.Context) ([]models.UserView, error) {
	var raw []models.RawUser
	if err := s.client.GetList(ctx, "/v1/users/sellers", &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch sellers: %w", err)
	}
	return models.NormalizeUsers(raw), nil
}

// UserNames builds the id-to-name map other resources (transactions) resolve
// against.
func (s *UserService) UserNames(ctx context.Context) (map[string]string, error) {
	users, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName
	}
	return names, nil
}

func (s *UserService) Suspend(ctx context.Context, id string) (models.UserView, error) {
	return s.list.Mutate(ctx, id,
		func(u models.UserView) models.UserView {
			u.Status = "Suspended"
			return u
		},
		func(ctx context.Context) (*models.UserView, error) {
			resp, err := s.client.DoJSON(ctx, http.MethodPut, "/v1/users/"+id+"/suspend", nil, nil)
			if err != nil {
				return nil, err
			}

			var raw models.RawUser
			if resp.DecodeEntity(&raw) {
				view := models.NormalizeUser(raw)
				if view.ID != "" {
					return &view, nil
				}
			}
			return nil, nil
		})
}
