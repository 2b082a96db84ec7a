// internal/services/transaction_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/wholesalenaija/admin-gateway/internal/controller"
	"github.com/wholesalenaija/admin-gateway/internal/models"
	"github.com/wholesalenaija/admin-gateway/internal/upstream"
)

// TransactionService is read-only: the dashboard monitors wallet activity but
// never mutates it.
type TransactionService struct {
	client *upstream.Client
	users  *UserService
	list   *controller.List[models.TransactionView]
}

func NewTransactionService(client *upstream.Client, users *UserService, notifier controller.Notifier) *TransactionService {
	s := &TransactionService{client: client, users: users}
	s.list = controller.NewList("transactions", 20, s.fetch, notifier)
	return s
}

func (s *TransactionService) fetch(ctx context.Context) ([]models.TransactionView, error) {
	var raw []models.RawTransaction
	if err := s.client.GetList(ctx, "/wallet/transactions", &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	// User names come from a separately fetched map; a failure there
	// degrades to N/A display names rather than failing the listing.
	userNames, err := s.users.UserNames(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Failed to resolve user names for transactions")
		userNames = map[string]string{}
	}

	return models.NormalizeTransactions(raw, userNames), nil
}

func (s *TransactionService) List(ctx context.Context, search string, page, limit int) ([]models.TransactionView, int, int, error) {
	if err := s.list.Load(ctx); err != nil && s.list.Len() == 0 {
		return nil, 0, page, err
	}
	items, total, effectivePage := s.list.View(search, page, limit)
	return items, total, effectivePage, nil
}

func (s *TransactionService) All(ctx context.Context) ([]models.TransactionView, error) {
	if err := s.list.Load(ctx); err != nil && s.list.Len() == 0 {
		return nil, err
	}
	return s.list.Items(), nil
}
