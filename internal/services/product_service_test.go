// internal/services/product_service_test.go
package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wholesalenaija/admin-gateway/internal/config"
	"github.com/wholesalenaija/admin-gateway/internal/models"
	"github.com/wholesalenaija/admin-gateway/internal/upstream"
)

// fakeBackend is a minimal marketplace backend for product flows.
type fakeBackend struct {
	mu       sync.Mutex
	products []map[string]interface{}
	failNext bool
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/admin/products", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"data": f.products})
	})

	mux.HandleFunc("/admin/products/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		if f.failNext {
			f.failNext = false
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"boom"}`))
			return
		}

		id := r.URL.Path[len("/admin/products/"):]

		switch r.Method {
		case http.MethodPatch:
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			for _, p := range f.products {
				if p["id"] == id {
					p["status"] = body["status"]
					w.Header().Set("Content-Type", "application/json")
					json.NewEncoder(w).Encode(map[string]interface{}{"data": p})
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
		case http.MethodDelete:
			for i, p := range f.products {
				if p["id"] == id {
					f.products = append(f.products[:i], f.products[i+1:]...)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
		}
	})

	return mux
}

func newProductFixture(t *testing.T) (*ProductService, *fakeBackend, func()) {
	t.Helper()

	backend := &fakeBackend{
		products: []map[string]interface{}{
			{"id": "p1", "name": "Solar Lamp", "status": "pending", "seller": "Ada Traders", "price": 4500},
			{"id": "p2", "name": "Phone Case", "status": "approved", "seller": "Lagos Gadgets", "price": 1200},
			{"id": "p3", "name": "Rice Cooker", "status": "pending", "seller": map[string]string{"name": "Kano Kitchen"}, "price": 15000},
		},
	}

	server := httptest.NewServer(backend.handler())
	client := upstream.NewClient(config.UpstreamConfig{BaseURL: server.URL, ServiceToken: "svc", Timeout: 5})
	service := NewProductService(client, nil)

	return service, backend, server.Close
}

func TestProductListNormalizesAndPaginates(t *testing.T) {
	service, _, cleanup := newProductFixture(t)
	defer cleanup()

	items, total, page, err := service.List(context.Background(), "", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, page)
	require.Len(t, items, 2)
	assert.Equal(t, models.StatusPending, items[0].Status)
	assert.Equal(t, "Ada Traders", items[0].Seller)

	// Nested seller object decoded through the flexible name type.
	all, _, _, err := service.List(context.Background(), "", 2, 2)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Kano Kitchen", all[0].Seller)
}

func TestProductListSearch(t *testing.T) {
	service, _, cleanup := newProductFixture(t)
	defer cleanup()

	items, total, _, err := service.List(context.Background(), "LAMP", 1, 8)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
}

func TestProductApproveFlow(t *testing.T) {
	service, _, cleanup := newProductFixture(t)
	defer cleanup()

	_, _, _, err := service.List(context.Background(), "", 1, 8)
	require.NoError(t, err)

	updated, err := service.UpdateStatus(context.Background(), "p1", "approved")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)

	held, ok := service.Get("p1")
	require.True(t, ok)
	assert.Equal(t, models.StatusApproved, held.Status)
}

func TestProductApproveRollsBackOnBackendError(t *testing.T) {
	service, backend, cleanup := newProductFixture(t)
	defer cleanup()

	_, _, _, err := service.List(context.Background(), "", 1, 8)
	require.NoError(t, err)

	backend.failNext = true
	_, err = service.UpdateStatus(context.Background(), "p1", "approved")
	require.Error(t, err)

	held, ok := service.Get("p1")
	require.True(t, ok)
	assert.Equal(t, models.StatusPending, held.Status, "failed approval must roll back to the prior status")
}

func TestProductDelete(t *testing.T) {
	service, backend, cleanup := newProductFixture(t)
	defer cleanup()

	_, _, _, err := service.List(context.Background(), "", 1, 8)
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), "p2"))
	_, ok := service.Get("p2")
	assert.False(t, ok)

	backend.mu.Lock()
	assert.Len(t, backend.products, 2)
	backend.mu.Unlock()
}

func TestProductListServesStaleOnBackendFailure(t *testing.T) {
	backend := &fakeBackend{
		products: []map[string]interface{}{
			{"id": "p1", "name": "Solar Lamp", "status": "pending", "seller": "Ada Traders"},
		},
	}
	server := httptest.NewServer(backend.handler())
	client := upstream.NewClient(config.UpstreamConfig{BaseURL: server.URL, ServiceToken: "svc", Timeout: 5})
	service := NewProductService(client, nil)

	_, total, _, err := service.List(context.Background(), "", 1, 8)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	// Backend goes away; the held list still serves.
	server.Close()
	items, total, _, err := service.List(context.Background(), "", 1, 8)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
}
