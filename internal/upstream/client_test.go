// internal/upstream/client_test.go
package upstream

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wholesalenaija/admin-gateway/internal/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.UpstreamConfig{
		BaseURL:      baseURL,
		ServiceToken: "service-token",
		DevToken:     "dev-token",
		Timeout:      5,
	})
}

func TestClientAttachesServiceToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Do(context.Background(), http.MethodGet, "/admin/products", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer service-token", gotAuth)
}

func TestClientFallsBackToDevToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(config.UpstreamConfig{BaseURL: server.URL, DevToken: "dev-token", Timeout: 5})
	_, err := client.Do(context.Background(), http.MethodGet, "/v1/users", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer dev-token", gotAuth)
}

func TestClientPerCallTokenWins(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Do(context.Background(), http.MethodGet, "/v1/users", nil, &RequestOptions{Token: "override"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer override", gotAuth)
}

func TestClientJSONContentType(t *testing.T) {
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.DoJSON(context.Background(), http.MethodPost, "/v1/banners", map[string]string{"title": "Sale"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
}

func TestClientMultipartContentTypePreserved(t *testing.T) {
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	var body strings.Builder
	writer := multipart.NewWriter(&body)
	writer.WriteField("title", "Sale")
	writer.Close()

	client := newTestClient(server.URL)
	_, err := client.Do(context.Background(), http.MethodPost, "/v1/banners",
		strings.NewReader(body.String()),
		&RequestOptions{ContentType: writer.FormDataContentType()})
	require.NoError(t, err)
	assert.Equal(t, writer.FormDataContentType(), gotContentType)
	assert.Contains(t, gotContentType, "boundary=")
}

func TestClientCallerHeadersOverrideDefaults(t *testing.T) {
	var gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Do(context.Background(), http.MethodGet, "/v1/reports", nil,
		&RequestOptions{Headers: map[string]string{"Accept": "text/csv"}})
	require.NoError(t, err)
	assert.Equal(t, "text/csv", gotAccept)
}

func TestClientNon2xxReturnsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.Do(context.Background(), http.MethodGet, "/admin/products/missing", nil, nil)
	assert.Nil(t, resp)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "not found")
}

func TestClientNonJSONResponseText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("pong"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.Do(context.Background(), http.MethodGet, "/health", nil, nil)
	require.NoError(t, err)
	assert.False(t, resp.IsJSON())
	assert.Equal(t, "pong", resp.Text())
}

func TestDecodeListBareArray(t *testing.T) {
	resp := &Response{isJSON: true, raw: []byte(`[{"id":"a"},{"id":"b"}]`)}

	var items []struct {
		ID string `json:"id"`
	}
	require.NoError(t, resp.DecodeList(&items))
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
}

func TestDecodeListDataEnvelope(t *testing.T) {
	resp := &Response{isJSON: true, raw: []byte(`{"data":[{"id":"a"}]}`)}

	var items []struct {
		ID string `json:"id"`
	}
	require.NoError(t, resp.DecodeList(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)
}

func TestDecodeListRejectsGarbage(t *testing.T) {
	resp := &Response{isJSON: true, raw: []byte(`"oops"`)}

	var items []struct{}
	assert.Error(t, resp.DecodeList(&items))
}

func TestDecodeEntity(t *testing.T) {
	var entity struct {
		ID string `json:"id"`
	}

	bare := &Response{isJSON: true, raw: []byte(`{"id":"x"}`)}
	assert.True(t, bare.DecodeEntity(&entity))
	assert.Equal(t, "x", entity.ID)

	wrapped := &Response{isJSON: true, raw: []byte(`{"data":{"id":"y"}}`)}
	assert.True(t, wrapped.DecodeEntity(&entity))
	assert.Equal(t, "y", entity.ID)

	empty := &Response{isJSON: true, raw: nil}
	assert.False(t, empty.DecodeEntity(&entity))

	nullData := &Response{isJSON: true, raw: []byte(`{"data":null}`)}
	assert.True(t, nullData.DecodeEntity(&entity)) // falls through to bare decode of the wrapper object

	notJSON := &Response{isJSON: false, raw: []byte("pong")}
	assert.False(t, notJSON.DecodeEntity(&entity))
}

func TestGetList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":"p1"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	var items []struct {
		ID string `json:"id"`
	}
	require.NoError(t, client.GetList(context.Background(), "/admin/products", &items))
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
}
