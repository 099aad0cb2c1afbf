package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/westchamp24/tnm-download-cli/config"
)

func testConfig(baseURL string) *config.AppConfig {
	return &config.AppConfig{
		APIBaseURL:  baseURL,
		MaxRecords:  25000,
		HTTPTimeout: 5 * time.Second,
		LogLevel:    "INFO",
	}
}

func TestClient_Products(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		q := r.URL.Query()
		gotQuery = map[string]string{
			"bbox":   q.Get("bbox"),
			"offset": q.Get("offset"),
			"max":    q.Get("max"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"total": 2,
			"items": [
				{"title": "tile a", "downloadURL": "http://example.com/a.laz", "sizeInBytes": 100, "datasets": ["Lidar Point Cloud (LPC)"]},
				{"title": "tile b", "downloadURL": "http://example.com/b.tif", "datasets": ["National Elevation Dataset (NED) 1/3 arc-second"]}
			],
			"messages": ["partial coverage"],
			"errors": []
		}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	bbox := BoundingBox{XMin: -105.1, YMin: 39.9, XMax: -104.9, YMax: 40.1}

	products, err := client.Products(context.Background(), bbox)
	require.NoError(t, err)

	assert.Equal(t, "-105.1,39.9,-104.9,40.1", gotQuery["bbox"])
	assert.Equal(t, "0", gotQuery["offset"])
	assert.Equal(t, "25000", gotQuery["max"])

	require.Len(t, products.Items, 2)
	assert.Equal(t, int64(100), products.Items[0].SizeInBytes)
	assert.Zero(t, products.Items[1].SizeInBytes)
	assert.Equal(t, []string{"partial coverage"}, products.Messages)
	assert.Empty(t, products.Errors)
}

func TestClient_Products_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.Products(context.Background(), BoundingBox{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestClient_Products_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.Products(context.Background(), BoundingBox{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding products response")
}

func TestClient_Products_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(testConfig(srv.URL))
	_, err := client.Products(ctx, BoundingBox{})
	require.Error(t, err)
}
