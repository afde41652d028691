package erold_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	erold "github.com/erold-dev/mcp-server"
)

func TestGuidelineService_ServesFromCacheWithinTTL(t *testing.T) {
	fetches := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		if r.URL.Path != "/tenants/acme/guidelines" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/tenants/acme/guidelines")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"slug":"code-review","title":"Code Review","content":"Review within 24h."}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	service := erold.NewGuidelineService(client)

	for i := 0; i < 3; i++ {
		guidelines, err := service.List(context.Background())
		if err != nil {
			t.Fatalf("List() call %d returned error: %v", i+1, err)
		}
		if len(guidelines) != 1 {
			t.Fatalf("len(guidelines) = %d, want 1", len(guidelines))
		}
	}

	if fetches != 1 {
		t.Errorf("backend fetches = %d, want 1 (repeat calls within TTL must hit the cache)", fetches)
	}
}

func TestGuidelineService_RefetchesAfterExpiry(t *testing.T) {
	fetches := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"slug":"deploys","title":"Deploys","content":"Deploy before noon."}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	service := erold.NewGuidelineService(client).WithTTL(10 * time.Millisecond)

	if _, err := service.List(context.Background()); err != nil {
		t.Fatalf("first List() returned error: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, err := service.List(context.Background()); err != nil {
		t.Fatalf("second List() returned error: %v", err)
	}

	if fetches != 2 {
		t.Errorf("backend fetches = %d, want 2 (expired cache must refetch)", fetches)
	}
}

func TestGuidelineService_GetResolvesSlug(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"slug":"code-review","title":"Code Review","content":"Review within 24h."},
			{"slug":"deploys","title":"Deploys","content":"Deploy before noon."}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	service := erold.NewGuidelineService(client)

	guideline, err := service.Get(context.Background(), "deploys")
	if err != nil {
		t.Fatalf("Get() returned error: %v", err)
	}
	if guideline.Title != "Deploys" {
		t.Errorf("Title = %q, want %q", guideline.Title, "Deploys")
	}
}

func TestGuidelineService_GetUnknownSlug(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	service := erold.NewGuidelineService(client)

	_, err := service.Get(context.Background(), "missing")
	if err == nil {
		t.Fatal("Get() = nil error, want not-found APIError")
	}

	var apiErr *erold.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Get() returned %T, want *APIError", err)
	}
	if apiErr.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
}
