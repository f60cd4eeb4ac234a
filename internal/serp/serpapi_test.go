package serp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSerpAPI_Search(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("engine") != "google" {
			t.Errorf("expected engine=google, got %q", q.Get("engine"))
		}
		if q.Get("api_key") != "test-key" {
			t.Errorf("expected api_key=test-key, got %q", q.Get("api_key"))
		}
		if q.Get("q") != "Bakeries in Austin" {
			t.Errorf("unexpected query %q", q.Get("q"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"organic_results":[
			{"title":"Sweet Crumbs","link":"https://sweetcrumbs.com","snippet":"Best bakery"},
			{"title":"Flour Power","link":"https://flourpower.com","snippet":"Fresh bread"}
		]}`))
	}))
	defer ts.Close()

	provider, err := NewSerpAPI("test-key", WithEndpoint(ts.URL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	results, err := provider.Search(context.Background(), "Bakeries in Austin", 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Title != "Sweet Crumbs" {
		t.Errorf("expected title Sweet Crumbs, got %q", results[0].Title)
	}
	if results[0].Link != "https://sweetcrumbs.com" {
		t.Errorf("expected link, got %q", results[0].Link)
	}
	if results[1].Snippet != "Fresh bread" {
		t.Errorf("expected snippet, got %q", results[1].Snippet)
	}
}

func TestSerpAPI_Search_Pagination(t *testing.T) {
	var starts []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		starts = append(starts, r.URL.Query().Get("start"))
		_, _ = w.Write([]byte(`{"organic_results":[{"title":"A","link":"https://a.com"}]}`))
	}))
	defer ts.Close()

	provider, _ := NewSerpAPI("k", WithEndpoint(ts.URL))
	results, err := SearchBusinesses(context.Background(), provider, "Bakeries", "Austin", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 concatenated results, got %d", len(results))
	}
	// First page sends no start param, subsequent pages offset by 10.
	want := []string{"", "10", "20"}
	for i, s := range starts {
		if s != want[i] {
			t.Errorf("page %d: expected start %q, got %q", i, want[i], s)
		}
	}
}

func TestSerpAPI_Search_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	provider, _ := NewSerpAPI("bad-key", WithEndpoint(ts.URL))
	if _, err := provider.Search(context.Background(), "q", 10, 0); err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestSearchBusinesses_PartialPageFailure(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"organic_results":[{"title":"A","link":"https://a.com"}]}`))
	}))
	defer ts.Close()

	provider, _ := NewSerpAPI("k", WithEndpoint(ts.URL))
	results, err := SearchBusinesses(context.Background(), provider, "Bakeries", "Austin", 3)
	if err != nil {
		t.Fatalf("a single failed page should not fail the search: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results from the surviving pages, got %d", len(results))
	}
}

func TestSearchBusinesses_AllPagesFail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	provider, _ := NewSerpAPI("k", WithEndpoint(ts.URL))
	if _, err := SearchBusinesses(context.Background(), provider, "Bakeries", "Austin", 2); err == nil {
		t.Fatal("expected error when every page fails")
	}
}
