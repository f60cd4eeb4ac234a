package verify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNoop(t *testing.T) {
	status, score := Noop{}.Verify(context.Background(), "a@acme.com")
	if status != StatusNotVerified || score != 0 {
		t.Errorf("expected (%q, 0), got (%q, %v)", StatusNotVerified, status, score)
	}
}

func TestHunter_Verify(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("email") != "a@acme.com" {
			t.Errorf("expected email param, got %q", q.Get("email"))
		}
		if q.Get("api_key") != "hunter-key" {
			t.Errorf("expected api_key param, got %q", q.Get("api_key"))
		}
		_, _ = w.Write([]byte(`{"data":{"status":"valid","score":95}}`))
	}))
	defer ts.Close()

	h, err := NewHunter("hunter-key", WithEndpoint(ts.URL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status, score := h.Verify(context.Background(), "a@acme.com")
	if status != "valid" {
		t.Errorf("expected status valid, got %q", status)
	}
	if score != 95 {
		t.Errorf("expected score 95, got %v", score)
	}
}

func TestHunter_Verify_Failure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	h, _ := NewHunter("k", WithEndpoint(ts.URL))
	status, score := h.Verify(context.Background(), "a@acme.com")
	if status != StatusNotVerified || score != 0 {
		t.Errorf("expected degraded result, got (%q, %v)", status, score)
	}
}

func TestHunter_Verify_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer ts.Close()

	h, _ := NewHunter("k", WithEndpoint(ts.URL))
	status, score := h.Verify(context.Background(), "a@acme.com")
	if status != StatusNotVerified || score != 0 {
		t.Errorf("expected degraded result, got (%q, %v)", status, score)
	}
}

func TestHunter_Verify_Unreachable(t *testing.T) {
	h, _ := NewHunter("k", WithEndpoint("http://127.0.0.1:1"))
	status, score := h.Verify(context.Background(), "a@acme.com")
	if status != StatusNotVerified || score != 0 {
		t.Errorf("expected degraded result, got (%q, %v)", status, score)
	}
}
