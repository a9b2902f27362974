package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandlerAllHealthy(t *testing.T) {
	h := NewHandler("1.0.0")
	h.RegisterChecker("storage", NewSimpleChecker("storage", func() error { return nil }))
	h.RegisterChecker("broker", NewSimpleChecker("broker", func() error { return nil }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != StatusHealthy {
		t.Errorf("expected status %s, got %s", StatusHealthy, resp.Status)
	}
	if resp.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", resp.Version)
	}
	if len(resp.Checks) != 2 {
		t.Errorf("expected 2 checks, got %d", len(resp.Checks))
	}
}

func TestHandlerUnhealthyComponent(t *testing.T) {
	h := NewHandler("1.0.0")
	h.RegisterChecker("storage", NewSimpleChecker("storage", func() error {
		return errors.New("connection refused")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != StatusUnhealthy {
		t.Errorf("expected status %s, got %s", StatusUnhealthy, resp.Status)
	}
	check, ok := resp.Checks["storage"]
	if !ok {
		t.Fatal("expected storage check in response")
	}
	if check.Message != "connection refused" {
		t.Errorf("unexpected check message: %q", check.Message)
	}
}

func TestLivenessHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	LivenessHandler(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}

func TestReadinessHandler(t *testing.T) {
	h := NewHandler("1.0.0")
	h.RegisterChecker("storage", NewSimpleChecker("storage", func() error { return nil }))

	rec := httptest.NewRecorder()
	h.ReadinessHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	h.RegisterChecker("broker", NewSimpleChecker("broker", func() error {
		return errors.New("down")
	}))

	rec = httptest.NewRecorder()
	h.ReadinessHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestPingChecker(t *testing.T) {
	c := NewPingChecker("mongo", func(ctx context.Context) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return nil
	})

	check := c.Check()
	if check.Status != StatusHealthy {
		t.Fatalf("expected healthy, got %s: %s", check.Status, check.Message)
	}
	if check.Name != "mongo" {
		t.Errorf("expected name mongo, got %s", check.Name)
	}

	failing := NewPingChecker("mongo", func(context.Context) error {
		return errors.New("no reachable servers")
	})
	check = failing.Check()
	if check.Status != StatusUnhealthy {
		t.Fatalf("expected unhealthy, got %s", check.Status)
	}
}
