package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/unclebandit/fabricator-bff/internal/handler"
)

func TestHealth(t *testing.T) {
	h := &handler.HealthHandler{DataSource: "sample"}
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	json.NewDecoder(rec.Body).Decode(&body)
	if body["data_source"] != "sample" {
		t.Errorf("expected data_source sample, got %q", body["data_source"])
	}
}

func TestHealth_PingFailure(t *testing.T) {
	h := &handler.HealthHandler{
		DataSource: "postgres",
		Ping:       func(ctx context.Context) error { return errors.New("connection refused") },
	}
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	handler.NotFound(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]string
	json.NewDecoder(rec.Body).Decode(&body)
	if body["redirect"] != "/" {
		t.Errorf("expected redirect to /, got %q", body["redirect"])
	}
}
