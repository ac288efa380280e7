// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestID_Assigned(t *testing.T) {
	var captured string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if captured == "" {
		t.Error("expected a request ID in context")
	}
	if rec.Header().Get(RequestIDHeader) != captured {
		t.Error("response header does not echo the request ID")
	}
}

func TestRequestID_ClientSuppliedPreserved(t *testing.T) {
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-id-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get(RequestIDHeader) != "client-id-123" {
		t.Errorf("client request ID replaced: %s", rec.Header().Get(RequestIDHeader))
	}
}

func TestPrometheus_PassesThrough(t *testing.T) {
	h := Prometheus(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/any", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("middleware altered status: %d", rec.Code)
	}
}
