// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newMethodTestRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
	router.Get("/files/*", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("file"))
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "GET on exact route", method: http.MethodGet, path: "/ping", wantStatus: http.StatusOK, wantBody: "pong"},
		{name: "GET on wildcard route", method: http.MethodGet, path: "/files/a/b.png", wantStatus: http.StatusOK, wantBody: "file"},
		{name: "POST on exact route", method: http.MethodPost, path: "/ping", wantStatus: http.StatusNotFound, wantBody: "Not Found"},
		{name: "DELETE on wildcard route", method: http.MethodDelete, path: "/files/a/b.png", wantStatus: http.StatusNotFound, wantBody: "Not Found"},
		{name: "PUT on wildcard route", method: http.MethodPut, path: "/files/x", wantStatus: http.StatusNotFound, wantBody: "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newMethodTestRouter()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestCheckHTTPMethod_DirectCallWithRegisteredMethod(t *testing.T) {
	router := newMethodTestRouter()
	handler := CheckHTTPMethod(router)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}
