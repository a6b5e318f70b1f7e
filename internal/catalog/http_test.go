// Copyright (c) 2026 Merco. All rights reserved.
// Author: ngoc.phan.dev@gmail.com

package catalog_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngocphan/merco/internal/catalog"
	"github.com/ngocphan/merco/internal/platform/middleware"
	"github.com/ngocphan/merco/internal/platform/sec"
)

// newCatalogAPI mounts the catalog routes behind the Authenticate middleware,
// the way the real server does, and returns a valid bearer token.
func newCatalogAPI(t *testing.T) (http.Handler, string) {
	t.Helper()

	service, _, _ := newCatalogService(t)
	handler := catalog.NewHandler(service)

	tokenService, err := sec.NewTokenService("catalog-http-test-secret", "merco.test")
	require.NoError(t, err)

	token, err := tokenService.GenerateToken("user-123", "ngoc", time.Hour)
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(tokenService))
	router.Mount("/api/products", handler.Routes())

	return router, token
}

/*
TestCatalogAPI_WriteRequiresAuth verifies that catalog writes are gated by a
bearer token while reads stay public.
*/
func TestCatalogAPI_WriteRequiresAuth(t *testing.T) {
	api, _ := newCatalogAPI(t)

	payload, err := json.Marshal(map[string]any{"name": "Nice Lamp", "price": 10})
	require.NoError(t, err)

	// Anonymous write is rejected.
	request := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(payload))
	recorder := httptest.NewRecorder()
	api.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// Anonymous read is allowed.
	request = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	recorder = httptest.NewRecorder()
	api.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestCatalogAPI_CreateAndGet walks an authenticated create followed by public
reads by ID and slug.
*/
func TestCatalogAPI_CreateAndGet(t *testing.T) {
	api, token := newCatalogAPI(t)

	payload, err := json.Marshal(map[string]any{
		"name":           "Nice Lamp",
		"description":    "A very nice lamp",
		"price":          49.90,
		"stock_quantity": 10,
	})
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(payload))
	request.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	api.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created struct {
		Data catalog.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, "nice-lamp", created.Data.Slug)
	require.NotNil(t, created.Data.CreatedBy)
	assert.Equal(t, "user-123", *created.Data.CreatedBy)

	// Read back by ID.
	request = httptest.NewRequest(http.MethodGet, "/api/products/"+created.Data.ID, nil)
	recorder = httptest.NewRecorder()
	api.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)

	// Read back by slug.
	request = httptest.NewRequest(http.MethodGet, "/api/products/by-slug/nice-lamp", nil)
	recorder = httptest.NewRecorder()
	api.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestCatalogAPI_RejectsDangerousName verifies the denylist at the HTTP layer.
*/
func TestCatalogAPI_RejectsDangerousName(t *testing.T) {
	api, token := newCatalogAPI(t)

	payload, err := json.Marshal(map[string]any{"name": "<script>alert(1)</script>"})
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(payload))
	request.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	api.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Product name contains potentially dangerous content. HTML and script tags are not allowed.", body.Error)
}

/*
TestCatalogAPI_InvalidToken verifies that a bad bearer token is rejected
before reaching any handler.
*/
func TestCatalogAPI_InvalidToken(t *testing.T) {
	api, _ := newCatalogAPI(t)

	request := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader([]byte(`{"name":"Lamp"}`)))
	request.Header.Set("Authorization", "Bearer not-a-real-token")
	recorder := httptest.NewRecorder()
	api.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
