package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woodybriggs/ledger/internal/platform/config"
)

func TestSetupSwaggerRoutes_ServesDocs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setupSwaggerRoutes(r, &config.Config{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		BasePath string         `json:"basePath"`
		Paths    map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc), w.Body.String())
	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.Contains(t, doc.Paths, "/purchases/invoices/{id}/payments")
	assert.Contains(t, doc.Paths, "/sales/invoices/{id}/receipts")
	assert.Contains(t, doc.Paths, "/reports/trial-balance")
}

func TestSetupSwaggerRoutes_DisabledInProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setupSwaggerRoutes(r, &config.Config{IsProduction: true})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
