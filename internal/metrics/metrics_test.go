package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/shopity/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareAndHandler(t *testing.T) {
	// Arrange
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := metrics.Middleware(mux)

	metrics.RecordOrderSubmission(metrics.ResultSuccess)
	metrics.RecordListMutation("cart", "add", metrics.ResultSuccess)
	metrics.RecordStorageError("cartItems", "set")

	// Act
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/products/p1", nil))

	scrape := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	// Assert
	assert.Equal(t, http.StatusTeapot, rr.Code)
	require.Equal(t, http.StatusOK, scrape.Code)

	body := scrape.Body.String()
	assert.Contains(t, body, `http_requests_total{code="418",method="GET",path="/api/v1/products/p1"}`)
	assert.Contains(t, body, `shopity_order_submissions_total{result="success"}`)
	assert.Contains(t, body, `shopity_list_mutations_total{list="cart",op="add",result="success"}`)
	assert.Contains(t, body, `shopity_storage_errors_total{key="cartItems",op="set"}`)
}
