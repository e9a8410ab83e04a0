package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"housing-market/internal/market"
	"housing-market/internal/metrics"
	"housing-market/internal/repository"
	"housing-market/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// SetupTestRouter initializes the router over an empty in-memory catalog with no bid processing delay.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	registry := prometheus.NewRegistry()
	svc := market.NewMarket(repository.NewMemoryRepo(),
		market.WithProcessingDelay(0),
		market.WithMetrics(metrics.New(registry)),
	)
	return server.SetupRouter(svc, registry)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and returns the
// envelope's data field along with the recorder
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp["data"], w
}

// AdvertiseProperty posts a listing and returns the new property's ID
func AdvertiseProperty(t *testing.T, router *gin.Engine, listing any) string {
	data, w := ExecuteRequestAndParse(t, router, "POST", "/properties", listing)
	if w.Code != 201 {
		t.Fatalf("advertise failed with status %d: %s", w.Code, w.Body.String())
	}
	return data.(map[string]any)["property_id"].(string)
}
