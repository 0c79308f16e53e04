package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandler_ExposesGenerationOutcomes(t *testing.T) {
	GenerationOutcomes.WithLabelValues(OutcomeEmpty).Inc()

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `allergy_assistant_generation_outcomes_total{outcome="empty"}`) {
		t.Error("Expected generation outcome series in output")
	}
}
