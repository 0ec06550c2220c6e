package queue

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogadoctor/triage-api/internal/model"
	"github.com/ogadoctor/triage-api/internal/repository/memory"
	"github.com/ogadoctor/triage-api/internal/service/notification"
	"github.com/ogadoctor/triage-api/internal/service/triage"
	"github.com/ogadoctor/triage-api/pkg/metrics"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	triageSvc := triage.NewService(memory.NewQueueRepository(), m)
	notifier := notification.NewService(m)

	engine := gin.New()
	NewHandler(triageSvc, notifier).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var resp struct {
		Status string                 `json:"status"`
		Data   map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestCreateCaseValidation(t *testing.T) {
	engine := newTestRouter()

	w := doJSON(t, engine, http.MethodPost, "/api/v1/queue/cases", map[string]interface{}{
		"name": "No Symptoms",
		"age":  30,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueueFlow(t *testing.T) {
	engine := newTestRouter()

	for _, c := range []struct {
		name     string
		priority model.Priority
	}{
		{"A", model.PriorityLow},
		{"B", model.PriorityUrgent},
		{"C", model.PriorityModerate},
	} {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/queue/cases", map[string]interface{}{
			"name":     c.name,
			"age":      30,
			"symptoms": "test symptoms",
			"priority": c.priority,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, engine, http.MethodGet, "/api/v1/queue", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	cases := data["cases"].([]interface{})
	require.Len(t, cases, 3)
	assert.Equal(t, "B", cases[0].(map[string]interface{})["name"])

	w = doJSON(t, engine, http.MethodPost, "/api/v1/queue/cases/0/respond", map[string]interface{}{
		"status": "confirmed",
	})
	require.Equal(t, http.StatusOK, w.Code)
	responded := decodeData(t, w)
	assert.Equal(t, "confirmed", responded["status"])
	assert.NotNil(t, responded["responded_at"])

	w = doJSON(t, engine, http.MethodPost, "/api/v1/queue/cases/0/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/queue", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	cases = data["cases"].([]interface{})
	require.Len(t, cases, 2)
	assert.Equal(t, "A", cases[0].(map[string]interface{})["name"])
	assert.Equal(t, "C", cases[1].(map[string]interface{})["name"])
}

func TestRespondOutOfRangeIsBadRequest(t *testing.T) {
	engine := newTestRouter()

	w := doJSON(t, engine, http.MethodPost, "/api/v1/queue/cases/5/respond", map[string]interface{}{
		"status": "confirmed",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompleteEmptyQueueIsBadRequest(t *testing.T) {
	engine := newTestRouter()

	w := doJSON(t, engine, http.MethodPost, "/api/v1/queue/cases/0/complete", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddSampleEndpoint(t *testing.T) {
	engine := newTestRouter()

	w := doJSON(t, engine, http.MethodPost, "/api/v1/queue/samples", map[string]interface{}{
		"priority": "URGENT",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeData(t, w)
	assert.Equal(t, "Aisha Musa", created["name"])
}

func TestNotifyIsNotImplemented(t *testing.T) {
	engine := newTestRouter()

	w := doJSON(t, engine, http.MethodPost, "/api/v1/queue/samples", map[string]interface{}{
		"priority": "LOW",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	for _, channel := range []string{"call", "whatsapp", "sms"} {
		w = doJSON(t, engine, http.MethodPost, "/api/v1/queue/cases/0/notify", map[string]interface{}{
			"channel": channel,
		})
		assert.Equal(t, http.StatusNotImplemented, w.Code, "channel %s", channel)
	}

	w = doJSON(t, engine, http.MethodPost, "/api/v1/queue/cases/0/notify", map[string]interface{}{
		"channel": "pigeon",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
