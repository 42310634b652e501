package planner

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/francofil/proyecto-final-algoritmos/core/metrics"
	"github.com/francofil/proyecto-final-algoritmos/core/model"
	"github.com/francofil/proyecto-final-algoritmos/core/planner"
	infralogger "github.com/francofil/proyecto-final-algoritmos/infra/logger"
)

// recordingSink captures events for assertions.
type recordingSink struct {
	mu         sync.Mutex
	solves     []coremetrics.SolveEvent
	rejections []coremetrics.RejectionEvent
}

func (s *recordingSink) RecordSolve(e coremetrics.SolveEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.solves = append(s.solves, e)
	return nil
}

func (s *recordingSink) RecordRejection(e coremetrics.RejectionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejections = append(s.rejections, e)
	return nil
}

func testRequest() model.PlanRequest {
	return model.PlanRequest{
		Activities: []model.Activity{
			{ID: 1, Name: "Museo", Value: 10, Duration: 1, OpenTime: 8, CloseTime: 10},
			{ID: 2, Name: "Parque", Value: 8, Duration: 1, OpenTime: 9, CloseTime: 12},
		},
		TravelTime: [][]float64{{0, 0.375}, {0.375, 0}},
		ModeTravelTimes: map[model.TransportMode][][]float64{
			model.ModeBicycle: {{0, 1}, {1, 0}},
		},
		DiscouragedMode: model.ModeBicycle,
		TimeBudget:      5,
		Weight:          0.5,
	}
}

func post(t *testing.T, h http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/optimize", bytes.NewReader(b))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestOptimizeHandler_Success(t *testing.T) {
	sink := &recordingSink{}
	h := NewOptimizeHandler(planner.New(planner.Config{}, nil), sink, infralogger.NopLogger{})

	rec := post(t, h, testRequest())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp model.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Route, 2)
	assert.Equal(t, 1, resp.Route[0].ID)
	assert.Equal(t, 2, resp.Route[1].ID)
	assert.InDelta(t, 18, resp.TotalValue, 1e-9)
	assert.InDelta(t, 17.5, resp.Objective, 1e-9)

	require.Len(t, sink.solves, 1)
	assert.Equal(t, 2, sink.solves[0].Scheduled)
	assert.False(t, sink.solves[0].Truncated)
}

func TestOptimizeHandler_ValidationFailure(t *testing.T) {
	sink := &recordingSink{}
	h := NewOptimizeHandler(planner.New(planner.Config{}, nil), sink, infralogger.NopLogger{})

	bad := testRequest()
	bad.TimeBudget = 0
	rec := post(t, h, bad)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error string `json:"error"`
		Field string `json:"field"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "time_budget", resp.Field)
	assert.NotEmpty(t, resp.Error)

	require.Len(t, sink.rejections, 1)
	assert.Equal(t, "time_budget", sink.rejections[0].Field)
	assert.Empty(t, sink.solves)
}

func TestOptimizeHandler_MalformedJSON(t *testing.T) {
	h := NewOptimizeHandler(planner.New(planner.Config{}, nil), nil, infralogger.NopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/optimize", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON")
}

func TestOptimizeHandler_MethodNotAllowed(t *testing.T) {
	h := NewOptimizeHandler(planner.New(planner.Config{}, nil), nil, infralogger.NopLogger{})
	req := httptest.NewRequest(http.MethodGet, "/optimize", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestOptimizeHandler_InfeasibleIsNotAnError(t *testing.T) {
	sink := &recordingSink{}
	h := NewOptimizeHandler(planner.New(planner.Config{}, nil), sink, infralogger.NopLogger{})

	req := testRequest()
	// Window narrower than the duration: filtered out, nothing left to plan.
	req.Activities = []model.Activity{{ID: 7, Name: "Feria", Value: 4, Duration: 3, OpenTime: 10, CloseTime: 11}}
	req.TravelTime = [][]float64{{0}}
	req.ModeTravelTimes = map[model.TransportMode][][]float64{model.ModeBicycle: {{0}}}

	rec := post(t, h, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp model.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Route)
	assert.Zero(t, resp.Objective)

	require.Len(t, sink.solves, 1)
	assert.Equal(t, 0, sink.solves[0].Scheduled)
}

func TestOptimizeHandler_TruncatedStillResponds(t *testing.T) {
	sink := &recordingSink{}
	eng := planner.New(planner.Config{MaxExpansions: 1, TimeoutSeconds: 10}, nil)
	h := NewOptimizeHandler(eng, sink, infralogger.NopLogger{})

	rec := post(t, h, testRequest())
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, sink.solves, 1)
	assert.True(t, sink.solves[0].Truncated)
	assert.WithinDuration(t, time.Now(), sink.solves[0].Time, time.Minute)
}

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"activity planner up"}`, rec.Body.String())
}
