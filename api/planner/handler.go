// Package planner exposes the optimization core over HTTP. One request is one
// synchronous run: the caller blocks until the route (or an error) is
// produced, and nothing is shared between requests.
package planner

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/francofil/proyecto-final-algoritmos/core/logger"
	coremetrics "github.com/francofil/proyecto-final-algoritmos/core/metrics"
	"github.com/francofil/proyecto-final-algoritmos/core/model"
	"github.com/francofil/proyecto-final-algoritmos/core/planner"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// NewOptimizeHandler returns the handler for POST /optimize. Validation
// failures map to 400 with the offending field; a well-formed request with no
// feasible non-empty schedule succeeds with the empty route.
func NewOptimizeHandler(engine *planner.Engine, sink coremetrics.Sink, log logger.Logger) http.Handler {
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		reqID := uuid.NewString()
		w.Header().Set("X-Request-ID", reqID)

		var req model.PlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
			return
		}

		inst, err := planner.Encode(req)
		if err != nil {
			var verr *planner.ValidationError
			if errors.As(err, &verr) {
				log.Warnf("request %s rejected: %v", reqID, verr)
				if rec, ok := sink.(coremetrics.RejectionRecorder); ok {
					if rerr := rec.RecordRejection(coremetrics.RejectionEvent{RequestID: reqID, Field: verr.Field, Time: time.Now()}); rerr != nil {
						log.Errorf("record rejection: %v", rerr)
					}
				}
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Reason, Field: verr.Field})
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		sol, stats, err := engine.Solve(r.Context(), inst)
		if err != nil {
			// Only context cancellation reaches here; the client is gone.
			log.Warnf("request %s canceled: %v", reqID, err)
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "request canceled"})
			return
		}
		if stats.Truncated {
			log.Warnf("request %s truncated after %d expansions, returning best-so-far", reqID, stats.Expansions)
		}
		if serr := sink.RecordSolve(coremetrics.SolveEvent{
			RequestID:  reqID,
			Activities: inst.Len(),
			Scheduled:  len(sol.Route),
			Expansions: stats.Expansions,
			Truncated:  stats.Truncated,
			Objective:  sol.Metrics.Objective,
			Duration:   stats.Duration,
			Time:       time.Now(),
		}); serr != nil {
			log.Errorf("record solve: %v", serr)
		}
		log.Debugw("optimize", map[string]any{
			"request_id": reqID,
			"activities": inst.Len(),
			"scheduled":  len(sol.Route),
			"objective":  sol.Metrics.Objective,
		})
		writeJSON(w, http.StatusOK, planner.BuildResponse(inst, sol))
	})
}

// NewHealthHandler returns the liveness endpoint.
func NewHealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "activity planner up"})
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
