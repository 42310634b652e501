package planner

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/francofil/proyecto-final-algoritmos/core/model"
)

// RunConfig carries the per-request knobs of one optimization run.
type RunConfig struct {
	// TimeBudget is the total elapsed time allowed from the first
	// activity's start to the last activity's end, in hours.
	TimeBudget float64
	// Weight trades off collected value against discouraged-mode exposure.
	Weight float64
	// DiscouragedMode is kept as response metadata; the matrix used for
	// penalization is supplied directly in the request.
	DiscouragedMode model.TransportMode
	// Start, when non-nil, is the index of the activity whose location the
	// search departs from at clock zero.
	Start *int
}

// Instance is the immutable encoded problem: the schedulable activity set
// with original IDs preserved, the combined and discouraged travel matrices
// reindexed to that set, and the run configuration.
type Instance struct {
	acts        []model.Activity
	combined    *mat.Dense
	discouraged *mat.Dense // nil when the discouraged mode's matrix was not supplied
	cfg         RunConfig
}

// Encode validates the raw request and produces an Instance. Activities that
// cannot fit their own window are structurally infeasible and silently
// dropped; everything else malformed is a *ValidationError.
func Encode(req model.PlanRequest) (*Instance, error) {
	if req.TimeBudget <= 0 {
		return nil, validationErrorf("time_budget", "must be positive, got %v", req.TimeBudget)
	}
	if req.Weight < 0 {
		return nil, validationErrorf("weight", "must be non-negative, got %v", req.Weight)
	}

	n := len(req.Activities)
	seen := make(map[int]struct{}, n)
	for i, a := range req.Activities {
		if err := a.Validate(); err != nil {
			return nil, validationErrorf(fmt.Sprintf("activities[%d]", i), "%v", err)
		}
		if _, dup := seen[a.ID]; dup {
			return nil, validationErrorf(fmt.Sprintf("activities[%d].id", i), "duplicate activity id %d", a.ID)
		}
		seen[a.ID] = struct{}{}
	}

	if err := checkMatrix("travel_time", req.TravelTime, n); err != nil {
		return nil, err
	}
	for mode, rows := range req.ModeTravelTimes {
		if err := checkMatrix(fmt.Sprintf("mode_travel_times[%s]", mode), rows, n); err != nil {
			return nil, err
		}
	}

	// Drop activities that cannot fit their own window, remembering the
	// original matrix positions of the survivors.
	keep := make([]int, 0, n)
	for i, a := range req.Activities {
		if a.Schedulable() {
			keep = append(keep, i)
		}
	}
	acts := make([]model.Activity, len(keep))
	for i, idx := range keep {
		acts[i] = req.Activities[idx]
	}

	inst := &Instance{
		acts:     acts,
		combined: reindex(req.TravelTime, keep),
		cfg: RunConfig{
			TimeBudget:      req.TimeBudget,
			Weight:          req.Weight,
			DiscouragedMode: req.DiscouragedMode,
		},
	}
	if rows, ok := req.ModeTravelTimes[req.DiscouragedMode]; ok {
		inst.discouraged = reindex(rows, keep)
	}

	if req.StartID != nil {
		found := -1
		for i, a := range acts {
			if a.ID == *req.StartID {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, validationErrorf("start_id", "no schedulable activity with id %d", *req.StartID)
		}
		inst.cfg.Start = &found
	}
	return inst, nil
}

// checkMatrix enforces the wire contract: square, dimension equal to the
// activity count, finite non-negative entries, zero diagonal.
func checkMatrix(field string, rows [][]float64, n int) error {
	if len(rows) != n {
		return validationErrorf(field, "expected %d rows, got %d", n, len(rows))
	}
	for i, row := range rows {
		if len(row) != n {
			return validationErrorf(field, "row %d: expected %d columns, got %d", i, n, len(row))
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return validationErrorf(field, "entry (%d,%d) must be a finite non-negative number, got %v", i, j, v)
			}
		}
		if rows[i][i] != 0 {
			return validationErrorf(field, "diagonal entry (%d,%d) must be zero, got %v", i, i, rows[i][i])
		}
	}
	return nil
}

// reindex extracts the submatrix of rows selected by keep into a dense buffer.
// gonum rejects empty matrices, so a zero survivor set yields a 1x1 zero
// matrix that the engine never reads.
func reindex(rows [][]float64, keep []int) *mat.Dense {
	k := max(len(keep), 1)
	m := mat.NewDense(k, k, nil)
	for i, oi := range keep {
		for j, oj := range keep {
			m.Set(i, j, rows[oi][oj])
		}
	}
	return m
}

// Len returns the number of schedulable activities.
func (in *Instance) Len() int { return len(in.acts) }

// Activity returns the i-th schedulable activity.
func (in *Instance) Activity(i int) model.Activity { return in.acts[i] }

// Config returns the run configuration.
func (in *Instance) Config() RunConfig { return in.cfg }

// Travel returns the combined (fastest-mode) travel time between two
// activities by filtered index.
func (in *Instance) Travel(i, j int) float64 { return in.combined.At(i, j) }

// Exposure returns the discouraged-mode travel time between two activities.
// It is zero everywhere when the discouraged mode's matrix was not supplied.
func (in *Instance) Exposure(i, j int) float64 {
	if in.discouraged == nil {
		return 0
	}
	return in.discouraged.At(i, j)
}
