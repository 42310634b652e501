package planner

import (
	"container/heap"
	"context"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/francofil/proyecto-final-algoritmos/core/logger"
)

// Engine explores partial schedules best-first, ordered by an admissible
// upper bound on the objective any completion can still reach:
//
//	bound = cum_value + sum(unvisited values) - weight * cum_exposure
//
// The bound overestimates because it assumes every remaining activity can
// still be collected for free, so the frontier top is always an upper bound
// on anything left to find and the search can stop as soon as that top no
// longer beats the incumbent.
type Engine struct {
	cfg Config
	log logger.Logger
}

// New returns an Engine with the given bounds. A nil logger is replaced by a
// no-op one.
func New(cfg Config, log logger.Logger) *Engine {
	if log == nil {
		log = nopLogger{}
	}
	return &Engine{cfg: cfg, log: log}
}

// Solution is the winning schedule by filtered activity index, with its
// evaluated metrics. An empty route (objective 0) is a legitimate result.
type Solution struct {
	Route   []int
	Metrics Metrics
}

// Stats describes how the search ended. Truncated means an expansion or
// wall-clock bound was hit and the result is best-so-far, not proven optimal.
type Stats struct {
	Expansions int
	Generated  int
	Truncated  bool
	Duration   time.Duration
}

type node struct {
	sched schedule
	bound float64
	seq   int
}

// frontier is a max-heap on bound. Equal bounds prefer schedules with fewer
// activities (cheaper to expand, improves pruning), then insertion order for
// full determinism.
type frontier []node

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].bound != f[j].bound {
		return f[i].bound > f[j].bound
	}
	if len(f[i].sched.route) != len(f[j].sched.route) {
		return len(f[i].sched.route) < len(f[j].sched.route)
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(node)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]
	return it
}

type domKey struct {
	last int
	bits string
}

// domEntry is the pruning statistic of one surviving state: the accrued
// objective plus the two timing axes every completion is bounded by. The
// time-of-day clock decides which windows stay reachable; the start reference
// decides how much budget is left. Elapsed time alone conflates the two: an
// ordering that started later can be quicker end to end yet sit at a later
// clock, unable to reach a window the slower ordering still makes.
type domEntry struct {
	obj   float64
	clock float64
	start float64
}

// dominates reports whether a renders b redundant: at least the objective, an
// earlier-or-equal clock, a later-or-equal start reference, strictly better on
// one of the three. Entries equal on all axes never dominate each other, so
// the lexicographic tie-break still sees every ordering.
func (a domEntry) dominates(b domEntry) bool {
	return a.obj >= b.obj && a.clock <= b.clock && a.start >= b.start &&
		(a.obj > b.obj || a.clock < b.clock || a.start > b.start)
}

func dominated(entries []domEntry, e domEntry) bool {
	for _, old := range entries {
		if old.dominates(e) {
			return true
		}
	}
	return false
}

// insertEntry appends e after evicting the entries it dominates, keeping the
// per-key list tight.
func insertEntry(entries []domEntry, e domEntry) []domEntry {
	kept := entries[:0]
	for _, old := range entries {
		if !e.dominates(old) {
			kept = append(kept, old)
		}
	}
	return append(kept, e)
}

// Solve runs the search to completion or until a safety bound trips. The
// returned error is non-nil only for context cancellation; infeasibility and
// truncation are ordinary results.
func (e *Engine) Solve(ctx context.Context, inst *Instance) (Solution, Stats, error) {
	started := time.Now()
	weight := inst.cfg.Weight

	values := make([]float64, inst.Len())
	for i := range values {
		values[i] = inst.Activity(i).Value
	}
	totalValue := floats.Sum(values)

	best := emptySchedule(inst)
	root := emptySchedule(inst)

	fr := &frontier{}
	heap.Push(fr, node{sched: root, bound: totalValue})
	seq := 1

	dom := make(map[domKey][]domEntry)
	var stats Stats
	var deadline time.Time
	if e.cfg.TimeoutSeconds > 0 {
		deadline = started.Add(time.Duration(e.cfg.TimeoutSeconds * float64(time.Second)))
	}

	for fr.Len() > 0 {
		// Safe checkpoint: the previous node's expansion is finished.
		if err := ctx.Err(); err != nil {
			return Solution{}, stats, err
		}
		top := heap.Pop(fr).(node)
		if top.bound <= best.objective(weight) {
			// Heap is bound-ordered, nothing left can beat the incumbent.
			break
		}
		if e.cfg.MaxExpansions > 0 && stats.Expansions >= e.cfg.MaxExpansions {
			stats.Truncated = true
			break
		}
		stats.Expansions++
		if !deadline.IsZero() && stats.Expansions&127 == 0 && time.Now().After(deadline) {
			stats.Truncated = true
			break
		}

		for q := 0; q < inst.Len(); q++ {
			if top.sched.visited.has(q) {
				continue
			}
			next, ok := top.sched.extend(inst, q)
			if !ok {
				continue
			}
			stats.Generated++
			if next.better(&best, inst) {
				best = next
			}
			bound := next.value + (totalValue - next.value) - weight*next.exposure
			if bound <= best.objective(weight) {
				continue
			}
			key := domKey{last: next.last, bits: next.visited.key()}
			entry := domEntry{obj: next.objective(weight), clock: next.clock, start: next.start}
			if dominated(dom[key], entry) {
				continue
			}
			dom[key] = insertEntry(dom[key], entry)
			heap.Push(fr, node{sched: next, bound: bound, seq: seq})
			seq++
		}
	}

	stats.Duration = time.Since(started)
	sol := Solution{Route: best.route, Metrics: Evaluate(inst, best.route)}
	e.log.Debugw("solve finished", map[string]any{
		"activities": inst.Len(),
		"scheduled":  len(sol.Route),
		"expansions": stats.Expansions,
		"generated":  stats.Generated,
		"truncated":  stats.Truncated,
		"objective":  sol.Metrics.Objective,
	})
	return sol, stats, nil
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
