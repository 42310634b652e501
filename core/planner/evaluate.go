package planner

// Metrics are the evaluator outputs attached to a finished plan.
type Metrics struct {
	TotalValue            float64
	TotalTravelCost       float64
	DiscouragedTravelCost float64
	FinalTime             float64
	Objective             float64
}

// Evaluate recomputes the metrics of a route from scratch. Travel cost sums
// the combined-matrix times actually used between consecutive activities;
// discouraged cost sums the discouraged mode's times over the same pairs,
// whether or not that mode would have been the fastest choice. The engine
// accrues these incrementally; this pure form is the source of truth for the
// response and for cross-checks in tests.
func Evaluate(inst *Instance, route []int) Metrics {
	var m Metrics
	if len(route) == 0 {
		return m
	}
	prev := -1
	if inst.cfg.Start != nil {
		prev = *inst.cfg.Start
	}
	clock, startRef := 0.0, 0.0
	for i, q := range route {
		act := inst.Activity(q)
		var travel float64
		if prev >= 0 {
			travel = inst.Travel(prev, q)
			m.TotalTravelCost += travel
			m.DiscouragedTravelCost += inst.Exposure(prev, q)
		}
		startAt := clock + travel
		if act.OpenTime > startAt {
			startAt = act.OpenTime
		}
		if i == 0 && inst.cfg.Start == nil {
			startRef = startAt
		}
		clock = startAt + act.Duration
		m.TotalValue += act.Value
		prev = q
	}
	m.FinalTime = clock - startRef
	m.Objective = m.TotalValue - inst.cfg.Weight*m.DiscouragedTravelCost
	return m
}
