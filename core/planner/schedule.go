package planner

// bitset is a fixed-capacity set of activity indices with O(1) membership.
type bitset []uint64

func newBitset(n int) bitset { return make(bitset, (n+63)/64) }

func (b bitset) has(i int) bool { return b[i/64]&(1<<(uint(i)%64)) != 0 }

func (b bitset) clone() bitset {
	c := make(bitset, len(b))
	copy(c, b)
	return c
}

func (b bitset) set(i int) { b[i/64] |= 1 << (uint(i) % 64) }

// key renders the bitset as a map key.
func (b bitset) key() string {
	buf := make([]byte, 0, len(b)*8)
	for _, w := range b {
		for s := 0; s < 64; s += 8 {
			buf = append(buf, byte(w>>uint(s)))
		}
	}
	return string(buf)
}

// schedule is one search node: an ordered, non-repeating activity sequence
// with its accrued timing and metrics. Schedules are never mutated after
// another schedule has branched from them; extend always copies.
type schedule struct {
	route    []int  // filtered activity indices, chronological
	visited  bitset // O(1) membership over route
	last     int    // index the route currently ends at; the anchor (or -1) when empty
	clock    float64
	start    float64 // clock at which the first activity started
	value    float64
	exposure float64
}

// emptySchedule is the always-feasible fallback with objective zero. With a
// start anchor, elapsed time is measured from clock zero at the anchor's
// location; otherwise the clock only starts ticking at the first activity.
func emptySchedule(inst *Instance) schedule {
	last := -1
	if inst.cfg.Start != nil {
		last = *inst.cfg.Start
	}
	return schedule{visited: newBitset(inst.Len()), last: last}
}

func (s *schedule) empty() bool { return len(s.route) == 0 }

// elapsed is the time consumed so far: travel plus durations plus waits,
// counted from the first activity's start (or from clock zero when anchored).
func (s *schedule) elapsed() float64 { return s.clock - s.start }

func (s *schedule) objective(weight float64) float64 {
	return s.value - weight*s.exposure
}

// extend appends activity q, returning false when the transition is illegal:
// the activity could not finish before its window closes or before the time
// budget runs out. Arriving before the window opens means waiting, and the
// wait counts toward elapsed time.
func (s *schedule) extend(inst *Instance, q int) (schedule, bool) {
	act := inst.Activity(q)
	var travel, exposure float64
	if s.last >= 0 {
		travel = inst.Travel(s.last, q)
		exposure = inst.Exposure(s.last, q)
	}
	arrival := s.clock + travel
	startAt := arrival
	if act.OpenTime > startAt {
		startAt = act.OpenTime
	}
	finish := startAt + act.Duration
	if finish > act.CloseTime {
		return schedule{}, false
	}
	startRef := s.start
	if s.empty() && inst.cfg.Start == nil {
		startRef = startAt
	}
	if finish-startRef > inst.cfg.TimeBudget {
		return schedule{}, false
	}

	next := schedule{
		route:    append(append(make([]int, 0, len(s.route)+1), s.route...), q),
		visited:  s.visited.clone(),
		last:     q,
		clock:    finish,
		start:    startRef,
		value:    s.value + act.Value,
		exposure: s.exposure + exposure,
	}
	next.visited.set(q)
	return next, true
}

// better reports whether s beats t under the full deterministic ordering:
// higher objective, then lower elapsed time, then the lexicographically
// smaller activity-id sequence.
func (s *schedule) better(t *schedule, inst *Instance) bool {
	w := inst.cfg.Weight
	so, to := s.objective(w), t.objective(w)
	if so != to {
		return so > to
	}
	se, te := s.elapsed(), t.elapsed()
	if se != te {
		return se < te
	}
	for i := 0; i < len(s.route) && i < len(t.route); i++ {
		si, ti := inst.Activity(s.route[i]).ID, inst.Activity(t.route[i]).ID
		if si != ti {
			return si < ti
		}
	}
	return len(s.route) < len(t.route)
}
