package metrics

import "time"

// SolveEvent describes one completed optimization run.
type SolveEvent struct {
	RequestID  string
	Activities int
	Scheduled  int
	Expansions int
	Truncated  bool
	Objective  float64
	Duration   time.Duration
	Time       time.Time
}

// Sink records solve events for observability purposes.
type Sink interface {
	RecordSolve(ev SolveEvent) error
}

// RejectionEvent captures a request refused before any search began.
type RejectionEvent struct {
	RequestID string
	Field     string
	Time      time.Time
}

// RejectionRecorder records validation rejections. Sinks implement it
// optionally.
type RejectionRecorder interface {
	RecordRejection(ev RejectionEvent) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordSolve(SolveEvent) error         { return nil }
func (NopSink) RecordRejection(RejectionEvent) error { return nil }
