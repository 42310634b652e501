package model

import "fmt"

// Activity is one candidate entry of a day plan. Times are hours on a 0-24
// clock; Duration is in hours. An activity is immutable for the lifetime of
// one optimization request.
type Activity struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Duration  float64 `json:"duration"`
	OpenTime  float64 `json:"open_time"`
	CloseTime float64 `json:"close_time"`
}

// Window returns the width of the activity's opening window in hours.
func (a Activity) Window() float64 { return a.CloseTime - a.OpenTime }

// Validate checks that the activity is structurally sound. An activity whose
// duration exceeds its own window is NOT an error here: it can never be
// scheduled and is filtered out during encoding instead.
func (a Activity) Validate() error {
	if a.CloseTime <= a.OpenTime {
		return fmt.Errorf("activity %d: close_time must be greater than open_time", a.ID)
	}
	if a.Duration <= 0 {
		return fmt.Errorf("activity %d: duration must be positive", a.ID)
	}
	if a.Value < 0 {
		return fmt.Errorf("activity %d: value must be non-negative", a.ID)
	}
	return nil
}

// Schedulable reports whether the activity fits inside its own window at all.
func (a Activity) Schedulable() bool { return a.Duration <= a.Window() }
