package model

// PlanRequest is the wire shape submitted to the optimize endpoint. The
// combined matrix holds, per pair, the minimum travel time across all modes;
// ModeTravelTimes carries at minimum the discouraged mode's matrix. All
// matrices are square with dimension equal to the activity count and a zero
// diagonal.
type PlanRequest struct {
	Activities      []Activity                    `json:"activities"`
	TravelTime      [][]float64                   `json:"travel_time"`
	ModeTravelTimes map[TransportMode][][]float64 `json:"mode_travel_times,omitempty"`
	DiscouragedMode TransportMode                 `json:"discouraged_mode,omitempty"`
	TimeBudget      float64                       `json:"time_budget"`
	Weight          float64                       `json:"weight"`
	// StartID optionally anchors the search at the given activity's
	// location at clock zero.
	StartID *int `json:"start_id,omitempty"`
}

// RouteActivity is one chosen activity as rendered in the response, in
// chronological order.
type RouteActivity struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Duration  float64 `json:"duration"`
	OpenTime  float64 `json:"open_time"`
	CloseTime float64 `json:"close_time"`
}

// PlanResponse is the wire shape produced by the optimize endpoint. An empty
// route with all-zero metrics is a legitimate answer, not an error.
type PlanResponse struct {
	Route               []RouteActivity `json:"route"`
	TotalValue          float64         `json:"total_value"`
	TotalTravelCost     float64         `json:"total_travel_cost"`
	PenalizedTravelCost float64         `json:"penalized_travel_cost"`
	FinalTime           float64         `json:"final_time"`
	Objective           float64         `json:"objective"`
}
