package planner

import "github.com/francofil/proyecto-final-algoritmos/core/model"

// BuildResponse maps a winning solution back to the externally visible shape:
// the chosen activities with their original identifiers, in the chronological
// order the schedule was built in, plus the evaluator totals.
func BuildResponse(inst *Instance, sol Solution) model.PlanResponse {
	route := make([]model.RouteActivity, len(sol.Route))
	for i, q := range sol.Route {
		a := inst.Activity(q)
		route[i] = model.RouteActivity{
			ID:        a.ID,
			Name:      a.Name,
			Value:     a.Value,
			Duration:  a.Duration,
			OpenTime:  a.OpenTime,
			CloseTime: a.CloseTime,
		}
	}
	return model.PlanResponse{
		Route:               route,
		TotalValue:          sol.Metrics.TotalValue,
		TotalTravelCost:     sol.Metrics.TotalTravelCost,
		PenalizedTravelCost: sol.Metrics.DiscouragedTravelCost,
		FinalTime:           sol.Metrics.FinalTime,
		Objective:           sol.Metrics.Objective,
	}
}
