package planner

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildResponse_PreservesOriginalIDsAndOrder(t *testing.T) {
	inst, err := Encode(twoActivityRequest(5))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	sol, _, err := New(Config{}, nil).Solve(context.Background(), inst)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	resp := BuildResponse(inst, sol)
	if len(resp.Route) != 2 || resp.Route[0].ID != 1 || resp.Route[1].ID != 2 {
		t.Fatalf("route = %+v, want IDs [1 2] in chronological order", resp.Route)
	}
	if resp.Route[0].Name != "Museo" || resp.Route[0].OpenTime != 8 {
		t.Errorf("route items must carry the full activity: %+v", resp.Route[0])
	}
	if resp.PenalizedTravelCost != sol.Metrics.DiscouragedTravelCost {
		t.Errorf("penalized cost mismatch")
	}
}

func TestBuildResponse_EmptyRouteMarshalsAsArray(t *testing.T) {
	inst, err := Encode(validRequest())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	b, err := json.Marshal(BuildResponse(inst, Solution{}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"route":[]`) {
		t.Fatalf("empty route must encode as [], got %s", b)
	}
}

func TestConfig_DefaultsAndValidate(t *testing.T) {
	var c Config
	c.SetDefaults()
	if c.MaxExpansions != 200000 || c.TimeoutSeconds != 10 {
		t.Fatalf("defaults = %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	bad := Config{MaxExpansions: -1}
	if err := bad.Validate(); err == nil {
		t.Fatalf("negative max_expansions must fail validation")
	}
}
