// Package travel reproduces the fixed zone-coordinate table and transport
// speeds used by the request builder. The planner core never looks up zones
// itself; it consumes the matrices this package produces. The package exists
// so tests and the CLI can generate deterministic request payloads.
package travel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/francofil/proyecto-final-algoritmos/core/model"
)

// Zone is a coarse location label with fixed 2-D coordinates, in kilometers.
type Zone struct {
	Name string
	X, Y float64
}

var zones = map[string]Zone{
	"Centro": {Name: "Centro", X: 0, Y: 0},
	"Norte":  {Name: "Norte", X: 0, Y: 15},
	"Sur":    {Name: "Sur", X: 0, Y: -15},
	"Este":   {Name: "Este", X: 15, Y: 0},
	"Oeste":  {Name: "Oeste", X: -15, Y: 0},
}

// speeds holds average speeds in km/h per transport mode.
var speeds = map[model.TransportMode]float64{
	model.ModeBicycle:         15,
	model.ModeCar:             40,
	model.ModePublicTransport: 25,
}

// Lookup resolves a zone label.
func Lookup(name string) (Zone, error) {
	z, ok := zones[name]
	if !ok {
		return Zone{}, fmt.Errorf("unknown zone %q", name)
	}
	return z, nil
}

// Speed returns the average speed of a transport mode in km/h.
func Speed(mode model.TransportMode) (float64, error) {
	s, ok := speeds[mode]
	if !ok {
		return 0, fmt.Errorf("unknown transport mode %q", mode)
	}
	return s, nil
}

// Distance returns the Euclidean distance between two zones in kilometers.
func Distance(a, b Zone) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Time returns the travel time in hours between two zones under a mode.
// Same-zone travel is always zero.
func Time(a, b Zone, mode model.TransportMode) (float64, error) {
	s, err := Speed(mode)
	if err != nil {
		return 0, err
	}
	return Distance(a, b) / s, nil
}

// ModeMatrix builds the pairwise travel-time matrix for the given zone labels
// under one transport mode. The result is square with a zero diagonal and is
// symmetric because distances are Euclidean.
func ModeMatrix(zoneNames []string, mode model.TransportMode) (*mat.Dense, error) {
	s, err := Speed(mode)
	if err != nil {
		return nil, err
	}
	n := len(zoneNames)
	resolved := make([]Zone, n)
	for i, name := range zoneNames {
		z, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		resolved[i] = z
	}
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			t := Distance(resolved[i], resolved[j]) / s
			m.Set(i, j, t)
			m.Set(j, i, t)
		}
	}
	return m, nil
}

// CombinedMatrix builds the matrix holding, per pair, the minimum travel time
// across all supported modes.
func CombinedMatrix(zoneNames []string) (*mat.Dense, error) {
	n := len(zoneNames)
	combined := mat.NewDense(n, n, nil)
	for i := range combined.RawMatrix().Data {
		combined.RawMatrix().Data[i] = math.Inf(1)
	}
	for i := 0; i < n; i++ {
		combined.Set(i, i, 0)
	}
	for _, mode := range model.Modes() {
		mm, err := ModeMatrix(zoneNames, mode)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if v := mm.At(i, j); v < combined.At(i, j) {
					combined.Set(i, j, v)
				}
			}
		}
	}
	return combined, nil
}

// Rows converts a dense matrix into the nested-slice wire representation.
func Rows(m *mat.Dense) [][]float64 {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}
