package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/francofil/proyecto-final-algoritmos/core/model"
	"github.com/francofil/proyecto-final-algoritmos/core/travel"
)

var matricesCmd = &cobra.Command{
	Use:   "matrices <zones.json>",
	Short: "Build per-mode and combined travel matrices from a list of zone labels",
	Long: `Reads a JSON array of zone labels (one per activity, e.g. ["Centro","Norte"])
and prints the travel-time matrices an optimize request needs.`,
	Args: cobra.ExactArgs(1),
	RunE: buildMatrices,
}

func init() {
	rootCmd.AddCommand(matricesCmd)
}

func buildMatrices(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read zones: %w", err)
	}
	var zones []string
	if err := json.Unmarshal(data, &zones); err != nil {
		return fmt.Errorf("decode zones: %w", err)
	}

	combined, err := travel.CombinedMatrix(zones)
	if err != nil {
		return err
	}
	out := struct {
		TravelTime      [][]float64                         `json:"travel_time"`
		ModeTravelTimes map[model.TransportMode][][]float64 `json:"mode_travel_times"`
	}{
		TravelTime:      travel.Rows(combined),
		ModeTravelTimes: make(map[model.TransportMode][][]float64, len(model.Modes())),
	}
	for _, mode := range model.Modes() {
		m, err := travel.ModeMatrix(zones, mode)
		if err != nil {
			return err
		}
		out.ModeTravelTimes[mode] = travel.Rows(m)
	}

	enc, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(enc))
	return nil
}
