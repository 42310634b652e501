package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/francofil/proyecto-final-algoritmos/config"
	"github.com/francofil/proyecto-final-algoritmos/core/model"
	"github.com/francofil/proyecto-final-algoritmos/core/planner"
	"github.com/francofil/proyecto-final-algoritmos/infra/logger"
)

var solveCmd = &cobra.Command{
	Use:   "solve <request.json>",
	Short: "Run the optimizer on a request file and print the response",
	Args:  cobra.ExactArgs(1),
	RunE:  solveFile,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func solveFile(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	var req model.PlanRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}

	inst, err := planner.Encode(req)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	logg := logger.New("solve-command")
	engine := planner.New(cfg.Planner, logg)
	sol, stats, err := engine.Solve(cmd.Context(), inst)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	if stats.Truncated {
		logg.Warnf("search truncated after %d expansions, result is best-so-far", stats.Expansions)
	}

	out, err := json.MarshalIndent(planner.BuildResponse(inst, sol), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
