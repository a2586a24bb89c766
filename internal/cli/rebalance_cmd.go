package cli

import (
	"context"
	"fmt"

	"github.com/lenacroft/tempo/internal/cli/formatter"
	"github.com/lenacroft/tempo/internal/contract"
	"github.com/lenacroft/tempo/internal/timeutil"
	"github.com/spf13/cobra"
)

func newRebalanceCmd(app *App) *cobra.Command {
	var atStr string
	var apply bool

	cmd := &cobra.Command{
		Use:   "rebalance",
		Short: "Move overflowing work to tomorrow, pull work forward when ahead",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.RebalanceRequest{Apply: apply}
			if atStr != "" {
				min, err := timeutil.ClockToMinutes(atStr)
				if err != nil {
					return fmt.Errorf("invalid time %q: %w", atStr, err)
				}
				req.NowMin = &min
			}

			resp, err := app.Rebalance.Rebalance(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatRebalance(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&atStr, "at", "", "Pretend it is this time of day (HH:MM)")
	cmd.Flags().BoolVar(&apply, "apply", false, "Persist the proposed moves")
	return cmd
}

func newFeasibleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "feasible <task>",
		Short: "Check whether a task still fits before its deadline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			resp, err := app.Feasibility.CheckFeasibility(ctx, contract.FeasibilityRequest{TaskID: id})
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatFeasibility(resp))
			return nil
		},
	}
}
