package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/lenacroft/tempo/internal/cli/formatter"
	"github.com/lenacroft/tempo/internal/contract"
	"github.com/lenacroft/tempo/internal/domain"
	"github.com/spf13/cobra"
)

func parseDateFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, &contract.PlanError{
			Code:    contract.PlanErrInvalidDate,
			Message: fmt.Sprintf("invalid date %q, use YYYY-MM-DD", value),
		}
	}
	return &d, nil
}

func newPlanCmd(app *App) *cobra.Command {
	var dateStr, kindStr string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a day or week",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateFlag(dateStr)
			if err != nil {
				return err
			}

			req := contract.PlanDayRequest{Date: date}
			if kindStr != "" {
				kind := domain.ScheduleKind(kindStr)
				req.Kind = &kind
			}

			resp, err := app.Plan.PlanDay(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatDayPlan(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date to plan (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&kindStr, "kind", "", "Schedule kind (work or home)")

	cmd.AddCommand(newPlanWeekCmd(app), newPlanOrderCmd(app))
	return cmd
}

func newPlanWeekCmd(app *App) *cobra.Command {
	var startStr string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Plan the next seven days",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDateFlag(startStr)
			if err != nil {
				return err
			}

			resp, err := app.Plan.PlanWeek(context.Background(), contract.PlanWeekRequest{StartDate: start})
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatWeekPlan(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "First day of the week (YYYY-MM-DD, default today)")
	return cmd
}

func newPlanOrderCmd(app *App) *cobra.Command {
	var dateStr string
	var clear bool

	cmd := &cobra.Command{
		Use:   "order [tasks...]",
		Short: "Set or clear the manual task order for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			date := time.Now()
			if dateStr != "" {
				d, err := parseDateFlag(dateStr)
				if err != nil {
					return err
				}
				date = *d
			}

			if clear {
				if err := app.Orderings.Clear(ctx, date); err != nil {
					return err
				}
				fmt.Println("Cleared manual ordering.")
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("list tasks in the order they should run, or pass --clear")
			}
			ids := make([]string, 0, len(args))
			for _, arg := range args {
				id, err := resolveTaskID(ctx, app, arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			if err := app.Orderings.Set(ctx, date, ids); err != nil {
				return err
			}
			fmt.Printf("Ordered %d task(s).\n", len(ids))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Day the ordering applies to (default today)")
	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the manual ordering")
	return cmd
}
