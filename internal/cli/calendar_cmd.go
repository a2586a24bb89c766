package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lenacroft/tempo/internal/cli/formatter"
	"github.com/lenacroft/tempo/internal/domain"
	"github.com/lenacroft/tempo/internal/timeutil"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cal",
		Aliases: []string{"calendar"},
		Short:   "Manage external calendar blocks",
	}

	cmd.AddCommand(
		newCalendarAddCmd(app),
		newCalendarListCmd(app),
		newCalendarRemoveCmd(app),
	)
	return cmd
}

func newCalendarAddCmd(app *App) *cobra.Command {
	var startStr, endStr string

	cmd := &cobra.Command{
		Use:   "add <date> <title...>",
		Short: "Add an external appointment",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", args[0], err)
			}
			start, err := timeutil.ClockToMinutes(startStr)
			if err != nil {
				return fmt.Errorf("invalid start %q: %w", startStr, err)
			}
			end, err := timeutil.ClockToMinutes(endStr)
			if err != nil {
				return fmt.Errorf("invalid end %q: %w", endStr, err)
			}

			e := &domain.CalendarEvent{
				Date:     date,
				Title:    strings.Join(args[1:], " "),
				StartMin: start,
				EndMin:   end,
			}
			if err := app.Calendar.Add(context.Background(), e); err != nil {
				return err
			}
			fmt.Printf("Added %q on %s %s-%s\n", e.Title, args[0], startStr, endStr)
			return nil
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&endStr, "end", "", "End time (HH:MM)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newCalendarListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <date>",
		Short: "List appointments on a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", args[0], err)
			}
			events, err := app.Calendar.ListByDate(context.Background(), date)
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Println("No appointments.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatCalendarList(events))
			return nil
		},
	}
}

func newCalendarRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Calendar.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Removed.")
			return nil
		},
	}
}
