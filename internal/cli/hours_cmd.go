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

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday, "wed": time.Wednesday,
	"thu": time.Thursday, "fri": time.Friday, "sat": time.Saturday,
}

func parseWeekday(s string) (time.Weekday, error) {
	if d, ok := weekdayNames[strings.ToLower(s)]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("unknown weekday %q (use mon..sun)", s)
}

func newHoursCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Configure working and home hours",
	}

	cmd.AddCommand(
		newHoursShowCmd(app),
		newHoursSetCmd(app),
		newHoursBufferCmd(app),
		newHoursOverrideCmd(app),
	)
	return cmd
}

func newHoursShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the weekly schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, err := app.Schedule.GetConfig(ctx)
			if err != nil {
				return err
			}
			overrides, err := app.Schedule.ListOverrides(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatScheduleConfig(cfg, overrides))
			return nil
		},
	}
}

func newHoursSetCmd(app *App) *cobra.Command {
	var dayStr, kindStr, startStr, endStr string
	var off, flexible bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set one weekday's window",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseWeekday(dayStr)
			if err != nil {
				return err
			}
			kind := domain.ScheduleKind(kindStr)

			w := domain.DayWindow{Flexible: flexible}
			if !off {
				start, err := timeutil.ClockToMinutes(startStr)
				if err != nil {
					return fmt.Errorf("invalid start %q: %w", startStr, err)
				}
				end, err := timeutil.ClockToMinutes(endStr)
				if err != nil {
					return fmt.Errorf("invalid end %q: %w", endStr, err)
				}
				w.StartMin = start
				w.EndMin = end
				w.Enabled = true
			}

			if err := app.Schedule.SetWindow(context.Background(), day, kind, w); err != nil {
				return err
			}
			if off {
				fmt.Printf("Disabled %s %s hours\n", dayStr, kindStr)
			} else {
				fmt.Printf("Set %s %s hours to %s-%s\n", dayStr, kindStr, startStr, endStr)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dayStr, "day", "", "Weekday (mon..sun)")
	cmd.Flags().StringVar(&kindStr, "kind", "work", "Schedule kind (work or home)")
	cmd.Flags().StringVar(&startStr, "start", "", "Window start (HH:MM)")
	cmd.Flags().StringVar(&endStr, "end", "", "Window end (HH:MM)")
	cmd.Flags().BoolVar(&off, "off", false, "Disable this day")
	cmd.Flags().BoolVar(&flexible, "flexible", false, "Do not cap this window at net capacity")
	_ = cmd.MarkFlagRequired("day")

	return cmd
}

func newHoursBufferCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "buffer <pct>",
		Short: "Set the reserved buffer fraction (e.g. 0.25)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pct float64
			if _, err := fmt.Sscanf(args[0], "%f", &pct); err != nil {
				return fmt.Errorf("invalid fraction %q: %w", args[0], err)
			}
			if err := app.Schedule.SetBufferPct(context.Background(), pct); err != nil {
				return err
			}
			fmt.Printf("Buffer set to %.0f%%\n", pct*100)
			return nil
		},
	}
}

func newHoursOverrideCmd(app *App) *cobra.Command {
	var startStr, endStr, reason string
	var clear, off bool

	cmd := &cobra.Command{
		Use:   "override <date>",
		Short: "Override one date's hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", args[0], err)
			}

			if clear {
				if err := app.Schedule.ClearOverride(ctx, date); err != nil {
					return err
				}
				fmt.Printf("Removed override for %s\n", args[0])
				return nil
			}

			ov := &domain.DayOverride{Date: date, Reason: reason}
			if !off {
				start, err := timeutil.ClockToMinutes(startStr)
				if err != nil {
					return fmt.Errorf("invalid start %q: %w", startStr, err)
				}
				end, err := timeutil.ClockToMinutes(endStr)
				if err != nil {
					return fmt.Errorf("invalid end %q: %w", endStr, err)
				}
				ov.StartMin = start
				ov.EndMin = end
			}

			if err := app.Schedule.SetOverride(ctx, ov); err != nil {
				return err
			}
			if off {
				fmt.Printf("Marked %s as off\n", args[0])
			} else {
				fmt.Printf("Override for %s: %s-%s\n", args[0], startStr, endStr)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "Window start (HH:MM)")
	cmd.Flags().StringVar(&endStr, "end", "", "Window end (HH:MM)")
	cmd.Flags().StringVar(&reason, "reason", "", "Why this day differs")
	cmd.Flags().BoolVar(&off, "off", false, "Take the whole day off")
	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the override")

	return cmd
}
