package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lenacroft/tempo/internal/cli/formatter"
	"github.com/lenacroft/tempo/internal/domain"
	"github.com/spf13/cobra"
)

func newPrefsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage category energy preferences",
	}

	cmd.AddCommand(
		newPrefsListCmd(app),
		newPrefsSetCmd(app),
		newPrefsResetCmd(app),
	)
	return cmd
}

func newPrefsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show which energy windows each category prefers",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := app.Preferences.List(context.Background())
			if err != nil {
				return err
			}

			headers := []string{"CATEGORY", "PREFERRED", "AVOIDED", "FOCUS"}
			rows := make([][]string, 0, len(prefs))
			for _, p := range prefs {
				focus := formatter.Dim("no")
				if p.RequiresFocus {
					focus = formatter.Bold("yes")
				}
				rows = append(rows, []string{
					formatter.Bold(string(p.Category)),
					strings.Join(p.Preferred, ", "),
					formatter.Dim(strings.Join(p.Avoided, ", ")),
					focus,
				})
			}
			fmt.Printf("%s\n", formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newPrefsSetCmd(app *App) *cobra.Command {
	var preferred, avoided []string
	var focus bool
	var rank int

	cmd := &cobra.Command{
		Use:   "set <category>",
		Short: "Override a category's window preferences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.CategoryPreference{
				Category:      domain.TaskCategory(args[0]),
				Preferred:     preferred,
				Avoided:       avoided,
				RequiresFocus: focus,
				Rank:          rank,
			}
			if err := app.Preferences.Set(context.Background(), p); err != nil {
				return err
			}
			fmt.Printf("Updated preferences for %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&preferred, "prefer", nil, "Energy window IDs in preference order")
	cmd.Flags().StringSliceVar(&avoided, "avoid", nil, "Energy window IDs to stay out of")
	cmd.Flags().BoolVar(&focus, "focus", false, "Category needs deep-focus time")
	cmd.Flags().IntVar(&rank, "rank", 0, "Tie-break rank, lower schedules earlier")

	return cmd
}

func newPrefsResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <category>",
		Short: "Drop a category's override and fall back to the defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Preferences.Reset(context.Background(), domain.TaskCategory(args[0])); err != nil {
				return err
			}
			fmt.Printf("Reset preferences for %s\n", args[0])
			return nil
		},
	}
}
