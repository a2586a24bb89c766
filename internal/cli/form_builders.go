package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/lenacroft/tempo/internal/cli/formatter"
	"github.com/lenacroft/tempo/internal/timeutil"
)

func tempoHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateOptionalClock(s string) error {
	if s == "" {
		return nil
	}
	if _, err := timeutil.ClockToMinutes(s); err != nil {
		return fmt.Errorf("use HH:MM")
	}
	return nil
}

// taskAddForm collects the fields for a new task interactively.
func taskAddForm(title, category, priority, estimate, due, fixedStart *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("a title is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(
					huh.NewOption("Client work", "client_work"),
					huh.NewOption("Creative", "creative"),
					huh.NewOption("Admin", "admin"),
					huh.NewOption("Communication", "communication"),
					huh.NewOption("Learning", "learning"),
					huh.NewOption("Errand", "errand"),
				).
				Value(category),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Normal", "normal"),
					huh.NewOption("High", "high"),
					huh.NewOption("Urgent", "urgent"),
				).
				Value(priority),
			huh.NewInput().
				Title("Estimated minutes").
				Placeholder("60").
				Value(estimate).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Due date (YYYY-MM-DD, blank for none)").
				Placeholder("2026-06-30").
				Value(due).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Fixed start (HH:MM, blank for flexible)").
				Placeholder("14:00").
				Value(fixedStart).
				Validate(validateOptionalClock),
		),
	).WithTheme(tempoHuhTheme()).WithShowHelp(false)
}
