package cli

import (
	"github.com/lenacroft/tempo/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks       service.TaskService
	Schedule    service.ScheduleService
	Calendar    service.CalendarService
	Preferences service.PreferenceService
	Orderings   service.OrderingService
	Plan        service.PlanService
	Rebalance   service.RebalanceService
	Feasibility service.FeasibilityService

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms are only offered when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tempo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tempo",
		Short: "Personal task and time planner",
	}

	root.AddCommand(
		newTaskCmd(app),
		newPlanCmd(app),
		newHoursCmd(app),
		newCalendarCmd(app),
		newPrefsCmd(app),
		newRebalanceCmd(app),
		newFeasibleCmd(app),
	)

	return root
}
