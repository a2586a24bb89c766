package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/lenacroft/tempo/internal/cli/formatter"
	"github.com/lenacroft/tempo/internal/domain"
	"github.com/lenacroft/tempo/internal/timeutil"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskStartCmd(app),
		newTaskStopCmd(app),
		newTaskLogCmd(app),
		newTaskMoveCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var title, category, priority, due, notBefore, fixedStart, parent string
	var estimate int
	var container bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			// With no title and a terminal attached, fall back to the
			// interactive form.
			if title == "" && app.IsInteractive != nil && app.IsInteractive() {
				estStr := strconv.Itoa(estimate)
				if priority == "" {
					priority = "normal"
				}
				if category == "" {
					category = "admin"
				}
				form := taskAddForm(&title, &category, &priority, &estStr, &due, &fixedStart)
				if err := form.Run(); err != nil {
					return err
				}
				estimate, _ = strconv.Atoi(estStr)
			}
			if title == "" {
				return fmt.Errorf("a title is required (--title)")
			}

			t := &domain.Task{
				Title:        title,
				Category:     domain.TaskCategory(category),
				Priority:     domain.Priority(priority),
				EstimatedMin: estimate,
				ParentID:     parent,
			}
			if container {
				t.Kind = domain.KindContainer
			}
			if due != "" {
				d, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				t.DueDate = &d
			}
			if notBefore != "" {
				d, err := time.Parse("2006-01-02", notBefore)
				if err != nil {
					return fmt.Errorf("invalid not-before date %q: %w", notBefore, err)
				}
				t.NotBefore = &d
			}
			if fixedStart != "" {
				min, err := timeutil.ClockToMinutes(fixedStart)
				if err != nil {
					return fmt.Errorf("invalid fixed start %q: %w", fixedStart, err)
				}
				t.FixedStartMin = &min
			}

			if err := app.Tasks.Create(context.Background(), t); err != nil {
				return err
			}

			fmt.Printf("Created task %s (%s)\n", t.Title, shortID(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&category, "cat", "", "Category (client_work, creative, admin, communication, learning, errand)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (urgent, high, normal)")
	cmd.Flags().IntVar(&estimate, "est", 60, "Estimated minutes")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notBefore, "not-before", "", "Earliest start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&fixedStart, "at", "", "Fixed start time (HH:MM)")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent container task")
	cmd.Flags().BoolVar(&container, "container", false, "Create a container (grouping) task")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks")
	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <task>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Complete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Completed task %s\n", shortID(id))
			return nil
		},
	}
}

func newTaskStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start <task>",
		Short: "Start the timer on a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.StartTimer(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Timer running on %s\n", shortID(id))
			return nil
		},
	}
}

func newTaskStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop <task>",
		Short: "Stop the timer and log the elapsed time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			elapsed, err := app.Tasks.StopTimer(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Logged %s on %s\n", timeutil.FormatDuration(elapsed), shortID(id))
			return nil
		},
	}
}

func newTaskLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log <task> <minutes>",
		Short: "Log worked minutes on a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			minutes, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid minutes %q: %w", args[1], err)
			}
			if err := app.Tasks.LogWork(ctx, id, minutes); err != nil {
				return err
			}
			fmt.Printf("Logged %s on %s\n", timeutil.FormatDuration(minutes), shortID(id))
			return nil
		},
	}
}

func newTaskMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <task> <date>",
		Short: "Defer a task to a later day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			date, err := time.Parse("2006-01-02", args[1])
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", args[1], err)
			}
			if err := app.Tasks.MoveToDate(ctx, id, date); err != nil {
				return err
			}
			fmt.Printf("Moved %s to %s\n", shortID(id), args[1])
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task>",
		Short: "Delete a task (children go with it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Deleted task %s\n", shortID(id))
			return nil
		},
	}
}

// shortID truncates a UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
