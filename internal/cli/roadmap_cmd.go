package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/pathfinder/internal/cli/formatter"
	"github.com/alexanderramin/pathfinder/internal/domain"
	"github.com/alexanderramin/pathfinder/internal/tracker"
	"github.com/spf13/cobra"
)

func newRoadmapCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "roadmap",
		Aliases: []string{"rm"},
		Short:   "Browse roadmaps and track checklist progress",
	}

	cmd.AddCommand(
		newRoadmapListCmd(app),
		newRoadmapShowCmd(app),
		newRoadmapProgressCmd(app),
		newRoadmapToggleCmd(app),
		newRoadmapNextCmd(app),
		newRoadmapOpenCmd(app),
	)

	return cmd
}

func newRoadmapListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available roadmaps with progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			summaries, err := app.Roadmaps.List(ctx)
			if err != nil {
				return err
			}

			rows := make([]formatter.RoadmapRow, 0, len(summaries))
			for _, s := range summaries {
				r, err := app.Roadmaps.Get(ctx, s.ID)
				if err != nil {
					return err
				}
				state := app.Progress.Load(ctx, r.ID)
				rows = append(rows, formatter.RoadmapRow{
					Summary: s,
					Percent: tracker.RoadmapProgress(state, *r).Percent(),
				})
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoadmapList(rows))
			return nil
		},
	}
}

func newRoadmapShowCmd(app *App) *cobra.Command {
	var class classFlag

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show a roadmap's phases, topic groups and items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, state, err := loadRoadmap(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoadmap(*r, state, class.class))
			return nil
		},
	}

	cmd.Flags().Var(&class, "class", "Only show topic groups of this class (must-know, good-to-know, tools)")

	return cmd
}

func newRoadmapProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress NAME",
		Short: "Show overall and per-phase completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, state, err := loadRoadmap(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProgress(*r, state))
			return nil
		},
	}
}

func newRoadmapToggleCmd(app *App) *cobra.Command {
	var markDone, markNotDone bool

	cmd := &cobra.Command{
		Use:   "toggle NAME KEY...",
		Short: "Flip items between done and not done",
		Long: `Flip items between done and not done.

Items are addressed by key "phase.group.item" (zero-based), as printed by
"pathfinder roadmap show". Use --done or --not-done to set a value instead
of flipping it.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r, err := app.Roadmaps.Get(ctx, args[0])
			if err != nil {
				return err
			}
			keys, err := parseItemKeys(*r, args[1:])
			if err != nil {
				return err
			}

			list := app.Progress.Open(ctx, *r)
			for _, k := range keys {
				switch {
				case markDone:
					list.Set(ctx, k, true)
				case markNotDone:
					list.Set(ctx, k, false)
				default:
					list.Toggle(ctx, k)
				}
			}

			out := cmd.OutOrStdout()
			for _, k := range keys {
				fmt.Fprintln(out, formatter.FormatItemLine(*r, k, list.IsDone(k)))
			}
			overall := list.Overall()
			fmt.Fprintf(out, "%s  %d/%d\n", formatter.RenderProgress(overall.Percent(), 20), overall.Done, overall.Total)
			if !list.Persisted() {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Warn("progress could not be saved; changes will be lost on exit"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&markDone, "done", false, "Mark the items done")
	cmd.Flags().BoolVar(&markNotDone, "not-done", false, "Mark the items not done")
	cmd.MarkFlagsMutuallyExclusive("done", "not-done")

	return cmd
}

// parseItemKeys parses and checks every key before anything is changed.
func parseItemKeys(r domain.Roadmap, args []string) ([]domain.ItemKey, error) {
	keys := make([]domain.ItemKey, 0, len(args))
	var errs []error
	for _, arg := range args {
		k, err := domain.ParseItemKey(arg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, ok := r.Item(k); !ok {
			errs = append(errs, fmt.Errorf("no item %s in roadmap %q", k, r.ID))
			continue
		}
		keys = append(keys, k)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return keys, nil
}

func newRoadmapNextCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "next NAME",
		Short: "Show the next item that is not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, state, err := loadRoadmap(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			key, ok := tracker.NextIncomplete(state, *r)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNext(*r, key, ok))
			return nil
		},
	}
}

func newRoadmapOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open [NAME]",
		Short: "Open a roadmap as an interactive checklist",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			name := ""
			if len(args) == 1 {
				name = args[0]
			} else {
				if !app.interactive() {
					return errors.New("roadmap name required when not running in a terminal")
				}
				picked, err := pickRoadmap(ctx, app, cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
				name = picked
			}

			r, err := app.Roadmaps.Get(ctx, name)
			if err != nil {
				return err
			}
			list := app.Progress.Open(ctx, *r)

			if !app.interactive() {
				// Without a terminal, print the checklist once.
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoadmap(*r, list.State(), ""))
				return nil
			}
			return runChecklist(ctx, list, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// loadRoadmap is shared by commands that resolve NAME then load its state.
func loadRoadmap(ctx context.Context, app *App, name string) (*domain.Roadmap, domain.CompletionState, error) {
	r, err := app.Roadmaps.Get(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	return r, app.Progress.Load(ctx, r.ID), nil
}
