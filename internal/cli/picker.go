package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/pathfinder/internal/cli/formatter"
	"github.com/alexanderramin/pathfinder/internal/domain"
	"github.com/charmbracelet/huh"
)

// errPickCancelled is returned when the user aborts the roadmap picker.
var errPickCancelled = errors.New("no roadmap selected")

// pathfinderHuhTheme returns a huh theme matching the formatter palette.
func pathfinderHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(formatter.ColorFg)

	t.Blurred.Title = t.Blurred.Title.Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = t.Blurred.SelectSelector.Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = t.Blurred.SelectedOption.Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = t.Blurred.UnselectedOption.Foreground(formatter.ColorDim)

	return t
}

// roadmapOptions labels each roadmap with its title and item count; the
// option value is the roadmap ID.
func roadmapOptions(summaries []domain.RoadmapSummary) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(summaries))
	for _, s := range summaries {
		label := fmt.Sprintf("%s (%d items)", s.Title, s.ItemCount)
		options = append(options, huh.NewOption(label, s.ID))
	}
	return options
}

func roadmapPickerForm(summaries []domain.RoadmapSummary, result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which roadmap?").
				Options(roadmapOptions(summaries)...).
				Value(result),
		),
	).WithTheme(pathfinderHuhTheme()).WithShowHelp(false)
}

// pickRoadmap asks the user to choose a roadmap and returns its ID.
func pickRoadmap(ctx context.Context, app *App, in io.Reader, out io.Writer) (string, error) {
	summaries, err := app.Roadmaps.List(ctx)
	if err != nil {
		return "", err
	}
	if len(summaries) == 0 {
		return "", errors.New("no roadmaps available")
	}

	var picked string
	form := roadmapPickerForm(summaries, &picked).WithInput(in).WithOutput(out)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", errPickCancelled
		}
		return "", err
	}
	if picked == "" {
		return "", errPickCancelled
	}
	return picked, nil
}
