package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathfinder/internal/domain"
	"github.com/alexanderramin/pathfinder/internal/tracker"
)

const barWidth = 20

// RoadmapRow is one line of the roadmap listing.
type RoadmapRow struct {
	Summary domain.RoadmapSummary
	Percent int
}

// FormatRoadmapList renders the roadmap catalog as a table.
func FormatRoadmapList(rows []RoadmapRow) string {
	if len(rows) == 0 {
		return Dim("No roadmaps found.") + "\n"
	}

	headers := []string{"#", "ID", "Title", "Phases", "Items", "Progress"}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			fmt.Sprintf("%d", r.Summary.Index),
			r.Summary.ID,
			r.Summary.Title,
			fmt.Sprintf("%d", r.Summary.PhaseCount),
			fmt.Sprintf("%d", r.Summary.ItemCount),
			RenderProgress(r.Percent, 10),
		})
	}
	return RenderTable(headers, cells)
}

// FormatRoadmap renders every phase of r as a checklist tree. A non-empty
// class limits the output to topic groups of that class.
func FormatRoadmap(r domain.Roadmap, state domain.CompletionState, class domain.GroupClass) string {
	var b strings.Builder
	b.WriteString(Header(r.Title) + "\n")
	if r.Subtitle != "" {
		b.WriteString(Dim(r.Subtitle) + "\n")
	}
	overall := tracker.RoadmapProgress(state, r)
	fmt.Fprintf(&b, "Overall %s  %s\n", RenderProgress(overall.Percent(), barWidth), Dim(fmt.Sprintf("%d/%d", overall.Done, overall.Total)))

	for pi, phase := range r.Phases {
		b.WriteString("\n")
		b.WriteString(formatPhase(pi, phase, state, r, class))
	}
	return b.String()
}

func formatPhase(pi int, phase domain.Phase, state domain.CompletionState, r domain.Roadmap, class domain.GroupClass) string {
	var b strings.Builder
	p := tracker.PhaseProgress(state, pi, r)

	title := fmt.Sprintf("Phase %d: %s", pi+1, phase.Title)
	if phase.Duration != "" {
		title += " " + Dim("("+phase.Duration+")")
	}
	items := []TreeItem{{Title: title, Badge: fmt.Sprintf("%s %3d%%", PhaseIndicator(p), p.Percent())}}

	var groups []int
	for gi, g := range phase.Groups {
		if class == "" || g.Class == class {
			groups = append(groups, gi)
		}
	}
	for n, gi := range groups {
		g := phase.Groups[gi]
		items = append(items, TreeItem{
			Title:  g.Name,
			Level:  1,
			IsLast: n == len(groups)-1,
			Badge:  ClassBadge(g.Class),
		})
		for ii, label := range g.Items {
			k := domain.ItemKey{Phase: pi, Group: gi, Item: ii}
			items = append(items, TreeItem{
				Title:  domain.DisplayLabel(label),
				Key:    k.String(),
				Level:  2,
				IsLast: ii == len(g.Items)-1,
				Done:   state.IsDone(k.String()),
				Leaf:   true,
			})
		}
	}

	if phase.Description != "" {
		b.WriteString(Dim(phase.Description) + "\n")
	}
	b.WriteString(RenderTree(items))
	if len(phase.Resources) > 0 {
		b.WriteString(Dim("Resources: "+strings.Join(phase.Resources, ", ")) + "\n")
	}
	return b.String()
}

// FormatProgress renders overall and per-phase completion.
func FormatProgress(r domain.Roadmap, state domain.CompletionState) string {
	var b strings.Builder
	overall := tracker.RoadmapProgress(state, r)

	b.WriteString(Header(r.Title+" progress") + "\n")
	fmt.Fprintf(&b, "Overall %s  %d/%d items\n", RenderProgress(overall.Percent(), barWidth), overall.Done, overall.Total)
	if overall.Complete() {
		b.WriteString(StyleGreen.Render("Roadmap complete.") + "\n")
	}
	b.WriteString("\n")

	headers := []string{"Phase", "Progress", "Done", "State"}
	rows := make([][]string, 0, len(r.Phases))
	for pi, phase := range r.Phases {
		p := tracker.PhaseProgress(state, pi, r)
		rows = append(rows, []string{
			fmt.Sprintf("%d. %s", pi+1, phase.Title),
			RenderProgress(p.Percent(), 10),
			fmt.Sprintf("%d/%d", p.Done, p.Total),
			PhaseIndicator(p),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// FormatItemLine renders one item with its check mark, key and label.
func FormatItemLine(r domain.Roadmap, key domain.ItemKey, done bool) string {
	label, ok := r.Item(key)
	if !ok {
		label = "(unknown item)"
	}
	mark := StyleDim.Render("○")
	if done {
		mark = StyleGreen.Render("✔")
	}
	return fmt.Sprintf("%s %s %s", mark, Dim(key.String()), domain.DisplayLabel(label))
}

// FormatNext renders the next incomplete item, or a completion message.
func FormatNext(r domain.Roadmap, key domain.ItemKey, ok bool) string {
	if !ok {
		if r.ItemCount() == 0 {
			return Dim("This roadmap has no items.") + "\n"
		}
		return StyleGreen.Render("All items complete. Nice work.") + "\n"
	}

	var b strings.Builder
	label, _ := r.Item(key)
	phase := r.Phases[key.Phase]
	group := phase.Groups[key.Group]
	fmt.Fprintf(&b, "%s %s\n", StyleHeader.Render("Next:"), Bold(domain.DisplayLabel(label)))
	fmt.Fprintf(&b, "  %s  Phase %d: %s / %s %s\n", Dim(key.String()), key.Phase+1, phase.Title, group.Name, ClassBadge(group.Class))
	if detail := domain.ItemDetail(label); detail != "" {
		fmt.Fprintf(&b, "  %s\n", Dim(detail))
	}
	return b.String()
}
