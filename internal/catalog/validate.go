package catalog

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathfinder/internal/domain"
)

// ValidateDefinition checks a roadmap file for authoring errors.
// Returns a slice of errors (empty if valid).
func ValidateDefinition(def *DefinitionFile) []error {
	var errs []error

	if strings.TrimSpace(def.ID) == "" {
		errs = append(errs, fmt.Errorf("roadmap id is required"))
	}
	if strings.ContainsAny(def.ID, " \t\n") {
		errs = append(errs, fmt.Errorf("roadmap id %q must not contain whitespace", def.ID))
	}
	if strings.TrimSpace(def.Title) == "" {
		errs = append(errs, fmt.Errorf("roadmap title is required"))
	}
	if len(def.Phases) == 0 {
		errs = append(errs, fmt.Errorf("at least one phase is required"))
	}

	for pi, p := range def.Phases {
		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, fmt.Errorf("phase[%d]: title is required", pi))
		}
		for gi, g := range p.Groups {
			if strings.TrimSpace(g.Name) == "" {
				errs = append(errs, fmt.Errorf("phase[%d].group[%d]: name is required", pi, gi))
			}
			if !domain.ValidGroupClasses[g.Class] {
				errs = append(errs, fmt.Errorf("phase[%d].group[%d]: class %q must be one of must-know, good-to-know, tools", pi, gi, g.Class))
			}
			for ii, item := range g.Items {
				if domain.DisplayLabel(item) == "" {
					errs = append(errs, fmt.Errorf("phase[%d].group[%d].item[%d]: display label is empty", pi, gi, ii))
				}
			}
		}
	}

	return errs
}
