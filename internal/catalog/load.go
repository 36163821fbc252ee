package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/pathfinder/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a roadmap definition file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported roadmap format")

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// LoadDefinition reads and parses a roadmap file.
func LoadDefinition(path string) (*DefinitionFile, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDefinition(data, format)
}

// ParseDefinition decodes data in the given format.
func ParseDefinition(data []byte, format Format) (*DefinitionFile, error) {
	var def DefinitionFile
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("parsing roadmap: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("parsing roadmap: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &def, nil
}

// ToDomain converts the file representation into a domain roadmap,
// preserving phase, group and item order exactly.
func (d *DefinitionFile) ToDomain() domain.Roadmap {
	r := domain.Roadmap{
		ID:       d.ID,
		Title:    d.Title,
		Subtitle: d.Subtitle,
		Phases:   make([]domain.Phase, 0, len(d.Phases)),
	}
	for _, pc := range d.Phases {
		phase := domain.Phase{
			Title:       pc.Title,
			Description: pc.Description,
			Duration:    pc.Duration,
			Resources:   append([]string(nil), pc.Resources...),
		}
		for _, gc := range pc.Groups {
			phase.Groups = append(phase.Groups, domain.TopicGroup{
				Name:  gc.Name,
				Class: domain.GroupClass(gc.Class),
				Items: append([]string(nil), gc.Items...),
			})
		}
		r.Phases = append(r.Phases, phase)
	}
	return r
}
