package catalog

// DefinitionFile is the on-disk roadmap format. The same shape is accepted as
// JSON or YAML.
type DefinitionFile struct {
	ID       string        `json:"id" yaml:"id"`
	Title    string        `json:"title" yaml:"title"`
	Subtitle string        `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Phases   []PhaseConfig `json:"phases" yaml:"phases"`
}

type PhaseConfig struct {
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Duration    string        `json:"duration,omitempty" yaml:"duration,omitempty"` // e.g. "4-6 weeks"
	Groups      []GroupConfig `json:"groups,omitempty" yaml:"groups,omitempty"`
	Resources   []string      `json:"resources,omitempty" yaml:"resources,omitempty"`
}

type GroupConfig struct {
	Name  string   `json:"name" yaml:"name"`
	Class string   `json:"class" yaml:"class"` // must-know | good-to-know | tools
	Items []string `json:"items" yaml:"items"`
}
