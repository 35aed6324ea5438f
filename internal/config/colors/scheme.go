package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset" mapstructure:"preset"`

	// Primary accent color (used for headers and highlights)
	Accent string `yaml:"accent" mapstructure:"accent"`

	// Board element colors
	ColumnBorder string `yaml:"column_border" mapstructure:"column_border"`
	TaskBorder   string `yaml:"task_border" mapstructure:"task_border"`
	Label        string `yaml:"label" mapstructure:"label"`
	Due          string `yaml:"due" mapstructure:"due"`

	// Text colors
	Title  string `yaml:"title" mapstructure:"title"`
	Subtle string `yaml:"subtle" mapstructure:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal" mapstructure:"normal"`

	// Status colors
	Success string `yaml:"success" mapstructure:"success"`
	Error   string `yaml:"error" mapstructure:"error"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "dragon":
		return Dragon()
	default:
		return Default()
	}
}

// Presets lists the built-in scheme names
func Presets() []string {
	return []string{"default", "monochrome", "dragon"}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.TaskBorder, preset.TaskBorder)
	fill(&c.Label, preset.Label)
	fill(&c.Due, preset.Due)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.Success, preset.Success)
	fill(&c.Error, preset.Error)
}

// MergeFrom copies every non-empty value of other over c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.ColumnBorder, other.ColumnBorder)
	merge(&c.TaskBorder, other.TaskBorder)
	merge(&c.Label, other.Label)
	merge(&c.Due, other.Due)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.Success, other.Success)
	merge(&c.Error, other.Error)
}
