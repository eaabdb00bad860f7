package types

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bennypowers.dev/checkbridge/internal/diagnostics"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Config is the bridge's configuration surface
type Config struct {
	// Exclusive makes the bridge checker replace, rather than chain with,
	// whatever checker was previously selected for a document
	Exclusive bool `json:"exclusive" yaml:"exclusive"`

	// ShowTags renders diagnostic tag labels next to the severity level
	ShowTags bool `json:"showTags" yaml:"showTags"`

	// TagLabels maps diagnostic tags to their display labels
	TagLabels map[string]string `json:"tagLabels" yaml:"tagLabels"`

	// TagSeparator joins multiple tag labels
	TagSeparator string `json:"tagSeparator" yaml:"tagSeparator"`

	// LevelSeparator sits between the severity level and the tag block
	LevelSeparator string `json:"levelSeparator" yaml:"levelSeparator"`
}

// DefaultConfig returns the default bridge configuration
func DefaultConfig() Config {
	return Config{
		Exclusive: true,
		ShowTags:  true,
		TagLabels: map[string]string{
			string(diagnostics.TagUnnecessary): "unnecessary",
			string(diagnostics.TagDeprecated):  "deprecated",
		},
		TagSeparator:   ",",
		LevelSeparator: "/",
	}
}

// RenderLevel renders a severity level for display text, with the
// diagnostic's tag labels appended when ShowTags is set.
// Examples: "error", "info/deprecated", "warning/deprecated,unnecessary".
func (c Config) RenderLevel(level diagnostics.Severity, tags []diagnostics.Tag) string {
	if !c.ShowTags || len(tags) == 0 {
		return level.String()
	}

	labels := make([]string, 0, len(tags))
	for _, tag := range tags {
		label := c.TagLabels[string(tag)]
		if label == "" {
			label = string(tag)
		}
		labels = append(labels, label)
	}

	return level.String() + c.LevelSeparator + strings.Join(labels, c.TagSeparator)
}

// LoadConfig reads a configuration file, layering it over the defaults.
// JSON files may carry comments and trailing commas; YAML is also accepted.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
			return config, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		return config, fmt.Errorf("unsupported config format: %s", ext)
	}

	return config, nil
}
