package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	FormatPlain = "plain"
	FormatTable = "table"
)

type Output struct {
	Format      string `yaml:"format" json:"format"`
	LineNumbers bool   `yaml:"line_numbers" json:"line_numbers"`
}

type Log struct {
	Level string `yaml:"level" json:"level"`
}

// OriginFlags names values set on the command line.
const OriginFlags = "command line"

// Settings controls presentation and diagnostics. It never affects matching.
type Settings struct {
	Output Output `yaml:"output" json:"output"`
	Log    Log    `yaml:"log" json:"log"`

	// origins maps a dotted key such as "output.format" to the file that set it.
	origins map[string]string
}

// Origin reports where key was last set, or "" if it never was.
func (s Settings) Origin(key string) string { return s.origins[key] }

func (s *Settings) OverrideFormat(v string) {
	s.Output.Format = v
	s.setOrigin("output.format", OriginFlags)
}

func (s *Settings) OverrideLineNumbers(v bool) {
	s.Output.LineNumbers = v
	s.setOrigin("output.line_numbers", OriginFlags)
}

func (s *Settings) setOrigin(key, origin string) {
	m := make(map[string]string, len(s.origins)+1)
	for k, v := range s.origins {
		m[k] = v
	}
	m[key] = origin
	s.origins = m
}

// settingsFile is one YAML document; nil means "not set in this file".
type settingsFile struct {
	Output struct {
		Format      *string `yaml:"format"`
		LineNumbers *bool   `yaml:"line_numbers"`
	} `yaml:"output"`
	Log struct {
		Level *string `yaml:"level"`
	} `yaml:"log"`
}

func (s *settingsFile) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("settings must be a mapping, got node kind %d", value.Kind)
	}
	type plain settingsFile
	var aux plain
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*s = settingsFile(aux)
	return nil
}
