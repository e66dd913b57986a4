package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDefaultsAndFiles decodes defaultsYAML and overlays each YAML file in
// name order. Later files win per key.
func LoadDefaultsAndFiles(defaultsYAML []byte, files []string) (Settings, error) {
	var merged Settings
	if len(defaultsYAML) > 0 {
		var base settingsFile
		if err := yaml.Unmarshal(defaultsYAML, &base); err != nil {
			return Settings{}, fmt.Errorf("defaults: %w", err)
		}
		merged = mergeSettings(merged, base, "defaults")
	}
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return Settings{}, err
		}
		if len(strings.TrimSpace(string(b))) == 0 {
			continue
		}
		var part settingsFile
		if err := yaml.Unmarshal(b, &part); err != nil {
			return Settings{}, fmt.Errorf("%s: %w", f, err)
		}
		merged = mergeSettings(merged, part, f)
	}
	return merged, nil
}

// FilesInDir lists the YAML files in dir. A missing dir yields no files.
func FilesInDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return sortedYAML(files), nil
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		lf := strings.ToLower(f)
		if strings.HasSuffix(lf, ".yaml") || strings.HasSuffix(lf, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func mergeSettings(base Settings, overlay settingsFile, origin string) Settings {
	out := base
	if overlay.Output.Format != nil {
		out.Output.Format = *overlay.Output.Format
		out.setOrigin("output.format", origin)
	}
	if overlay.Output.LineNumbers != nil {
		out.Output.LineNumbers = *overlay.Output.LineNumbers
		out.setOrigin("output.line_numbers", origin)
	}
	if overlay.Log.Level != nil {
		out.Log.Level = *overlay.Log.Level
		out.setOrigin("log.level", origin)
	}
	return out
}
