package filter

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preset is a named, saved filter form
type Preset struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Filters     Form   `yaml:"filters"`
}

// PresetFile is the YAML document layout
type PresetFile struct {
	Presets []Preset `yaml:"presets"`
}

// Presets is a lookup of presets by name
type Presets map[string]Preset

// LoadPresets reads a YAML preset file.
// KnownFields(true): 오타/미사용 필드는 즉시 실패
func LoadPresets(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	return ParsePresets(data)
}

// ParsePresets decodes and validates preset YAML
func ParsePresets(data []byte) (Presets, error) {
	var file PresetFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}

	presets := make(Presets, len(file.Presets))
	for i, p := range file.Presets {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("preset #%d: name is required", i+1)
		}
		if _, dup := presets[name]; dup {
			return nil, fmt.Errorf("preset %q defined twice", name)
		}
		p.Name = name
		presets[name] = p
	}

	return presets, nil
}

// Get returns the preset with the given name
func (p Presets) Get(name string) (Preset, bool) {
	preset, ok := p[name]
	return preset, ok
}

// Names returns preset names in alphabetical order
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
