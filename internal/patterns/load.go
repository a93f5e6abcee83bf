package patterns

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML vocabulary override from path. Top-level sections
// missing from the file keep their built-in values; a section that is present
// replaces the built-in one entirely. The result is compiled.
func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read patterns: %w", err)
	}
	return Parse(data)
}

// Parse is LoadFile over an in-memory document.
func Parse(data []byte) (*Library, error) {
	lib := builtin()
	if err := yaml.Unmarshal(data, lib); err != nil {
		return nil, fmt.Errorf("failed to parse patterns: %w", err)
	}
	if err := lib.validate(); err != nil {
		return nil, err
	}
	if err := lib.Compile(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Marshal renders the library's source form as YAML, suitable as a starting
// point for an override file.
func (l *Library) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patterns: %w", err)
	}
	return data, nil
}

// BuiltinYAML returns the default vocabulary as YAML.
func BuiltinYAML() ([]byte, error) {
	return builtin().Marshal()
}

func (l *Library) validate() error {
	for i, ks := range l.ClauseTypes {
		if ks.Name == "" {
			return fmt.Errorf("patterns: clause_types[%d] has no name", i)
		}
	}
	for i, j := range l.Jurisdictions {
		if j.Tag == "" {
			return fmt.Errorf("patterns: jurisdictions[%d] has no tag", i)
		}
	}
	for i, ks := range l.Compliance {
		if ks.Name == "" {
			return fmt.Errorf("patterns: compliance[%d] has no name", i)
		}
	}
	lim := l.Limits
	if lim.MinClauseLength < 0 || lim.MaxObligations < 0 || lim.MaxClauseParties < 0 || lim.DateContextWindow < 0 {
		return fmt.Errorf("patterns: limits must not be negative")
	}
	return nil
}
