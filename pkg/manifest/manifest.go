package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Generation records one generator run for a package: where the file
// was written and which constructors it contains.
type Generation struct {
	Package      string   `yaml:"package" json:"package"`
	File         string   `yaml:"file" json:"file"`
	Constructors []string `yaml:"constructors" json:"constructors"`
	Version      string   `yaml:"version" json:"version"`
}

// Manifest is the on-disk ledger of generated constructor files.
type Manifest struct {
	Current     string       `yaml:"current" json:"current"`
	Previous    string       `yaml:"previous" json:"previous"`
	Generations []Generation `yaml:"generations" json:"generations"`
}

// Load reads a manifest from path. A missing file yields an empty
// manifest, not an error.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	return &m, nil
}

// Save writes the manifest to path, creating parent directories as needed.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// Record adds a generation, moving the version pointers along and
// replacing an existing entry for the same package and version.
func (m *Manifest) Record(g Generation) {
	if m.Current != "" && m.Current != g.Version {
		m.Previous = m.Current
	}
	m.Current = g.Version

	for i := range m.Generations {
		if m.Generations[i].Package == g.Package && m.Generations[i].Version == g.Version {
			m.Generations[i] = g
			return
		}
	}

	m.Generations = append(m.Generations, g)
}

// FileFor returns the generated file recorded for a version, or "".
func (m *Manifest) FileFor(version string) string {
	for _, g := range m.Generations {
		if g.Version == version {
			return g.File
		}
	}
	return ""
}
