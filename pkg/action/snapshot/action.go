package snapshot

import (
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"

	"github.com/cmmoran/ctorlite/pkg/action/initialize"
	"github.com/cmmoran/ctorlite/pkg/manifest"
	"github.com/cmmoran/ctorlite/pkg/parser"
)

// Generate runs the generator and records the run in the manifest under
// the given version.
func Generate(opts *parser.Options, manifestPath, version string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	res, err := initialize.Generate(opts)
	if err != nil {
		return "", err
	}

	m.Record(manifest.Generation{
		Package:      res.Package,
		File:         res.File,
		Constructors: res.Constructors,
		Version:      version,
	})

	if err := m.Save(manifestPath); err != nil {
		return "", err
	}

	return res.File, nil
}

// List returns all generations recorded in the manifest.
func List(manifestPath string) (*manifest.Manifest, error) {
	return manifest.Load(manifestPath)
}

// DiffCurrentWithPrevious loads the manifest, locates the current and
// previous generated files, and returns a textual diff of their contents.
func DiffCurrentWithPrevious(manifestPath string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	if m.Current == "" || m.Previous == "" {
		return "", fmt.Errorf("no current/previous generations recorded")
	}

	currentPath := m.FileFor(m.Current)
	previousPath := m.FileFor(m.Previous)

	if currentPath == "" || previousPath == "" {
		return "", fmt.Errorf("generated files not found in manifest")
	}

	current, err := os.ReadFile(currentPath)
	if err != nil {
		return "", fmt.Errorf("read current generation: %w", err)
	}

	previous, err := os.ReadFile(previousPath)
	if err != nil {
		return "", fmt.Errorf("read previous generation: %w", err)
	}

	return cmp.Diff(string(previous), string(current)), nil
}
