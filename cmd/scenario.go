package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/outbreak-sim/outbreak-sim/sim"
)

// ApplyScenario overlays a YAML parameter file onto cfg. Only keys present
// in the file are changed. Parsing is strict: an unknown key is an error,
// so a typo can never silently fall back to a default.
func ApplyScenario(cfg *sim.Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("scenario: parse %s: %w", path, err)
	}
	return nil
}
