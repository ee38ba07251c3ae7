// Package days holds the puzzle days known to the harness.
package days

import (
	"github.com/TudorHulban/sumofparts/internal/harness"

	scheduler "github.com/TudorHulban/sumofparts"
)

// Register adds every day to the registry.
func Register(registry *harness.Registry, params *scheduler.ParamsSimulation) error {
	return registry.Register(Day07(params))
}
