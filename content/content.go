// Package content embeds the built-in world definitions.
package content

import (
	_ "embed"

	"github.com/cory-johannsen/castle/internal/game/world"
)

//go:embed castle.yaml
var castleYAML []byte

// CastleYAML returns the raw castle world definition.
func CastleYAML() []byte {
	out := make([]byte, len(castleYAML))
	copy(out, castleYAML)
	return out
}

// Castle parses the built-in castle world.
//
// Postcondition: Returns a validated Blueprint or a non-nil error.
func Castle() (*world.Blueprint, error) {
	return world.LoadBlueprintFromBytes(castleYAML)
}

// Load returns the world at path, or the built-in castle when path is empty.
//
// Postcondition: Returns a validated Blueprint or a non-nil error.
func Load(path string) (*world.Blueprint, error) {
	if path == "" {
		return Castle()
	}
	return world.LoadBlueprintFromFile(path)
}
