package canvas

import (
	"strings"

	"github.com/google/uuid"
)

// idLength is the length of generated node and edge identifiers.
// 16 hex characters (64 random bits) matches the IDs produced by other
// canvas tooling, so generated files look native to the ecosystem.
const idLength = 16

// NewID returns a fresh random identifier token for a node or edge.
// Constructors call this when no explicit ID is supplied.
func NewID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return hex[:idLength]
}
