package schema

import (
	"fmt"
	"strings"
)

// Revision selects which feature schema the loaded model was trained on.
type Revision string

const (
	// RevisionA carries harvested area, known production and the two
	// per-area ratio features.
	RevisionA Revision = "A"
	// RevisionB drops the ratios and the harvested/production inputs.
	RevisionB Revision = "B"
	// RevisionC shares B's columns and adds a metadata side-car for captions.
	RevisionC Revision = "C"
)

// ParseRevision accepts the letter or the descriptive alias, case-insensitively.
// An empty string maps to RevisionA.
func ParseRevision(s string) (Revision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "a", "full":
		return RevisionA, nil
	case "b", "basic":
		return RevisionB, nil
	case "c", "basic-meta":
		return RevisionC, nil
	default:
		return "", fmt.Errorf("unknown revision %q (want A|B|C)", s)
	}
}

// HasHarvestedArea reports whether the revision feeds Area_Harvested_ha to
// the model and uses it for the production estimate.
func (r Revision) HasHarvestedArea() bool { return r == RevisionA }

// HasMetadata reports whether the revision reads a metadata side-car.
func (r Revision) HasMetadata() bool { return r == RevisionC }

func (r Revision) String() string { return string(r) }
