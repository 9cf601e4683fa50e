package models

// StructureType selects a song archetype for skeleton generation.
type StructureType string

const (
	// StructurePop is a verse/pre-chorus/chorus radio form.
	StructurePop StructureType = "pop"
	// StructureHipHop alternates long verses with a repeated hook.
	StructureHipHop StructureType = "hiphop"
	// StructureElectronic is built around build-ups and drops.
	StructureElectronic StructureType = "electronic"
	// StructureBallad is a slow verse-heavy form with a late bridge.
	StructureBallad StructureType = "ballad"
	// StructureProgressive is a long multi-part form with instrumental sections.
	StructureProgressive StructureType = "progressive"
)

// Valid returns true if the structure type is a known value.
func (s StructureType) Valid() bool {
	switch s {
	case StructurePop, StructureHipHop, StructureElectronic, StructureBallad, StructureProgressive:
		return true
	default:
		return false
	}
}
