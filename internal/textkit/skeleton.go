package textkit

import (
	"strings"

	"github.com/ShayCichocki/songsmith/pkg/models"
)

var skeletons = map[models.StructureType][]string{
	models.StructurePop: {
		"[Intro]", "[Verse 1]", "[Pre-Chorus]", "[Chorus]",
		"[Verse 2]", "[Pre-Chorus]", "[Chorus]", "[Bridge]", "[Chorus]", "[Outro]",
	},
	models.StructureHipHop: {
		"[Intro]", "[Verse 1]", "[Hook]", "[Verse 2]", "[Hook]",
		"[Bridge]", "[Verse 3]", "[Hook]", "[Outro]",
	},
	models.StructureElectronic: {
		"[Intro]", "[Build-up]", "[Drop]", "[Breakdown]",
		"[Build-up]", "[Drop]", "[Outro]",
	},
	models.StructureBallad: {
		"[Intro]", "[Verse 1]", "[Verse 2]", "[Chorus]", "[Verse 3]",
		"[Chorus]", "[Bridge]", "[Chorus]", "[Outro]", "[End]",
	},
	models.StructureProgressive: {
		"[Intro]", "[Movement I]", "[Verse]", "[Instrumental]", "[Movement II]",
		"[Guitar Solo]", "[Interlude]", "[Movement III]", "[Climax]", "[Outro]", "[End]",
	},
}

var defaultSkeleton = []string{
	"[Intro]", "[Verse]", "[Chorus]", "[Verse]", "[Chorus]", "[Outro]",
}

// StructureTypes lists the supported archetypes in display order.
func StructureTypes() []models.StructureType {
	return []models.StructureType{
		models.StructurePop,
		models.StructureHipHop,
		models.StructureElectronic,
		models.StructureBallad,
		models.StructureProgressive,
	}
}

// Skeleton returns the section tags for t. Unknown types get the default
// verse/chorus skeleton.
func Skeleton(t models.StructureType) []string {
	tags, ok := skeletons[t]
	if !ok {
		tags = defaultSkeleton
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

// GenerateStructureSkeleton renders the skeleton for t with a blank line
// between sections, leaving room for lyrics.
func GenerateStructureSkeleton(t models.StructureType) string {
	return strings.Join(Skeleton(t), "\n\n")
}
