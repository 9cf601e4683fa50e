package textkit

import (
	"strings"

	"github.com/ShayCichocki/songsmith/pkg/models"
)

// FormatBackgroundVocals lays out a backing ad-lib or harmony line against
// the main line. Unknown modes fall back to echo.
func FormatBackgroundVocals(main, backing string, mode models.VocalMode) string {
	main = strings.TrimSpace(main)
	backing = strings.TrimSpace(backing)

	if main == "" && backing != "" {
		return wrap(backing)
	}
	if backing == "" {
		return main
	}

	switch mode {
	case models.VocalHarmony:
		return wrap(backing) + " " + main
	case models.VocalCall:
		return main + "\n" + wrap(backing)
	default:
		return main + " " + wrap(backing)
	}
}
