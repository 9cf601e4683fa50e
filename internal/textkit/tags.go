package textkit

import "strings"

// TagCategory groups tag rules for display.
type TagCategory string

const (
	CategoryTermination TagCategory = "termination"
	CategorySolo        TagCategory = "solo"
	CategoryStructure   TagCategory = "structure"
	CategoryVocal       TagCategory = "vocal"
)

// TagRule maps keyword matches to a canonical tag.
// A rule matches when every All keyword occurs and, if Any is set, at least
// one Any keyword occurs.
type TagRule struct {
	Category TagCategory
	All      []string
	Any      []string
	Tag      string
}

func (r TagRule) matches(text string) bool {
	for _, k := range r.All {
		if !strings.Contains(text, k) {
			return false
		}
	}
	if len(r.Any) == 0 {
		return true
	}
	for _, k := range r.Any {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// tagRules is evaluated in order; the first match wins.
// Solo tags repeat the instrument on purpose: generators follow a solo
// request more reliably when it is named more than once.
var tagRules = []TagRule{
	{Category: CategoryTermination, Any: []string{"fade", "ending"}, Tag: "[Fade Out]"},
	{Category: CategoryTermination, All: []string{"outro"}, Tag: "[Outro]"},
	{Category: CategoryTermination, All: []string{"end"}, Tag: "[End]"},
	{Category: CategoryTermination, All: []string{"stop"}, Tag: "[Stop]"},

	{Category: CategorySolo, All: []string{"sax"}, Tag: "[sax][saxophone][solo]"},
	{Category: CategorySolo, All: []string{"piano", "solo"}, Tag: "[piano][piano solo]"},
	{Category: CategorySolo, All: []string{"guitar", "solo"}, Tag: "[guitar][guitar solo]"},
	{Category: CategorySolo, All: []string{"bass", "solo"}, Tag: "[bass][bass solo]"},
	{Category: CategorySolo, All: []string{"drum"}, Any: []string{"solo", "break"}, Tag: "[drum break]"},

	{Category: CategoryStructure, All: []string{"intro"}, Tag: "[Intro]"},
	{Category: CategoryStructure, All: []string{"drop"}, Tag: "[Drop]"},
	{Category: CategoryStructure, All: []string{"build"}, Tag: "[Build-up]"},
	{Category: CategoryStructure, All: []string{"break"}, Tag: "[Breakdown]"},
	{Category: CategoryStructure, All: []string{"silence"}, Tag: "[Silence]"},

	{Category: CategoryVocal, All: []string{"scream"}, Tag: "[Heavy Female Screaming Section]"},
	{Category: CategoryVocal, All: []string{"whisper"}, Tag: "[Whisper]"},
	{Category: CategoryVocal, All: []string{"spoken"}, Tag: "[Spoken Word]"},
	{Category: CategoryVocal, All: []string{"hook", "catchy"}, Tag: "[Catchy Hook]"},
}

// Rules returns a copy of the ordered tag rules.
func Rules() []TagRule {
	out := make([]TagRule, len(tagRules))
	copy(out, tagRules)
	return out
}

// OptimizeTags maps free-form text to a single canonical bracketed tag.
// Text that matches no rule is capitalized and wrapped in brackets; any
// surrounding brackets are removed first so canonical output is stable when
// fed back in. Blank input yields "".
func OptimizeTags(input string) string {
	text := strings.ToLower(strings.TrimSpace(input))
	if text == "" {
		return ""
	}

	for _, r := range tagRules {
		if r.matches(text) {
			return r.Tag
		}
	}

	bare := strings.TrimSpace(strings.Trim(text, "[]"))
	if bare == "" {
		return ""
	}
	return "[" + Capitalize(bare) + "]"
}

// OptimizeTagList optimizes each non-blank line and joins the tags with
// newlines.
func OptimizeTagList(lines string) string {
	var tags []string
	for _, line := range strings.Split(lines, "\n") {
		if tag := OptimizeTags(line); tag != "" {
			tags = append(tags, tag)
		}
	}
	return strings.Join(tags, "\n")
}
