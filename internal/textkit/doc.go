// Package textkit holds the text transforms behind songsmith's tools.
//
// Every function here is pure and total: empty or malformed input produces an
// empty or pass-through result instead of an error. The transforms are:
//   - ExtendVowel: melisma spelling ("love" -> "lo-o-ove")
//   - FormatBackgroundVocals: echo, harmony and call-and-response layouts
//   - FormatChordLine / InterleaveNotes: chord and note symbols over lyrics
//   - OptimizeTags: free text to a canonical bracketed meta tag
//   - GenerateStructureSkeleton: canned section lists per song archetype
package textkit
