package textkit

import "strings"

// FormatChordLine spreads chords across the words of a line at a roughly
// even interval, each chord in parentheses before the word it lands on.
// Chords that do not fit are appended at the end.
func FormatChordLine(text string, chords []string) string {
	if len(chords) == 0 {
		return text
	}

	words := Words(text)
	if len(words) == 0 {
		wrapped := make([]string, len(chords))
		for i, c := range chords {
			wrapped[i] = wrap(c)
		}
		return strings.Join(wrapped, " ")
	}

	interval := max(1, len(words)/len(chords))

	out := make([]string, 0, len(words)+len(chords))
	next := 0
	for i, w := range words {
		if next < len(chords) && (i == 0 || i%interval == 0) {
			out = append(out, wrap(chords[next]))
			next++
		}
		out = append(out, w)
	}
	for ; next < len(chords); next++ {
		out = append(out, wrap(chords[next]))
	}

	return strings.Join(out, " ")
}

// InterleaveNotes prefixes each word with a note symbol, cycling through the
// notes when there are fewer notes than words.
func InterleaveNotes(text, notes string) string {
	words := Words(text)
	if len(words) == 0 {
		return ""
	}
	symbols := Words(notes)
	if len(symbols) == 0 {
		return text
	}

	out := make([]string, len(words))
	for i, w := range words {
		out[i] = wrap(symbols[i%len(symbols)]) + w
	}
	return strings.Join(out, " ")
}
