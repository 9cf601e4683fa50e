package textkit

import (
	"strings"
	"unicode"
)

// isVowel reports whether r is in the melisma vowel set, y included.
func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// ExtendVowel spells a melisma on the first vowel group of word by repeating
// "-<vowel>" level times after the group, using the group's last vowel.
// Words without vowels and levels below 1 are returned unchanged.
func ExtendVowel(word string, level int) string {
	if word == "" || level < 1 {
		return word
	}

	runes := []rune(word)
	start := -1
	for i, r := range runes {
		if isVowel(r) {
			start = i
			break
		}
	}
	if start < 0 {
		return word
	}

	end := start
	for end < len(runes) && isVowel(runes[end]) {
		end++
	}

	vowel := string(runes[end-1])
	var b strings.Builder
	b.WriteString(string(runes[:end]))
	b.WriteString(strings.Repeat("-"+vowel, level))
	b.WriteString(string(runes[end:]))
	return b.String()
}

// ExtendLine applies ExtendVowel to every word of a line.
func ExtendLine(line string, level int) string {
	words := Words(line)
	if len(words) == 0 || level < 1 {
		return line
	}
	for i, w := range words {
		words[i] = ExtendVowel(w, level)
	}
	return strings.Join(words, " ")
}

// ExtendWordAt extends only the word at index. Out-of-range indexes leave
// the line unchanged.
func ExtendWordAt(line string, index, level int) string {
	words := Words(line)
	if index < 0 || index >= len(words) || level < 1 {
		return line
	}
	words[index] = ExtendVowel(words[index], level)
	return strings.Join(words, " ")
}
