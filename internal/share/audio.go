package share

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrTooLarge is returned when an input exceeds its size limit.
var ErrTooLarge = errors.New("input too large")

// ErrUnsupportedAudio is returned for files with an unknown audio extension.
var ErrUnsupportedAudio = errors.New("unsupported audio format")

var audioTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".flac": "audio/flac",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".webm": "audio/webm",
}

// AudioMIME returns the mime type for an audio file name.
func AudioMIME(name string) (string, bool) {
	mime, ok := audioTypes[strings.ToLower(filepath.Ext(name))]
	return mime, ok
}

// EncodeAudio reads an audio reference file and returns it as a
// data:<mime>;base64,... URI. maxBytes <= 0 disables the size check.
func EncodeAudio(path string, maxBytes int64) (string, error) {
	mime, ok := AudioMIME(path)
	if !ok {
		return "", fmt.Errorf("encode audio %s: %w", filepath.Base(path), ErrUnsupportedAudio)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("encode audio: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("encode audio: %s is a directory", path)
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return "", fmt.Errorf("encode audio %s (%d bytes, limit %d): %w",
			filepath.Base(path), info.Size(), maxBytes, ErrTooLarge)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("encode audio: %w", err)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
