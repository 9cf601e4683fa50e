// Package share turns a style prompt and lyric sheet into a compact code
// that fits in a URL fragment, and back. Codes are DEFLATE-compressed JSON
// in unpadded base64url and are only read by songsmith itself.
package share

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// FragmentKey is the URL fragment parameter carrying the share code.
const FragmentKey = "s"

// maxDecodedBytes bounds decompression of untrusted codes.
const maxDecodedBytes = 1 << 20

// ErrEmptyCode is returned when decoding a blank code or a link without one.
var ErrEmptyCode = errors.New("share code is empty")

// Payload is what a share link carries.
type Payload struct {
	Title  string `json:"t,omitempty"`
	Style  string `json:"s,omitempty"`
	Lyrics string `json:"l,omitempty"`
	// Audio is an optional data: URI from EncodeAudio.
	Audio string `json:"a,omitempty"`
}

// Empty reports whether the payload has nothing to share.
func (p Payload) Empty() bool {
	return p.Title == "" && p.Style == "" && p.Lyrics == "" && p.Audio == ""
}

// Encode serializes p as JSON, compresses it with DEFLATE and returns
// unpadded base64url text.
func Encode(p Payload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("create compressor: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		return "", fmt.Errorf("compress payload: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("compress payload: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode reverses Encode. Padded input is accepted.
func Decode(code string) (Payload, error) {
	code = strings.TrimRight(strings.TrimSpace(code), "=")
	if code == "" {
		return Payload{}, ErrEmptyCode
	}

	raw, err := base64.RawURLEncoding.DecodeString(code)
	if err != nil {
		return Payload{}, fmt.Errorf("decode share code: %w", err)
	}

	zr := flate.NewReader(bytes.NewReader(raw))
	defer zr.Close()

	data, err := io.ReadAll(io.LimitReader(zr, maxDecodedBytes+1))
	if err != nil {
		return Payload{}, fmt.Errorf("decompress share code: %w", err)
	}
	if len(data) > maxDecodedBytes {
		return Payload{}, fmt.Errorf("decompress share code: %w", ErrTooLarge)
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("parse payload: %w", err)
	}
	return p, nil
}

// Link encodes p and appends it to baseURL as a #s=<code> fragment.
func Link(baseURL string, p Payload) (string, error) {
	code, err := Encode(p)
	if err != nil {
		return "", err
	}
	return linkFor(baseURL, code), nil
}

// linkFor replaces any fragment on baseURL with #s=<code>.
func linkFor(baseURL, code string) string {
	base := strings.TrimSpace(baseURL)
	if i := strings.IndexByte(base, '#'); i >= 0 {
		base = base[:i]
	}
	return base + "#" + FragmentKey + "=" + code
}

// ParseLink extracts the code from a share link, or returns a bare code
// unchanged.
func ParseLink(linkOrCode string) (string, error) {
	s := strings.TrimSpace(linkOrCode)
	i := strings.IndexByte(s, '#')
	if i < 0 {
		if strings.Contains(s, "://") {
			return "", ErrEmptyCode
		}
		if s == "" {
			return "", ErrEmptyCode
		}
		return s, nil
	}

	for _, part := range strings.Split(s[i+1:], "&") {
		key, value, ok := strings.Cut(part, "=")
		if ok && key == FragmentKey && value != "" {
			return value, nil
		}
	}
	return "", ErrEmptyCode
}

// DecodeLink is ParseLink followed by Decode.
func DecodeLink(linkOrCode string) (Payload, error) {
	code, err := ParseLink(linkOrCode)
	if err != nil {
		return Payload{}, err
	}
	return Decode(code)
}
