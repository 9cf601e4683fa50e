package models

// VocalMode controls how a backing vocal line is laid out against the main line.
type VocalMode string

const (
	// VocalEcho places the backing line after the main line: "main (backing)".
	VocalEcho VocalMode = "echo"
	// VocalHarmony leads with the backing line: "(backing) main".
	VocalHarmony VocalMode = "harmony"
	// VocalCall puts the backing line on its own line as a response.
	VocalCall VocalMode = "call"
)

// Valid returns true if the mode is a known value.
func (m VocalMode) Valid() bool {
	switch m {
	case VocalEcho, VocalHarmony, VocalCall:
		return true
	default:
		return false
	}
}

// VocalModes lists the modes in display order.
func VocalModes() []VocalMode {
	return []VocalMode{VocalEcho, VocalHarmony, VocalCall}
}
