package pack

// FormatBoundary is the pack format at which item override data moves from
// the legacy predicate-list schema (models/item/<x>.json overrides) to the
// modern range-dispatch schema (items/<x>.json). Packs at or above the
// boundary use the modern generation.
const FormatBoundary = 46

// IsModern reports whether a pack format uses the modern item-definition
// generation.
func IsModern(format int) bool {
	return format >= FormatBoundary
}

// FormatInfo pairs a known pack format with its game-version label.
type FormatInfo struct {
	Format int
	Label  string
}

// knownFormats maps pack formats to the game versions that ship them,
// ascending. Configuration data, not protocol; unknown formats are still
// accepted everywhere.
var knownFormats = []FormatInfo{
	{8, "1.18 - 1.18.2"},
	{9, "1.19 - 1.19.2"},
	{12, "1.19.3"},
	{13, "1.19.4"},
	{15, "1.20 - 1.20.1"},
	{18, "1.20.2"},
	{22, "1.20.3 - 1.20.4"},
	{32, "1.20.5 - 1.20.6"},
	{34, "1.21 - 1.21.1"},
	{42, "1.21.2 - 1.21.3"},
	{46, "1.21.4"},
	{55, "1.21.5"},
	{63, "1.21.6"},
}

// KnownFormats returns the registry of known formats in ascending order.
func KnownFormats() []FormatInfo {
	out := make([]FormatInfo, len(knownFormats))
	copy(out, knownFormats)
	return out
}

// FormatLabel returns the game-version label for a known format.
func FormatLabel(format int) (string, bool) {
	for _, info := range knownFormats {
		if info.Format == format {
			return info.Label, true
		}
	}
	return "", false
}
