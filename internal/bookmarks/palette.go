package bookmarks

import "strings"

// PaletteEntry is one named tag color.
type PaletteEntry struct {
	Name string
	Hex  string
}

// Palette is the fixed ordered set of tag colors. Blue is first and serves as
// the default for tags with no stored color or a hex the palette no longer
// recognizes (stale or externally edited metadata).
var Palette = []PaletteEntry{
	{Name: "Blue", Hex: "#0000FF"},
	{Name: "Red", Hex: "#FF0000"},
	{Name: "Green", Hex: "#008000"},
	{Name: "Orange", Hex: "#FFA500"},
	{Name: "Purple", Hex: "#800080"},
	{Name: "Pink", Hex: "#FFC0CB"},
	{Name: "Teal", Hex: "#008080"},
	{Name: "Yellow", Hex: "#FFFF00"},
	{Name: "Gray", Hex: "#808080"},
	{Name: "Brown", Hex: "#A52A2A"},
}

// DefaultColor is the palette slot used for unmapped tags.
var DefaultColor = Palette[0]

// ColorName resolves a stored hex code to its palette label, matching
// case-insensitively and falling back to the default slot.
func ColorName(hex string) string {
	return lookupColor(hex).Name
}

// ColorHex normalizes a stored hex code to the palette's canonical form,
// falling back to the default slot.
func ColorHex(hex string) string {
	return lookupColor(hex).Hex
}

// TagColor resolves the display color for a tag from the metadata's color
// mapping, defaulting to Blue for unmapped tags.
func TagColor(md Metadata, tag string) PaletteEntry {
	if hex, ok := md.TagColors[tag]; ok {
		return lookupColor(hex)
	}
	return DefaultColor
}

// ColorByName finds a palette entry by its label, e.g. from CLI flags.
func ColorByName(name string) (PaletteEntry, bool) {
	for _, entry := range Palette {
		if strings.EqualFold(entry.Name, name) {
			return entry, true
		}
	}
	return PaletteEntry{}, false
}

func lookupColor(hex string) PaletteEntry {
	for _, entry := range Palette {
		if strings.EqualFold(entry.Hex, hex) {
			return entry
		}
	}
	return DefaultColor
}
