package card

import "regexp"

// Palette holds the card colors. Every field must be a 3- or 6-digit hex
// color; the validator restores the default for any field that is not.
type Palette struct {
	BackgroundStart  string `json:"backgroundStart" yaml:"backgroundStart"`
	BackgroundEnd    string `json:"backgroundEnd" yaml:"backgroundEnd"`
	ButtonBackground string `json:"buttonBackground" yaml:"buttonBackground"`
	ButtonHover      string `json:"buttonHover" yaml:"buttonHover"`
	TextColor        string `json:"textColor" yaml:"textColor"`
}

// DefaultPalette is the pink theme of the sample card.
var DefaultPalette = Palette{
	// Background gradient - peach to pink
	BackgroundStart: "#ffafbd",
	BackgroundEnd:   "#ffc3a0",

	// Buttons - coral red
	ButtonBackground: "#ff6b6b",
	ButtonHover:      "#ff8787",

	TextColor: "#ff4757",
}

var hexColor = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// IsHexColor reports whether s is "#" followed by exactly 3 or 6 hex digits.
func IsHexColor(s string) bool {
	return hexColor.MatchString(s)
}

// paletteField binds a palette field name to its value and default.
type paletteField struct {
	name  string
	value *string
	def   string
}

// fields lists the palette in a fixed order so warnings are stable.
func (p *Palette) fields() []paletteField {
	return []paletteField{
		{"backgroundStart", &p.BackgroundStart, DefaultPalette.BackgroundStart},
		{"backgroundEnd", &p.BackgroundEnd, DefaultPalette.BackgroundEnd},
		{"buttonBackground", &p.ButtonBackground, DefaultPalette.ButtonBackground},
		{"buttonHover", &p.ButtonHover, DefaultPalette.ButtonHover},
		{"textColor", &p.TextColor, DefaultPalette.TextColor},
	}
}
