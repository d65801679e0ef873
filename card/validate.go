package card

import (
	"regexp"
	"strconv"
	"strings"
)

// Validate repairs cfg in place and returns one warning per corrected field.
// It never fails: every invalid value is replaced by its default. Validating
// an already valid config changes nothing and returns no warnings.
func Validate(cfg *Config) []string {
	var warnings []string

	if cfg.Name == "" {
		warnings = append(warnings, "Valentine's name is not set! Using default.")
		cfg.Name = DefaultName
	}

	for _, f := range cfg.Palette.fields() {
		if !IsHexColor(*f.value) {
			warnings = append(warnings, "Invalid color for "+f.name+"! Using default.")
			*f.value = f.def
		}
	}

	if d, ok := leadingFloat(cfg.Motion.FloatDuration); !ok || d < MinFloatDuration {
		warnings = append(warnings, "Float duration too short! Setting to 5s minimum.")
		cfg.Motion.FloatDuration = DefaultFloatDuration
	}

	scale := cfg.Motion.ExplosionScale
	if !scale.Finite() || scale.Value < MinExplosionScale || scale.Value > MaxExplosionScale {
		warnings = append(warnings, "Heart explosion size should be between 1 and 3! Using default.")
		cfg.Motion.ExplosionScale = NumberOf(DefaultExplosionScale)
	}

	return warnings
}

var floatPrefix = regexp.MustCompile(`^\s*[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// leadingFloat parses the numeric prefix of a CSS value such as "15s" or
// "0.5s". It reports false when s does not start with a number.
func leadingFloat(s string) (float64, bool) {
	m := floatPrefix.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
