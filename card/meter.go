package card

import (
	"strconv"
	"strings"
)

// Tier is the overflow level of the love meter.
type Tier int

const (
	TierNone Tier = iota
	TierNormal
	TierHigh
	TierExtreme
)

func (t Tier) String() string {
	switch t {
	case TierNone:
		return "none"
	case TierNormal:
		return "normal"
	case TierHigh:
		return "high"
	case TierExtreme:
		return "extreme"
	default:
		return "unknown"
	}
}

// MeterState is everything the love meter shows for one slider value.
type MeterState struct {
	Value      int
	Overflow   bool    // the extra-love label is visible
	Tier       Tier    // TierNone unless Overflow
	ExtraWidth float64 // pixels added to the slider beyond 100%
	Super      bool    // the label gets the "super-love" style
	Message    string
}

// Width returns the CSS width of the slider.
func (s MeterState) Width() string {
	if !s.Overflow {
		return "100%"
	}
	return "calc(100% + " + strconv.FormatFloat(s.ExtraWidth, 'f', -1, 64) + "px)"
}

// Evaluate computes the meter state for a slider value. It depends only on
// its arguments.
func Evaluate(value int, viewportWidth float64, msgs Messages) MeterState {
	s := MeterState{Value: value}
	if value <= MeterBase {
		return s
	}

	s.Overflow = true
	overflow := float64(value-MeterBase) / MeterSpan
	s.ExtraWidth = overflow * viewportWidth * OverflowFactor

	switch {
	case value >= ExtremeThreshold:
		s.Tier = TierExtreme
		s.Super = true
		s.Message = msgs.Extreme
	case value > HighThreshold:
		s.Tier = TierHigh
		s.Message = msgs.High
	default:
		s.Tier = TierNormal
		s.Message = msgs.Normal
	}
	return s
}

// ParseMeterValue reads a slider value as a base-10 integer. Like the
// browser's parseInt it accepts one leading sign and stops at the first
// non-digit; input without leading digits reads as 0. A range input never
// reports a sign, but a negative value evaluates like any value up to 100:
// the overflow label is hidden.
func ParseMeterValue(raw string) int {
	raw = strings.TrimSpace(raw)
	end := 0
	if end < len(raw) && (raw[end] == '-' || raw[end] == '+') {
		end++
	}
	start := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	v, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0
	}
	return v
}

// LoveMeter drives the love meter slider.
type LoveMeter struct {
	View     MeterView
	Messages Messages
	Viewport func() float64

	state MeterState
}

// NewLoveMeter creates a love meter bound to view.
func NewLoveMeter(view MeterView, msgs Messages, viewport func() float64) *LoveMeter {
	return &LoveMeter{View: view, Messages: msgs, Viewport: viewport}
}

// Init resets the slider to 100 and starts listening for input.
func (m *LoveMeter) Init() {
	m.View.SetValue(MeterBase)
	m.state = Evaluate(MeterBase, m.Viewport(), m.Messages)
	m.View.Render(m.state)
	m.View.OnInput(m.Update)
}

// Update re-evaluates the meter from the slider's current value.
func (m *LoveMeter) Update() {
	v := ParseMeterValue(m.View.RawValue())
	m.state = Evaluate(v, m.Viewport(), m.Messages)
	m.View.Render(m.state)
}

// State returns the last rendered state.
func (m *LoveMeter) State() MeterState {
	return m.state
}
