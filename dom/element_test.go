//go:build js

package dom

import (
	"testing"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/valentine-card/card"
)

// createMockElement creates a js.Object with a size and an empty style.
func createMockElement(width, height int) *js.Object {
	obj := js.Global.Get("Object").New()
	obj.Set("offsetWidth", width)
	obj.Set("offsetHeight", height)
	obj.Set("style", js.Global.Get("Object").New())
	return obj
}

func TestElement_Size(t *testing.T) {
	el := NewElement(createMockElement(120, 40))

	w, h := el.Size()
	if w != 120 || h != 40 {
		t.Errorf("Expected 120x40, got %fx%f", w, h)
	}
}

func TestElement_PlaceAt(t *testing.T) {
	obj := createMockElement(120, 40)

	NewElement(obj).PlaceAt(12.5, 300)

	style := obj.Get("style")
	if style.Get("position").String() != "fixed" {
		t.Errorf("Expected fixed position, got %s", style.Get("position").String())
	}
	if style.Get("left").String() != "12.5px" || style.Get("top").String() != "300px" {
		t.Errorf("Unexpected offset left=%s top=%s", style.Get("left").String(), style.Get("top").String())
	}
}

func TestFormatUnit(t *testing.T) {
	tests := []struct {
		value    float64
		unit     string
		expected string
	}{
		{0, "vw", "0vw"},
		{42.25, "vw", "42.25vw"},
		{4.5, "s", "4.5s"},
	}

	for _, tt := range tests {
		if got := formatUnit(tt.value, tt.unit); got != tt.expected {
			t.Errorf("formatUnit(%f, %s) = %s, expected %s", tt.value, tt.unit, got, tt.expected)
		}
	}
}

func TestMeterView_Render(t *testing.T) {
	slider := createMockElement(0, 0)
	value := js.Global.Get("Object").New()
	extra := js.Global.Get("Object").New()
	classes := map[string]bool{"hidden": true}
	extra.Set("classList", map[string]interface{}{
		"add":    func(c string) { classes[c] = true },
		"remove": func(c string) { delete(classes, c) },
	})
	view := &meterView{slider: slider, value: value, extra: extra}

	view.Render(card.Evaluate(6000, 1000, card.Messages{Extreme: "wow"}))

	if classes["hidden"] || !classes["super-love"] {
		t.Errorf("Expected visible super label, got %v", classes)
	}
	if extra.Get("textContent").String() != "wow" || value.Get("textContent").String() != "6000" {
		t.Error("Expected message and value mirrored")
	}

	view.Render(card.Evaluate(50, 1000, card.Messages{}))

	if !classes["hidden"] || classes["super-love"] {
		t.Errorf("Expected hidden plain label, got %v", classes)
	}
	if slider.Get("style").Get("width").String() != "100%" {
		t.Errorf("Expected full width, got %s", slider.Get("style").Get("width").String())
	}
}
