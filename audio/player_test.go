//go:build js

package audio

import (
	"testing"

	"github.com/gopherjs/gopherjs/js"
)

func newMockMedia(play func() interface{}) (*js.Object, *js.Object) {
	media := js.Global.Get("Object").New()
	media.Set("paused", true)
	media.Set("play", play)
	media.Set("pause", func() { media.Set("paused", true) })
	media.Set("load", func() {})
	return media, js.Global.Get("Object").New()
}

// thenable settles immediately, resolving or rejecting.
func thenable(resolve bool) *js.Object {
	p := js.Global.Get("Object").New()
	p.Set("then", func(ok, fail *js.Object) {
		if resolve {
			ok.Invoke()
		} else {
			fail.Invoke("NotAllowedError")
		}
	})
	return p
}

func TestPlayer_SetVolumeClamps(t *testing.T) {
	media, source := newMockMedia(func() interface{} { return nil })
	p := NewPlayer(media, source)

	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},
		{-1, 0},
		{2, 1},
	}
	for _, tt := range tests {
		p.SetVolume(tt.input)
		if got := media.Get("volume").Float(); got != tt.expected {
			t.Errorf("SetVolume(%f) = %f, expected %f", tt.input, got, tt.expected)
		}
	}
}

func TestPlayer_SetSource(t *testing.T) {
	media, source := newMockMedia(func() interface{} { return nil })

	NewPlayer(media, source).SetSource("music/background.mp3")

	if source.Get("src").String() != "music/background.mp3" {
		t.Errorf("Expected source to be set, got %s", source.Get("src").String())
	}
}

func TestPlayer_Play(t *testing.T) {
	tests := []struct {
		name    string
		result  func() interface{}
		playing bool
		blocked bool
	}{
		{"No promise", func() interface{} { return nil }, true, false},
		{"Resolved", func() interface{} { return thenable(true) }, true, false},
		{"Rejected", func() interface{} { return thenable(false) }, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			media, source := newMockMedia(tt.result)
			var playing, blocked bool

			NewPlayer(media, source).Play(func() { playing = true }, func() { blocked = true })

			if playing != tt.playing || blocked != tt.blocked {
				t.Errorf("Expected playing=%v blocked=%v, got %v %v", tt.playing, tt.blocked, playing, blocked)
			}
		})
	}
}

func TestPlayer_PlayNilCallbacks(t *testing.T) {
	media, source := newMockMedia(func() interface{} { return thenable(false) })

	// must not panic
	NewPlayer(media, source).Play(nil, nil)
}

func TestPlayer_Pause(t *testing.T) {
	media, source := newMockMedia(func() interface{} { return nil })
	media.Set("paused", false)
	p := NewPlayer(media, source)

	p.Pause()

	if !p.Paused() {
		t.Error("Expected player to be paused")
	}
}
