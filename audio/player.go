package audio

import (
	"github.com/gopherjs/gopherjs/js"
)

// Player plays the background track through an <audio> element. Browsers
// may refuse to start playback without a user gesture; Play reports that
// through its callbacks instead of failing.
type Player struct {
	media  *js.Object // HTMLAudioElement
	source *js.Object // its <source> child
}

// NewPlayer wraps an audio element and its source element.
func NewPlayer(media, source *js.Object) *Player {
	return &Player{media: media, source: source}
}

// SetSource sets the track URL. Call Load afterwards.
func (p *Player) SetSource(url string) {
	p.source.Set("src", url)
}

// SetVolume sets the volume (0.0 to 1.0).
func (p *Player) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	p.media.Set("volume", volume)
}

// Load makes the element pick up its source.
func (p *Player) Load() {
	p.media.Call("load")
}

// Play starts playback. onPlaying runs once playback has started, onBlocked
// if the browser rejected it. Either may be nil.
func (p *Player) Play(onPlaying, onBlocked func()) {
	promise := p.media.Call("play")

	// Older browsers return nothing and start synchronously
	if promise == nil || promise == js.Undefined {
		if onPlaying != nil {
			onPlaying()
		}
		return
	}

	promise.Call("then", func() {
		if onPlaying != nil {
			onPlaying()
		}
	}, func(err *js.Object) {
		if onBlocked != nil {
			onBlocked()
		}
	})
}

// Pause pauses playback.
func (p *Player) Pause() {
	p.media.Call("pause")
}

// Paused reports whether the track is paused.
func (p *Player) Paused() bool {
	return p.media.Get("paused").Bool()
}
