package card

// Host is the document the card is rendered into. The browser implementation
// lives in package dom; tests use an in-memory fake.
//
// Lookups return false when the element is absent from the document, and the
// dependent feature is skipped.
type Host interface {
	// SetDocumentTitle sets the browser tab title.
	SetDocumentTitle(title string)

	// SetText sets the text content of the element with the given id.
	SetText(id, text string) bool

	// HideSections hides every prompt section.
	HideSections()

	// ShowSection unhides the section with the given id.
	ShowSection(id string) bool

	// Viewport returns the inner size of the window in pixels.
	Viewport() (width, height float64)

	Decorations() (DecorationLayer, bool)
	Meter() (MeterView, bool)
	Music() (MusicView, MediaPlayer, bool)

	// Warn reports a diagnostic. It is never shown to the recipient.
	Warn(msg string)
}

// DecorationLayer is the container floating glyphs are added to.
type DecorationLayer interface {
	Clear()
	Add(d Decoration)
}

// Movable is an element that can be repositioned in the viewport.
type Movable interface {
	Size() (width, height float64)
	// PlaceAt pins the element at the given viewport offset in pixels.
	PlaceAt(x, y float64)
}

// MeterView is the love meter slider, its value mirror and the overflow label.
type MeterView interface {
	// RawValue returns the slider value as reported by the control.
	RawValue() string
	SetValue(v int)
	// Render applies a meter state to the slider and the overflow label.
	Render(s MeterState)
	OnInput(fn func())
}

// MusicView is the play/stop control.
type MusicView interface {
	Hide()
	SetLabel(label string)
	OnToggle(fn func())
}

// MediaPlayer is the background track.
type MediaPlayer interface {
	SetSource(url string)
	SetVolume(v float64)
	Load()
	// Play starts playback. Exactly one of onPlaying or onBlocked is called
	// once the attempt settles; either may be nil.
	Play(onPlaying, onBlocked func())
	Pause()
	Paused() bool
}

// Random is the source of randomness for layouts and button jumps.
type Random interface {
	// Random returns a float in [0, 1).
	Random() float64
	// Intn returns an int in [0, n). n must be positive.
	Intn(n int) int
	// Between returns a float in [lo, hi).
	Between(lo, hi float64) float64
}
