package card

// Kind is the category of a floating glyph. It doubles as its CSS class.
type Kind string

const (
	Heart Kind = "heart"
	Bear  Kind = "bear"
)

// Decoration is one floating glyph.
type Decoration struct {
	Kind     Kind
	Glyph    string
	Left     float64 // vw, [0, 100)
	Delay    float64 // seconds, [0, 5)
	Duration float64 // seconds, [10, 30)
}

// Decorator spawns floating glyphs at random positions.
type Decorator struct {
	Symbols Symbols
	RNG     Random
}

// NewDecorator creates a decorator for the given glyph sets.
func NewDecorator(symbols Symbols, rng Random) *Decorator {
	return &Decorator{Symbols: symbols, RNG: rng}
}

// Populate replaces the contents of layer with one decoration per configured
// glyph, hearts first.
func (d *Decorator) Populate(layer DecorationLayer) int {
	layer.Clear()

	n := 0
	for _, glyph := range d.Symbols.Hearts {
		layer.Add(d.place(Heart, glyph))
		n++
	}
	for _, glyph := range d.Symbols.Bears {
		layer.Add(d.place(Bear, glyph))
		n++
	}
	return n
}

// Explode appends ExplosionCount hearts to layer without clearing it.
func (d *Decorator) Explode(layer DecorationLayer) {
	hearts := d.Symbols.Hearts
	if len(hearts) == 0 {
		hearts = []string{FallbackHeart}
	}
	for i := 0; i < ExplosionCount; i++ {
		glyph := hearts[d.RNG.Intn(len(hearts))]
		layer.Add(d.place(Heart, glyph))
	}
}

// place assigns a random horizontal position, delay and duration.
func (d *Decorator) place(kind Kind, glyph string) Decoration {
	return Decoration{
		Kind:     kind,
		Glyph:    glyph,
		Left:     d.RNG.Between(0, ViewWidth),
		Delay:    d.RNG.Between(0, MaxDelay),
		Duration: d.RNG.Between(MinDuration, MinDuration+DurationSpan),
	}
}
