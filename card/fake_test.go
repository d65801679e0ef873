package card

// fakeHost records what the controller does to the document.
type fakeHost struct {
	title    string
	texts    map[string]string
	slots    map[string]bool // existing text slots; nil means every slot exists
	sections map[string]bool // id -> visible
	width    float64
	height   float64
	warnings []string

	layer  *fakeLayer
	meter  *fakeMeter
	music  *fakeMusic
	player *fakePlayer
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		texts: make(map[string]string),
		sections: map[string]bool{
			"question1":   true,
			"question2":   false,
			"question3":   false,
			"celebration": false,
		},
		width:  1000,
		height: 800,
		layer:  &fakeLayer{},
		meter:  &fakeMeter{},
		music:  &fakeMusic{},
		player: &fakePlayer{paused: true},
	}
}

func (h *fakeHost) SetDocumentTitle(title string) { h.title = title }

func (h *fakeHost) SetText(id, text string) bool {
	if h.slots != nil && !h.slots[id] {
		return false
	}
	h.texts[id] = text
	return true
}

func (h *fakeHost) HideSections() {
	for id := range h.sections {
		h.sections[id] = false
	}
}

func (h *fakeHost) ShowSection(id string) bool {
	if _, ok := h.sections[id]; !ok {
		return false
	}
	h.sections[id] = true
	return true
}

func (h *fakeHost) visible() []string {
	var ids []string
	for id, v := range h.sections {
		if v {
			ids = append(ids, id)
		}
	}
	return ids
}

func (h *fakeHost) Viewport() (float64, float64) { return h.width, h.height }

func (h *fakeHost) Decorations() (DecorationLayer, bool) {
	if h.layer == nil {
		return nil, false
	}
	return h.layer, true
}

func (h *fakeHost) Meter() (MeterView, bool) {
	if h.meter == nil {
		return nil, false
	}
	return h.meter, true
}

func (h *fakeHost) Music() (MusicView, MediaPlayer, bool) {
	if h.music == nil || h.player == nil {
		return nil, nil, false
	}
	return h.music, h.player, true
}

func (h *fakeHost) Warn(msg string) { h.warnings = append(h.warnings, msg) }

type fakeLayer struct {
	items   []Decoration
	cleared int
}

func (l *fakeLayer) Clear() {
	l.items = nil
	l.cleared++
}

func (l *fakeLayer) Add(d Decoration) { l.items = append(l.items, d) }

type fakeMeter struct {
	raw      string
	value    int
	rendered []MeterState
	onInput  func()
}

func (m *fakeMeter) RawValue() string    { return m.raw }
func (m *fakeMeter) SetValue(v int)      { m.value = v }
func (m *fakeMeter) Render(s MeterState) { m.rendered = append(m.rendered, s) }
func (m *fakeMeter) OnInput(fn func())   { m.onInput = fn }
func (m *fakeMeter) last() MeterState    { return m.rendered[len(m.rendered)-1] }
func (m *fakeMeter) input(raw string)    { m.raw = raw; m.onInput() }

type fakeMusic struct {
	hidden   bool
	label    string
	onToggle func()
}

func (m *fakeMusic) Hide()                 { m.hidden = true }
func (m *fakeMusic) SetLabel(label string) { m.label = label }
func (m *fakeMusic) OnToggle(fn func())    { m.onToggle = fn }

type fakePlayer struct {
	source  string
	volume  float64
	loaded  bool
	paused  bool
	blocked bool // autoplay policy rejects play()
	plays   int
}

func (p *fakePlayer) SetSource(url string) { p.source = url }
func (p *fakePlayer) SetVolume(v float64)  { p.volume = v }
func (p *fakePlayer) Load()                { p.loaded = true }
func (p *fakePlayer) Pause()               { p.paused = true }
func (p *fakePlayer) Paused() bool         { return p.paused }

func (p *fakePlayer) Play(onPlaying, onBlocked func()) {
	p.plays++
	if p.blocked {
		if onBlocked != nil {
			onBlocked()
		}
		return
	}
	p.paused = false
	if onPlaying != nil {
		onPlaying()
	}
}

// seqRandom replays a fixed sequence of values, cycling when exhausted.
// It records the arguments of Intn and Between.
type seqRandom struct {
	values []float64
	i      int

	intns    []int
	betweens [][2]float64
}

func (r *seqRandom) Random() float64 {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

func (r *seqRandom) Intn(n int) int {
	r.intns = append(r.intns, n)
	i := int(r.Random() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

func (r *seqRandom) Between(lo, hi float64) float64 {
	r.betweens = append(r.betweens, [2]float64{lo, hi})
	return lo + r.Random()*(hi-lo)
}
