package dom

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/valentine-card/audio"
	"github.com/simukka/valentine-card/card"
)

// CSS hooks shared with the stylesheet.
const (
	ClassHidden          = "hidden"
	ClassSuperLove       = "super-love"
	SelectorSections     = ".question-section"
	SelectorFloatingRoot = ".floating-elements"
)

// Element ids of the love meter and music controls.
const (
	IDLoveMeter     = "loveMeter"
	IDLoveValue     = "loveValue"
	IDExtraLove     = "extraLove"
	IDMusicControls = "musicControls"
	IDMusicToggle   = "musicToggle"
	IDMusic         = "bgMusic"
	IDMusicSource   = "musicSource"
)

// Document is the browser page the card is rendered into.
type Document struct {
	doc *js.Object
	win *js.Object
}

var _ card.Host = (*Document)(nil)

// NewDocument wraps the global document.
func NewDocument() *Document {
	return &Document{
		doc: js.Global.Get("document"),
		win: js.Global,
	}
}

// OnReady runs fn once the DOM is parsed, or right away if it already is.
func (d *Document) OnReady(fn func()) {
	if d.doc.Get("readyState").String() != "loading" {
		fn()
		return
	}
	d.win.Call("addEventListener", "DOMContentLoaded", func() {
		fn()
	})
}

func (d *Document) byID(id string) *js.Object {
	el := d.doc.Call("getElementById", id)
	if missing(el) {
		return nil
	}
	return el
}

func missing(o *js.Object) bool {
	return o == nil || o == js.Undefined
}

func (d *Document) SetDocumentTitle(title string) {
	d.doc.Set("title", title)
}

func (d *Document) SetText(id, text string) bool {
	el := d.byID(id)
	if el == nil {
		return false
	}
	el.Set("textContent", text)
	return true
}

func (d *Document) HideSections() {
	sections := d.doc.Call("querySelectorAll", SelectorSections)
	for i := 0; i < sections.Length(); i++ {
		sections.Index(i).Get("classList").Call("add", ClassHidden)
	}
}

func (d *Document) ShowSection(id string) bool {
	el := d.byID(id)
	if el == nil {
		return false
	}
	el.Get("classList").Call("remove", ClassHidden)
	return true
}

func (d *Document) Viewport() (float64, float64) {
	return d.win.Get("innerWidth").Float(), d.win.Get("innerHeight").Float()
}

func (d *Document) Decorations() (card.DecorationLayer, bool) {
	root := d.doc.Call("querySelector", SelectorFloatingRoot)
	if missing(root) {
		return nil, false
	}
	return &floatingLayer{doc: d.doc, root: root}, true
}

func (d *Document) Meter() (card.MeterView, bool) {
	slider, value, extra := d.byID(IDLoveMeter), d.byID(IDLoveValue), d.byID(IDExtraLove)
	if slider == nil || value == nil || extra == nil {
		return nil, false
	}
	return &meterView{slider: slider, value: value, extra: extra}, true
}

func (d *Document) Music() (card.MusicView, card.MediaPlayer, bool) {
	controls, toggle := d.byID(IDMusicControls), d.byID(IDMusicToggle)
	media, source := d.byID(IDMusic), d.byID(IDMusicSource)
	if controls == nil || toggle == nil || media == nil || source == nil {
		return nil, nil, false
	}
	return &musicView{controls: controls, toggle: toggle}, audio.NewPlayer(media, source), true
}

func (d *Document) Warn(msg string) {
	Warn(msg)
}

// floatingLayer is the container of floating glyphs.
type floatingLayer struct {
	doc  *js.Object
	root *js.Object
}

func (l *floatingLayer) Clear() {
	l.root.Set("innerHTML", "")
}

func (l *floatingLayer) Add(d card.Decoration) {
	div := l.doc.Call("createElement", "div")
	div.Set("className", string(d.Kind))
	div.Set("textContent", d.Glyph)

	style := div.Get("style")
	style.Set("left", formatUnit(d.Left, "vw"))
	style.Set("animationDelay", formatUnit(d.Delay, "s"))
	style.Set("animationDuration", formatUnit(d.Duration, "s"))

	l.root.Call("appendChild", div)
}

func formatUnit(v float64, unit string) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + unit
}

// meterView is the love meter slider with its mirror and overflow label.
type meterView struct {
	slider *js.Object
	value  *js.Object
	extra  *js.Object
}

func (m *meterView) RawValue() string {
	return m.slider.Get("value").String()
}

func (m *meterView) SetValue(v int) {
	m.slider.Set("value", v)
}

func (m *meterView) Render(s card.MeterState) {
	m.value.Set("textContent", strconv.Itoa(s.Value))

	style := m.slider.Get("style")
	classes := m.extra.Get("classList")
	if !s.Overflow {
		classes.Call("add", ClassHidden)
		classes.Call("remove", ClassSuperLove)
		style.Set("width", s.Width())
		return
	}

	classes.Call("remove", ClassHidden)
	style.Set("width", s.Width())
	style.Set("transition", card.MeterTransition)
	if s.Super {
		classes.Call("add", ClassSuperLove)
	} else {
		classes.Call("remove", ClassSuperLove)
	}
	m.extra.Set("textContent", s.Message)
}

func (m *meterView) OnInput(fn func()) {
	m.slider.Call("addEventListener", "input", func() {
		fn()
	})
}

// musicView is the play/stop button and its container.
type musicView struct {
	controls *js.Object
	toggle   *js.Object
}

func (m *musicView) Hide() {
	m.controls.Get("style").Set("display", "none")
}

func (m *musicView) SetLabel(label string) {
	m.toggle.Set("textContent", label)
}

func (m *musicView) OnToggle(fn func()) {
	m.toggle.Call("addEventListener", "click", func() {
		fn()
	})
}
