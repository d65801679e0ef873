package dom

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/valentine-card/card"
)

// Element is a page element handed to Go from an inline handler, such as the
// button passed to moveButton(this).
type Element struct {
	obj *js.Object
}

var _ card.Movable = (*Element)(nil)

// NewElement wraps a DOM element.
func NewElement(obj *js.Object) *Element {
	return &Element{obj: obj}
}

// Size returns the rendered width and height of the element.
func (e *Element) Size() (float64, float64) {
	return e.obj.Get("offsetWidth").Float(), e.obj.Get("offsetHeight").Float()
}

// PlaceAt pins the element to the viewport at (x, y).
func (e *Element) PlaceAt(x, y float64) {
	style := e.obj.Get("style")
	style.Set("position", "fixed")
	style.Set("left", formatUnit(x, "px"))
	style.Set("top", formatUnit(y, "px"))
}
