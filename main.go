//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/valentine-card/card"
	"github.com/simukka/valentine-card/common"
	"github.com/simukka/valentine-card/dom"
)

func main() {
	// The config is published by config.js, which must load first
	raw := js.Global.Get("CARD_CONFIG")
	if raw == nil || raw == js.Undefined {
		dom.Error("CARD_CONFIG not found. Make sure config.js loads before main.js.")
		panic(card.ErrNoConfig)
	}
	cfg, err := card.ParseJSON([]byte(js.Global.Get("JSON").Call("stringify", raw).String()))
	if err != nil {
		dom.Error("Invalid CARD_CONFIG:", err.Error())
		panic(err)
	}

	rng := common.NewMulberry32(common.SeedFromMillis(js.Global.Get("Date").Call("now").Float()))
	doc := dom.NewDocument()

	c, err := card.New(cfg, doc, rng)
	if err != nil {
		dom.Error("Card setup failed:", err.Error())
		panic(err)
	}
	dom.Debug("card seed", rng.Seed())

	// Expose the card actions to inline onclick="" handlers
	js.Global.Set("showNextQuestion", func(id *js.Object) {
		c.ShowQuestion(id.String())
		dom.Debug("stage", c.Stage().String())
	})
	js.Global.Set("moveButton", func(button *js.Object) {
		c.MoveButton(dom.NewElement(button))
	})
	js.Global.Set("celebrate", func() {
		c.Celebrate()
	})

	doc.OnReady(c.Init)

	select {}
}
