//go:build js
// +build js

package web

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/blackhole/visual"
)

// InfoOverlay writes the diagnostics line into a DOM element.
type InfoOverlay struct {
	el *js.Object
}

// NewInfoOverlay binds to the element with the given id. A missing element
// yields an overlay that discards reports.
func NewInfoOverlay(id string) *InfoOverlay {
	el := js.Global.Get("document").Call("getElementById", id)
	if isMissing(el) {
		el = nil
	}
	return &InfoOverlay{el: el}
}

// Report implements visual.DiagnosticsSink.
func (o *InfoOverlay) Report(d visual.Diagnostics) {
	if o.el == nil {
		return
	}
	o.el.Set("textContent", d.String())
}
