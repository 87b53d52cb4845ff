package member

import (
	"github.com/wfunc/partymediator/notify"
)

type Hobbit struct {
	base
}

func NewHobbit(sink notify.Sink) *Hobbit {
	h := &Hobbit{}
	h.base = newBase(h, "Hobbit", sink)
	return h
}

type Hunter struct {
	base
}

func NewHunter(sink notify.Sink) *Hunter {
	h := &Hunter{}
	h.base = newBase(h, "Hunter", sink)
	return h
}

type Rogue struct {
	base
}

func NewRogue(sink notify.Sink) *Rogue {
	r := &Rogue{}
	r.base = newBase(r, "Rogue", sink)
	return r
}

type Wizard struct {
	base
}

func NewWizard(sink notify.Sink) *Wizard {
	w := &Wizard{}
	w.base = newBase(w, "Wizard", sink)
	return w
}
