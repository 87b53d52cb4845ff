// Package member provides the party members. They never reference each
// other; everything they do reaches the rest of the party through a
// party.Mediator.
package member

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wfunc/partymediator/action"
	"github.com/wfunc/partymediator/notify"
	"github.com/wfunc/partymediator/party"
)

var (
	ErrUnknownKind = errors.New("unknown member kind")
)

// base carries the behaviour shared by every kind. self is the outer value,
// so that the mediator can recognise the actor and skip it.
type base struct {
	self  party.Member
	name  string
	sink  notify.Sink
	party party.Mediator
}

func newBase(self party.Member, name string, sink notify.Sink) base {
	return base{self: self, name: name, sink: sink}
}

func (b *base) emit(message string) {
	b.sink.Emit(b.name + " " + message)
}

func (b *base) JoinedParty(p party.Mediator) {
	b.emit("joins the party")
	b.party = p
}

func (b *base) PartyAction(a action.Action) {
	b.emit(a.Description())
}

func (b *base) Act(a action.Action) {
	b.emit(a.Label())
	if b.party != nil {
		b.party.Act(b.self, a)
	}
}

// Party returns the mediator the member joined last, or nil.
func (b *base) Party() party.Mediator {
	return b.party
}

func (b *base) String() string {
	return b.name
}

// Kinds lists the lowercase kind names accepted by New.
func Kinds() []string {
	return []string{"hobbit", "hunter", "rogue", "wizard"}
}

// New creates a member from its kind name, e.g. "wizard".
func New(kind string, sink notify.Sink) (party.Member, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "hobbit":
		return NewHobbit(sink), nil
	case "hunter":
		return NewHunter(sink), nil
	case "rogue":
		return NewRogue(sink), nil
	case "wizard":
		return NewWizard(sink), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
