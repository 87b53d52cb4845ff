//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=../mocks/mock_party.go -package=mocks

// party/interfaces.go
package party

import (
	"github.com/wfunc/partymediator/action"
)

// Member is a peer that only ever reaches other members through a Mediator.
// The member package provides the concrete kinds; they are defined against
// this interface to keep member and party free of an import cycle.
type Member interface {
	// PartyAction is called when another member acted.
	PartyAction(a action.Action)
	// Act performs a, then asks the joined Mediator, if any, to tell the others.
	Act(a action.Action)
	// JoinedParty records p as the member's mediator, replacing any earlier one.
	JoinedParty(p Mediator)
	String() string
}

// Mediator is the side of a Party a member is allowed to see.
type Mediator interface {
	Act(actor Member, a action.Action)
}

// Observer is told about joins and broadcasts after they happened.
// monitor.Monitor is the production implementation.
type Observer interface {
	MemberJoined(partyID string, m Member)
	ActionBroadcast(partyID string, actor Member, a action.Action, notified int)
	PartiesActive(count int)
}
