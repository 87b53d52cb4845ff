// party/party.go
package party

import (
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/wfunc/partymediator/action"
	"github.com/wfunc/partymediator/logger"
)

// Party is the mediator: it owns the roster and relays every member's action
// to all the others.
type Party struct {
	ID        string
	Name      string
	CreatedAt time.Time
	members   []Member // join order
	observer  Observer
	mutex     sync.RWMutex
}

// NewParty creates an empty party. observer may be nil.
func NewParty(id, name string, observer Observer) *Party {
	return &Party{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now(),
		observer:  observer,
	}
}

// AddMember appends m to the roster and lets it know who its mediator is.
// Adding the same member twice puts it on the roster twice.
func (p *Party) AddMember(m Member) {
	p.mutex.Lock()
	p.members = append(p.members, m)
	size := len(p.members)
	p.mutex.Unlock()

	m.JoinedParty(p)

	logger.Log.Debugw("member joined party", "party", p.ID, "member", m, "size", size)
	if p.observer != nil {
		p.observer.MemberJoined(p.ID, m)
	}
}

// Act notifies every member other than actor, in join order. All
// notifications have been delivered when Act returns.
func (p *Party) Act(actor Member, a action.Action) {
	// 先拷贝名单，成员在回调中再次行动时不会持有锁
	recipients := lo.Filter(p.Members(), func(m Member, _ int) bool {
		return m != actor
	})

	for _, m := range recipients {
		m.PartyAction(a)
	}

	logger.Log.Debugw("action broadcast", "party", p.ID, "actor", actor, "action", a.Name(), "notified", len(recipients))
	if p.observer != nil {
		p.observer.ActionBroadcast(p.ID, actor, a, len(recipients))
	}
}

// Members returns a copy of the roster in join order.
func (p *Party) Members() []Member {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	members := make([]Member, len(p.members))
	copy(members, p.members)
	return members
}

func (p *Party) Size() int {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return len(p.members)
}
