// Package scenario turns party configuration into live parties and plays
// their scripts.
package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/wfunc/partymediator/action"
	"github.com/wfunc/partymediator/config"
	"github.com/wfunc/partymediator/logger"
	"github.com/wfunc/partymediator/member"
	"github.com/wfunc/partymediator/notify"
	"github.com/wfunc/partymediator/party"
)

var ErrMemberNotInParty = errors.New("member not in party")

type step struct {
	actor  party.Member
	action action.Action
}

// Run creates each configured party on manager, adds its members in order and
// plays its script. A party is fully resolved before anyone joins, so a bad
// script produces no output for that party.
func Run(parties []config.PartyConfig, manager *party.Manager, sink notify.Sink) error {
	for _, pc := range parties {
		if err := runParty(pc, manager, sink); err != nil {
			return fmt.Errorf("party %q: %w", pc.Name, err)
		}
	}
	return nil
}

func runParty(pc config.PartyConfig, manager *party.Manager, sink notify.Sink) error {
	members := make([]party.Member, 0, len(pc.Members))
	for _, kind := range pc.Members {
		m, err := member.New(kind, sink)
		if err != nil {
			return err
		}
		members = append(members, m)
	}

	steps := make([]step, 0, len(pc.Script))
	for _, sc := range pc.Script {
		a, err := action.Parse(sc.Action)
		if err != nil {
			return err
		}
		actor, ok := lo.Find(members, func(m party.Member) bool {
			return strings.EqualFold(m.String(), strings.TrimSpace(sc.Member))
		})
		if !ok {
			return fmt.Errorf("%w: %s", ErrMemberNotInParty, sc.Member)
		}
		steps = append(steps, step{actor: actor, action: a})
	}

	p := manager.CreateParty(pc.Name)
	for _, m := range members {
		p.AddMember(m)
	}

	for _, s := range steps {
		s.actor.Act(s.action)
	}

	logger.Log.Infow("party script finished", "party", p.ID, "name", p.Name, "members", p.Size(), "steps", len(steps))
	return nil
}
