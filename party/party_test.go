package party_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wfunc/partymediator/action"
	"github.com/wfunc/partymediator/mocks"
	"github.com/wfunc/partymediator/party"
	"go.uber.org/mock/gomock"
)

// joinedMembers adds n mock members to p and returns them in join order.
func joinedMembers(ctrl *gomock.Controller, p *party.Party, n int) []*mocks.MockMember {
	members := make([]*mocks.MockMember, n)
	for i := range members {
		m := mocks.NewMockMember(ctrl)
		m.EXPECT().JoinedParty(p).Times(1)
		p.AddMember(m)
		members[i] = m
	}
	return members
}

func TestParty_AddMember(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	p := party.NewParty("p1", "fellowship", nil)

	// Given an empty party
	req.Zero(p.Size())

	// When two members join
	members := joinedMembers(ctrl, p, 2)

	// Then the roster keeps join order and each member learned its mediator once
	req.Equal(2, p.Size())
	req.Equal([]party.Member{members[0], members[1]}, p.Members())
}

func TestParty_Members_ReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := party.NewParty("p1", "fellowship", nil)
	joinedMembers(ctrl, p, 1)

	roster := p.Members()
	roster[0] = nil

	require.NotNil(t, p.Members()[0])
}

func TestParty_Act_NotifiesEveryOtherMemberInJoinOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := party.NewParty("p1", "fellowship", nil)
	members := joinedMembers(ctrl, p, 4)
	actor := members[1]

	// The actor has no PartyAction expectation: a call would fail the test.
	gomock.InOrder(
		members[0].EXPECT().PartyAction(action.Gold).Times(1),
		members[2].EXPECT().PartyAction(action.Gold).Times(1),
		members[3].EXPECT().PartyAction(action.Gold).Times(1),
	)

	p.Act(actor, action.Gold)
}

func TestParty_Act_SequentialActionsDoNotInterleave(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := party.NewParty("p1", "fellowship", nil)
	members := joinedMembers(ctrl, p, 3)

	gomock.InOrder(
		members[1].EXPECT().PartyAction(action.Hunt),
		members[2].EXPECT().PartyAction(action.Hunt),
		members[0].EXPECT().PartyAction(action.Enemy),
		members[1].EXPECT().PartyAction(action.Enemy),
	)

	p.Act(members[0], action.Hunt)
	p.Act(members[2], action.Enemy)
}

func TestParty_Act_LoneMemberNotifiesNobody(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := party.NewParty("p1", "fellowship", nil)
	members := joinedMembers(ctrl, p, 1)

	p.Act(members[0], action.Tale)
}

func TestParty_Act_ActorOutsideRosterNotifiesEveryone(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := party.NewParty("p1", "fellowship", nil)
	members := joinedMembers(ctrl, p, 2)
	stranger := mocks.NewMockMember(ctrl)

	members[0].EXPECT().PartyAction(action.Tale)
	members[1].EXPECT().PartyAction(action.Tale)

	p.Act(stranger, action.Tale)
}

func TestParty_AddMember_TwiceIsNotifiedTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := party.NewParty("p1", "fellowship", nil)

	actor := mocks.NewMockMember(ctrl)
	twice := mocks.NewMockMember(ctrl)
	actor.EXPECT().JoinedParty(p)
	twice.EXPECT().JoinedParty(p).Times(2)
	p.AddMember(actor)
	p.AddMember(twice)
	p.AddMember(twice)

	twice.EXPECT().PartyAction(action.Hunt).Times(2)

	p.Act(actor, action.Hunt)
}

func TestParty_Observer(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := mocks.NewMockObserver(ctrl)
	p := party.NewParty("p1", "fellowship", observer)

	first := mocks.NewMockMember(ctrl)
	second := mocks.NewMockMember(ctrl)
	first.EXPECT().JoinedParty(p)
	second.EXPECT().JoinedParty(p)
	second.EXPECT().PartyAction(action.Enemy)

	gomock.InOrder(
		observer.EXPECT().MemberJoined("p1", first),
		observer.EXPECT().MemberJoined("p1", second),
		observer.EXPECT().ActionBroadcast("p1", first, action.Enemy, 1),
	)

	p.AddMember(first)
	p.AddMember(second)
	p.Act(first, action.Enemy)
}
