package party_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/wfunc/partymediator/mocks"
	"github.com/wfunc/partymediator/party"
	"go.uber.org/mock/gomock"
)

func TestManager_CreateAndGetParty(t *testing.T) {
	manager := party.NewManager(nil)

	p := manager.CreateParty("fellowship")
	if p == nil {
		t.Fatal("CreateParty should not return nil")
	}

	if _, err := uuid.Parse(p.ID); err != nil {
		t.Errorf("Expected a uuid party ID, got %q: %v", p.ID, err)
	}

	if p.Name != "fellowship" {
		t.Errorf("Expected party name fellowship, got %s", p.Name)
	}

	retrieved, exists := manager.GetParty(p.ID)
	if !exists {
		t.Fatal("GetParty should find the created party")
	}

	if retrieved != p {
		t.Error("GetParty should return the same party instance")
	}
}

func TestManager_Parties_CreationOrder(t *testing.T) {
	manager := party.NewManager(nil)

	first := manager.CreateParty("first")
	second := manager.CreateParty("second")
	third := manager.CreateParty("third")

	parties := manager.Parties()
	if len(parties) != 3 {
		t.Fatalf("Expected 3 parties, got %d", len(parties))
	}
	if parties[0] != first || parties[1] != second || parties[2] != third {
		t.Error("Parties should be returned in creation order")
	}
}

func TestManager_RemoveParty(t *testing.T) {
	manager := party.NewManager(nil)

	keep := manager.CreateParty("keep")
	drop := manager.CreateParty("drop")

	if err := manager.RemoveParty(drop.ID); err != nil {
		t.Fatalf("RemoveParty returned error: %v", err)
	}

	if _, exists := manager.GetParty(drop.ID); exists {
		t.Error("GetParty should not find the removed party")
	}

	parties := manager.Parties()
	if len(parties) != 1 || parties[0] != keep {
		t.Errorf("Expected only the kept party to remain, got %v", parties)
	}
}

func TestManager_RemoveParty_Unknown(t *testing.T) {
	manager := party.NewManager(nil)

	err := manager.RemoveParty("missing")
	if !errors.Is(err, party.ErrPartyNotFound) {
		t.Errorf("Expected ErrPartyNotFound, got %v", err)
	}
}

func TestManager_ReportsActiveParties(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := mocks.NewMockObserver(ctrl)
	manager := party.NewManager(observer)

	gomock.InOrder(
		observer.EXPECT().PartiesActive(1),
		observer.EXPECT().PartiesActive(2),
		observer.EXPECT().PartiesActive(1),
	)

	p := manager.CreateParty("first")
	manager.CreateParty("second")
	if err := manager.RemoveParty(p.ID); err != nil {
		t.Fatalf("RemoveParty returned error: %v", err)
	}
}
