// action/action.go
package action

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned by Parse for names outside the enumeration.
var ErrUnknownAction = errors.New("unknown action")

// Action 是队伍成员之间传递的事件
type Action int

const (
	Hunt Action = iota
	Tale
	Gold
	Enemy
)

type details struct {
	name        string
	label       string
	description string
}

var table = [...]details{
	Hunt:  {name: "hunt", label: "hunted a rabbit", description: "arrives for dinner"},
	Tale:  {name: "tale", label: "tells a tale", description: "comes to listen"},
	Gold:  {name: "gold", label: "found gold", description: "takes his share of the gold"},
	Enemy: {name: "enemy", label: "spotted enemies", description: "runs for cover"},
}

// All returns every action in declaration order.
func All() []Action {
	return []Action{Hunt, Tale, Gold, Enemy}
}

// Name returns the lowercase symbolic name, e.g. "hunt".
func (a Action) Name() string {
	return table[a].name
}

// Label is what the acting member announces about itself.
func (a Action) Label() string {
	return table[a].label
}

// Description is what every other member reports when it is notified.
func (a Action) Description() string {
	return table[a].description
}

func (a Action) String() string {
	return a.Label()
}

// Parse maps a case-insensitive name such as "Gold" to its Action.
func Parse(name string) (Action, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, a := range All() {
		if a.Name() == key {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}
