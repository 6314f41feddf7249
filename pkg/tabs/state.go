// Package tabs manages the single-active-panel selection state of a rendered
// comparison. The state is a plain value with an explicit transition function
// so it can be exercised without any presentation surface.
package tabs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTab reports an activation request for an id (or index) that is
	// not one of the model's spec ids.
	ErrUnknownTab = errors.New("tabs: unknown tab")
	// ErrNoTabs reports an activation request against an empty spec list.
	ErrNoTabs = errors.New("tabs: no tabs")
)

// State is the selection state. ActiveID is empty only when there are no
// tabs.
type State struct {
	ActiveID string `json:"activeId"`
}

// Empty reports whether the state is the implicit empty state.
func (s State) Empty() bool {
	return s.ActiveID == ""
}

// Initial returns the state immediately after a model is available: the first
// id is active, or the empty state when ids is empty.
func Initial(ids []string) State {
	if len(ids) == 0 {
		return State{}
	}
	return State{ActiveID: ids[0]}
}

// Transition applies an activation of id to current. changed is false when id
// is already active. Unknown ids are rejected and current is returned as is.
func Transition(current State, ids []string, id string) (next State, changed bool, err error) {
	if len(ids) == 0 {
		return current, false, ErrNoTabs
	}
	if !contains(ids, id) {
		return current, false, fmt.Errorf("%w: %q", ErrUnknownTab, id)
	}
	if current.ActiveID == id {
		return current, false, nil
	}
	return State{ActiveID: id}, true, nil
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
