package domain

import (
	"fmt"
	"queue-bot/errors"
	"strings"
)

type ActionKind string

const (
	StartCreate ActionKind = "create_event"
	ListEvents  ActionKind = "join_event"
	ViewEvent   ActionKind = "view_event"
	Join        ActionKind = "join"
	Leave       ActionKind = "leave"
)

// Action is an inbound request coming from an interactive control.
// EventID is only set for actions targeting a single event.
type Action struct {
	Kind    ActionKind
	EventID EventID
}

func NewAction(kind ActionKind) Action {
	return Action{Kind: kind}
}

func NewEventAction(kind ActionKind, id EventID) Action {
	return Action{Kind: kind, EventID: id}
}

// Data encodes the action as opaque callback data: "create_event",
// "join_event", "view_event_<id>", "join_<id>" or "leave_<id>".
func (a Action) Data() string {
	if a.EventID == "" {
		return string(a.Kind)
	}
	return fmt.Sprintf("%s_%s", a.Kind, a.EventID)
}

// ParseAction decodes callback data produced by Action.Data.
func ParseAction(data string) (Action, error) {
	switch data {
	case string(StartCreate):
		return NewAction(StartCreate), nil
	case string(ListEvents):
		return NewAction(ListEvents), nil
	}
	// view_event_ must be checked before the shorter prefixes
	for _, kind := range []ActionKind{ViewEvent, Join, Leave} {
		prefix := string(kind) + "_"
		if id, ok := strings.CutPrefix(data, prefix); ok && id != "" {
			return NewEventAction(kind, EventID(id)), nil
		}
	}
	return Action{}, fmt.Errorf("%w: %q", errors.ErrUnknownAction, data)
}
