package menu

import "fmt"

// EventKind is a logical input event, independent of the device that produced it.
type EventKind int

const (
	EventNone EventKind = iota
	EventNext
	EventPrev
	EventSelect
	EventConfirm
	EventClick
)

func (k EventKind) String() string {
	switch k {
	case EventNext:
		return "next"
	case EventPrev:
		return "prev"
	case EventSelect:
		return "select"
	case EventConfirm:
		return "confirm"
	case EventClick:
		return "click"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is delivered by the input layer. Index is only read by Select and Click.
type Event struct {
	Kind  EventKind
	Index int
}

func Next() Event        { return Event{Kind: EventNext} }
func Prev() Event        { return Event{Kind: EventPrev} }
func Confirm() Event     { return Event{Kind: EventConfirm} }
func Select(i int) Event { return Event{Kind: EventSelect, Index: i} }
func Click(i int) Event  { return Event{Kind: EventClick, Index: i} }

// Operation runs one event against a controller. ok is true when the event
// produced a command.
type Operation func(c *Controller, index int) (cmd Command, ok bool, err error)

// Bindings maps each event kind to the controller operation it triggers.
type Bindings map[EventKind]Operation

func defaultBindings() Bindings {
	return Bindings{
		EventNext: func(c *Controller, _ int) (Command, bool, error) {
			c.SelectNext()
			return CommandNone, false, nil
		},
		EventPrev: func(c *Controller, _ int) (Command, bool, error) {
			c.SelectPrevious()
			return CommandNone, false, nil
		},
		EventSelect: func(c *Controller, i int) (Command, bool, error) {
			return CommandNone, false, c.SelectSpecific(i)
		},
		EventConfirm: func(c *Controller, _ int) (Command, bool, error) {
			return c.Confirm(), true, nil
		},
		// A click selects first, even when the entry is already active, then confirms.
		EventClick: func(c *Controller, i int) (Command, bool, error) {
			if err := c.SelectSpecific(i); err != nil {
				return CommandNone, false, err
			}
			return c.Confirm(), true, nil
		},
	}
}

// Dispatch runs ev through the binding table.
func (c *Controller) Dispatch(ev Event) (Command, bool, error) {
	op, ok := c.bindings[ev.Kind]
	if !ok {
		return CommandNone, false, fmt.Errorf("dispatch %s: %w", ev.Kind, ErrUnknownEvent)
	}
	return op(c, ev.Index)
}
