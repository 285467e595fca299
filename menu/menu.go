// Package menu holds the selection state machine shared by every menu screen.
// It has no rendering dependency: scenes plug a Highlighter in and map the
// returned Command to a scene transition.
package menu

import (
	"errors"
	"fmt"
	"log"
)

var (
	ErrNoEntries       = errors.New("menu: no entries")
	ErrIndexOutOfRange = errors.New("menu: index out of range")
	ErrMissingCommand  = errors.New("menu: entry has no command")
	ErrUnknownEvent    = errors.New("menu: unknown event")
)

// Command is a navigation request emitted on confirm.
type Command string

const (
	CommandNone      Command = ""
	CommandStartGame Command = "StartGame"
	CommandHowTo     Command = "HowTo"
	CommandCredits   Command = "Credits"
	CommandRetry     Command = "Retry"
	CommandMainMenu  Command = "MainMenu"
	CommandQuit      Command = "Quit"
)

// Entry is one selectable item.
type Entry struct {
	Label   string
	Command Command
}

// Highlighter is told which entry is active after every selection change.
type Highlighter interface {
	SetActive(index int)
}

// HighlighterFunc adapts a function to Highlighter.
type HighlighterFunc func(index int)

func (f HighlighterFunc) SetActive(index int) { f(index) }

type nopHighlighter struct{}

func (nopHighlighter) SetActive(int) {}

// Controller owns the selection index of a fixed list of entries.
type Controller struct {
	entries  []Entry
	actions  []Command
	selected int

	highlighter Highlighter
	fallback    Command
	logger      *log.Logger
	bindings    Bindings
}

// Option configures a Controller.
type Option func(*Controller) error

// WithHighlighter sets the presentation callback.
func WithHighlighter(h Highlighter) Option {
	return func(c *Controller) error {
		if h != nil {
			c.highlighter = h
		}
		return nil
	}
}

// WithDefault overrides the command used when the current selection has no mapping.
func WithDefault(cmd Command) Option {
	return func(c *Controller) error {
		if cmd == CommandNone {
			return fmt.Errorf("default command: %w", ErrMissingCommand)
		}
		c.fallback = cmd
		return nil
	}
}

// WithLogger replaces log.Default().
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}

// WithInitial starts the selection somewhere other than the first entry.
func WithInitial(index int) Option {
	return func(c *Controller) error {
		if index < 0 || index >= len(c.entries) {
			return fmt.Errorf("initial selection %d of %d: %w", index, len(c.entries), ErrIndexOutOfRange)
		}
		c.selected = index
		return nil
	}
}

// New builds a controller over entries. Every entry must carry a command so the
// index to command mapping is total. The highlighter is called once before New
// returns so the presentation starts in sync.
func New(entries []Entry, opts ...Option) (*Controller, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	c := &Controller{
		entries:     make([]Entry, len(entries)),
		actions:     make([]Command, len(entries)),
		highlighter: nopHighlighter{},
		fallback:    CommandStartGame,
		logger:      log.Default(),
	}
	copy(c.entries, entries)

	for i, e := range entries {
		if e.Command == CommandNone {
			return nil, fmt.Errorf("entry %d (%q): %w", i, e.Label, ErrMissingCommand)
		}
		c.actions[i] = e.Command
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.bindings = defaultBindings()
	c.highlight()
	return c, nil
}

// SelectNext moves one entry down, wrapping from the last to the first.
func (c *Controller) SelectNext() {
	c.selected = (c.selected + 1) % len(c.entries)
	c.highlight()
}

// SelectPrevious moves one entry up, wrapping from the first to the last.
func (c *Controller) SelectPrevious() {
	n := len(c.entries)
	c.selected = (c.selected - 1 + n) % n
	c.highlight()
}

// SelectSpecific jumps to index. An out of range index leaves the selection
// and the highlight untouched.
func (c *Controller) SelectSpecific(index int) error {
	if index < 0 || index >= len(c.entries) {
		return fmt.Errorf("select %d of %d: %w", index, len(c.entries), ErrIndexOutOfRange)
	}
	c.selected = index
	c.highlight()
	return nil
}

// Confirm returns the command mapped to the current selection. It never
// changes the selection.
func (c *Controller) Confirm() Command {
	if c.selected < len(c.actions) && c.actions[c.selected] != CommandNone {
		return c.actions[c.selected]
	}
	// Unreachable while actions is built by New.
	c.logger.Printf("menu: no command for selection %d, falling back to %s", c.selected, c.fallback)
	return c.fallback
}

// Selected returns the active index.
func (c *Controller) Selected() int { return c.selected }

// Len returns the number of entries.
func (c *Controller) Len() int { return len(c.entries) }

// IsActive reports whether index is the selected entry.
func (c *Controller) IsActive(index int) bool { return index == c.selected }

// Entry returns the entry at index.
func (c *Controller) Entry(index int) (Entry, bool) {
	if index < 0 || index >= len(c.entries) {
		return Entry{}, false
	}
	return c.entries[index], true
}

// Entries returns a copy of the entry list.
func (c *Controller) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Controller) highlight() {
	c.highlighter.SetActive(c.selected)
}
