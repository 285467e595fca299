package menu

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

// recorder counts highlight refreshes and remembers the active index.
type recorder struct {
	calls  []int
	active []bool
}

func newRecorder(n int) *recorder {
	return &recorder{active: make([]bool, n)}
}

func (r *recorder) SetActive(index int) {
	r.calls = append(r.calls, index)
	for i := range r.active {
		r.active[i] = i == index
	}
}

func (r *recorder) activeCount() int {
	n := 0
	for _, a := range r.active {
		if a {
			n++
		}
	}
	return n
}

func titleEntries() []Entry {
	return []Entry{
		{Label: "Start", Command: CommandStartGame},
		{Label: "How to Play", Command: CommandHowTo},
		{Label: "Credits", Command: CommandCredits},
	}
}

func newTitleMenu(t *testing.T) (*Controller, *recorder) {
	t.Helper()
	rec := newRecorder(3)
	c, err := New(titleEntries(), WithHighlighter(rec))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rec.calls = nil
	return c, rec
}

func TestNewStartsAtZeroAndHighlights(t *testing.T) {
	rec := newRecorder(3)
	c, err := New(titleEntries(), WithHighlighter(rec))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Selected() != 0 {
		t.Fatalf("initial selection = %d, want 0", c.Selected())
	}
	if len(rec.calls) != 1 || rec.calls[0] != 0 {
		t.Fatalf("construction highlight calls = %v, want [0]", rec.calls)
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoEntries) {
		t.Errorf("New(nil) err = %v, want ErrNoEntries", err)
	}

	entries := []Entry{{Label: "Start", Command: CommandStartGame}, {Label: "Blank"}}
	if _, err := New(entries); !errors.Is(err, ErrMissingCommand) {
		t.Errorf("New with blank command err = %v, want ErrMissingCommand", err)
	}

	if _, err := New(titleEntries(), WithInitial(3)); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("WithInitial(3) err = %v, want ErrIndexOutOfRange", err)
	}

	if _, err := New(titleEntries(), WithDefault(CommandNone)); !errors.Is(err, ErrMissingCommand) {
		t.Errorf("WithDefault(none) err = %v, want ErrMissingCommand", err)
	}
}

func TestEntriesAreCopied(t *testing.T) {
	entries := titleEntries()
	c, err := New(entries)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	entries[0].Command = CommandQuit
	if got := c.Confirm(); got != CommandStartGame {
		t.Fatalf("Confirm after caller mutation = %s, want StartGame", got)
	}

	out := c.Entries()
	out[1].Label = "changed"
	if e, _ := c.Entry(1); e.Label != "How to Play" {
		t.Fatalf("Entry(1).Label = %q after mutating Entries() copy", e.Label)
	}
}

func TestSelectionStaysCyclic(t *testing.T) {
	for n := 1; n <= 6; n++ {
		entries := make([]Entry, n)
		for i := range entries {
			entries[i] = Entry{Label: "e", Command: CommandStartGame}
		}
		rec := newRecorder(n)
		c, err := New(entries, WithHighlighter(rec))
		if err != nil {
			t.Fatalf("New(%d): %v", n, err)
		}

		// deterministic pseudo-random walk
		seq := uint32(n*7919 + 1)
		for step := 0; step < 200; step++ {
			seq = seq*1664525 + 1013904223
			if seq>>31 == 0 {
				c.SelectNext()
			} else {
				c.SelectPrevious()
			}
			if s := c.Selected(); s < 0 || s >= n {
				t.Fatalf("n=%d step=%d selection %d out of range", n, step, s)
			}
			if rec.activeCount() != 1 || !rec.active[c.Selected()] {
				t.Fatalf("n=%d step=%d active=%v selection=%d", n, step, rec.active, c.Selected())
			}
		}
	}
}

func TestWraparound(t *testing.T) {
	c, rec := newTitleMenu(t)

	c.SelectPrevious()
	if c.Selected() != 2 {
		t.Fatalf("prev from 0 = %d, want 2", c.Selected())
	}
	c.SelectNext()
	if c.Selected() != 0 {
		t.Fatalf("next from 2 = %d, want 0", c.Selected())
	}
	if len(rec.calls) != 2 {
		t.Fatalf("highlight calls = %v, want 2", rec.calls)
	}
}

func TestSingleEntryStaysPut(t *testing.T) {
	rec := newRecorder(1)
	c, err := New([]Entry{{Label: "Start", Command: CommandStartGame}}, WithHighlighter(rec))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.SelectNext()
	c.SelectPrevious()
	if c.Selected() != 0 {
		t.Fatalf("selection = %d, want 0", c.Selected())
	}
	if len(rec.calls) != 3 {
		t.Fatalf("highlight calls = %d, want 3", len(rec.calls))
	}
}

func TestEveryMutationHighlightsOnce(t *testing.T) {
	c, rec := newTitleMenu(t)

	ops := []struct {
		name string
		run  func()
		want int
	}{
		{"next", c.SelectNext, 1},
		{"next", c.SelectNext, 2},
		{"prev", c.SelectPrevious, 1},
		{"specific", func() { _ = c.SelectSpecific(0) }, 0},
	}

	for i, op := range ops {
		before := len(rec.calls)
		op.run()
		if got := len(rec.calls) - before; got != 1 {
			t.Fatalf("op %d (%s): %d highlight calls, want 1", i, op.name, got)
		}
		if last := rec.calls[len(rec.calls)-1]; last != op.want || c.Selected() != op.want {
			t.Fatalf("op %d (%s): highlight=%d selected=%d want %d", i, op.name, last, c.Selected(), op.want)
		}
		if rec.activeCount() != 1 {
			t.Fatalf("op %d (%s): %d active entries", i, op.name, rec.activeCount())
		}
	}
}

func TestIdempotentReselect(t *testing.T) {
	c, rec := newTitleMenu(t)
	if err := c.SelectSpecific(1); err != nil {
		t.Fatalf("SelectSpecific(1): %v", err)
	}
	if err := c.SelectSpecific(1); err != nil {
		t.Fatalf("SelectSpecific(1) again: %v", err)
	}
	if c.Selected() != 1 {
		t.Fatalf("selection = %d, want 1", c.Selected())
	}
	if len(rec.calls) != 2 || rec.calls[0] != 1 || rec.calls[1] != 1 {
		t.Fatalf("highlight calls = %v, want [1 1]", rec.calls)
	}
}

func TestSelectSpecificOutOfRange(t *testing.T) {
	c, rec := newTitleMenu(t)
	_ = c.SelectSpecific(2)
	rec.calls = nil

	for _, idx := range []int{-1, 3, 100} {
		err := c.SelectSpecific(idx)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SelectSpecific(%d) err = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
	if c.Selected() != 2 {
		t.Fatalf("selection changed to %d", c.Selected())
	}
	if len(rec.calls) != 0 {
		t.Fatalf("rejected selects refreshed highlight: %v", rec.calls)
	}
}

func TestConfirmDeterminism(t *testing.T) {
	c, _ := newTitleMenu(t)
	want := []Command{CommandStartGame, CommandHowTo, CommandCredits}
	for i, w := range want {
		if err := c.SelectSpecific(i); err != nil {
			t.Fatalf("SelectSpecific(%d): %v", i, err)
		}
		if got := c.Confirm(); got != w {
			t.Errorf("Confirm at %d = %s, want %s", i, got, w)
		}
		if c.Selected() != i {
			t.Errorf("Confirm moved selection to %d", c.Selected())
		}
	}
}

func TestConfirmFallsBackToDefault(t *testing.T) {
	var buf bytes.Buffer
	c, err := New(titleEntries(), WithLogger(log.New(&buf, "", 0)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_ = c.SelectSpecific(1)
	c.actions[1] = CommandNone

	if got := c.Confirm(); got != CommandStartGame {
		t.Fatalf("fallback = %s, want StartGame", got)
	}
	if !strings.Contains(buf.String(), "falling back") {
		t.Fatalf("fallback not logged: %q", buf.String())
	}

	c2, err := New(titleEntries(), WithDefault(CommandMainMenu), WithLogger(log.New(&buf, "", 0)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c2.actions = c2.actions[:1]
	_ = c2.SelectSpecific(2)
	if got := c2.Confirm(); got != CommandMainMenu {
		t.Fatalf("fallback = %s, want MainMenu", got)
	}
}

func TestWithInitial(t *testing.T) {
	rec := newRecorder(3)
	c, err := New(titleEntries(), WithInitial(2), WithHighlighter(rec))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Selected() != 2 || len(rec.calls) != 1 || rec.calls[0] != 2 {
		t.Fatalf("selected=%d calls=%v, want 2 and [2]", c.Selected(), rec.calls)
	}
	if !c.IsActive(2) || c.IsActive(0) {
		t.Fatalf("IsActive disagrees with selection")
	}
}

func TestHighlighterFunc(t *testing.T) {
	var got []int
	c, err := New(titleEntries(), WithHighlighter(HighlighterFunc(func(i int) { got = append(got, i) })))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.SelectNext()
	if len(got) != 2 || got[1] != 1 {
		t.Fatalf("calls = %v, want [0 1]", got)
	}
}
