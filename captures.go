package rematch

// captures holds the capture-group state of one top-level match
// attempt.  Slots are allocated up front, one per declared group,
// because group numbers are fixed at compile time while groups
// complete inner-first at match time.
//
// Every choice point in the matcher takes a checkpoint before trying
// an alternative and restores it when the alternative fails, so the
// state only ever reflects currently-committed matches.
type captures struct {
	slots []capture
}

type capture struct {
	text string
	set  bool
}

func newCaptures(groups int) *captures {
	return &captures{slots: make([]capture, groups)}
}

func (c *captures) checkpoint() []capture {
	saved := make([]capture, len(c.slots))
	copy(saved, c.slots)
	return saved
}

func (c *captures) restore(saved []capture) {
	copy(c.slots, saved)
}

// store records the text matched by group index (1-based)
func (c *captures) store(index int, text string) {
	if index >= 1 && index <= len(c.slots) {
		c.slots[index-1] = capture{text: text, set: true}
	}
}

// lookup returns the text committed for group index (1-based).  It
// reports false for a group that hasn't matched in the current
// attempt, and for an index beyond the declared groups.
func (c *captures) lookup(index int) (string, bool) {
	if index < 1 || index > len(c.slots) {
		return "", false
	}
	slot := c.slots[index-1]
	return slot.text, slot.set
}

// strings returns the capture list ordered by group number; groups
// that didn't participate in the match are empty
func (c *captures) strings() []string {
	out := make([]string, len(c.slots))
	for i, slot := range c.slots {
		out[i] = slot.text
	}
	return out
}
