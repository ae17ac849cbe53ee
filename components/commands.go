package components

import "github.com/yohamta/donburi"

// CommandsData buffers entity removals until the end of a system pass
type CommandsData struct {
	pending []*donburi.Entry
	marked  map[donburi.Entity]struct{}
}

// Despawn marks entry for removal. Marking twice is a no-op.
func (c *CommandsData) Despawn(entry *donburi.Entry) {
	if c.marked == nil {
		c.marked = make(map[donburi.Entity]struct{})
	}
	if _, ok := c.marked[entry.Entity()]; ok {
		return
	}
	c.marked[entry.Entity()] = struct{}{}
	c.pending = append(c.pending, entry)
}

// Marked reports whether entry is waiting to be removed
func (c *CommandsData) Marked(entry *donburi.Entry) bool {
	_, ok := c.marked[entry.Entity()]
	return ok
}

// Drain returns the pending entries and resets the buffer
func (c *CommandsData) Drain() []*donburi.Entry {
	pending := c.pending
	c.pending = nil
	clear(c.marked)
	return pending
}

var Commands = donburi.NewComponentType[CommandsData]()
