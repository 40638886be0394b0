package scene

// Cursor turns polled cursor positions into move events. The first position
// only seeds it, so a scene does not react to wherever the pointer rested
// when the host started.
type Cursor struct {
	x, y   int
	seeded bool
}

// Moved records (x, y) and reports whether it differs from the previous poll.
func (c *Cursor) Moved(x, y int) bool {
	if !c.seeded {
		c.x, c.y, c.seeded = x, y, true
		return false
	}
	moved := x != c.x || y != c.y
	c.x, c.y = x, y
	return moved
}
