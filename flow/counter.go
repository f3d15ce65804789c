package flow

import (
	"fmt"
)

// Counter hands out label identifiers for conditional blocks.
// A Counter must be used by a single build only.
type Counter struct {
	next int
}

// NewCounter returns a counter whose first reserved value is start.
func NewCounter(start int) *Counter {
	return &Counter{next: start}
}

// Reserve returns the next identifier, and advances the counter.
func (c *Counter) Reserve() (id int) {
	id = c.next
	c.next++
	return
}

// Value returns the identifier the next Reserve will return.
func (c *Counter) Value() int {
	return c.next
}

// EndLabel is the label at the end of conditional block id.
func EndLabel(id int) string {
	return fmt.Sprintf(".end_if_%d", id)
}

// ElseLabel is the label at the start of the else branch of block id.
func ElseLabel(id int) string {
	return fmt.Sprintf(".else_%d", id)
}

// ThenLabel is the label at the start of the then branch of block id.
func ThenLabel(id int) string {
	return fmt.Sprintf(".then_%d", id)
}
