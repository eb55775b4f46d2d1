// Package collection provides a small generic ordered container.
//
// It exists alongside the domain containers as a comparison-sorted
// alternative: any ordered element type, insertion order until Sort. The
// shelter demo uses it as its notification feed.
package collection

import (
	"cmp"
	"fmt"
	"slices"
)

// Container holds values of any ordered type.
type Container[T cmp.Ordered] struct {
	items []T
}

// New creates an empty container.
func New[T cmp.Ordered]() *Container[T] {
	return &Container[T]{items: make([]T, 0)}
}

// Add appends a value.
func (c *Container[T]) Add(item T) {
	c.items = append(c.items, item)
}

// Len returns the number of values.
func (c *Container[T]) Len() int {
	return len(c.items)
}

// Sort orders the values ascending.
func (c *Container[T]) Sort() {
	slices.Sort(c.items)
}

// Items returns the values in current order.
func (c *Container[T]) Items() []T {
	return c.items
}

// Lines returns one formatted line per value, in current order.
func (c *Container[T]) Lines() []string {
	lines := make([]string, 0, len(c.items))
	for _, item := range c.items {
		lines = append(lines, fmt.Sprint(item))
	}
	return lines
}
