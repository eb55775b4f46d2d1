package shelter

import (
	"sort"
	"sync"
	"sync/atomic"
)

// liveContainers tracks how many containers are currently alive. It is a
// diagnostic counter and is never consulted for correctness.
var liveContainers atomic.Int64

// InstanceCount returns the number of currently-live containers.
func InstanceCount() int64 {
	return liveContainers.Load()
}

// Container owns an ordered collection of shared animal references.
// Animals keep insertion order until SortByType is called. Container is not
// safe for concurrent mutation; readers taking snapshots must not interleave
// with writers.
type Container struct {
	animals   []Animal
	closeOnce sync.Once
}

// NewContainer creates an empty container and increments the live-instance
// counter.
func NewContainer() *Container {
	liveContainers.Add(1)
	return &Container{animals: make([]Animal, 0)}
}

// Close releases the container's slot in the live-instance counter. Safe to
// call more than once; only the first call decrements.
func (c *Container) Close() {
	c.closeOnce.Do(func() {
		liveContainers.Add(-1)
	})
}

// Add appends a shared animal reference.
func (c *Container) Add(animal Animal) {
	c.animals = append(c.animals, animal)
}

// Len returns the number of animals.
func (c *Container) Len() int {
	return len(c.animals)
}

// Animals returns the collection in current order.
func (c *Container) Animals() []Animal {
	return c.animals
}

// Lines returns one display line per animal, in current order.
func (c *Container) Lines() []string {
	lines := make([]string, 0, len(c.animals))
	for _, a := range c.animals {
		lines = append(lines, a.Display())
	}
	return lines
}

// RemoveByType removes every animal whose variant tag equals tag, keeping
// the relative order of the rest. A tag with no matches is a no-op.
func (c *Container) RemoveByType(tag string) {
	kept := c.animals[:0]
	for _, a := range c.animals {
		if a.Type() != tag {
			kept = append(kept, a)
		}
	}
	// Drop references past the new length so removed animals can be collected.
	for i := len(kept); i < len(c.animals); i++ {
		c.animals[i] = nil
	}
	c.animals = kept
}

// InfoByType returns one info line for every animal whose variant tag equals
// tag, in current order.
func (c *Container) InfoByType(tag string) []string {
	lines := make([]string, 0)
	for _, a := range c.animals {
		if a.Type() == tag {
			lines = append(lines, a.Info())
		}
	}
	return lines
}

// SortByType stable-sorts the collection by variant tag, ascending. Animals
// with equal tags keep their relative order.
func (c *Container) SortByType() {
	sort.SliceStable(c.animals, func(i, j int) bool {
		return c.animals[i].Type() < c.animals[j].Type()
	})
}
