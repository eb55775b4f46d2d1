package shelter

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// drawContainer fills a container with a random mix of dogs and cats.
func drawContainer(t *rapid.T, c *Container) {
	numAnimals := rapid.IntRange(0, 50).Draw(t, "numAnimals")
	for i := 0; i < numAnimals; i++ {
		name := rapid.StringMatching(`[A-Z][a-z]{2,8}`).Draw(t, "name")
		if rapid.Bool().Draw(t, "isDog") {
			c.Add(NewDog(name))
		} else {
			c.Add(NewCat(name))
		}
	}
}

// === Property-Based Tests ===

func TestContainer_PropertyBased_RemoveByType(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := NewContainer()
		defer c.Close()
		drawContainer(t, c)

		tag := rapid.SampledFrom([]string{"Dog", "Cat", "Bird"}).Draw(t, "tag")

		// Expected survivors: every animal with a different tag, in order.
		want := make([]string, 0)
		for _, a := range c.Animals() {
			if a.Type() != tag {
				want = append(want, a.ID())
			}
		}

		c.RemoveByType(tag)

		got := make([]string, 0)
		for _, a := range c.Animals() {
			require.NotEqual(t, tag, a.Type())
			got = append(got, a.ID())
		}
		require.Equal(t, want, got)
	})
}

func TestContainer_PropertyBased_SortByType(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := NewContainer()
		defer c.Close()
		drawContainer(t, c)

		// Stability oracle: ids of each tag in insertion order.
		byTag := make(map[string][]string)
		for _, a := range c.Animals() {
			byTag[a.Type()] = append(byTag[a.Type()], a.ID())
		}

		c.SortByType()

		// Sorted ascending by tag.
		tags := make([]string, 0, c.Len())
		for _, a := range c.Animals() {
			tags = append(tags, a.Type())
		}
		require.True(t, sort.StringsAreSorted(tags))

		// Stable: equal-tag animals keep their relative order.
		gotByTag := make(map[string][]string)
		for _, a := range c.Animals() {
			gotByTag[a.Type()] = append(gotByTag[a.Type()], a.ID())
		}
		require.Equal(t, byTag, gotByTag)

		// Idempotent: sorting again yields the same sequence.
		before := c.Lines()
		c.SortByType()
		require.Equal(t, before, c.Lines())
	})
}
