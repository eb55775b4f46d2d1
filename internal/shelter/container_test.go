package shelter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// === Unit Tests: Add / Lines ===

func TestContainer_Add_PreservesInsertionOrder(t *testing.T) {
	c := NewContainer()
	defer c.Close()

	c.Add(NewDog("Rex"))
	c.Add(NewCat("Tom"))

	require.Equal(t, []string{"Dog: Rex", "Cat: Tom"}, c.Lines())
}

func TestContainer_Lines_Empty(t *testing.T) {
	c := NewContainer()
	defer c.Close()

	require.Empty(t, c.Lines())
}

// === Unit Tests: RemoveByType ===

func TestContainer_RemoveByType_RemovesAllMatches(t *testing.T) {
	c := NewContainer()
	defer c.Close()

	c.Add(NewDog("Rex"))
	c.Add(NewCat("Tom"))
	c.Add(NewDog("Fido"))

	c.RemoveByType("Dog")

	require.Equal(t, []string{"Cat: Tom"}, c.Lines())
}

func TestContainer_RemoveByType_Scenario(t *testing.T) {
	c := NewContainer()
	defer c.Close()

	c.Add(NewDog("Rex"))
	c.Add(NewCat("Tom"))

	c.RemoveByType("Dog")

	require.Equal(t, []string{"Cat: Tom"}, c.Lines())
}

func TestContainer_RemoveByType_NoMatchIsNoop(t *testing.T) {
	c := NewContainer()
	defer c.Close()

	c.Add(NewDog("Rex"))

	c.RemoveByType("Cat")

	require.Equal(t, []string{"Dog: Rex"}, c.Lines())
}

func TestContainer_RemoveByType_KeepsRelativeOrder(t *testing.T) {
	c := NewContainer()
	defer c.Close()

	c.Add(NewCat("A"))
	c.Add(NewDog("B"))
	c.Add(NewCat("C"))
	c.Add(NewDog("D"))
	c.Add(NewCat("E"))

	c.RemoveByType("Dog")

	require.Equal(t, []string{"Cat: A", "Cat: C", "Cat: E"}, c.Lines())
}

// === Unit Tests: InfoByType ===

func TestContainer_InfoByType(t *testing.T) {
	c := NewContainer()
	defer c.Close()

	c.Add(NewDog("Rex"))
	c.Add(NewCat("Tom"))
	c.Add(NewDog("Fido"))

	require.Equal(t, []string{"Dog Rex says Woof", "Dog Fido says Woof"}, c.InfoByType("Dog"))
	require.Equal(t, []string{"Cat Tom says Meow"}, c.InfoByType("Cat"))
	require.Empty(t, c.InfoByType("Bird"))
}

// === Unit Tests: SortByType ===

func TestContainer_SortByType_Scenario(t *testing.T) {
	c := NewContainer()
	defer c.Close()

	c.Add(NewDog("Rex"))
	c.Add(NewCat("Tom"))
	c.Add(NewDog("Fido"))

	c.SortByType()

	// Cat sorts before Dog; the two dogs keep insertion order.
	require.Equal(t, []string{"Cat: Tom", "Dog: Rex", "Dog: Fido"}, c.Lines())
}

func TestContainer_SortByType_Idempotent(t *testing.T) {
	c := NewContainer()
	defer c.Close()

	c.Add(NewDog("Rex"))
	c.Add(NewCat("Tom"))
	c.Add(NewDog("Fido"))

	c.SortByType()
	sorted := c.Lines()

	c.SortByType()
	require.Equal(t, sorted, c.Lines())
}

// === Unit Tests: Instance counter ===

func TestInstanceCount_TracksLiveContainers(t *testing.T) {
	base := InstanceCount()

	containers := make([]*Container, 0, 3)
	for range 3 {
		containers = append(containers, NewContainer())
	}
	require.Equal(t, base+3, InstanceCount())

	containers[0].Close()
	containers[1].Close()
	require.Equal(t, base+1, InstanceCount())

	containers[2].Close()
	require.Equal(t, base, InstanceCount())
}

func TestContainer_Close_OnlyDecrementsOnce(t *testing.T) {
	base := InstanceCount()

	c := NewContainer()
	c.Close()
	c.Close()

	require.Equal(t, base, InstanceCount())
}
