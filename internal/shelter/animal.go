// Package shelter implements the domain layer for the animal registry demo.
//
// Animals are polymorphic over a fixed variant set (Dog, Cat) and are held by
// shared reference: the same animal can live in a Container and be handed to
// the notify package. Each animal carries a uuid identity so clones remain
// distinguishable in logs.
package shelter

import (
	"fmt"

	"github.com/google/uuid"
)

// Animal is a polymorphic registry entry.
type Animal interface {
	// ID returns the unique identity assigned at construction.
	ID() string

	// Name returns the animal's name.
	Name() string

	// Type returns the variant tag ("Dog" or "Cat").
	Type() string

	// Display returns the short display line.
	Display() string

	// Info returns the descriptive info line.
	Info() string

	// Clone returns an independent copy with the same variant and name
	// and a fresh identity.
	Clone() Animal
}

// Dog is an Animal variant.
type Dog struct {
	id   string
	name string
}

// NewDog creates a dog.
func NewDog(name string) *Dog {
	return &Dog{id: uuid.NewString(), name: name}
}

func (d *Dog) ID() string   { return d.id }
func (d *Dog) Name() string { return d.name }
func (d *Dog) Type() string { return "Dog" }

// Display returns the short display line.
func (d *Dog) Display() string {
	return fmt.Sprintf("Dog: %s", d.name)
}

// Info returns the descriptive info line.
func (d *Dog) Info() string {
	return fmt.Sprintf("Dog %s says Woof", d.name)
}

// Clone returns an independent dog with the same name.
func (d *Dog) Clone() Animal {
	return NewDog(d.name)
}

// Cat is an Animal variant.
type Cat struct {
	id   string
	name string
}

// NewCat creates a cat.
func NewCat(name string) *Cat {
	return &Cat{id: uuid.NewString(), name: name}
}

func (c *Cat) ID() string   { return c.id }
func (c *Cat) Name() string { return c.name }
func (c *Cat) Type() string { return "Cat" }

// Display returns the short display line.
func (c *Cat) Display() string {
	return fmt.Sprintf("Cat: %s", c.name)
}

// Info returns the descriptive info line.
func (c *Cat) Info() string {
	return fmt.Sprintf("Cat %s says Meow", c.name)
}

// Clone returns an independent cat with the same name.
func (c *Cat) Clone() Animal {
	return NewCat(c.name)
}

// Compile-time checks that both variants implement Animal.
var (
	_ Animal = (*Dog)(nil)
	_ Animal = (*Cat)(nil)
)
