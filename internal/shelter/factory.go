package shelter

import (
	"errors"
	"fmt"
)

// Animal factory tags. Input tags are lowercase; the constructed animal
// reports the capitalized variant name from Type().
const (
	TagDog = "dog"
	TagCat = "cat"
)

// ErrUnknownAnimalType is returned for a tag that matches no animal variant.
var ErrUnknownAnimalType = errors.New("unknown animal type")

// NewAnimal constructs the animal variant for the given tag. This is the
// static dispatch path used by the menu loop.
func NewAnimal(tag, name string) (Animal, error) {
	switch tag {
	case TagDog:
		return NewDog(name), nil
	case TagCat:
		return NewCat(name), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAnimalType, tag)
	}
}

// Factory produces one fixed animal variant. It is the polymorphic
// alternative to NewAnimal; the menu loop does not use it, but it is part of
// the public surface.
type Factory interface {
	Create(name string) Animal
}

// DogFactory produces dogs.
type DogFactory struct{}

// Create returns a new dog with the given name.
func (DogFactory) Create(name string) Animal { return NewDog(name) }

// CatFactory produces cats.
type CatFactory struct{}

// Create returns a new cat with the given name.
func (CatFactory) Create(name string) Animal { return NewCat(name) }

// Compile-time checks that both factories implement Factory.
var (
	_ Factory = DogFactory{}
	_ Factory = CatFactory{}
)
