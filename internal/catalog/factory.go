package catalog

import (
	"errors"
	"fmt"
	"strconv"
)

// Item factory tags. Input tags are lowercase; the constructed item reports
// the capitalized variant name from Type().
const (
	TagBook     = "book"
	TagMagazine = "magazine"
)

// ErrUnknownItemType is returned for a tag that matches no item variant.
var ErrUnknownItemType = errors.New("unknown library item type")

// NewItem constructs the item variant for the given tag. For "book" the field
// is the author; for "magazine" it must parse as an integer issue number, and
// a malformed field is a recoverable error rather than a fatal one.
func NewItem(tag, title, field string) (Item, error) {
	switch tag {
	case TagBook:
		return NewBook(title, field), nil
	case TagMagazine:
		issue, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parsing issue number %q: %w", field, err)
		}
		return NewMagazine(title, issue), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownItemType, tag)
	}
}
