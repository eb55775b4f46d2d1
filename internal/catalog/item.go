// Package catalog implements the domain layer for the library catalog demo.
//
// The catalog holds two independent collections: polymorphic items (books and
// magazines) and members. Both preserve insertion order. Items are constructed
// through NewItem or the per-variant constructors; the variant tag is fixed at
// construction and never changes.
package catalog

import "fmt"

// Item is a polymorphic catalog entry.
type Item interface {
	// Display returns the human-readable line for the item.
	Display() string

	// Type returns the variant tag ("Book" or "Magazine").
	Type() string
}

// Book is an Item variant with a title and an author.
type Book struct {
	title  string
	author string
}

// NewBook creates a book item.
func NewBook(title, author string) *Book {
	return &Book{title: title, author: author}
}

// Title returns the book title.
func (b *Book) Title() string { return b.title }

// Author returns the book author.
func (b *Book) Author() string { return b.author }

// Display returns the display line for the book.
func (b *Book) Display() string {
	return fmt.Sprintf("Book: %s by %s", b.title, b.author)
}

// Type returns the variant tag.
func (b *Book) Type() string { return "Book" }

// Magazine is an Item variant with a title and an issue number.
type Magazine struct {
	title string
	issue int
}

// NewMagazine creates a magazine item.
func NewMagazine(title string, issue int) *Magazine {
	return &Magazine{title: title, issue: issue}
}

// Title returns the magazine title.
func (m *Magazine) Title() string { return m.title }

// Issue returns the issue number.
func (m *Magazine) Issue() int { return m.issue }

// Display returns the display line for the magazine.
func (m *Magazine) Display() string {
	return fmt.Sprintf("Magazine: %s Issue: %d", m.title, m.issue)
}

// Type returns the variant tag.
func (m *Magazine) Type() string { return "Magazine" }

// Compile-time checks that both variants implement Item.
var (
	_ Item = (*Book)(nil)
	_ Item = (*Magazine)(nil)
)
