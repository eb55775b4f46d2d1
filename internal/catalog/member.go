package catalog

import "fmt"

// Member is a library member, stored by value. Names are not unique.
type Member struct {
	name string
}

// NewMember creates a member.
func NewMember(name string) Member {
	return Member{name: name}
}

// Name returns the member name.
func (m Member) Name() string { return m.name }

// Display returns the display line for the member.
func (m Member) Display() string {
	return fmt.Sprintf("Member: %s", m.name)
}
