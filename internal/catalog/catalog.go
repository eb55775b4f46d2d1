package catalog

// Catalog aggregates the item and member collections. It is constructed
// explicitly and handed to whatever owns the menu loop; there is no ambient
// process-wide instance.
type Catalog struct {
	items   []Item
	members []Member
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		items:   make([]Item, 0),
		members: make([]Member, 0),
	}
}

// AddItem appends an item. The catalog takes ownership.
func (c *Catalog) AddItem(item Item) {
	c.items = append(c.items, item)
}

// AddMember appends a member by value.
func (c *Catalog) AddMember(member Member) {
	c.members = append(c.members, member)
}

// Items returns the item collection in insertion order.
func (c *Catalog) Items() []Item {
	return c.items
}

// Members returns the member collection in insertion order.
func (c *Catalog) Members() []Member {
	return c.members
}

// ItemLines returns one display line per item, in insertion order.
func (c *Catalog) ItemLines() []string {
	lines := make([]string, 0, len(c.items))
	for _, item := range c.items {
		lines = append(lines, item.Display())
	}
	return lines
}

// MemberLines returns one display line per member, in insertion order.
func (c *Catalog) MemberLines() []string {
	lines := make([]string, 0, len(c.members))
	for _, member := range c.members {
		lines = append(lines, member.Display())
	}
	return lines
}
