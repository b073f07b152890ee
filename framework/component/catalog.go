package component

import "strings"

// Catalog is the discovery manifest: the ordered set of candidate
// descriptors the caller has registered. It replaces classpath scanning —
// "discovery" is exactly the set of entries registered here.
//
// A Catalog is not safe for concurrent mutation; register everything
// before handing it to a Manager.
type Catalog struct {
	order  []TypeID
	byType map[TypeID]Descriptor
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byType: make(map[TypeID]Descriptor)}
}

// Add registers a candidate descriptor.
//
// Records without a role marker are ignored, mirroring how a scanner skips
// unmarked types. Duplicate reports of the same TypeID are tolerated: the
// first registration wins and later ones are dropped silently. Conflicting
// *claims* (two different types providing the same TypeID) are still
// caught later, at blueprint time.
func (c *Catalog) Add(d Descriptor) *Catalog {
	if d.Role == 0 || d.Type == "" {
		return c
	}
	if _, seen := c.byType[d.Type]; seen {
		return c
	}
	c.byType[d.Type] = d
	c.order = append(c.order, d.Type)
	return c
}

// Register adds multiple descriptors in order.
func (c *Catalog) Register(descriptors ...Descriptor) *Catalog {
	for _, d := range descriptors {
		c.Add(d)
	}
	return c
}

// Scan returns the registered descriptors whose TypeID matches any of the
// given prefixes, in registration order. With no prefixes, every
// registered descriptor is returned.
//
// Registration order is what makes validation errors deterministic: the
// blueprint builder reports the first conflict in discovery order.
func (c *Catalog) Scan(prefixes ...string) []Descriptor {
	out := make([]Descriptor, 0, len(c.order))
	for _, id := range c.order {
		if len(prefixes) == 0 || matchesAny(string(id), prefixes) {
			out = append(out, c.byType[id])
		}
	}
	return out
}

// Len returns the number of registered candidates.
func (c *Catalog) Len() int { return len(c.order) }

func matchesAny(id string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}
