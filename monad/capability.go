package monad

import "strings"

// Capability is a set of traversal properties of a Monad.
// The empty set is a forward sequence that can be traversed once.
type Capability uint8

const (
	// CapMultiPass means the sequence can be traversed again from the start.
	CapMultiPass Capability = 1 << iota
	// CapBidirectional means the sequence can also be traversed from the end.
	CapBidirectional
	// CapSized means the length is known without visiting the elements.
	CapSized
	// CapRandomAccess means any element can be read by index.
	CapRandomAccess
)

var capabilityNames = []struct {
	c    Capability
	name string
}{
	{CapMultiPass, "multi-pass"},
	{CapBidirectional, "bidirectional"},
	{CapSized, "sized"},
	{CapRandomAccess, "random-access"},
}

// Has reports whether c contains every capability in want.
func (c Capability) Has(want Capability) bool {
	return c&want == want
}

func (c Capability) String() string {
	if c == 0 {
		return "single-pass"
	}
	var names []string
	for _, n := range capabilityNames {
		if c.Has(n.c) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}
