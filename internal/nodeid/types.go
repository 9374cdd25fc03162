package nodeid

import "strconv"

// PathSegment represents a single component of an address path, e.g., `name[index]`.
type PathSegment struct {
	Name  string
	Index int // -1 indicates no index is present.
}

// NewPathSegment creates a new path segment without an index.
func NewPathSegment(name string) PathSegment {
	return PathSegment{Name: name, Index: -1}
}

// NewPathSegmentWithIndex creates a new path segment that includes an index.
func NewPathSegmentWithIndex(name string, index int) PathSegment {
	return PathSegment{Name: name, Index: index}
}

// HasIndex returns true if the path segment has an explicit index.
func (ps PathSegment) HasIndex() bool {
	return ps.Index != -1
}

// String renders the segment as it appears in an address.
func (ps PathSegment) String() string {
	if !ps.HasIndex() {
		return ps.Name
	}
	return ps.Name + "[" + strconv.Itoa(ps.Index) + "]"
}

// Address is a path from the program root to a symbol. The empty address
// names the root itself.
type Address struct {
	Path []PathSegment
}

// Root returns the address of the program root.
func Root() *Address {
	return &Address{}
}
