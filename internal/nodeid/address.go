package nodeid

import (
	"slices"
	"strings"
)

// String serializes the Address into its canonical path string representation.
func (a *Address) String() string {
	if a == nil {
		return ""
	}

	var sb strings.Builder
	for i, segment := range a.Path {
		if i > 0 {
			sb.WriteRune('.')
		}
		sb.WriteString(segment.String())
	}

	return sb.String()
}

// Equal checks for deep equality between two Address pointers.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return slices.Equal(a.Path, other.Path)
}

// IsRoot reports whether a addresses the program root.
func (a *Address) IsRoot() bool {
	return a == nil || len(a.Path) == 0
}

// Child returns a new address with seg appended. a is not modified.
func (a *Address) Child(seg PathSegment) *Address {
	var path []PathSegment
	if a != nil {
		path = make([]PathSegment, 0, len(a.Path)+1)
		path = append(path, a.Path...)
	}
	return &Address{Path: append(path, seg)}
}
