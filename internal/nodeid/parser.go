package nodeid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// segmentRegex is used to parse a single segment of a path, e.g., `name` or `name[1]`.
var segmentRegex = regexp.MustCompile(`^([^.\[\]\s]+)(?:\[(\d+)\])?$`)

// Parse creates a new Address struct by parsing its canonical string
// representation. The empty string parses to the root address.
func Parse(rawID string) (*Address, error) {
	addr := Root()
	if rawID == "" {
		return addr, nil
	}

	for _, segmentStr := range strings.Split(rawID, ".") {
		if segmentStr == "" {
			return nil, fmt.Errorf("address %q contains an empty segment", rawID)
		}

		matches := segmentRegex.FindStringSubmatch(segmentStr)
		if matches == nil {
			return nil, fmt.Errorf("invalid path segment format: %q", segmentStr)
		}

		segment := NewPathSegment(matches[1])
		if matches[2] != "" {
			index, err := strconv.Atoi(matches[2])
			if err != nil {
				return nil, fmt.Errorf("index of segment %q: %w", segmentStr, err)
			}
			segment.Index = index
		}
		addr.Path = append(addr.Path, segment)
	}

	return addr, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level constants.
func MustParse(rawID string) *Address {
	addr, err := Parse(rawID)
	if err != nil {
		panic(err)
	}
	return addr
}
