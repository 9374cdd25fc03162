package ast

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Loader is the interface for a format-specific source front end.
type Loader interface {
	// Load reads one compilation unit from path. A nil Program is returned
	// only when the diagnostics contain errors.
	Load(ctx context.Context, path string) (*Program, hcl.Diagnostics)
}
