package driven

import (
	"context"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

// FragmentSource reads the XML fragments of a FIX Repository dataset.
type FragmentSource interface {
	// Fragment reads the file name under dir holding entities of kind.
	// Returns domain.ErrNotFound when the file does not exist.
	Fragment(ctx context.Context, dir string, kind domain.Kind, name string) (*domain.Fragment, error)
}

// Checksummer computes an integrity tag over a source directory.
type Checksummer interface {
	// Checksum returns a stable digest of every file under dir.
	Checksum(ctx context.Context, dir string) (string, error)
}
