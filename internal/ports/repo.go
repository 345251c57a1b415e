package ports

import (
	"context"

	"maven-depman/internal/types"
)

// PomRepositoryPort fetches and parses the POM document for a coordinate.
// Implementations must surface fetch and parse failures as errors; a BOM
// that cannot be resolved aborts the whole generation request.
type PomRepositoryPort interface {
	FetchPom(ctx context.Context, coordinates types.Coordinates) (types.PomDocument, error)
}
