package database

import (
	"context"
	"io"

	"github.com/akyairhashvil/tempdash/internal/models"
)

// DatasetLoader imports a delimited dataset.
type DatasetLoader interface {
	LoadCSV(ctx context.Context, r io.Reader) (LoadStats, error)
	LoadFile(ctx context.Context, path string) (LoadStats, error)
}

// DatasetReader answers the queries the dashboard makes.
type DatasetReader interface {
	YearBounds(ctx context.Context) (int, int, error)
	Columns(ctx context.Context) ([]string, error)
	Observations(ctx context.Context, r models.YearRange) (models.Table, error)
	GetMetadata(ctx context.Context, key string) (string, bool)
}

// Repository combines all repository interfaces.
type Repository interface {
	DatasetLoader
	DatasetReader
}

var _ Repository = (*Database)(nil)
