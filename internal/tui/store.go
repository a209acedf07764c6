package tui

import (
	"context"

	"github.com/akyairhashvil/tempdash/internal/models"
)

// Store defines the dataset queries the TUI requires.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=tui
type Store interface {
	Columns(ctx context.Context) ([]string, error)
	Observations(ctx context.Context, r models.YearRange) (models.Table, error)
	GetMetadata(ctx context.Context, key string) (string, bool)
}
