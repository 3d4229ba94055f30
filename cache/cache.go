package cache

import (
	"context"
	"errors"

	"github.com/jsnacademy/trb-prep-api/models"
)

// CatalogCache caches the public materials listing, which is the
// hottest read in the storefront and changes only on admin edits.
type CatalogCache interface {
	GetMaterials(ctx context.Context, category string) ([]models.Material, error)
	SetMaterials(ctx context.Context, category string, materials []models.Material) error
	Invalidate(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")

// Noop disables caching; every read falls through to the DB.
type Noop struct{}

func (Noop) GetMaterials(context.Context, string) ([]models.Material, error) {
	return nil, ErrCacheMiss
}

func (Noop) SetMaterials(context.Context, string, []models.Material) error { return nil }

func (Noop) Invalidate(context.Context) error { return nil }
