package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"retreat/internal/catalog/repository"
	"retreat/internal/config"
	"retreat/internal/pricing"
)

// NewModule resolves the catalog for the configured source and returns it
// together with its HTTP controller.
func NewModule(ctx context.Context, cfg config.CatalogConfig, db *sql.DB, rates pricing.Rates, logger *zap.Logger) (*Catalog, *Controller, error) {
	var (
		c   *Catalog
		err error
	)

	switch cfg.Source {
	case config.CatalogSourceMySQL:
		if db == nil {
			return nil, nil, fmt.Errorf("catalog source %q requires a database connection", cfg.Source)
		}
		c, err = Load(ctx, repository.NewMySQLCatalogRepository(db))
		if err != nil {
			return nil, nil, err
		}
	case config.CatalogSourceStatic, "":
		c = Default()
		if err = c.Validate(); err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}

	logger.Info("catalog loaded",
		zap.String("source", cfg.Source),
		zap.Int("packages", len(c.Packages)),
		zap.Int("rooms", len(c.Rooms)),
		zap.Int("addOnCategories", len(c.AddOnCategories)),
		zap.Int("roomAddOns", len(c.RoomAddOns)),
	)

	return c, NewController(c, rates, logger), nil
}
