package catalog

import (
	"context"
	"fmt"

	"retreat/internal/domain"
)

type Repository interface {
	FindPackages(ctx context.Context) ([]domain.Package, error)
	FindRooms(ctx context.Context) ([]domain.Room, error)
	FindAddOnCategories(ctx context.Context) ([]domain.AddOnCategory, error)
	FindRoomAddOns(ctx context.Context) ([]domain.RoomAddOn, error)
}

// Load reads the whole catalog from repo and validates it.
func Load(ctx context.Context, repo Repository) (*Catalog, error) {
	packages, err := repo.FindPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	rooms, err := repo.FindRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading rooms: %w", err)
	}

	categories, err := repo.FindAddOnCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading add-on categories: %w", err)
	}

	roomAddOns, err := repo.FindRoomAddOns(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading room add-ons: %w", err)
	}

	c := &Catalog{
		Packages:        packages,
		Rooms:           rooms,
		AddOnCategories: categories,
		RoomAddOns:      roomAddOns,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}
