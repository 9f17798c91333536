package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retreat/internal/domain"
	apperrors "retreat/internal/errors"
)

func TestDefault_IsValid(t *testing.T) {
	c := Default()

	require.NoError(t, c.Validate())
	assert.Len(t, c.Packages, 4)
	assert.Len(t, c.Rooms, 3)
	assert.Len(t, c.AddOnCategories, 3)
	assert.Len(t, c.RoomAddOns, 4)
}

func TestCatalog_Lookups(t *testing.T) {
	c := Default()

	room := c.Room("summit-suite")
	require.NotNil(t, room)
	assert.Equal(t, domain.RoomTypeSuite, room.Type)
	assert.Nil(t, c.Room("missing"))

	std := c.StandardRoom()
	require.NotNil(t, std)
	assert.Equal(t, "garden-single", std.ID)
}

func TestCatalog_LookupsReturnCopies(t *testing.T) {
	c := Default()

	room := c.Room("garden-single")
	room.Price = 1

	assert.Equal(t, 130.0, c.Room("garden-single").Price)
}

func TestCatalog_NewAddOnCategoriesResetsSelection(t *testing.T) {
	c := Default()
	c.AddOnCategories[0].Items[0].Selected = true
	c.AddOnCategories[0].Items[0].Quantity = 0
	c.RoomAddOns[0].Selected = true

	categories := c.NewAddOnCategories()
	assert.False(t, categories[0].Items[0].Selected)
	assert.Equal(t, 1, categories[0].Items[0].Quantity)

	categories[0].Items[1].Selected = true
	assert.False(t, c.AddOnCategories[0].Items[1].Selected)

	addOns := c.NewRoomAddOns()
	assert.False(t, addOns[0].Selected)
}

func TestCatalog_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Catalog)
		field  string
	}{
		{
			name:   "no standard room",
			mutate: func(c *Catalog) { c.Rooms[0].IsStandard = false },
			field:  "rooms",
		},
		{
			name:   "two standard rooms",
			mutate: func(c *Catalog) { c.Rooms[1].IsStandard = true },
			field:  "rooms",
		},
		{
			name:   "room cheaper than standard",
			mutate: func(c *Catalog) { c.Rooms[2].Price = 100 },
			field:  "rooms[2].price",
		},
		{
			name:   "duplicate package id",
			mutate: func(c *Catalog) { c.Packages[1].ID = c.Packages[0].ID },
			field:  "packages[1].id",
		},
		{
			name:   "negative package price",
			mutate: func(c *Catalog) { c.Packages[0].BasePrice = -1 },
			field:  "packages[0].basePrice",
		},
		{
			name:   "unknown room type",
			mutate: func(c *Catalog) { c.Rooms[1].Type = "penthouse" },
			field:  "rooms[1].type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)

			err := c.Validate()
			require.Error(t, err)

			ve, ok := apperrors.IsValidationError(err)
			require.True(t, ok)

			fields := make([]string, len(ve.Details))
			for i, d := range ve.Details {
				fields[i] = d.Field
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

type mockRepository struct {
	FindPackagesFunc        func(ctx context.Context) ([]domain.Package, error)
	FindRoomsFunc           func(ctx context.Context) ([]domain.Room, error)
	FindAddOnCategoriesFunc func(ctx context.Context) ([]domain.AddOnCategory, error)
	FindRoomAddOnsFunc      func(ctx context.Context) ([]domain.RoomAddOn, error)
}

func (m *mockRepository) FindPackages(ctx context.Context) ([]domain.Package, error) {
	return m.FindPackagesFunc(ctx)
}

func (m *mockRepository) FindRooms(ctx context.Context) ([]domain.Room, error) {
	return m.FindRoomsFunc(ctx)
}

func (m *mockRepository) FindAddOnCategories(ctx context.Context) ([]domain.AddOnCategory, error) {
	return m.FindAddOnCategoriesFunc(ctx)
}

func (m *mockRepository) FindRoomAddOns(ctx context.Context) ([]domain.RoomAddOn, error) {
	return m.FindRoomAddOnsFunc(ctx)
}

func repositoryFor(c *Catalog) *mockRepository {
	return &mockRepository{
		FindPackagesFunc:        func(ctx context.Context) ([]domain.Package, error) { return c.Packages, nil },
		FindRoomsFunc:           func(ctx context.Context) ([]domain.Room, error) { return c.Rooms, nil },
		FindAddOnCategoriesFunc: func(ctx context.Context) ([]domain.AddOnCategory, error) { return c.AddOnCategories, nil },
		FindRoomAddOnsFunc:      func(ctx context.Context) ([]domain.RoomAddOn, error) { return c.RoomAddOns, nil },
	}
}

func TestLoad_Success(t *testing.T) {
	want := Default()

	got, err := Load(context.Background(), repositoryFor(want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_RepositoryError(t *testing.T) {
	repo := repositoryFor(Default())
	boom := errors.New("connection reset")
	repo.FindRoomsFunc = func(ctx context.Context) ([]domain.Room, error) { return nil, boom }

	_, err := Load(context.Background(), repo)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "loading rooms")
}

func TestLoad_InvalidCatalog(t *testing.T) {
	c := Default()
	c.Rooms[0].IsStandard = false

	_, err := Load(context.Background(), repositoryFor(c))
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}
