package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retreat/internal/domain"
	"retreat/internal/errors"
)

func TestMemoryBookingRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryBookingRepository()
	fixed := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }
	ctx := context.Background()

	items := []domain.BookingItem{
		{Kind: "package", RefID: "yoga-immersion", Quantity: 7, UnitPrice: 180, Amount: 1260},
		{Kind: "room", RefID: "garden-single", Quantity: 7, UnitPrice: 130, Amount: 910},
	}

	created, err := repo.CreateBooking(ctx, sampleBooking("RT-MEM0001"), items)
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, fixed, created.CreatedAt)

	found, foundItems, err := repo.FindByReference(ctx, "RT-MEM0001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	require.Len(t, foundItems, 2)
	assert.Equal(t, created.ID, foundItems[0].BookingID)
	assert.Equal(t, uint(1), foundItems[0].ID)
	assert.Equal(t, uint(2), foundItems[1].ID)

	// caller's slice is untouched
	assert.Zero(t, items[0].BookingID)
}

func TestMemoryBookingRepository_DuplicateReference(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	_, err := repo.CreateBooking(ctx, sampleBooking("RT-DUP0001"), nil)
	require.NoError(t, err)

	_, err = repo.CreateBooking(ctx, sampleBooking("RT-DUP0001"), nil)
	_, ok := errors.IsConflictError(err)
	assert.True(t, ok)
}

func TestMemoryBookingRepository_NotFound(t *testing.T) {
	repo := NewMemoryBookingRepository()

	_, _, err := repo.FindByReference(context.Background(), "RT-NONE")
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestMemoryBookingRepository_CanceledContext(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.CreateBooking(ctx, sampleBooking("RT-CTX0001"), nil)
	assert.ErrorIs(t, err, context.Canceled)
}
