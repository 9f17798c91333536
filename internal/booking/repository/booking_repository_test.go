package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retreat/internal/domain"
	"retreat/internal/errors"
	"retreat/internal/testutil"
)

func strPtr(s string) *string {
	return &s
}

func sampleBooking(reference string) domain.Booking {
	start := time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)
	return domain.Booking{
		Reference:   reference,
		BookingType: domain.BookingTypePackage,
		PackageID:   strPtr("yoga-immersion"),
		RoomID:      strPtr("garden-single"),
		StartDate:   &start,
		EndDate:     &end,
		Duration:    domain.Duration7,
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		Status:      domain.BookingStatusConfirmed,
		TotalPrice:  2010,
	}
}

// Unit Tests

func TestNewMySQLBookingRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLBookingRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestBookingRepository_InsertAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLBookingRepository(db)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	id, err := repo.Insert(ctx, tx, sampleBooking("RT-INSERT01"))
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.Greater(t, id, uint(0))

	found, err := repo.FindByReference(ctx, "RT-INSERT01")
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)
	assert.Equal(t, domain.BookingTypePackage, found.BookingType)
	assert.Equal(t, domain.Duration7, found.Duration)
	require.NotNil(t, found.PackageID)
	assert.Equal(t, "yoga-immersion", *found.PackageID)
	assert.Nil(t, found.EventSpace)
	assert.Nil(t, found.Phone)
	require.NotNil(t, found.StartDate)
	assert.Equal(t, "2026-11-10", found.StartDate.Format("2006-01-02"))
	assert.Equal(t, 2010.0, found.TotalPrice)
}

func TestBookingRepository_FindByReference_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLBookingRepository(db)

	booking, err := repo.FindByReference(context.Background(), "RT-MISSING")
	assert.Nil(t, booking)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLBookingRepository(db)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	id, err := repo.Insert(ctx, tx, sampleBooking("RT-STATUS01"))
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(ctx, tx, id, domain.BookingStatusCanceled))
	err = repo.UpdateStatus(ctx, tx, id+1000, domain.BookingStatusCanceled)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	require.NoError(t, tx.Commit())

	found, err := repo.FindByReference(ctx, "RT-STATUS01")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCanceled, found.Status)
}

func TestBookingItemRepository_InsertAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	bookingRepo := NewMySQLBookingRepository(db)
	itemRepo := NewMySQLBookingItemRepository(db)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	bookingID, err := bookingRepo.Insert(ctx, tx, sampleBooking("RT-ITEMS01"))
	require.NoError(t, err)

	lines := []domain.BookingItem{
		{BookingID: bookingID, Kind: "package", RefID: "yoga-immersion", Description: "Yoga Immersion", Quantity: 7, UnitPrice: 180, Amount: 1260},
		{BookingID: bookingID, Kind: "addon", RefID: "sound-bath", Description: "Sound Bath", Quantity: 3, UnitPrice: 35, Amount: 105},
	}
	for _, line := range lines {
		_, err := itemRepo.Insert(ctx, tx, line)
		require.NoError(t, err)
	}
	require.NoError(t, tx.Commit())

	items, err := itemRepo.FindByBookingID(ctx, bookingID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "package", items[0].Kind)
	assert.Equal(t, 1260.0, items[0].Amount)
	assert.Equal(t, "sound-bath", items[1].RefID)
	assert.Equal(t, 3.0, items[1].Quantity)
}
