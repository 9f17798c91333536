package repository

import (
	"context"
	"database/sql"
	"fmt"

	"retreat/internal/domain"
	"retreat/internal/errors"
)

type MySQLBookingRepository struct {
	db *sql.DB
}

func NewMySQLBookingRepository(db *sql.DB) *MySQLBookingRepository {
	return &MySQLBookingRepository{db: db}
}

func (r *MySQLBookingRepository) Insert(ctx context.Context, tx *sql.Tx, b domain.Booking) (uint, error) {
	query := `
		INSERT INTO Bookings (reference, bookingType, packageId, roomId, eventSpace,
		                      startDate, endDate, duration, firstName, lastName, email, phone,
		                      status, totalPrice)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		b.Reference, string(b.BookingType), b.PackageID, b.RoomID, b.EventSpace,
		b.StartDate, b.EndDate, string(b.Duration), b.FirstName, b.LastName, b.Email, b.Phone,
		b.Status, b.TotalPrice,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting booking: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLBookingRepository) FindByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	query := `
		SELECT id, reference, bookingType, packageId, roomId, eventSpace,
		       startDate, endDate, duration, firstName, lastName, email, phone,
		       status, totalPrice, createdAt
		FROM Bookings
		WHERE reference = ?
	`

	var (
		b           domain.Booking
		bookingType string
		duration    string
		startDate   sql.NullTime
		endDate     sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, reference).Scan(
		&b.ID, &b.Reference, &bookingType, &b.PackageID, &b.RoomID, &b.EventSpace,
		&startDate, &endDate, &duration, &b.FirstName, &b.LastName, &b.Email, &b.Phone,
		&b.Status, &b.TotalPrice, &b.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("booking %s not found", reference))
	}
	if err != nil {
		return nil, fmt.Errorf("querying booking by reference: %w", err)
	}

	b.BookingType = domain.BookingType(bookingType)
	b.Duration = domain.Duration(duration)
	if startDate.Valid {
		b.StartDate = &startDate.Time
	}
	if endDate.Valid {
		b.EndDate = &endDate.Time
	}

	return &b, nil
}

func (r *MySQLBookingRepository) UpdateStatus(ctx context.Context, tx *sql.Tx, id uint, status string) error {
	query := `UPDATE Bookings SET status = ? WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating booking status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("booking with id %d not found", id))
	}

	return nil
}
