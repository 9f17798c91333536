package repository

import (
	"context"
	"database/sql"
	"fmt"

	"retreat/internal/domain"
)

type MySQLBookingItemRepository struct {
	db *sql.DB
}

func NewMySQLBookingItemRepository(db *sql.DB) *MySQLBookingItemRepository {
	return &MySQLBookingItemRepository{db: db}
}

func (r *MySQLBookingItemRepository) Insert(ctx context.Context, tx *sql.Tx, item domain.BookingItem) (uint, error) {
	query := `
		INSERT INTO BookingItems (bookingId, kind, refId, description, quantity, unitPrice, amount)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		item.BookingID, item.Kind, item.RefID, item.Description, item.Quantity, item.UnitPrice, item.Amount,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting booking item: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLBookingItemRepository) FindByBookingID(ctx context.Context, bookingID uint) ([]domain.BookingItem, error) {
	query := `
		SELECT id, bookingId, kind, refId, description, quantity, unitPrice, amount
		FROM BookingItems
		WHERE bookingId = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("querying booking items: %w", err)
	}
	defer rows.Close()

	var items []domain.BookingItem
	for rows.Next() {
		var item domain.BookingItem
		if err := rows.Scan(&item.ID, &item.BookingID, &item.Kind, &item.RefID, &item.Description,
			&item.Quantity, &item.UnitPrice, &item.Amount); err != nil {
			return nil, fmt.Errorf("scanning booking item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating booking item rows: %w", err)
	}

	return items, nil
}
