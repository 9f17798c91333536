package repository

import (
	"context"
	"database/sql"
	"fmt"

	"retreat/internal/domain"
)

type MySQLCatalogRepository struct {
	db *sql.DB
}

func NewMySQLCatalogRepository(db *sql.DB) *MySQLCatalogRepository {
	return &MySQLCatalogRepository{db: db}
}

func (r *MySQLCatalogRepository) FindPackages(ctx context.Context) ([]domain.Package, error) {
	query := `
		SELECT id, name, description, basePrice, type, image, includesStandardRoom
		FROM Packages
		WHERE isActive = 1
		ORDER BY position, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying packages: %w", err)
	}
	defer rows.Close()

	var packages []domain.Package
	for rows.Next() {
		var p domain.Package
		var image sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.BasePrice, &p.Type, &image, &p.IncludesStandardRoom); err != nil {
			return nil, fmt.Errorf("scanning package row: %w", err)
		}
		p.Image = image.String
		packages = append(packages, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating package rows: %w", err)
	}

	return packages, nil
}

func (r *MySQLCatalogRepository) FindRooms(ctx context.Context) ([]domain.Room, error) {
	query := `
		SELECT id, type, name, description, price, image, isStandard
		FROM Rooms
		WHERE isActive = 1
		ORDER BY position, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying rooms: %w", err)
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var room domain.Room
		var roomType string
		if err := rows.Scan(&room.ID, &roomType, &room.Name, &room.Description, &room.Price, &room.Image, &room.IsStandard); err != nil {
			return nil, fmt.Errorf("scanning room row: %w", err)
		}
		room.Type = domain.RoomType(roomType)
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating room rows: %w", err)
	}

	return rooms, nil
}

// FindAddOnCategories returns categories in display order with their items
// nested. Categories without items are still returned.
func (r *MySQLCatalogRepository) FindAddOnCategories(ctx context.Context) ([]domain.AddOnCategory, error) {
	query := `
		SELECT c.id, c.name, i.id, i.name, i.description, i.price, i.defaultQuantity
		FROM AddOnCategories c
		LEFT JOIN AddOnItems i ON i.categoryId = c.id AND i.isActive = 1
		ORDER BY c.position, c.id, i.position, i.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying add-on categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.AddOnCategory
	index := make(map[string]int)
	for rows.Next() {
		var (
			categoryID, categoryName string
			itemID, itemName         sql.NullString
			itemDescription          sql.NullString
			itemPrice                sql.NullFloat64
			itemQuantity             sql.NullInt64
		)
		if err := rows.Scan(&categoryID, &categoryName, &itemID, &itemName, &itemDescription, &itemPrice, &itemQuantity); err != nil {
			return nil, fmt.Errorf("scanning add-on row: %w", err)
		}

		pos, ok := index[categoryID]
		if !ok {
			categories = append(categories, domain.AddOnCategory{ID: categoryID, Name: categoryName, Items: []domain.AddOnItem{}})
			pos = len(categories) - 1
			index[categoryID] = pos
		}

		if !itemID.Valid {
			continue
		}
		quantity := int(itemQuantity.Int64)
		if quantity < 1 {
			quantity = 1
		}
		categories[pos].Items = append(categories[pos].Items, domain.AddOnItem{
			ID:          itemID.String,
			Name:        itemName.String,
			Description: itemDescription.String,
			Price:       itemPrice.Float64,
			Quantity:    quantity,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating add-on rows: %w", err)
	}

	return categories, nil
}

func (r *MySQLCatalogRepository) FindRoomAddOns(ctx context.Context) ([]domain.RoomAddOn, error) {
	query := `
		SELECT id, name, description, price, icon
		FROM RoomAddOns
		WHERE isActive = 1
		ORDER BY position, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying room add-ons: %w", err)
	}
	defer rows.Close()

	var addOns []domain.RoomAddOn
	for rows.Next() {
		var a domain.RoomAddOn
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Price, &a.Icon); err != nil {
			return nil, fmt.Errorf("scanning room add-on row: %w", err)
		}
		addOns = append(addOns, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating room add-on rows: %w", err)
	}

	return addOns, nil
}
