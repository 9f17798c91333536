package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"retreat/internal/domain"
	"retreat/internal/errors"
)

// MemoryBookingRepository keeps checked-out bookings in process memory. It
// stands in for MySQL when no database is configured.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	nextID   uint
	nextItem uint
	bookings map[string]domain.Booking
	items    map[uint][]domain.BookingItem
	now      func() time.Time
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{
		bookings: make(map[string]domain.Booking),
		items:    make(map[uint][]domain.BookingItem),
		now:      time.Now,
	}
}

func (r *MemoryBookingRepository) CreateBooking(ctx context.Context, b domain.Booking, items []domain.BookingItem) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[b.Reference]; exists {
		return nil, errors.NewConflictError(fmt.Sprintf("booking %s already exists", b.Reference))
	}

	r.nextID++
	b.ID = r.nextID
	b.CreatedAt = r.now().UTC()

	stored := make([]domain.BookingItem, len(items))
	for i, item := range items {
		r.nextItem++
		item.ID = r.nextItem
		item.BookingID = b.ID
		stored[i] = item
	}

	r.bookings[b.Reference] = b
	r.items[b.ID] = stored

	return &b, nil
}

func (r *MemoryBookingRepository) FindByReference(ctx context.Context, reference string) (*domain.Booking, []domain.BookingItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[reference]
	if !ok {
		return nil, nil, errors.NewNotFoundError(fmt.Sprintf("booking %s not found", reference))
	}

	items := make([]domain.BookingItem, len(r.items[b.ID]))
	copy(items, r.items[b.ID])

	return &b, items, nil
}
