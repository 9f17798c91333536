package service

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"retreat/internal/domain"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type BookingRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, b domain.Booking) (uint, error)
	FindByReference(ctx context.Context, reference string) (*domain.Booking, error)
}

type BookingItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.BookingItem) (uint, error)
	FindByBookingID(ctx context.Context, bookingID uint) ([]domain.BookingItem, error)
}

// CheckoutService writes a booking and its line items in one transaction.
type CheckoutService struct {
	db          TransactionManager
	bookingRepo BookingRepository
	itemRepo    BookingItemRepository
	logger      *zap.Logger
	txTimeout   time.Duration
}

func NewCheckoutService(
	db TransactionManager,
	bookingRepo BookingRepository,
	itemRepo BookingItemRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *CheckoutService {
	if txTimeout <= 0 {
		txTimeout = 5 * time.Second
	}
	return &CheckoutService{
		db:          db,
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		logger:      logger,
		txTimeout:   txTimeout,
	}
}

func (s *CheckoutService) CreateBooking(ctx context.Context, b domain.Booking, items []domain.BookingItem) (*domain.Booking, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	// MySQL ignores rollback after commit.
	defer tx.Rollback()

	id, err := s.bookingRepo.Insert(txCtx, tx, b)
	if err != nil {
		s.logger.Error("failed to insert booking", zap.String("reference", b.Reference), zap.Error(err))
		return nil, err
	}
	b.ID = id

	for _, item := range items {
		item.BookingID = id
		if _, err := s.itemRepo.Insert(txCtx, tx, item); err != nil {
			s.logger.Error("failed to insert booking item", zap.Uint("bookingId", id), zap.String("kind", item.Kind), zap.Error(err))
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.Uint("bookingId", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("booking committed",
		zap.Uint("bookingId", id),
		zap.String("reference", b.Reference),
		zap.Int("itemCount", len(items)),
		zap.Float64("totalPrice", b.TotalPrice),
	)

	return &b, nil
}

func (s *CheckoutService) FindByReference(ctx context.Context, reference string) (*domain.Booking, []domain.BookingItem, error) {
	b, err := s.bookingRepo.FindByReference(ctx, reference)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.itemRepo.FindByBookingID(ctx, b.ID)
	if err != nil {
		return nil, nil, err
	}

	return b, items, nil
}
