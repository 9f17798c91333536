package module

import (
	"database/sql"

	"go.uber.org/zap"

	"retreat/internal/booking"
	"retreat/internal/booking/controller"
	"retreat/internal/booking/repository"
	"retreat/internal/booking/service"
	"retreat/internal/booking/usecase"
	"retreat/internal/catalog"
	"retreat/internal/config"
	"retreat/internal/pricing"
	"retreat/internal/validation"
)

// NewModule wires the booking wizard. Checkouts go to MySQL when db is set
// and to process memory otherwise. The returned store needs its sweeper
// started by the caller.
func NewModule(cat *catalog.Catalog, calc *pricing.Calculator, db *sql.DB, cfg *config.Config, logger *zap.Logger) (*controller.BookingController, *booking.Store) {
	store := booking.NewStore(cat, calc, cfg.Session.TTL, logger)

	var bookings usecase.BookingStore
	if db != nil {
		bookings = service.NewCheckoutService(
			db,
			repository.NewMySQLBookingRepository(db),
			repository.NewMySQLBookingItemRepository(db),
			logger,
			cfg.Checkout.TxTimeout,
		)
	} else {
		logger.Info("no database configured, bookings are kept in memory")
		bookings = repository.NewMemoryBookingRepository()
	}

	v := validation.New()
	sessions := usecase.NewSessionUseCase(store, calc.Rates(), logger)
	checkout := usecase.NewCheckoutUseCase(store, bookings, v, logger, cfg.Checkout.MaxRetryAttempts)

	return controller.NewBookingController(sessions, checkout, v, logger), store
}
