package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"retreat/internal/booking"
	"retreat/internal/domain"
	"retreat/internal/dto"
	apperrors "retreat/internal/errors"
)

type BookingStore interface {
	CreateBooking(ctx context.Context, b domain.Booking, items []domain.BookingItem) (*domain.Booking, error)
	FindByReference(ctx context.Context, reference string) (*domain.Booking, []domain.BookingItem, error)
}

type Validator interface {
	Validate(i interface{}) error
}

const retryBaseBackoff = 50 * time.Millisecond

type CheckoutUseCase struct {
	sessions         SessionStore
	bookings         BookingStore
	validator        Validator
	logger           *zap.Logger
	maxRetryAttempts int

	mu       sync.Mutex
	inFlight map[string]bool

	newReference func() string
	sleep        func(ctx context.Context, d time.Duration) error
}

func NewCheckoutUseCase(
	sessions SessionStore,
	bookings BookingStore,
	validator Validator,
	logger *zap.Logger,
	maxRetryAttempts int,
) *CheckoutUseCase {
	if maxRetryAttempts < 1 {
		maxRetryAttempts = 1
	}
	return &CheckoutUseCase{
		sessions:         sessions,
		bookings:         bookings,
		validator:        validator,
		logger:           logger,
		maxRetryAttempts: maxRetryAttempts,
		inFlight:         make(map[string]bool),
		newReference:     newReference,
		sleep:            sleepContext,
	}
}

// Checkout persists the session's current selection as a confirmed booking
// and resets the session. Customer details are kept for the next booking.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, sessionID string) (*dto.CheckoutResult, error) {
	uc.logger.Info("checkout started", zap.String("sessionId", sessionID))

	if !uc.acquire(sessionID) {
		return nil, apperrors.NewConflictError("checkout already in progress for this session")
	}
	defer uc.release(sessionID)

	var (
		b        domain.Booking
		items    []domain.BookingItem
		draftErr error
	)
	err := uc.sessions.View(sessionID, func(s *booking.Session) {
		b, items, draftErr = uc.draft(s)
	})
	if err != nil {
		return nil, err
	}
	if draftErr != nil {
		return nil, draftErr
	}

	created, err := uc.createWithRetry(ctx, b, items)
	if err != nil {
		return nil, err
	}

	if err := uc.sessions.Update(sessionID, func(s *booking.Session) error {
		s.ResetAllSelections()
		return nil
	}); err != nil {
		uc.logger.Warn("session not reset after checkout", zap.String("sessionId", sessionID), zap.Error(err))
	}

	uc.logger.Info("checkout completed",
		zap.String("sessionId", sessionID),
		zap.String("reference", created.Reference),
		zap.Float64("totalPrice", created.TotalPrice),
	)

	lines := make([]dto.BookingItemView, len(items))
	for i, item := range items {
		lines[i] = itemView(item)
	}

	return &dto.CheckoutResult{
		BookingID:  created.ID,
		Reference:  created.Reference,
		Status:     created.Status,
		TotalPrice: created.TotalPrice,
		Items:      lines,
	}, nil
}

func (uc *CheckoutUseCase) GetBooking(ctx context.Context, reference string) (*domain.Booking, []domain.BookingItem, error) {
	return uc.bookings.FindByReference(ctx, reference)
}

// draft builds the booking rows from s. Runs under the store lock.
func (uc *CheckoutUseCase) draft(s *booking.Session) (domain.Booking, []domain.BookingItem, error) {
	info := s.Data.CustomerInfo
	if err := uc.validator.Validate(dto.CustomerInfoRequest{
		FirstName: info.FirstName,
		LastName:  info.LastName,
		Email:     info.Email,
		Phone:     info.Phone,
	}); err != nil {
		return domain.Booking{}, nil, err
	}

	b := domain.Booking{
		Reference:   uc.newReference(),
		BookingType: s.BookingType,
		Duration:    s.Data.Duration,
		FirstName:   info.FirstName,
		LastName:    info.LastName,
		Email:       info.Email,
		Status:      domain.BookingStatusConfirmed,
	}
	if info.Phone != "" {
		b.Phone = stringPtr(info.Phone)
	}

	switch s.BookingType {
	case domain.BookingTypePackage, domain.BookingTypeRoom:
		var missing []string
		if s.BookingType == domain.BookingTypePackage && s.Data.SelectedPackage == nil {
			missing = append(missing, "package")
		}
		if s.Data.SelectedRoom == nil {
			missing = append(missing, "room")
		}
		if s.Data.StartDate == nil {
			missing = append(missing, "start date")
		}
		if len(missing) > 0 {
			return domain.Booking{}, nil, apperrors.NewConflictError(
				fmt.Sprintf("%s booking is incomplete: missing %s", s.BookingType, strings.Join(missing, ", ")))
		}
		if s.Data.SelectedPackage != nil {
			b.PackageID = stringPtr(s.Data.SelectedPackage.ID)
		}
		b.RoomID = stringPtr(s.Data.SelectedRoom.ID)
		b.StartDate = s.Data.StartDate
		b.EndDate = s.EndDate()
	case domain.BookingTypeEvent:
		if s.Registration == nil && (!s.Event.Priceable() || s.Event.EventDate == nil) {
			return domain.Booking{}, nil, apperrors.NewConflictError("event booking is incomplete: venue, date, type and attendees are required")
		}
		if s.Event.EventSpace != "" {
			b.EventSpace = stringPtr(s.Event.EventSpace)
		}
		b.StartDate = s.Event.EventDate
		b.EndDate = s.Event.EventDate
	default:
		return domain.Booking{}, nil, apperrors.NewConflictError("no booking type selected")
	}

	breakdown := s.Breakdown()
	b.TotalPrice = breakdown.Total

	items := make([]domain.BookingItem, len(breakdown.Lines))
	for i, l := range breakdown.Lines {
		items[i] = domain.BookingItem{
			Kind:        string(l.Kind),
			RefID:       l.RefID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Amount:      l.Amount,
		}
	}

	return b, items, nil
}

func (uc *CheckoutUseCase) createWithRetry(ctx context.Context, b domain.Booking, items []domain.BookingItem) (*domain.Booking, error) {
	maxAttempts := uc.maxRetryAttempts

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		created, err := uc.bookings.CreateBooking(ctx, b, items)
		if err == nil {
			return created, nil
		}

		if !isDeadlockError(err) {
			return nil, apperrors.NewInternalError("storing booking", err)
		}
		if attempt == maxAttempts {
			break
		}

		backoff := retryBaseBackoff << (attempt - 1)
		// ±20% jitter
		backoff = time.Duration(float64(backoff) * (0.8 + rand.Float64()*0.4))
		uc.logger.Warn("deadlock detected, retrying",
			zap.Int("attempt", attempt),
			zap.Int("maxAttempts", maxAttempts),
			zap.String("reference", b.Reference),
			zap.Duration("backoff", backoff),
		)
		if err := uc.sleep(ctx, backoff); err != nil {
			return nil, err
		}
	}

	return nil, apperrors.NewDeadlockError("max retries exceeded")
}

func (uc *CheckoutUseCase) acquire(sessionID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.inFlight[sessionID] {
		return false
	}
	uc.inFlight[sessionID] = true
	return true
}

func (uc *CheckoutUseCase) release(sessionID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inFlight, sessionID)
}

func isDeadlockError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	return false
}

func newReference() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "RT-" + strings.ToUpper(id[:10])
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func stringPtr(s string) *string {
	return &s
}

func itemView(item domain.BookingItem) dto.BookingItemView {
	return dto.BookingItemView{
		Kind:        item.Kind,
		RefID:       item.RefID,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Amount:      item.Amount,
	}
}
