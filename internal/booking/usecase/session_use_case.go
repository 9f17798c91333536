package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"retreat/internal/booking"
	"retreat/internal/domain"
	"retreat/internal/dto"
	apperrors "retreat/internal/errors"
	"retreat/internal/pricing"
)

type SessionStore interface {
	Create(init func(*booking.Session)) string
	Update(id string, fn func(*booking.Session) error) error
	View(id string, fn func(*booking.Session)) error
	Delete(id string) error
}

// SessionUseCase drives the booking wizard. Each call applies one session
// operation under the store lock and returns the resulting view.
type SessionUseCase struct {
	store  SessionStore
	rates  pricing.Rates
	logger *zap.Logger
}

func NewSessionUseCase(store SessionStore, rates pricing.Rates, logger *zap.Logger) *SessionUseCase {
	return &SessionUseCase{
		store:  store,
		rates:  rates,
		logger: logger,
	}
}

// CreateSession opens a session seeded from deep-link query parameters. The
// names of parameters that could not be applied are returned alongside.
func (uc *SessionUseCase) CreateSession(ctx context.Context, q url.Values) (*dto.SessionView, []string, error) {
	var (
		view    dto.SessionView
		ignored []string
	)
	id := uc.store.Create(func(s *booking.Session) {
		ignored = s.SeedFromQuery(q)
		view = NewSessionView(s)
	})

	if len(ignored) > 0 {
		uc.logger.Info("session seed parameters ignored", zap.String("sessionId", id), zap.Strings("params", ignored))
	}
	uc.logger.Debug("session created", zap.String("sessionId", id), zap.String("bookingType", string(view.BookingType)))

	return &view, ignored, nil
}

func (uc *SessionUseCase) GetSession(ctx context.Context, id string) (*dto.SessionView, error) {
	var view dto.SessionView
	err := uc.store.View(id, func(s *booking.Session) {
		view = NewSessionView(s)
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (uc *SessionUseCase) SelectPackage(ctx context.Context, id, packageID string) (*dto.SessionView, error) {
	return uc.mutate(id, "select package", func(s *booking.Session) error {
		return s.SelectPackage(packageID)
	})
}

func (uc *SessionUseCase) ResetPackage(ctx context.Context, id string) (*dto.SessionView, error) {
	return uc.mutate(id, "reset package", func(s *booking.Session) error {
		s.ResetPackage()
		return nil
	})
}

func (uc *SessionUseCase) SetDates(ctx context.Context, id string, start *time.Time, d domain.Duration) (*dto.SessionView, error) {
	return uc.mutate(id, "set dates", func(s *booking.Session) error {
		return s.SetDates(start, d)
	})
}

func (uc *SessionUseCase) SelectRoom(ctx context.Context, id, roomID string) (*dto.SessionView, error) {
	return uc.mutate(id, "select room", func(s *booking.Session) error {
		return s.SelectRoom(roomID)
	})
}

func (uc *SessionUseCase) ResetRoom(ctx context.Context, id string) (*dto.SessionView, error) {
	return uc.mutate(id, "reset room", func(s *booking.Session) error {
		s.ResetRoom()
		return nil
	})
}

func (uc *SessionUseCase) ToggleAddOn(ctx context.Context, id, categoryID, itemID string) (*dto.SessionView, error) {
	return uc.mutate(id, "toggle add-on", func(s *booking.Session) error {
		return s.ToggleAddOn(categoryID, itemID)
	})
}

func (uc *SessionUseCase) RemoveAddOn(ctx context.Context, id, categoryID, itemID string) (*dto.SessionView, error) {
	return uc.mutate(id, "remove add-on", func(s *booking.Session) error {
		return s.RemoveAddOn(categoryID, itemID)
	})
}

func (uc *SessionUseCase) UpdateAddOnQuantity(ctx context.Context, id, categoryID, itemID string, quantity int) (*dto.SessionView, error) {
	return uc.mutate(id, "update add-on quantity", func(s *booking.Session) error {
		return s.UpdateAddOnQuantity(categoryID, itemID, quantity)
	})
}

func (uc *SessionUseCase) ToggleRoomAddOn(ctx context.Context, id, addOnID string) (*dto.SessionView, error) {
	return uc.mutate(id, "toggle room add-on", func(s *booking.Session) error {
		return s.ToggleRoomAddOn(addOnID)
	})
}

func (uc *SessionUseCase) RemoveRoomAddOn(ctx context.Context, id, addOnID string) (*dto.SessionView, error) {
	return uc.mutate(id, "remove room add-on", func(s *booking.Session) error {
		return s.RemoveRoomAddOn(addOnID)
	})
}

// UpdateEvent replaces the event details. Venue and event type must come
// from the rate tables when set.
func (uc *SessionUseCase) UpdateEvent(ctx context.Context, id string, e domain.EventState) (*dto.SessionView, error) {
	if err := uc.validateEvent(e); err != nil {
		return nil, err
	}
	return uc.mutate(id, "update event", func(s *booking.Session) error {
		s.UpdateEvent(e)
		return nil
	})
}

func (uc *SessionUseCase) NextEventStage(ctx context.Context, id string) (*dto.SessionView, error) {
	return uc.mutate(id, "next event stage", func(s *booking.Session) error {
		return s.NextEventStage()
	})
}

func (uc *SessionUseCase) SetEventRegistration(ctx context.Context, id string, reg domain.EventRegistration) (*dto.SessionView, error) {
	return uc.mutate(id, "set event registration", func(s *booking.Session) error {
		s.SetEventRegistration(reg)
		return nil
	})
}

func (uc *SessionUseCase) ClearEventRegistration(ctx context.Context, id string) (*dto.SessionView, error) {
	return uc.mutate(id, "clear event registration", func(s *booking.Session) error {
		s.ClearEventRegistration()
		return nil
	})
}

func (uc *SessionUseCase) UpdateCustomerInfo(ctx context.Context, id string, info domain.CustomerInfo) (*dto.SessionView, error) {
	return uc.mutate(id, "update customer info", func(s *booking.Session) error {
		s.UpdateCustomerInfo(info)
		return nil
	})
}

func (uc *SessionUseCase) SetBookingType(ctx context.Context, id string, t domain.BookingType) (*dto.SessionView, error) {
	return uc.mutate(id, "set booking type", func(s *booking.Session) error {
		return s.SetBookingType(t)
	})
}

func (uc *SessionUseCase) NextStep(ctx context.Context, id string) (*dto.SessionView, error) {
	return uc.mutate(id, "next step", func(s *booking.Session) error {
		return s.GoToNextStep()
	})
}

func (uc *SessionUseCase) PreviousStep(ctx context.Context, id string) (*dto.SessionView, error) {
	return uc.mutate(id, "previous step", func(s *booking.Session) error {
		s.GoToPreviousStep()
		return nil
	})
}

func (uc *SessionUseCase) GoToStep(ctx context.Context, id string, step int) (*dto.SessionView, error) {
	return uc.mutate(id, "go to step", func(s *booking.Session) error {
		return s.GoToStep(step)
	})
}

func (uc *SessionUseCase) Reset(ctx context.Context, id string) (*dto.SessionView, error) {
	return uc.mutate(id, "reset selections", func(s *booking.Session) error {
		s.ResetAllSelections()
		return nil
	})
}

// EndSession discards the session. Later calls with the same id are NotFound.
func (uc *SessionUseCase) EndSession(ctx context.Context, id string) error {
	if err := uc.store.Delete(id); err != nil {
		return err
	}
	uc.logger.Debug("session ended", zap.String("sessionId", id))
	return nil
}

func (uc *SessionUseCase) mutate(id, op string, fn func(*booking.Session) error) (*dto.SessionView, error) {
	var view dto.SessionView
	err := uc.store.Update(id, func(s *booking.Session) error {
		if err := fn(s); err != nil {
			return err
		}
		view = NewSessionView(s)
		return nil
	})
	if err != nil {
		uc.logger.Debug("session operation rejected", zap.String("sessionId", id), zap.String("op", op), zap.Error(err))
		return nil, err
	}

	uc.logger.Debug("session updated",
		zap.String("sessionId", id),
		zap.String("op", op),
		zap.Int("step", view.CurrentStep),
		zap.Float64("totalPrice", view.TotalPrice),
	)
	return &view, nil
}

func (uc *SessionUseCase) validateEvent(e domain.EventState) error {
	var details []apperrors.ValidationDetail
	if e.EventSpace != "" && uc.rates.Venue(e.EventSpace) == nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "eventSpace",
			Message: fmt.Sprintf("unknown event space %q", e.EventSpace),
		})
	}
	if e.EventType != "" {
		if _, ok := uc.rates.EventTypeMultipliers[e.EventType]; !ok {
			details = append(details, apperrors.ValidationDetail{
				Field:   "eventType",
				Message: fmt.Sprintf("unknown event type %q", e.EventType),
			})
		}
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid event details", details...)
	}
	return nil
}
