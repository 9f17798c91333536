package usecase

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"retreat/internal/booking"
	"retreat/internal/catalog"
	"retreat/internal/domain"
	apperrors "retreat/internal/errors"
	"retreat/internal/pricing"
)

func newTestStore() *booking.Store {
	cat := catalog.Default()
	calc := pricing.NewCalculator(cat.Rooms, pricing.DefaultRates())
	return booking.NewStore(cat, calc, time.Hour, zap.NewNop())
}

func newTestRates() pricing.Rates {
	return pricing.DefaultRates()
}

func newTestSessionUseCase() *SessionUseCase {
	return NewSessionUseCase(newTestStore(), newTestRates(), zap.NewNop())
}

func date(s string) *time.Time {
	t, err := time.Parse(booking.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestCreateSession_Empty(t *testing.T) {
	uc := newTestSessionUseCase()

	view, ignored, err := uc.CreateSession(context.Background(), url.Values{})
	require.NoError(t, err)
	assert.Empty(t, ignored)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, domain.StepPackage, view.CurrentStep)
	assert.Equal(t, domain.BookingTypeNone, view.BookingType)
	assert.Equal(t, domain.Duration4, view.Duration)
	assert.Nil(t, view.StartDate)
	assert.Nil(t, view.EndDate)
	assert.Equal(t, 0.0, view.TotalPrice)
	assert.Equal(t, []string{}, view.SelectedAddOns)
	require.NotNil(t, view.StandardRoom)
	assert.Equal(t, "garden-single", view.StandardRoom.ID)
}

func TestCreateSession_SeededFromQuery(t *testing.T) {
	uc := newTestSessionUseCase()
	q := url.Values{
		"bookingType": {"package"},
		"packageId":   {"detox-renewal"},
		"roomId":      {"treehouse"},
		"startDate":   {"2026-11-10"},
		"endDate":     {"2026-11-17"},
	}

	view, ignored, err := uc.CreateSession(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, []string{"roomId"}, ignored)
	assert.Equal(t, domain.BookingTypePackage, view.BookingType)
	assert.Equal(t, domain.Duration7, view.Duration)
	require.NotNil(t, view.StartDate)
	assert.Equal(t, "2026-11-10", *view.StartDate)
	require.NotNil(t, view.EndDate)
	assert.Equal(t, "2026-11-17", *view.EndDate)
	require.NotNil(t, view.SelectedRoom)
	assert.Equal(t, "garden-single", view.SelectedRoom.ID)
	assert.Equal(t, 1400.0, view.TotalPrice)
	assert.Equal(t, view.TotalPrice, view.Breakdown.Total)
}

func TestGetSession_NotFound(t *testing.T) {
	uc := newTestSessionUseCase()

	_, err := uc.GetSession(context.Background(), "missing")
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestSessionUseCase_PackageWizard(t *testing.T) {
	ctx := context.Background()
	uc := newTestSessionUseCase()
	created, _, err := uc.CreateSession(ctx, url.Values{})
	require.NoError(t, err)
	id := created.ID

	view, err := uc.SelectPackage(ctx, id, "yoga-immersion")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingTypePackage, view.BookingType)

	view, err = uc.SetDates(ctx, id, date("2026-12-01"), domain.Duration7)
	require.NoError(t, err)
	assert.Equal(t, "2026-12-08", *view.EndDate)

	view, err = uc.ToggleAddOn(ctx, id, "wellness-activities", "sound-bath")
	require.NoError(t, err)
	assert.Equal(t, []string{"sound-bath"}, view.SelectedAddOns)

	view, err = uc.UpdateAddOnQuantity(ctx, id, "wellness-activities", "sound-bath", 2)
	require.NoError(t, err)

	view, err = uc.SelectRoom(ctx, id, "summit-suite")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingTypePackage, view.BookingType)
	assert.Equal(t, 190.0, view.UpgradePrice)

	view, err = uc.ToggleRoomAddOn(ctx, id, "champagne")
	require.NoError(t, err)

	// 180*7 + 35*2 + 190*7 + 60
	assert.Equal(t, 2720.0, view.TotalPrice)

	view, err = uc.NextStep(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StepAddOns, view.CurrentStep)

	view, err = uc.GoToStep(ctx, id, domain.StepCheckout)
	require.NoError(t, err)
	assert.Equal(t, domain.StepCheckout, view.CurrentStep)

	view, err = uc.PreviousStep(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StepRoom, view.CurrentStep)

	view, err = uc.RemoveRoomAddOn(ctx, id, "champagne")
	require.NoError(t, err)
	view, err = uc.RemoveAddOn(ctx, id, "wellness-activities", "sound-bath")
	require.NoError(t, err)
	assert.Equal(t, 2590.0, view.TotalPrice)

	view, err = uc.ResetRoom(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, view.SelectedRoom)

	view, err = uc.ResetPackage(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingTypeNone, view.BookingType)
	assert.Equal(t, 0.0, view.TotalPrice)
}

func TestSessionUseCase_RejectedOperationLeavesSession(t *testing.T) {
	ctx := context.Background()
	uc := newTestSessionUseCase()
	created, _, err := uc.CreateSession(ctx, url.Values{})
	require.NoError(t, err)

	_, err = uc.SelectPackage(ctx, created.ID, "missing")
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)

	_, err = uc.GoToStep(ctx, created.ID, domain.StepCheckout)
	_, ok = apperrors.IsValidationError(err)
	assert.True(t, ok)

	view, err := uc.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingTypeNone, view.BookingType)
	assert.Equal(t, domain.StepPackage, view.CurrentStep)
}

func TestSessionUseCase_ViewIsSnapshot(t *testing.T) {
	ctx := context.Background()
	uc := newTestSessionUseCase()
	created, _, err := uc.CreateSession(ctx, url.Values{})
	require.NoError(t, err)

	created.AddOnCategories[0].Items[0].Selected = true
	created.RoomAddOns[0].Selected = true

	view, err := uc.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, view.AddOnCategories[0].Items[0].Selected)
	assert.False(t, view.RoomAddOns[0].Selected)
}

func TestSessionUseCase_EventFlow(t *testing.T) {
	ctx := context.Background()
	uc := newTestSessionUseCase()
	created, _, err := uc.CreateSession(ctx, url.Values{})
	require.NoError(t, err)
	id := created.ID

	_, err = uc.SelectPackage(ctx, id, "spa-luxury")
	require.NoError(t, err)

	view, err := uc.UpdateEvent(ctx, id, domain.EventState{
		EventSpace:    "conference-hall",
		EventDate:     date("2027-03-02"),
		Attendees:     40,
		EventType:     "corporate",
		EventDuration: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingTypeEvent, view.BookingType)
	assert.Nil(t, view.SelectedPackage)
	require.NotNil(t, view.Event.EventDate)
	assert.Equal(t, "2027-03-02", *view.Event.EventDate)
	// 1200 + 300 extra hour + 25*40
	assert.Equal(t, 2500.0, view.TotalPrice)

	view, err = uc.NextEventStage(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.EventStageRooms, view.EventStage)

	view, err = uc.SetEventRegistration(ctx, id, domain.EventRegistration{
		EventID:        "spring-summit",
		EventName:      "Spring Summit",
		EarlyBirdPrice: 150,
		Attendees:      3,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StepCheckout, view.CurrentStep)
	assert.Equal(t, 450.0, view.TotalPrice)

	view, err = uc.ClearEventRegistration(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, view.Registration)
	assert.Equal(t, 2500.0, view.TotalPrice)

	view, err = uc.SetBookingType(ctx, id, domain.BookingTypeRoom)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingTypeRoom, view.BookingType)
	assert.Equal(t, "", view.Event.EventSpace)
}

func TestSessionUseCase_UpdateEventValidation(t *testing.T) {
	ctx := context.Background()
	uc := newTestSessionUseCase()
	created, _, err := uc.CreateSession(ctx, url.Values{})
	require.NoError(t, err)

	_, err = uc.UpdateEvent(ctx, created.ID, domain.EventState{EventSpace: "rooftop", EventType: "rave"})
	require.Error(t, err)

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Details, 2)
	assert.Equal(t, "eventSpace", ve.Details[0].Field)
	assert.Equal(t, "eventType", ve.Details[1].Field)

	view, err := uc.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingTypeNone, view.BookingType)
}

func TestSessionUseCase_ResetKeepsCustomer(t *testing.T) {
	ctx := context.Background()
	uc := newTestSessionUseCase()
	created, _, err := uc.CreateSession(ctx, url.Values{})
	require.NoError(t, err)
	id := created.ID

	info := domain.CustomerInfo{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	_, err = uc.UpdateCustomerInfo(ctx, id, info)
	require.NoError(t, err)
	_, err = uc.SelectRoom(ctx, id, "valley-deluxe")
	require.NoError(t, err)

	view, err := uc.Reset(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, view.SelectedRoom)
	assert.Equal(t, domain.BookingTypeNone, view.BookingType)
	assert.Equal(t, info, view.CustomerInfo)
}

func TestSessionUseCase_EndSession(t *testing.T) {
	ctx := context.Background()
	uc := newTestSessionUseCase()
	created, _, err := uc.CreateSession(ctx, url.Values{})
	require.NoError(t, err)

	require.NoError(t, uc.EndSession(ctx, created.ID))

	_, err = uc.GetSession(ctx, created.ID)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)

	_, ok = apperrors.IsNotFoundError(uc.EndSession(ctx, created.ID))
	assert.True(t, ok)
}
