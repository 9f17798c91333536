package booking

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retreat/internal/domain"
)

func TestSeedFromQuery_Package(t *testing.T) {
	s := newTestSession(t)

	ignored := s.SeedFromQuery(url.Values{
		ParamPackageID: {"yoga-immersion"},
		ParamStartDate: {"2026-11-10"},
		ParamEndDate:   {"2026-11-17"},
	})

	assert.Empty(t, ignored)
	assert.Equal(t, domain.BookingTypePackage, s.BookingType)
	require.NotNil(t, s.Data.SelectedPackage)
	assert.Equal(t, "yoga-immersion", s.Data.SelectedPackage.ID)
	assert.Equal(t, domain.Duration7, s.Data.Duration)
	assert.Equal(t, time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC), *s.Data.StartDate)
}

func TestSeedFromQuery_RoomOnly(t *testing.T) {
	s := newTestSession(t)

	ignored := s.SeedFromQuery(url.Values{
		ParamBookingType: {"room"},
		ParamRoomID:      {"summit-suite"},
	})

	assert.Empty(t, ignored)
	assert.Equal(t, domain.BookingTypeRoom, s.BookingType)
	assert.Equal(t, "summit-suite", s.Data.SelectedRoom.ID)
}

func TestSeedFromQuery_Event(t *testing.T) {
	s := newTestSession(t)

	s.SeedFromQuery(url.Values{ParamEventID: {"lakeside-terrace"}})

	assert.Equal(t, domain.BookingTypeEvent, s.BookingType)
	assert.Equal(t, "lakeside-terrace", s.Event.EventSpace)
}

func TestSeedFromQuery_IgnoresBadValues(t *testing.T) {
	s := newTestSession(t)

	ignored := s.SeedFromQuery(url.Values{
		ParamBookingType: {"cruise"},
		ParamPackageID:   {"unknown"},
		ParamRoomID:      {"unknown"},
		ParamEventID:     {"no-such-venue"},
		ParamStartDate:   {"2026-11-10"},
		ParamEndDate:     {"2026-11-13"},
	})

	assert.ElementsMatch(t, []string{ParamBookingType, ParamPackageID, ParamRoomID, ParamEventID, ParamEndDate}, ignored)
	assert.Equal(t, domain.BookingTypeNone, s.BookingType)
	assert.Empty(t, s.Event.EventSpace)
	assert.Equal(t, domain.DefaultDuration, s.Data.Duration)
	require.NotNil(t, s.Data.StartDate)
}

func TestSeedFromQuery_MalformedDates(t *testing.T) {
	s := newTestSession(t)

	ignored := s.SeedFromQuery(url.Values{ParamStartDate: {"10/11/2026"}})

	assert.Equal(t, []string{ParamStartDate}, ignored)
	assert.Nil(t, s.Data.StartDate)
}

func TestSeedFromQuery_Empty(t *testing.T) {
	s := newTestSession(t)

	assert.Empty(t, s.SeedFromQuery(url.Values{}))
	assert.Equal(t, domain.BookingTypeNone, s.BookingType)
}
