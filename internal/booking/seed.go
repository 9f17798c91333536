package booking

import (
	"net/url"
	"time"

	"retreat/internal/domain"
)

// Query parameters accepted when a session is opened from a deep link.
const (
	ParamBookingType = "bookingType"
	ParamPackageID   = "packageId"
	ParamRoomID      = "roomId"
	ParamEventID     = "eventId"
	ParamStartDate   = "startDate"
	ParamEndDate     = "endDate"

	DateLayout = "2006-01-02"
)

// SeedFromQuery pre-selects whatever the deep link names, using the same
// operations the wizard uses. Values that do not resolve are skipped and
// returned by parameter name so the caller can log them.
func (s *Session) SeedFromQuery(q url.Values) []string {
	var ignored []string

	if v := q.Get(ParamBookingType); v != "" {
		if err := s.SetBookingType(domain.BookingType(v)); err != nil {
			ignored = append(ignored, ParamBookingType)
		}
	}

	if v := q.Get(ParamEventID); v != "" {
		if s.calc.Rates().Venue(v) != nil {
			s.SetEventSpace(v)
		} else {
			ignored = append(ignored, ParamEventID)
		}
	}

	if v := q.Get(ParamPackageID); v != "" {
		if err := s.SelectPackage(v); err != nil {
			ignored = append(ignored, ParamPackageID)
		}
	}

	if v := q.Get(ParamRoomID); v != "" {
		if err := s.SelectRoom(v); err != nil {
			ignored = append(ignored, ParamRoomID)
		}
	}

	start, startErr := parseDate(q.Get(ParamStartDate))
	if startErr != nil {
		ignored = append(ignored, ParamStartDate)
	}
	if start != nil {
		duration := s.Data.Duration
		end, endErr := parseDate(q.Get(ParamEndDate))
		switch {
		case endErr != nil:
			ignored = append(ignored, ParamEndDate)
		case end != nil:
			nights := int(end.Sub(*start).Hours() / 24)
			if d, ok := domain.DurationFromNights(nights); ok {
				duration = d
			} else {
				ignored = append(ignored, ParamEndDate)
			}
		}
		if err := s.SetDates(start, duration); err != nil {
			ignored = append(ignored, ParamStartDate)
		}
	}

	return ignored
}

func parseDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
