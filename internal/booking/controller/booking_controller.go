package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"retreat/internal/booking"
	"retreat/internal/domain"
	"retreat/internal/dto"
	apperrors "retreat/internal/errors"
)

type SessionUseCase interface {
	CreateSession(ctx context.Context, q url.Values) (*dto.SessionView, []string, error)
	GetSession(ctx context.Context, id string) (*dto.SessionView, error)
	SelectPackage(ctx context.Context, id, packageID string) (*dto.SessionView, error)
	ResetPackage(ctx context.Context, id string) (*dto.SessionView, error)
	SetDates(ctx context.Context, id string, start *time.Time, d domain.Duration) (*dto.SessionView, error)
	SelectRoom(ctx context.Context, id, roomID string) (*dto.SessionView, error)
	ResetRoom(ctx context.Context, id string) (*dto.SessionView, error)
	ToggleAddOn(ctx context.Context, id, categoryID, itemID string) (*dto.SessionView, error)
	RemoveAddOn(ctx context.Context, id, categoryID, itemID string) (*dto.SessionView, error)
	UpdateAddOnQuantity(ctx context.Context, id, categoryID, itemID string, quantity int) (*dto.SessionView, error)
	ToggleRoomAddOn(ctx context.Context, id, addOnID string) (*dto.SessionView, error)
	RemoveRoomAddOn(ctx context.Context, id, addOnID string) (*dto.SessionView, error)
	UpdateEvent(ctx context.Context, id string, e domain.EventState) (*dto.SessionView, error)
	NextEventStage(ctx context.Context, id string) (*dto.SessionView, error)
	SetEventRegistration(ctx context.Context, id string, reg domain.EventRegistration) (*dto.SessionView, error)
	ClearEventRegistration(ctx context.Context, id string) (*dto.SessionView, error)
	UpdateCustomerInfo(ctx context.Context, id string, info domain.CustomerInfo) (*dto.SessionView, error)
	SetBookingType(ctx context.Context, id string, t domain.BookingType) (*dto.SessionView, error)
	NextStep(ctx context.Context, id string) (*dto.SessionView, error)
	PreviousStep(ctx context.Context, id string) (*dto.SessionView, error)
	GoToStep(ctx context.Context, id string, step int) (*dto.SessionView, error)
	Reset(ctx context.Context, id string) (*dto.SessionView, error)
	EndSession(ctx context.Context, id string) error
}

type CheckoutUseCase interface {
	Checkout(ctx context.Context, sessionID string) (*dto.CheckoutResult, error)
	GetBooking(ctx context.Context, reference string) (*domain.Booking, []domain.BookingItem, error)
}

type Validator interface {
	Validate(i interface{}) error
}

type BookingController struct {
	sessions  SessionUseCase
	checkout  CheckoutUseCase
	validator Validator
	logger    *zap.Logger
}

func NewBookingController(sessions SessionUseCase, checkout CheckoutUseCase, validator Validator, logger *zap.Logger) *BookingController {
	return &BookingController{
		sessions:  sessions,
		checkout:  checkout,
		validator: validator,
		logger:    logger,
	}
}

// request carries the per-call trace id and logger.
type request struct {
	traceID   string
	sessionID string
	logger    *zap.Logger
}

func (c *BookingController) begin(r *http.Request) request {
	traceID := uuid.New().String()
	sessionID := chi.URLParam(r, "sessionId")
	return request{
		traceID:   traceID,
		sessionID: sessionID,
		logger:    c.logger.With(zap.String("traceId", traceID), zap.String("sessionId", sessionID)),
	}
}

func (c *BookingController) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)

	view, ignored, err := c.sessions.CreateSession(r.Context(), r.URL.Query())
	if err != nil {
		c.handleUseCaseError(w, req, err)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.SessionResponse{
		TraceID:   req.traceID,
		Session:   *view,
		Ignored:   ignored,
		Timestamp: time.Now().UTC(),
	})
}

func (c *BookingController) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	view, err := c.sessions.GetSession(r.Context(), req.sessionID)
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleSelectPackage(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	var body dto.SelectPackageRequest
	if !c.decode(w, r, req, &body) {
		return
	}
	view, err := c.sessions.SelectPackage(r.Context(), req.sessionID, body.PackageID)
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleResetPackage(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	view, err := c.sessions.ResetPackage(r.Context(), req.sessionID)
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleSetDates(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	var body dto.SetDatesRequest
	if !c.decode(w, r, req, &body) {
		return
	}

	start, ok := c.parseDate(w, req, "startDate", body.StartDate)
	if !ok {
		return
	}

	view, err := c.sessions.SetDates(r.Context(), req.sessionID, start, domain.Duration(body.Duration))
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleSelectRoom(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	var body dto.SelectRoomRequest
	if !c.decode(w, r, req, &body) {
		return
	}
	view, err := c.sessions.SelectRoom(r.Context(), req.sessionID, body.RoomID)
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleResetRoom(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	view, err := c.sessions.ResetRoom(r.Context(), req.sessionID)
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleToggleAddOn(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	view, err := c.sessions.ToggleAddOn(r.Context(), req.sessionID, chi.URLParam(r, "categoryId"), chi.URLParam(r, "itemId"))
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleRemoveAddOn(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	view, err := c.sessions.RemoveAddOn(r.Context(), req.sessionID, chi.URLParam(r, "categoryId"), chi.URLParam(r, "itemId"))
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleUpdateAddOnQuantity(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	var body dto.UpdateQuantityRequest
	if !c.decode(w, r, req, &body) {
		return
	}
	view, err := c.sessions.UpdateAddOnQuantity(r.Context(), req.sessionID, chi.URLParam(r, "categoryId"), chi.URLParam(r, "itemId"), body.Quantity)
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleToggleRoomAddOn(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	view, err := c.sessions.ToggleRoomAddOn(r.Context(), req.sessionID, chi.URLParam(r, "addOnId"))
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleRemoveRoomAddOn(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	view, err := c.sessions.RemoveRoomAddOn(r.Context(), req.sessionID, chi.URLParam(r, "addOnId"))
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	var body dto.UpdateEventRequest
	if !c.decode(w, r, req, &body) {
		return
	}

	e := domain.EventState{
		EventSpace:    body.EventSpace,
		Attendees:     body.Attendees,
		EventType:     body.EventType,
		EventDuration: body.EventDuration,
		EventAddons:   body.EventAddons,
		RoomType:      domain.RoomType(body.RoomType),
	}
	eventDate, ok := c.parseDate(w, req, "eventDate", body.EventDate)
	if !ok {
		return
	}
	e.EventDate = eventDate

	view, err := c.sessions.UpdateEvent(r.Context(), req.sessionID, e)
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleNextEventStage(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	view, err := c.sessions.NextEventStage(r.Context(), req.sessionID)
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleSetEventTicket(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	var body dto.EventRegistrationRequest
	if !c.decode(w, r, req, &body) {
		return
	}
	view, err := c.sessions.SetEventRegistration(r.Context(), req.sessionID, domain.EventRegistration{
		EventID:        body.EventID,
		EventName:      body.EventName,
		EarlyBirdPrice: body.EarlyBirdPrice,
		Attendees:      body.Attendees,
		TotalPrice:     body.TotalPrice,
	})
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleClearEventTicket(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	view, err := c.sessions.ClearEventRegistration(r.Context(), req.sessionID)
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	var body dto.CustomerInfoRequest
	if !c.decode(w, r, req, &body) {
		return
	}
	view, err := c.sessions.UpdateCustomerInfo(r.Context(), req.sessionID, domain.CustomerInfo{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Phone:     body.Phone,
	})
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleSetBookingType(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	var body dto.BookingTypeRequest
	if !c.decode(w, r, req, &body) {
		return
	}
	view, err := c.sessions.SetBookingType(r.Context(), req.sessionID, domain.BookingType(body.BookingType))
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleNextStep(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	view, err := c.sessions.NextStep(r.Context(), req.sessionID)
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandlePreviousStep(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	view, err := c.sessions.PreviousStep(r.Context(), req.sessionID)
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleGoToStep(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	var body dto.GoToStepRequest
	if !c.decode(w, r, req, &body) {
		return
	}
	view, err := c.sessions.GoToStep(r.Context(), req.sessionID, body.Step)
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleReset(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	view, err := c.sessions.Reset(r.Context(), req.sessionID)
	c.writeSession(w, req, view, err)
}

func (c *BookingController) HandleEndSession(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)
	if err := c.sessions.EndSession(r.Context(), req.sessionID); err != nil {
		c.handleUseCaseError(w, req, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *BookingController) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)

	result, err := c.checkout.Checkout(r.Context(), req.sessionID)
	if err != nil {
		c.handleUseCaseError(w, req, err)
		return
	}

	req.logger.Info("booking confirmed", zap.String("reference", result.Reference), zap.Uint("bookingId", result.BookingID))
	c.writeJSON(w, http.StatusCreated, dto.CheckoutResponse{
		TraceID:    req.traceID,
		BookingID:  result.BookingID,
		Reference:  result.Reference,
		Status:     result.Status,
		TotalPrice: result.TotalPrice,
		Items:      result.Items,
		Timestamp:  time.Now().UTC(),
	})
}

func (c *BookingController) HandleGetBooking(w http.ResponseWriter, r *http.Request) {
	req := c.begin(r)

	b, items, err := c.checkout.GetBooking(r.Context(), chi.URLParam(r, "reference"))
	if err != nil {
		c.handleUseCaseError(w, req, err)
		return
	}

	views := make([]dto.BookingItemView, len(items))
	for i, item := range items {
		views[i] = dto.BookingItemView{
			Kind:        item.Kind,
			RefID:       item.RefID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		}
	}

	c.writeJSON(w, http.StatusOK, dto.BookingResponse{
		TraceID:     req.traceID,
		Reference:   b.Reference,
		BookingType: string(b.BookingType),
		Status:      b.Status,
		PackageID:   b.PackageID,
		RoomID:      b.RoomID,
		EventSpace:  b.EventSpace,
		StartDate:   formatDate(b.StartDate),
		EndDate:     formatDate(b.EndDate),
		Duration:    string(b.Duration),
		Customer: dto.BookingCustomer{
			FirstName: b.FirstName,
			LastName:  b.LastName,
			Email:     b.Email,
			Phone:     b.Phone,
		},
		TotalPrice: b.TotalPrice,
		Items:      views,
		CreatedAt:  b.CreatedAt,
	})
}

// decode reads and validates the JSON body into dst. On failure the error
// response has been written and false is returned.
func (c *BookingController) decode(w http.ResponseWriter, r *http.Request, req request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		req.logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, req, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return false
	}

	if err := c.validator.Validate(dst); err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeValidationError(w, req, ve.Message, ve.Details...)
			return false
		}
		c.handleUseCaseError(w, req, err)
		return false
	}

	return true
}

// parseDate reads an optional YYYY-MM-DD body field. An empty value is nil.
func (c *BookingController) parseDate(w http.ResponseWriter, req request, field, value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	t, err := time.Parse(booking.DateLayout, value)
	if err != nil {
		req.logger.Warn("invalid date", zap.String("field", field), zap.String("value", value))
		c.writeValidationError(w, req, "validation failed", apperrors.ValidationDetail{
			Field:   field,
			Message: "must be a date in " + booking.DateLayout + " format",
		})
		return nil, false
	}
	return &t, true
}

func (c *BookingController) writeSession(w http.ResponseWriter, req request, view *dto.SessionView, err error) {
	if err != nil {
		c.handleUseCaseError(w, req, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.SessionResponse{
		TraceID:   req.traceID,
		Session:   *view,
		Timestamp: time.Now().UTC(),
	})
}

func (c *BookingController) handleUseCaseError(w http.ResponseWriter, req request, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, req, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, req, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeErrorResponse(w, req, http.StatusConflict, "CONFLICT", err.Error())
		return
	}

	if _, ok := apperrors.IsDeadlockError(err); ok {
		c.writeErrorResponse(w, req, http.StatusConflict, "DEADLOCK", err.Error())
		return
	}

	req.logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, req, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func (c *BookingController) writeValidationError(w http.ResponseWriter, req request, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
		TraceID:   req.traceID,
		Status:    http.StatusBadRequest,
		Code:      "VALIDATION_ERROR",
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

func (c *BookingController) writeErrorResponse(w http.ResponseWriter, req request, statusCode int, code string, message string) {
	c.writeJSON(w, statusCode, dto.ErrorResponse{
		TraceID:   req.traceID,
		Status:    statusCode,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func (c *BookingController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(booking.DateLayout)
	return &v
}
