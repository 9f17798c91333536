package catalog

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"retreat/internal/domain"
	"retreat/internal/pricing"
	"retreat/internal/selection"
)

type EventType struct {
	ID         string  `json:"id"`
	Multiplier float64 `json:"multiplier"`
}

type CatalogResponse struct {
	TraceID         string                 `json:"traceId"`
	Packages        []domain.Package       `json:"packages"`
	Rooms           []domain.Room          `json:"rooms"`
	AddOnCategories []domain.AddOnCategory `json:"addOnCategories"`
	RoomAddOns      []domain.RoomAddOn     `json:"roomAddOns"`
	Venues          []pricing.Venue        `json:"venues"`
	EventTypes      []EventType            `json:"eventTypes"`
	Timestamp       time.Time              `json:"timestamp"`
}

type UpgradePriceResponse struct {
	TraceID        string    `json:"traceId"`
	RoomID         string    `json:"roomId"`
	StandardRoomID string    `json:"standardRoomId"`
	UpgradePrice   float64   `json:"upgradePrice"`
	Timestamp      time.Time `json:"timestamp"`
}

type errorResponse struct {
	TraceID string `json:"traceId"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

type Controller struct {
	catalog *Catalog
	rates   pricing.Rates
	logger  *zap.Logger
}

func NewController(c *Catalog, rates pricing.Rates, logger *zap.Logger) *Controller {
	return &Controller{
		catalog: c,
		rates:   rates,
		logger:  logger,
	}
}

func (c *Controller) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	eventTypes := make([]EventType, 0, len(c.rates.EventTypeMultipliers))
	for id, m := range c.rates.EventTypeMultipliers {
		eventTypes = append(eventTypes, EventType{ID: id, Multiplier: m})
	}
	sort.Slice(eventTypes, func(i, j int) bool { return eventTypes[i].ID < eventTypes[j].ID })

	c.writeJSON(w, http.StatusOK, CatalogResponse{
		TraceID:         traceID,
		Packages:        c.catalog.Packages,
		Rooms:           c.catalog.Rooms,
		AddOnCategories: c.catalog.NewAddOnCategories(),
		RoomAddOns:      c.catalog.NewRoomAddOns(),
		Venues:          c.rates.Venues,
		EventTypes:      eventTypes,
		Timestamp:       time.Now().UTC(),
	})
}

func (c *Controller) HandleGetUpgradePrice(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	roomID := chi.URLParam(r, "roomId")

	if c.catalog.Room(roomID) == nil {
		c.logger.Debug("upgrade price for unknown room", zap.String("traceId", traceID), zap.String("roomId", roomID))
		c.writeJSON(w, http.StatusNotFound, errorResponse{
			TraceID: traceID,
			Error:   "NOT_FOUND",
			Message: "room " + roomID + " not found",
		})
		return
	}

	resp := UpgradePriceResponse{
		TraceID:      traceID,
		RoomID:       roomID,
		UpgradePrice: selection.GetRoomUpgradePrice(c.catalog.Rooms, roomID),
		Timestamp:    time.Now().UTC(),
	}
	if std := c.catalog.StandardRoom(); std != nil {
		resp.StandardRoomID = std.ID
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
