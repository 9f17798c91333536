package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"retreat/internal/booking/controller"
	"retreat/internal/catalog"
)

func NewRouter(catalogCtrl *catalog.Controller, bookingCtrl *controller.BookingController, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", catalogCtrl.HandleGetCatalog)
		r.Get("/rooms/{roomId}/upgrade-price", catalogCtrl.HandleGetUpgradePrice)
		r.Get("/bookings/{reference}", bookingCtrl.HandleGetBooking)

		r.Post("/sessions", bookingCtrl.HandleCreateSession)
		r.Route("/sessions/{sessionId}", func(r chi.Router) {
			r.Get("/", bookingCtrl.HandleGetSession)
			r.Delete("/", bookingCtrl.HandleEndSession)

			r.Post("/package", bookingCtrl.HandleSelectPackage)
			r.Delete("/package", bookingCtrl.HandleResetPackage)
			r.Put("/dates", bookingCtrl.HandleSetDates)
			r.Post("/room", bookingCtrl.HandleSelectRoom)
			r.Delete("/room", bookingCtrl.HandleResetRoom)

			r.Post("/addons/{categoryId}/{itemId}/toggle", bookingCtrl.HandleToggleAddOn)
			r.Delete("/addons/{categoryId}/{itemId}", bookingCtrl.HandleRemoveAddOn)
			r.Put("/addons/{categoryId}/{itemId}/quantity", bookingCtrl.HandleUpdateAddOnQuantity)
			r.Post("/room-addons/{addOnId}/toggle", bookingCtrl.HandleToggleRoomAddOn)
			r.Delete("/room-addons/{addOnId}", bookingCtrl.HandleRemoveRoomAddOn)

			r.Put("/event", bookingCtrl.HandleUpdateEvent)
			r.Post("/event/next", bookingCtrl.HandleNextEventStage)
			r.Put("/event-ticket", bookingCtrl.HandleSetEventTicket)
			r.Delete("/event-ticket", bookingCtrl.HandleClearEventTicket)

			r.Put("/customer", bookingCtrl.HandleUpdateCustomer)
			r.Put("/booking-type", bookingCtrl.HandleSetBookingType)

			r.Post("/steps/next", bookingCtrl.HandleNextStep)
			r.Post("/steps/previous", bookingCtrl.HandlePreviousStep)
			r.Put("/steps", bookingCtrl.HandleGoToStep)

			r.Post("/reset", bookingCtrl.HandleReset)
			r.Post("/checkout", bookingCtrl.HandleCheckout)
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestId", middleware.GetReqID(r.Context())),
			)
		})
	}
}
