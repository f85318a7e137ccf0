package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/grbus/seatcore/internal/core/domain"
	"github.com/grbus/seatcore/internal/core/services"
)

// BookingHandler is the thin HTTP surface over the booking core. It
// maps typed domain errors to status codes; user-facing copy stays
// with the error messages themselves.
type BookingHandler struct {
	coordinator *services.BookingCoordinator
	inventory   *services.SeatInventory
	trips       *services.TripService
	log         *logrus.Logger
}

func NewBookingHandler(coordinator *services.BookingCoordinator, inventory *services.SeatInventory, trips *services.TripService, log *logrus.Logger) *BookingHandler {
	return &BookingHandler{
		coordinator: coordinator,
		inventory:   inventory,
		trips:       trips,
		log:         log,
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req services.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	resp, err := h.coordinator.CreateBooking(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

type cancelBookingRequest struct {
	BookingID string `json:"booking_id"`
	UserID    string `json:"user_id"`
	Actor     string `json:"actor"`
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req cancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid booking id"})
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user id"})
		return
	}

	actor := domain.ActorUser
	if req.Actor == string(domain.ActorAdmin) {
		actor = domain.ActorAdmin
	}

	refund, err := h.coordinator.CancelBooking(r.Context(), bookingID, userID, actor)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"refund_amount": refund})
}

func (h *BookingHandler) GetSeats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	tripID, err := uuid.Parse(r.URL.Query().Get("trip_id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid trip id"})
		return
	}

	available, booked, total, err := h.inventory.Snapshot(r.Context(), tripID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"available_seats": available,
		"booked_seats":    booked,
		"total_seats":     total,
	})
}

func (h *BookingHandler) ScheduleTrip(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req services.ScheduleTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	resp, err := h.trips.ScheduleTrip(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

type paymentResultRequest struct {
	BookingID  string `json:"booking_id"`
	PaymentRef string `json:"payment_ref"`
	Success    bool   `json:"success"`
}

func (h *BookingHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req paymentResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid booking id"})
		return
	}

	if req.Success {
		err = h.coordinator.ConfirmPayment(r.Context(), bookingID, req.PaymentRef)
	} else {
		err = h.coordinator.FailPayment(r.Context(), bookingID, req.PaymentRef)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

func (h *BookingHandler) writeError(w http.ResponseWriter, err error) {
	var unavailable *domain.SeatsUnavailableError
	var unknown *domain.UnknownSeatError
	var duplicate *domain.DuplicateSeatError

	switch {
	case errors.As(err, &unavailable):
		writeJSON(w, http.StatusConflict, map[string]any{"error": err.Error(), "seats": unavailable.Seats})
	case errors.Is(err, domain.ErrConcurrentModification):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrTripNotFound), errors.Is(err, domain.ErrBookingNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrNotOwner):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrTripNotBookable),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrEmptySeatSelection),
		errors.Is(err, domain.ErrMissingPassengerName),
		errors.Is(err, domain.ErrInvalidPassengerEmail),
		errors.Is(err, domain.ErrInvalidPassengerPhone),
		errors.Is(err, domain.ErrInvalidID),
		errors.As(err, &unknown),
		errors.As(err, &duplicate):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		h.log.WithError(err).Error("request failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
