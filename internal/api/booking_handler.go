package api

import (
	"net/http"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	VehicleID         int32  `json:"vehicle_id"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	PickupLocationID  *int32 `json:"pickup_location_id"`
	DropoffLocationID *int32 `json:"dropoff_location_id"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	booking, err := h.bookingSvc.CreateBooking(r.Context(), principalFrom(r.Context()), service.CreateBookingInput{
		VehicleID:         req.VehicleID,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		PickupLocationID:  req.PickupLocationID,
		DropoffLocationID: req.DropoffLocationID,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toBookingResponse(booking))
}

func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingSvc.ListMyBookings(r.Context(), principalFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingSvc.ListAllBookings(r.Context(), principalFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toBookingResponses(bookings))
}

type updateBookingStatusRequest struct {
	Status domain.BookingStatus `json:"status"`
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req updateBookingStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	booking, err := h.bookingSvc.UpdateBookingStatus(r.Context(), principalFrom(r.Context()), id, req.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toBookingResponse(booking))
}
