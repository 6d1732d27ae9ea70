package api

import (
	"net/http"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/service"
)

type LocationHandler struct {
	locationSvc service.LocationService
}

func NewLocationHandler(locationSvc service.LocationService) *LocationHandler {
	return &LocationHandler{locationSvc: locationSvc}
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := h.locationSvc.ListLocations(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, locations)
}

func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var location domain.Location
	if err := decodeJSON(r, &location); err != nil {
		respondError(w, err)
		return
	}
	location.ID = 0

	if err := h.locationSvc.CreateLocation(r.Context(), principalFrom(r.Context()), &location); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, location)
}

func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var location domain.Location
	if err := decodeJSON(r, &location); err != nil {
		respondError(w, err)
		return
	}
	location.ID = id

	if err := h.locationSvc.UpdateLocation(r.Context(), principalFrom(r.Context()), &location); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, location)
}

func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.locationSvc.DeleteLocation(r.Context(), principalFrom(r.Context()), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
