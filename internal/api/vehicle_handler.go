package api

import (
	"net/http"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/service"
)

type VehicleHandler struct {
	vehicleSvc service.VehicleService
}

func NewVehicleHandler(vehicleSvc service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleSvc: vehicleSvc}
}

type vehicleListResponse struct {
	Vehicles []domain.Vehicle `json:"vehicles"`
	Total    int32            `json:"total"`
	Page     int32            `json:"page"`
	PageSize int32            `json:"page_size"`
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.VehicleFilter{
		Name:         q.Get("name"),
		Model:        q.Get("model"),
		CarType:      q.Get("car_type"),
		Transmission: q.Get("transmission"),
		FuelType:     q.Get("fuel_type"),
		Status:       q.Get("status"),
		MinRateCents: queryInt32(r, "min_rate"),
		MaxRateCents: queryInt32(r, "max_rate"),
		MinSeats:     queryInt32(r, "min_seats"),
		MaxSeats:     queryInt32(r, "max_seats"),
	}
	page := queryInt32(r, "page")
	pageSize := queryInt32(r, "page_size")

	vehicles, total, err := h.vehicleSvc.ListVehicles(r.Context(), filter, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	if page < 1 {
		page = 1
	}
	respondJSON(w, http.StatusOK, vehicleListResponse{
		Vehicles: vehicles,
		Total:    total,
		Page:     page,
		PageSize: int32(len(vehicles)),
	})
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	vehicle, err := h.vehicleSvc.GetVehicle(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var vehicle domain.Vehicle
	if err := decodeJSON(r, &vehicle); err != nil {
		respondError(w, err)
		return
	}
	vehicle.ID = 0

	if err := h.vehicleSvc.CreateVehicle(r.Context(), principalFrom(r.Context()), &vehicle); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var vehicle domain.Vehicle
	if err := decodeJSON(r, &vehicle); err != nil {
		respondError(w, err)
		return
	}
	vehicle.ID = id

	if err := h.vehicleSvc.UpdateVehicle(r.Context(), principalFrom(r.Context()), &vehicle); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.vehicleSvc.DeleteVehicle(r.Context(), principalFrom(r.Context()), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type addImageRequest struct {
	ImageURL string `json:"image_url"`
}

func (h *VehicleHandler) AddImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req addImageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	image := domain.VehicleImage{VehicleID: id, ImageURL: req.ImageURL}
	if err := h.vehicleSvc.AddVehicleImage(r.Context(), principalFrom(r.Context()), &image); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, image)
}
