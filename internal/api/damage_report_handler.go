package api

import (
	"net/http"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/service"
)

type DamageReportHandler struct {
	reportSvc service.DamageReportService
}

func NewDamageReportHandler(reportSvc service.DamageReportService) *DamageReportHandler {
	return &DamageReportHandler{reportSvc: reportSvc}
}

type createReportRequest struct {
	BookingID   int32  `json:"booking_id"`
	Description string `json:"description"`
}

func (h *DamageReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	report, err := h.reportSvc.CreateReport(r.Context(), principalFrom(r.Context()), req.BookingID, req.Description)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, report)
}

func (h *DamageReportHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportSvc.ListMyReports(r.Context(), principalFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reports)
}

func (h *DamageReportHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportSvc.ListAllReports(r.Context(), principalFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reports)
}

func (h *DamageReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	report, err := h.reportSvc.GetReport(r.Context(), principalFrom(r.Context()), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

type updateReportStatusRequest struct {
	Status domain.DamageReportStatus `json:"status"`
}

func (h *DamageReportHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req updateReportStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	report, err := h.reportSvc.UpdateReportStatus(r.Context(), principalFrom(r.Context()), id, req.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
