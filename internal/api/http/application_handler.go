package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"leasehub-backend/internal/domain"
	"leasehub-backend/internal/service"
)

type ApplicationHandler struct {
	appSvc service.ApplicationService
}

func NewApplicationHandler(appSvc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appSvc: appSvc}
}

// Upsert handles both create and edit; the body's optional id decides.
func (h *ApplicationHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req applicationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	app, err := h.appSvc.Upsert(r.Context(), userIDFrom(r), service.UpsertInput{
		ID:              req.ID,
		PropertyID:      req.PropertyID,
		UnitID:          req.UnitID,
		ApplicationType: domain.ApplicationType(req.ApplicationType),
		MoveInDate:      req.MoveInDate,
		RentalDuration:  req.RentalDuration,
		ProposedRent:    req.ProposedRent,
		TotalRent:       req.TotalRent,
		Inclusions:      req.Inclusions,
		OccupancyType:   domain.OccupancyType(req.OccupancyType),
		Message:         req.Message,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	writeJSON(w, status, app)
}

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	app, err := h.appSvc.Get(r.Context(), userIDFrom(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := parseInt32(q.Get("page"), 1)
	pageSize := parseInt32(q.Get("page_size"), 20)
	apps, total, err := h.appSvc.List(r.Context(), userIDFrom(r), q.Get("status"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: apps, Total: total, Page: page})
}

func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	app, err := h.appSvc.Submit(r.Context(), userIDFrom(r), mux.Vars(r)["id"], req.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req withdrawRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	app, err := h.appSvc.Withdraw(r.Context(), userIDFrom(r), mux.Vars(r)["id"], req.Confirm)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// SetStatus is the reviewer decision endpoint; the router wraps it in a
// role gate.
func (h *ApplicationHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	app, err := h.appSvc.ReviewerSetStatus(r.Context(), mux.Vars(r)["id"], domain.ApplicationStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func parseInt32(s string, fallback int32) int32 {
	if s == "" {
		return fallback
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n < 1 {
		return fallback
	}
	return int32(n)
}
