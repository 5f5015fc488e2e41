package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"leasehub-backend/internal/apperrors"
	"leasehub-backend/internal/domain"
	"leasehub-backend/internal/service"
)

type SnapshotHandler struct {
	snapSvc service.SnapshotService
}

func NewSnapshotHandler(snapSvc service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapSvc: snapSvc}
}

func (h *SnapshotHandler) List(w http.ResponseWriter, r *http.Request) {
	snaps, err := h.snapSvc.List(r.Context(), userIDFrom(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snaps)
}

func (h *SnapshotHandler) Latest(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapSvc.Latest(r.Context(), userIDFrom(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *SnapshotHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapSvc.Get(r.Context(), userIDFrom(r), mux.Vars(r)["snapshotId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *SnapshotHandler) Compare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("first") == "" || q.Get("second") == "" {
		writeError(w, apperrors.NewValidation("first and second snapshot ids are required"))
		return
	}
	first, second, err := h.snapSvc.Compare(r.Context(), userIDFrom(r), q.Get("first"), q.Get("second"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		First  *domain.ApplicationSnapshot `json:"first"`
		Second *domain.ApplicationSnapshot `json:"second"`
	}{first, second})
}
