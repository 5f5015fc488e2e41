package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"leasehub-backend/internal/domain"
	"leasehub-backend/internal/service"
)

type ProfileHandler struct {
	profileSvc service.ProfileService
}

func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

type profileResponse struct {
	Applicant *domain.Applicant         `json:"applicant"`
	Intent    *domain.ApplicationIntent `json:"intent"`
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	applicant, intent, err := h.profileSvc.GetProfile(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{Applicant: applicant, Intent: intent})
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	applicant, intent, err := h.profileSvc.UpdateProfile(r.Context(), userIDFrom(r), service.ProfileInput{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Username:          req.Username,
		PhoneNumber:       req.PhoneNumber,
		DateOfBirth:       req.DateOfBirth,
		Gender:            req.Gender,
		Occupation:        req.Occupation,
		Bio:               req.Bio,
		PreferredLanguage: req.PreferredLanguage,
		ContactMethod:     req.ContactMethod,
		Intent:            req.Intent.toDomain(),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{Applicant: applicant, Intent: intent})
}

func (h *ProfileHandler) Completeness(w http.ResponseWriter, r *http.Request) {
	report, err := h.profileSvc.Completeness(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ProfileHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.profileSvc.ListDocuments(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (h *ProfileHandler) RegisterDocument(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	docType := mux.Vars(r)["type"]
	doc, err := h.profileSvc.RegisterDocument(r.Context(), userIDFrom(r), docType, req.FileName, req.URL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *ProfileHandler) RemoveDocument(w http.ResponseWriter, r *http.Request) {
	docType := mux.Vars(r)["type"]
	if err := h.profileSvc.RemoveDocument(r.Context(), userIDFrom(r), docType); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
