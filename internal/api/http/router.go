package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"leasehub-backend/internal/security"
	"leasehub-backend/internal/service"
)

type RouterDeps struct {
	Tokens     security.TokenManager
	AuthSvc    service.AuthService
	ProfileSvc service.ProfileService
	AppSvc     service.ApplicationService
	SnapSvc    service.SnapshotService

	AllowedOrigins []string
}

// NewRouter wires every route. Auth endpoints are public; everything else
// sits behind the bearer-token middleware, with reviewer decisions behind an
// additional role gate.
func NewRouter(deps RouterDeps) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	authHandler := NewAuthHandler(deps.AuthSvc)
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")

	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(deps.Tokens))

	profileHandler := NewProfileHandler(deps.ProfileSvc)
	protected.HandleFunc("/profile", profileHandler.Get).Methods("GET")
	protected.HandleFunc("/profile", profileHandler.Update).Methods("PUT")
	protected.HandleFunc("/profile/completeness", profileHandler.Completeness).Methods("GET")
	protected.HandleFunc("/documents", profileHandler.ListDocuments).Methods("GET")
	protected.HandleFunc("/documents/{type}", profileHandler.RegisterDocument).Methods("PUT")
	protected.HandleFunc("/documents/{type}", profileHandler.RemoveDocument).Methods("DELETE")

	appHandler := NewApplicationHandler(deps.AppSvc)
	protected.HandleFunc("/applications", appHandler.Upsert).Methods("POST")
	protected.HandleFunc("/applications", appHandler.List).Methods("GET")
	protected.HandleFunc("/applications/{id}", appHandler.Get).Methods("GET")
	protected.HandleFunc("/applications/{id}/submit", appHandler.Submit).Methods("POST")
	protected.HandleFunc("/applications/{id}/withdraw", appHandler.Withdraw).Methods("POST")
	protected.HandleFunc("/applications/{id}/status", RequireRole(security.RoleReviewer, appHandler.SetStatus)).Methods("PUT")

	snapHandler := NewSnapshotHandler(deps.SnapSvc)
	protected.HandleFunc("/applications/{id}/snapshots", snapHandler.List).Methods("GET")
	protected.HandleFunc("/applications/{id}/snapshots/latest", snapHandler.Latest).Methods("GET")
	protected.HandleFunc("/snapshots/compare", snapHandler.Compare).Methods("GET")
	protected.HandleFunc("/snapshots/{snapshotId}", snapHandler.Get).Methods("GET")

	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}
