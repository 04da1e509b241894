package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	mountainservice "vershyna/contexts/catalog/mountain-service"
	accountservice "vershyna/contexts/identity/account-service"
	"vershyna/contexts/identity/account-service/domain/entities"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "vershyna/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	catalog  mountainservice.Module
	accounts accountservice.Module
}

func New(
	catalog mountainservice.Module,
	accounts accountservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		catalog:  catalog,
		accounts: accounts,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the route table for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /mountains/ridges", s.handleListRidges)
	s.mux.HandleFunc("GET /mountains/ridge/{slug}", s.handleGetRidge)
	s.mux.HandleFunc("GET /mountains/ridge/peaks/{slug}", s.handleRidgePeaks)
	s.mux.HandleFunc("POST /mountains/ridge", s.handleAddRidge)
	s.mux.HandleFunc("PUT /mountains/ridge/{slug}", s.handleUpdateRidge)
	s.mux.HandleFunc("DELETE /mountains/ridge/{slug}", s.handleDeleteRidge)
	s.mux.HandleFunc("POST /mountains/ridge/{ridge_id}/link", s.handleAddInfoLink)
	s.mux.HandleFunc("DELETE /mountains/ridge/link/{link_id}", s.handleDeleteInfoLink)

	s.mux.HandleFunc("GET /mountains/peaks", s.handleListPeaks)
	s.mux.HandleFunc("GET /mountains/peak/{slug}", s.handleGetPeak)
	s.mux.HandleFunc("GET /mountains/peak/routes/{slug}", s.handlePeakRoutes)
	s.mux.HandleFunc("POST /mountains/peak", s.handleAddPeak)
	s.mux.HandleFunc("PUT /mountains/peak/{slug}", s.handleUpdatePeak)
	s.mux.HandleFunc("DELETE /mountains/peak/{slug}", s.handleDeletePeak)
	s.mux.HandleFunc("POST /mountains/peak/{peak_id}/photo", s.handleAddPeakPhoto)
	s.mux.HandleFunc("PUT /mountains/peak/{peak_id}/photo", s.handleUpdatePeakPhoto)
	s.mux.HandleFunc("DELETE /mountains/peak/photo/{photo_id}", s.handleDeletePeakPhoto)

	s.mux.HandleFunc("GET /mountains/routes", s.handleListRoutes)
	s.mux.HandleFunc("GET /mountains/route/{slug}", s.handleGetRoute)
	s.mux.HandleFunc("POST /mountains/route", s.handleAddRoute)
	s.mux.HandleFunc("PUT /mountains/route/{route_id}", s.handleUpdateRoute)
	s.mux.HandleFunc("DELETE /mountains/route/{slug}", s.handleDeleteRoute)
	s.mux.HandleFunc("POST /mountains/route/{route_id}/section", s.handleAddSection)
	s.mux.HandleFunc("PUT /mountains/route/section/{section_id}", s.handleUpdateSection)
	s.mux.HandleFunc("DELETE /mountains/route/section/{section_id}", s.handleDeleteSection)
	s.mux.HandleFunc("POST /mountains/route/{route_id}/point", s.handleAddRoutePoint)
	s.mux.HandleFunc("DELETE /mountains/route/point/{point_id}", s.handleDeleteRoutePoint)
	s.mux.HandleFunc("POST /mountains/route/{route_id}/photo", s.handleAddRoutePhoto)
	s.mux.HandleFunc("PUT /mountains/route/{route_id}/photo", s.handleUpdateRoutePhoto)
	s.mux.HandleFunc("PUT /mountains/route/{route_id}/map", s.handleUpdateRouteMap)

	s.mux.HandleFunc("POST /users/register", s.handleRegister)
	s.mux.HandleFunc("POST /users/login", s.handleLogin)
	s.mux.HandleFunc("GET /users/me", s.handleCurrentUser)
	s.mux.HandleFunc("PUT /users/{username}", s.handleUpdateProfile)
	s.mux.HandleFunc("PUT /users/set/permissions/{username}", s.handleSetPermissions)
	s.mux.HandleFunc("PUT /users/email/update", s.handleUpdateEmail)
	s.mux.HandleFunc("PUT /users/password/update", s.handleUpdatePassword)

	// Legacy path family kept for existing clients, bound to the same handlers.
	s.mux.HandleFunc("POST /mountains/ridges/add", s.handleAddRidge)
	s.mux.HandleFunc("POST /mountains/ridge/{ridge_id}/add/link", s.handleAddInfoLink)
	s.mux.HandleFunc("GET /mountains/peaks/search", s.handleListPeaks)
	s.mux.HandleFunc("POST /mountains/peaks/add", s.handleAddPeak)
	s.mux.HandleFunc("POST /mountains/peak/{peak_id}/add/photo", s.handleAddPeakPhoto)
	s.mux.HandleFunc("GET /mountains/routes/search", s.handleListRoutes)
	s.mux.HandleFunc("POST /mountains/routes/add", s.handleAddRoute)
	s.mux.HandleFunc("POST /mountains/route/{route_id}/add/section", s.handleAddSection)
	s.mux.HandleFunc("POST /mountains/route/{route_id}/add/point", s.handleAddRoutePoint)
	s.mux.HandleFunc("POST /mountains/route/{route_id}/add/photo", s.handleAddRoutePhoto)
	s.mux.HandleFunc("POST /users/token", s.handleLogin)
	s.mux.HandleFunc("PUT /users/update/{username}", s.handleUpdateProfile)
}

// resolveActor maps the Authorization bearer token to an account. A missing
// or malformed header fails the same way as an invalid token.
func (s *Server) resolveActor(r *http.Request) (entities.User, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	parts := strings.SplitN(header, " ", 2)
	token := ""
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		token = strings.TrimSpace(parts[1])
	}
	return s.accounts.Handler.ResolveHandler(r.Context(), token)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
