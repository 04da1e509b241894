package httpserver

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	catalogerrors "vershyna/contexts/catalog/mountain-service/domain/errors"
	"vershyna/contexts/catalog/mountain-service/domain/services"
	"vershyna/contexts/catalog/mountain-service/ports"
	cataloghttp "vershyna/contexts/catalog/mountain-service/transport/http"
	"vershyna/contexts/identity/account-service/domain/entities"
)

const maxUploadBytes = 32 << 20

func catalogActor(user entities.User) services.Actor {
	return services.Actor{
		ID:       user.ID,
		IsAdmin:  user.IsAdmin,
		IsEditor: user.IsEditor,
	}
}

func (s *Server) handleListRidges(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.ListRidgesHandler(r.Context())
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetRidge(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.GetRidgeHandler(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRidgePeaks(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.RidgePeaksHandler(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddRidge(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}

	var req cataloghttp.CreateRidgeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.catalog.Handler.AddRidgeHandler(r.Context(), catalogActor(actor), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateRidge(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}

	var req cataloghttp.UpdateRidgeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.catalog.Handler.UpdateRidgeHandler(r.Context(), catalogActor(actor), r.PathValue("slug"), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteRidge(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	if err := s.catalog.Handler.DeleteRidgeHandler(r.Context(), catalogActor(actor), r.PathValue("slug")); err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddInfoLink(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	ridgeID, ok := parsePathID(w, r, "ridge_id")
	if !ok {
		return
	}

	var req cataloghttp.CreateInfoLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.catalog.Handler.AddInfoLinkHandler(r.Context(), catalogActor(actor), ridgeID, req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteInfoLink(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	linkID, ok := parsePathID(w, r, "link_id")
	if !ok {
		return
	}
	if err := s.catalog.Handler.DeleteInfoLinkHandler(r.Context(), catalogActor(actor), linkID); err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListPeaks(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.ListPeaksHandler(r.Context(), r.URL.Query().Get("key"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPeak(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.GetPeakHandler(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePeakRoutes(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.PeakRoutesHandler(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddPeak(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}

	var req cataloghttp.CreatePeakRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.catalog.Handler.AddPeakHandler(r.Context(), catalogActor(actor), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdatePeak(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}

	var req cataloghttp.UpdatePeakRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.catalog.Handler.UpdatePeakHandler(r.Context(), catalogActor(actor), r.PathValue("slug"), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeletePeak(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	if err := s.catalog.Handler.DeletePeakHandler(r.Context(), catalogActor(actor), r.PathValue("slug")); err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddPeakPhoto(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	peakID, ok := parsePathID(w, r, "peak_id")
	if !ok {
		return
	}
	upload, ok := parseUpload(w, r)
	if !ok {
		return
	}

	resp, err := s.catalog.Handler.AddPeakPhotoHandler(r.Context(), catalogActor(actor), peakID, upload)
	if err != nil {
		writeCatalogUploadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdatePeakPhoto(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	peakID, ok := parsePathID(w, r, "peak_id")
	if !ok {
		return
	}
	upload, ok := parseUpload(w, r)
	if !ok {
		return
	}

	resp, err := s.catalog.Handler.UpdatePeakPhotoHandler(r.Context(), catalogActor(actor), peakID, upload)
	if err != nil {
		writeCatalogUploadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeletePeakPhoto(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	photoID, ok := parsePathID(w, r, "photo_id")
	if !ok {
		return
	}
	if err := s.catalog.Handler.DeletePeakPhotoHandler(r.Context(), catalogActor(actor), photoID); err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListRoutes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.catalog.Handler.ListRoutesHandler(
		r.Context(),
		query.Get("query"),
		query.Get("author"),
		query.Get("category"),
	)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetRoute(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.GetRouteHandler(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddRoute(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}

	var req cataloghttp.CreateRouteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.catalog.Handler.AddRouteHandler(r.Context(), catalogActor(actor), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateRoute(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	routeID, ok := parsePathID(w, r, "route_id")
	if !ok {
		return
	}

	var req cataloghttp.UpdateRouteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.catalog.Handler.UpdateRouteHandler(r.Context(), catalogActor(actor), routeID, req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteRoute(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	if err := s.catalog.Handler.DeleteRouteHandler(r.Context(), catalogActor(actor), r.PathValue("slug")); err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddSection(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	routeID, ok := parsePathID(w, r, "route_id")
	if !ok {
		return
	}

	var req cataloghttp.CreateSectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.catalog.Handler.AddSectionHandler(r.Context(), catalogActor(actor), routeID, req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	sectionID, ok := parsePathID(w, r, "section_id")
	if !ok {
		return
	}

	var req cataloghttp.UpdateSectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.catalog.Handler.UpdateSectionHandler(r.Context(), catalogActor(actor), sectionID, req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteSection(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	sectionID, ok := parsePathID(w, r, "section_id")
	if !ok {
		return
	}
	if err := s.catalog.Handler.DeleteSectionHandler(r.Context(), catalogActor(actor), sectionID); err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddRoutePoint(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	routeID, ok := parsePathID(w, r, "route_id")
	if !ok {
		return
	}

	var req cataloghttp.CreateRoutePointRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.catalog.Handler.AddRoutePointHandler(r.Context(), catalogActor(actor), routeID, req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteRoutePoint(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	pointID, ok := parsePathID(w, r, "point_id")
	if !ok {
		return
	}
	if err := s.catalog.Handler.DeleteRoutePointHandler(r.Context(), catalogActor(actor), pointID); err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddRoutePhoto(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	routeID, ok := parsePathID(w, r, "route_id")
	if !ok {
		return
	}
	upload, ok := parseUpload(w, r)
	if !ok {
		return
	}

	resp, err := s.catalog.Handler.AddRoutePhotoHandler(r.Context(), catalogActor(actor), routeID, upload)
	if err != nil {
		writeCatalogUploadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateRoutePhoto(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	routeID, ok := parsePathID(w, r, "route_id")
	if !ok {
		return
	}
	upload, ok := parseUpload(w, r)
	if !ok {
		return
	}

	resp, err := s.catalog.Handler.UpdateRoutePhotoHandler(r.Context(), catalogActor(actor), routeID, upload)
	if err != nil {
		writeCatalogUploadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateRouteMap(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	routeID, ok := parsePathID(w, r, "route_id")
	if !ok {
		return
	}
	upload, ok := parseUpload(w, r)
	if !ok {
		return
	}

	resp, err := s.catalog.Handler.UpdateRouteMapHandler(r.Context(), catalogActor(actor), routeID, upload)
	if err != nil {
		writeCatalogUploadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func parsePathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		writeCatalogError(w, http.StatusBadRequest, "invalid_id", name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// parseUpload reads the "file" part and optional "description" field of a
// multipart form.
func parseUpload(w http.ResponseWriter, r *http.Request) (ports.Upload, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_multipart", "request body must be a multipart form")
		return ports.Upload{}, false
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeCatalogError(w, http.StatusBadRequest, "missing_file", "file part is required")
		return ports.Upload{}, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeCatalogError(w, http.StatusBadRequest, "unreadable_file", "file part could not be read")
		return ports.Upload{}, false
	}
	return ports.Upload{
		Filename:    header.Filename,
		Data:        data,
		Description: r.FormValue("description"),
	}, true
}

// writeCatalogUploadError soft-fails file store errors: the entity row was
// not touched, so the client gets a structured payload instead of a 5xx.
func writeCatalogUploadError(w http.ResponseWriter, err error) {
	if errors.Is(err, catalogerrors.ErrUploadFailed) {
		writeJSON(w, http.StatusOK, cataloghttp.UploadResult{
			Saved:   false,
			Message: err.Error(),
		})
		return
	}
	writeCatalogDomainError(w, err)
}

func writeCatalogDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogerrors.ErrRidgeNotFound),
		errors.Is(err, catalogerrors.ErrInfoLinkNotFound),
		errors.Is(err, catalogerrors.ErrPeakNotFound),
		errors.Is(err, catalogerrors.ErrPeakPhotoNotFound),
		errors.Is(err, catalogerrors.ErrRouteNotFound),
		errors.Is(err, catalogerrors.ErrSectionNotFound),
		errors.Is(err, catalogerrors.ErrPointNotFound):
		writeCatalogError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, catalogerrors.ErrForbidden):
		writeCatalogError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, catalogerrors.ErrConflict):
		writeCatalogError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, catalogerrors.ErrInvalidRequest):
		writeCatalogError(w, http.StatusUnprocessableEntity, "invalid_request", err.Error())
	case errors.Is(err, catalogerrors.ErrSlugExhausted):
		writeCatalogError(w, http.StatusInternalServerError, "slug_exhausted", err.Error())
	default:
		writeCatalogError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCatalogError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, cataloghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
