package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	accounterrors "vershyna/contexts/identity/account-service/domain/errors"
	accounthttp "vershyna/contexts/identity/account-service/transport/http"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.accounts.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleLogin accepts form-encoded credentials (the password grant shape)
// and falls back to a JSON body.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	username, password, ok := readCredentials(r)
	if !ok {
		writeAccountError(w, http.StatusBadRequest, "invalid_credentials_payload", "username and password are required")
		return
	}

	resp, err := s.accounts.Handler.LoginHandler(r.Context(), username, password)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.accounts.Handler.CurrentUserHandler(r.Context(), actor))
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}

	var req accounthttp.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.accounts.Handler.UpdateProfileHandler(r.Context(), actor, r.PathValue("username"), req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetPermissions(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}

	var req accounthttp.SetPermissionsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.accounts.Handler.SetPermissionsHandler(r.Context(), actor, r.PathValue("username"), req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateEmail(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}

	var req accounthttp.UpdateEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.accounts.Handler.UpdateEmailHandler(r.Context(), actor, req.Username, req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}

	var req accounthttp.UpdatePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	if err := s.accounts.Handler.UpdatePasswordHandler(r.Context(), actor, req.Username, req); err != nil {
		writeAccountDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}

func readCredentials(r *http.Request) (string, string, bool) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseForm(); err != nil {
			return "", "", false
		}
		username := r.FormValue("username")
		password := r.FormValue("password")
		return username, password, username != "" && password != ""
	}

	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		return "", "", false
	}
	return body.Username, body.Password, body.Username != "" && body.Password != ""
}

func writeAccountDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accounterrors.ErrUnauthenticated):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeAccountError(w, http.StatusUnauthorized, "unauthenticated", err.Error())
	case errors.Is(err, accounterrors.ErrInvalidCredentials):
		writeAccountError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, accounterrors.ErrInactiveUser):
		writeAccountError(w, http.StatusBadRequest, "inactive_user", err.Error())
	case errors.Is(err, accounterrors.ErrUsernameTaken),
		errors.Is(err, accounterrors.ErrEmailTaken):
		writeAccountError(w, http.StatusBadRequest, "already_registered", err.Error())
	case errors.Is(err, accounterrors.ErrUserNotFound):
		writeAccountError(w, http.StatusNotFound, "user_not_found", err.Error())
	case errors.Is(err, accounterrors.ErrForbidden):
		writeAccountError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, accounterrors.ErrInvalidRequest):
		writeAccountError(w, http.StatusUnprocessableEntity, "invalid_request", err.Error())
	default:
		writeAccountError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeAccountError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, accounthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
