package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	mountainservice "vershyna/contexts/catalog/mountain-service"
	cataloghttp "vershyna/contexts/catalog/mountain-service/transport/http"
	accountservice "vershyna/contexts/identity/account-service"
	bcryptadapter "vershyna/contexts/identity/account-service/adapters/bcrypt"
	"vershyna/contexts/identity/account-service/domain/entities"
	accounthttp "vershyna/contexts/identity/account-service/transport/http"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	catalog := mountainservice.NewInMemoryModule(nil)
	accounts := accountservice.NewInMemoryModule("test-secret", nil)
	return New(catalog, accounts, nil, ":0")
}

func doJSON(t *testing.T, s *Server, method string, path string, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), target); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// seedUser inserts an account directly and logs it in, bypassing the viewer
// defaults of the register endpoint.
func seedUser(t *testing.T, s *Server, username string, isAdmin bool, isEditor bool) string {
	t.Helper()
	hasher := bcryptadapter.Hasher{Cost: bcrypt.MinCost}
	hash, err := hasher.Hash("password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := entities.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		IsActive:     true,
		IsAdmin:      isAdmin,
		IsEditor:     isEditor,
		DateJoined:   time.Now().UTC(),
	}
	if err := s.accounts.Store.CreateUser(context.Background(), &user); err != nil {
		t.Fatalf("seed %s: %v", username, err)
	}
	return login(t, s, username, "password")
}

func login(t *testing.T, s *Server, username string, password string) string {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", username, rec.Code, rec.Body.String())
	}
	var resp accounthttp.TokenResponse
	decodeBody(t, rec, &resp)
	if resp.AccessToken == "" || resp.TokenType != "bearer" {
		t.Fatalf("unexpected token response: %+v", resp)
	}
	return resp.AccessToken
}

func TestRegisterAndDuplicate(t *testing.T) {
	s := newTestServer(t)

	payload := accounthttp.RegisterRequest{
		Username: "oles",
		Email:    "oles@example.com",
		Password: "secret",
	}
	rec := doJSON(t, s, http.MethodPost, "/users/register", "", payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("register: status %d body %s", rec.Code, rec.Body.String())
	}
	var user accounthttp.UserDTO
	decodeBody(t, rec, &user)
	if user.Username != "oles" || !user.IsActive || user.IsAdmin || user.IsEditor {
		t.Fatalf("unexpected account: %+v", user)
	}

	rec = doJSON(t, s, http.MethodPost, "/users/register", "", payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: status %d", rec.Code)
	}
	var errResp accounthttp.ErrorResponse
	decodeBody(t, rec, &errResp)
	if errResp.Code != "already_registered" {
		t.Fatalf("expected already_registered, got %q", errResp.Code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newTestServer(t)
	seedUser(t, s, "oles", false, false)

	form := url.Values{"username": {"oles"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad credentials: status %d", rec.Code)
	}
}

func TestCurrentUserRequiresToken(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/users/me", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status %d", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Fatalf("missing WWW-Authenticate header")
	}

	token := seedUser(t, s, "oles", false, false)
	rec = doJSON(t, s, http.MethodGet, "/users/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("with token: status %d body %s", rec.Code, rec.Body.String())
	}
	var user accounthttp.UserDTO
	decodeBody(t, rec, &user)
	if user.Username != "oles" {
		t.Fatalf("resolved wrong account: %+v", user)
	}
}

func TestRidgeLifecycleOverHTTP(t *testing.T) {
	s := newTestServer(t)
	editorToken := seedUser(t, s, "editor", false, true)

	rec := doJSON(t, s, http.MethodPost, "/mountains/ridge", editorToken, cataloghttp.CreateRidgeRequest{
		Name:        "Chornohora",
		Description: "the highest range",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create ridge: status %d body %s", rec.Code, rec.Body.String())
	}
	var ridge cataloghttp.RidgeDTO
	decodeBody(t, rec, &ridge)
	if ridge.Slug != "chornohora" {
		t.Fatalf("unexpected slug %q", ridge.Slug)
	}

	rec = doJSON(t, s, http.MethodGet, "/mountains/ridge/chornohora", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get ridge: status %d", rec.Code)
	}
	var detail cataloghttp.RidgeDetailResponse
	decodeBody(t, rec, &detail)
	if detail.Ridge.Name != "Chornohora" || len(detail.Peaks) != 0 {
		t.Fatalf("unexpected detail: %+v", detail)
	}

	rec = doJSON(t, s, http.MethodDelete, "/mountains/ridge/chornohora", editorToken, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete ridge: status %d body %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, s, http.MethodGet, "/mountains/ridge/chornohora", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("deleted ridge still readable: status %d", rec.Code)
	}
}

func TestCatalogWritesNeedPermission(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/mountains/ridge", "", cataloghttp.CreateRidgeRequest{Name: "Ridge"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous write: status %d", rec.Code)
	}

	viewerToken := seedUser(t, s, "viewer", false, false)
	rec = doJSON(t, s, http.MethodPost, "/mountains/ridge", viewerToken, cataloghttp.CreateRidgeRequest{Name: "Ridge"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("viewer write: status %d", rec.Code)
	}
}

func TestLegacyPathsReachSameHandlers(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/mountains/ridges/add", "", cataloghttp.CreateRidgeRequest{Name: "Ridge"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous legacy write: status %d", rec.Code)
	}

	viewerToken := seedUser(t, s, "viewer", false, false)
	rec = doJSON(t, s, http.MethodPost, "/mountains/ridges/add", viewerToken, cataloghttp.CreateRidgeRequest{Name: "Ridge"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("viewer legacy write: status %d", rec.Code)
	}

	editorToken := seedUser(t, s, "editor", false, true)
	rec = doJSON(t, s, http.MethodPost, "/mountains/ridges/add", editorToken, cataloghttp.CreateRidgeRequest{Name: "Svydovets"})
	if rec.Code != http.StatusOK {
		t.Fatalf("editor legacy write: status %d body %s", rec.Code, rec.Body.String())
	}
	var ridge cataloghttp.RidgeDTO
	decodeBody(t, rec, &ridge)
	if ridge.Slug != "svydovets" {
		t.Fatalf("unexpected slug %q", ridge.Slug)
	}

	form := url.Values{"username": {"editor"}, "password": {"password"}}
	req := httptest.NewRequest(http.MethodPost, "/users/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	tokenRec := httptest.NewRecorder()
	s.mux.ServeHTTP(tokenRec, req)
	if tokenRec.Code != http.StatusOK {
		t.Fatalf("token endpoint: status %d body %s", tokenRec.Code, tokenRec.Body.String())
	}
	var tokenResp accounthttp.TokenResponse
	decodeBody(t, tokenRec, &tokenResp)
	if tokenResp.AccessToken == "" || tokenResp.TokenType != "bearer" {
		t.Fatalf("unexpected token response: %+v", tokenResp)
	}

	first := "Ivan"
	rec = doJSON(t, s, http.MethodPut, "/users/update/editor", editorToken, accounthttp.UpdateProfileRequest{
		Username:  "editor",
		FirstName: &first,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("legacy profile update: status %d body %s", rec.Code, rec.Body.String())
	}
	var user accounthttp.UserDTO
	decodeBody(t, rec, &user)
	if user.FirstName != "Ivan" {
		t.Fatalf("profile not updated: %+v", user)
	}
}

func TestForeignEditorCannotUpdateRidge(t *testing.T) {
	s := newTestServer(t)
	ownerToken := seedUser(t, s, "owner", false, true)
	rivalToken := seedUser(t, s, "rival", false, true)
	adminToken := seedUser(t, s, "root", true, false)

	rec := doJSON(t, s, http.MethodPost, "/mountains/ridge", ownerToken, cataloghttp.CreateRidgeRequest{Name: "Owned"})
	if rec.Code != http.StatusOK {
		t.Fatalf("create: status %d", rec.Code)
	}

	name := "Renamed"
	rec = doJSON(t, s, http.MethodPut, "/mountains/ridge/owned", rivalToken, cataloghttp.UpdateRidgeRequest{Name: &name})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("rival update: status %d", rec.Code)
	}
	rec = doJSON(t, s, http.MethodPut, "/mountains/ridge/owned", adminToken, cataloghttp.UpdateRidgeRequest{Name: &name})
	if rec.Code != http.StatusOK {
		t.Fatalf("admin update: status %d body %s", rec.Code, rec.Body.String())
	}
	var ridge cataloghttp.RidgeDTO
	decodeBody(t, rec, &ridge)
	if ridge.Name != "Renamed" || ridge.Slug != "owned" {
		t.Fatalf("rename must keep slug: %+v", ridge)
	}
}

func TestAccountManagementRoutes(t *testing.T) {
	s := newTestServer(t)
	adminToken := seedUser(t, s, "root", true, false)
	userToken := seedUser(t, s, "oles", false, false)

	rec := doJSON(t, s, http.MethodPut, "/users/set/permissions/oles", adminToken, accounthttp.SetPermissionsRequest{
		IsActive: true,
		IsEditor: true,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("set permissions: status %d body %s", rec.Code, rec.Body.String())
	}
	var user accounthttp.UserDTO
	decodeBody(t, rec, &user)
	if !user.IsEditor || user.IsAdmin {
		t.Fatalf("unexpected permissions: %+v", user)
	}

	rec = doJSON(t, s, http.MethodPut, "/users/set/permissions/root", userToken, accounthttp.SetPermissionsRequest{IsAdmin: true})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin set permissions: status %d", rec.Code)
	}

	rec = doJSON(t, s, http.MethodPut, "/users/email/update", userToken, accounthttp.UpdateEmailRequest{
		Username: "oles",
		Password: "password",
		Email:    "oles@karpaty.ua",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("email update: status %d body %s", rec.Code, rec.Body.String())
	}
	decodeBody(t, rec, &user)
	if user.Email != "oles@karpaty.ua" {
		t.Fatalf("email not updated: %+v", user)
	}

	rec = doJSON(t, s, http.MethodPut, "/users/password/update", userToken, accounthttp.UpdatePasswordRequest{
		Username:        "oles",
		CurrentPassword: "wrong",
		NewPassword:     "next",
	})
	if rec.Code == http.StatusNoContent {
		t.Fatalf("password update with wrong current password must fail")
	}

	rec = doJSON(t, s, http.MethodPut, "/users/password/update", userToken, accounthttp.UpdatePasswordRequest{
		Username:        "oles",
		CurrentPassword: "password",
		NewPassword:     "next",
	})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("password update: status %d body %s", rec.Code, rec.Body.String())
	}
	login(t, s, "oles", "next")
}

func TestPeakSearchAndRouteFilters(t *testing.T) {
	s := newTestServer(t)
	token := seedUser(t, s, "editor", false, true)

	rec := doJSON(t, s, http.MethodPost, "/mountains/ridge", token, cataloghttp.CreateRidgeRequest{Name: "Range"})
	if rec.Code != http.StatusOK {
		t.Fatalf("create ridge: status %d", rec.Code)
	}
	var ridge cataloghttp.RidgeDTO
	decodeBody(t, rec, &ridge)

	rec = doJSON(t, s, http.MethodPost, "/mountains/peak", token, cataloghttp.CreatePeakRequest{
		Name:    "Hoverla",
		RidgeID: ridge.ID,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create peak: status %d body %s", rec.Code, rec.Body.String())
	}
	var peak cataloghttp.PeakDTO
	decodeBody(t, rec, &peak)

	rec = doJSON(t, s, http.MethodPost, "/mountains/route", token, cataloghttp.CreateRouteRequest{
		Name:       "North Face",
		PeakID:     peak.ID,
		Author:     "Franko",
		Difficulty: "2A",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create route: status %d body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, s, http.MethodGet, "/mountains/peaks?key=hover", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("search peaks: status %d", rec.Code)
	}
	var peaks cataloghttp.ListPeaksResponse
	decodeBody(t, rec, &peaks)
	if len(peaks.Items) != 1 || peaks.Items[0].Slug != "hoverla" {
		t.Fatalf("expected hoverla, got %+v", peaks.Items)
	}

	rec = doJSON(t, s, http.MethodGet, "/mountains/routes?query=north&author=frank&category=2", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("search routes: status %d", rec.Code)
	}
	var routes cataloghttp.ListRoutesResponse
	decodeBody(t, rec, &routes)
	if len(routes.Items) != 1 || routes.Items[0].Name != "North Face" {
		t.Fatalf("expected North Face, got %+v", routes.Items)
	}

	rec = doJSON(t, s, http.MethodGet, "/mountains/routes?category=3", "", nil)
	decodeBody(t, rec, &routes)
	if len(routes.Items) != 0 {
		t.Fatalf("expected empty result, got %+v", routes.Items)
	}
}

func TestDeleteRidgeWithPeaksConflicts(t *testing.T) {
	s := newTestServer(t)
	token := seedUser(t, s, "editor", false, true)

	rec := doJSON(t, s, http.MethodPost, "/mountains/ridge", token, cataloghttp.CreateRidgeRequest{Name: "Parent"})
	var ridge cataloghttp.RidgeDTO
	decodeBody(t, rec, &ridge)

	rec = doJSON(t, s, http.MethodPost, "/mountains/peak", token, cataloghttp.CreatePeakRequest{
		Name:    "Child",
		RidgeID: ridge.ID,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create peak: status %d", rec.Code)
	}

	rec = doJSON(t, s, http.MethodDelete, "/mountains/ridge/parent", token, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body %s", rec.Code, rec.Body.String())
	}
}

func TestUnknownResourcesReturn404(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{
		"/mountains/ridge/nope",
		"/mountains/peak/nope",
		"/mountains/route/nope",
	} {
		rec := doJSON(t, s, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, rec.Code)
		}
		var errResp cataloghttp.ErrorResponse
		decodeBody(t, rec, &errResp)
		if errResp.Code == "" {
			t.Fatalf("%s: missing error code in %s", path, rec.Body.String())
		}
	}
}

func TestPeakPhotoUploadSoftFail(t *testing.T) {
	s := newTestServer(t)
	token := seedUser(t, s, "editor", false, true)

	rec := doJSON(t, s, http.MethodPost, "/mountains/ridge", token, cataloghttp.CreateRidgeRequest{Name: "Range"})
	var ridge cataloghttp.RidgeDTO
	decodeBody(t, rec, &ridge)
	rec = doJSON(t, s, http.MethodPost, "/mountains/peak", token, cataloghttp.CreatePeakRequest{Name: "Summit", RidgeID: ridge.ID})
	var peak cataloghttp.PeakDTO
	decodeBody(t, rec, &peak)

	photoPath := fmt.Sprintf("/mountains/peak/%d/photo", peak.ID)
	s.catalog.Store.FailUploads = true
	rec = uploadFile(t, s, http.MethodPost, photoPath, token, "view.jpg", []byte("jpeg-bytes"))
	if rec.Code != http.StatusOK {
		t.Fatalf("soft fail must answer 200, got %d body %s", rec.Code, rec.Body.String())
	}
	var result cataloghttp.UploadResult
	decodeBody(t, rec, &result)
	if result.Saved || result.Message == "" {
		t.Fatalf("expected unsaved result with message, got %+v", result)
	}

	s.catalog.Store.FailUploads = false
	rec = uploadFile(t, s, http.MethodPost, photoPath, token, "view.jpg", []byte("jpeg-bytes"))
	if rec.Code != http.StatusOK {
		t.Fatalf("upload: status %d body %s", rec.Code, rec.Body.String())
	}
	var saved cataloghttp.PeakPhotoDTO
	decodeBody(t, rec, &saved)
	if saved.Photo == "" || saved.PeakID != peak.ID {
		t.Fatalf("expected stored photo row, got %+v", saved)
	}
}

func uploadFile(t *testing.T, s *Server, method string, path string, token string, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.WriteField("description", "test upload"); err != nil {
		t.Fatalf("write description: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}
