package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"vershyna/contexts/identity/account-service/application"
	"vershyna/contexts/identity/account-service/domain/entities"
	domainerrors "vershyna/contexts/identity/account-service/domain/errors"
	"vershyna/contexts/identity/account-service/ports"
	httptransport "vershyna/contexts/identity/account-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterHandler(ctx context.Context, req httptransport.RegisterRequest) (httptransport.UserDTO, error) {
	user, err := h.Service.Register(ctx, ports.NewUser{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
	})
	if err != nil {
		return httptransport.UserDTO{}, err
	}
	return mapUser(user), nil
}

func (h Handler) LoginHandler(ctx context.Context, username string, password string) (httptransport.TokenResponse, error) {
	token, err := h.Service.Login(ctx, username, password)
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	return httptransport.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// ResolveHandler maps a bearer token to the acting account. The platform
// server calls this before any protected route.
func (h Handler) ResolveHandler(ctx context.Context, token string) (entities.User, error) {
	return h.Service.Resolve(ctx, token)
}

func (h Handler) CurrentUserHandler(_ context.Context, actor entities.User) httptransport.UserDTO {
	return mapUser(actor)
}

func (h Handler) UpdateProfileHandler(ctx context.Context, actor entities.User, username string, req httptransport.UpdateProfileRequest) (httptransport.UserDTO, error) {
	if req.Username != "" && req.Username != username {
		return httptransport.UserDTO{}, domainerrors.ErrUserNotFound
	}
	user, err := h.Service.UpdateProfile(ctx, actor, username, ports.ProfilePatch{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
	})
	if err != nil {
		return httptransport.UserDTO{}, err
	}
	return mapUser(user), nil
}

func (h Handler) SetPermissionsHandler(ctx context.Context, actor entities.User, username string, req httptransport.SetPermissionsRequest) (httptransport.UserDTO, error) {
	user, err := h.Service.SetPermissions(ctx, actor, username, ports.Permissions{
		IsActive: req.IsActive,
		IsAdmin:  req.IsAdmin,
		IsEditor: req.IsEditor,
	})
	if err != nil {
		return httptransport.UserDTO{}, err
	}
	return mapUser(user), nil
}

func (h Handler) UpdateEmailHandler(ctx context.Context, actor entities.User, username string, req httptransport.UpdateEmailRequest) (httptransport.UserDTO, error) {
	user, err := h.Service.UpdateEmail(ctx, actor, username, req.Password, req.Email)
	if err != nil {
		return httptransport.UserDTO{}, err
	}
	return mapUser(user), nil
}

func (h Handler) UpdatePasswordHandler(ctx context.Context, actor entities.User, username string, req httptransport.UpdatePasswordRequest) error {
	return h.Service.UpdatePassword(ctx, actor, username, req.CurrentPassword, req.NewPassword)
}

func mapUser(item entities.User) httptransport.UserDTO {
	return httptransport.UserDTO{
		ID:         item.ID,
		Username:   item.Username,
		Email:      item.Email,
		FirstName:  item.FirstName,
		LastName:   item.LastName,
		MiddleName: item.MiddleName,
		IsActive:   item.IsActive,
		IsAdmin:    item.IsAdmin,
		IsEditor:   item.IsEditor,
		DateJoined: item.DateJoined.UTC().Format(time.RFC3339),
	}
}
