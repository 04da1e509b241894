package accountservice

import (
	"log/slog"
	"time"

	bcryptadapter "vershyna/contexts/identity/account-service/adapters/bcrypt"
	httpadapter "vershyna/contexts/identity/account-service/adapters/http"
	jwtadapter "vershyna/contexts/identity/account-service/adapters/jwt"
	"vershyna/contexts/identity/account-service/adapters/memory"
	"vershyna/contexts/identity/account-service/application"
	"vershyna/contexts/identity/account-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Users  ports.UserRepository
	Hasher ports.PasswordHasher
	Tokens ports.TokenCodec
	Clock  ports.Clock
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Users:  deps.Users,
		Hasher: deps.Hasher,
		Tokens: deps.Tokens,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(secret string, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Users:  store,
		Hasher: bcryptadapter.Hasher{},
		Tokens: jwtadapter.Codec{
			Secret: []byte(secret),
			TTL:    30 * time.Minute,
		},
		Clock:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
