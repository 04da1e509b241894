package mountainservice

import (
	"log/slog"

	httpadapter "vershyna/contexts/catalog/mountain-service/adapters/http"
	"vershyna/contexts/catalog/mountain-service/adapters/memory"
	"vershyna/contexts/catalog/mountain-service/application"
	"vershyna/contexts/catalog/mountain-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Ridges ports.RidgeRepository
	Peaks  ports.PeakRepository
	Routes ports.RouteRepository
	Points ports.GeoPointRepository
	Slugs  ports.SlugIndex
	Files  ports.FileStore
	Clock  ports.Clock
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Ridges: deps.Ridges,
		Peaks:  deps.Peaks,
		Routes: deps.Routes,
		Points: deps.Points,
		Slugs:  deps.Slugs,
		Files:  deps.Files,
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

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Ridges: store,
		Peaks:  store,
		Routes: store,
		Points: store,
		Slugs:  store,
		Files:  store,
		Clock:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
