package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/plantcatalog/pkg/app"
	"github.com/ghuser/plantcatalog/pkg/auth"
	"github.com/ghuser/plantcatalog/pkg/errhttp"
	"github.com/ghuser/plantcatalog/pkg/logger"
	"github.com/ghuser/plantcatalog/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/plantcatalog/services/catalog/application/services"
)

// CatalogRoutes registers catalog endpoints on the provided chi router.
func CatalogRoutes(r chi.Router, a *app.Application) {
	RegisterRoutes(r, appsvcs.New(a), a.Config.AdminKey, a.Logger, a.Config.IsDevelopment())
}

// RegisterRoutes mounts the catalog handlers over svcs. Mutating routes sit
// behind the X-Admin-Key gate.
func RegisterRoutes(r chi.Router, svcs *appsvcs.Services, adminKey string, log logger.Logger, isDevelopment bool) {
	errw := errhttp.NewWriter(log, isDevelopment)
	admin := auth.RequireAdminKey(adminKey, log)

	r.Route("/plants", func(r chi.Router) {
		r.Get("/", handlers.NewListPlantsHandler(svcs, errw).Execute)
		r.Get("/{id}", handlers.NewGetPlantHandler(svcs, errw).Execute)
		r.With(admin).Post("/", handlers.NewPostPlantHandler(svcs, errw).Execute)
	})
	r.Get("/categories", handlers.NewListCategoriesHandler(svcs, errw).Execute)
	r.With(admin).Post("/seed", handlers.NewPostSeedHandler(svcs, errw).Execute)
}
