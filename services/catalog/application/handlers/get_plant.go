package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/plantcatalog/pkg/errhttp"
	"github.com/ghuser/plantcatalog/pkg/httpx"
	appsvcs "github.com/ghuser/plantcatalog/services/catalog/application/services"
)

// GetPlantHandler handles GET /plants/{id} requests.
type GetPlantHandler struct {
	svc  *appsvcs.Services
	errw *errhttp.Writer
}

// NewGetPlantHandler returns a GetPlantHandler backed by the given services.
func NewGetPlantHandler(svc *appsvcs.Services, errw *errhttp.Writer) *GetPlantHandler {
	return &GetPlantHandler{svc: svc, errw: errw}
}

// Execute returns a single plant.
//
//	@Summary		Get plant
//	@Description	Returns one plant by id. Malformed and unknown ids both answer 404.
//	@Tags			plants
//	@Produce		json
//	@Param			id	path		string	true	"Plant id (24 hex characters)"
//	@Success		200	{object}	PlantResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/plants/{id} [get]
func (h *GetPlantHandler) Execute(w http.ResponseWriter, r *http.Request) {
	plant, err := h.svc.Plant.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.errw.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toPlantResponse(plant))
}
