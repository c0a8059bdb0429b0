package handlers

import (
	"net/http"

	"github.com/ghuser/plantcatalog/pkg/errhttp"
	"github.com/ghuser/plantcatalog/pkg/httpx"
	pkgvalidator "github.com/ghuser/plantcatalog/pkg/validator"
	appsvcs "github.com/ghuser/plantcatalog/services/catalog/application/services"
)

const msgPlantAdded = "Plant added successfully"

// CreatePlantResponse is returned on successful plant creation.
type CreatePlantResponse struct {
	Message string        `json:"message" example:"Plant added successfully"`
	Plant   PlantResponse `json:"plant"`
} // @name CreatePlantResponse

// PostPlantHandler handles POST /plants requests.
type PostPlantHandler struct {
	svc  *appsvcs.Services
	errw *errhttp.Writer
}

// NewPostPlantHandler returns a PostPlantHandler backed by the given services.
func NewPostPlantHandler(svc *appsvcs.Services, errw *errhttp.Writer) *PostPlantHandler {
	return &PostPlantHandler{svc: svc, errw: errw}
}

// Execute adds a plant to the catalog.
//
//	@Summary		Create plant
//	@Description	Adds one plant. Requires the admin key.
//	@Tags			plants
//	@Accept			json
//	@Produce		json
//	@Security		AdminKey
//	@Param			request	body		CreatePlantRequest	true	"Plant creation request"
//	@Success		201		{object}	CreatePlantResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/plants [post]
func (h *PostPlantHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreatePlantRequest](w, r)
	if !ok {
		return
	}

	plant, err := h.svc.Plant.Create(r.Context(), req.toAddParams())
	if err != nil {
		h.errw.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, CreatePlantResponse{
		Message: msgPlantAdded,
		Plant:   toPlantResponse(plant),
	})
}
