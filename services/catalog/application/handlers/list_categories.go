package handlers

import (
	"net/http"

	"github.com/ghuser/plantcatalog/pkg/errhttp"
	"github.com/ghuser/plantcatalog/pkg/httpx"
	appsvcs "github.com/ghuser/plantcatalog/services/catalog/application/services"
)

// ListCategoriesHandler handles GET /categories requests.
type ListCategoriesHandler struct {
	svc  *appsvcs.Services
	errw *errhttp.Writer
}

// NewListCategoriesHandler returns a ListCategoriesHandler backed by the given services.
func NewListCategoriesHandler(svc *appsvcs.Services, errw *errhttp.Writer) *ListCategoriesHandler {
	return &ListCategoriesHandler{svc: svc, errw: errw}
}

// Execute returns every distinct category.
//
//	@Summary		List categories
//	@Description	Returns the distinct categories across all plants, unordered
//	@Tags			plants
//	@Produce		json
//	@Success		200	{array}		string
//	@Failure		500	{object}	ErrorResponse
//	@Router			/categories [get]
func (h *ListCategoriesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Plant.Categories(r.Context())
	if err != nil {
		h.errw.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, categories)
}
