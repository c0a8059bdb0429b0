package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ghuser/plantcatalog/pkg/errhttp"
	"github.com/ghuser/plantcatalog/pkg/httpx"
	appsvcs "github.com/ghuser/plantcatalog/services/catalog/application/services"
	"github.com/ghuser/plantcatalog/services/catalog/domain/models"
)

// ListPlantsResponse is one page of the catalog.
type ListPlantsResponse struct {
	Items      []PlantResponse `json:"items"`
	Total      int64           `json:"total"      example:"14"`
	Page       int             `json:"page"       example:"1"`
	Limit      int             `json:"limit"      example:"12"`
	TotalPages int             `json:"totalPages" example:"2"`
} // @name PlantPage

// ListPlantsHandler handles GET /plants requests.
type ListPlantsHandler struct {
	svc  *appsvcs.Services
	errw *errhttp.Writer
}

// NewListPlantsHandler returns a ListPlantsHandler backed by the given services.
func NewListPlantsHandler(svc *appsvcs.Services, errw *errhttp.Writer) *ListPlantsHandler {
	return &ListPlantsHandler{svc: svc, errw: errw}
}

// Execute lists plants with search, category filter, sorting and pagination.
//
//	@Summary		List plants
//	@Description	Returns one page of plants. q matches name or any category; category matches any category. Both are case-insensitive substring matches.
//	@Tags			plants
//	@Produce		json
//	@Param			page		query		int		false	"Page number (default 1)"
//	@Param			limit		query		int		false	"Page size (default 12, max 100)"
//	@Param			sort		query		string	false	"Sort field, prefix with - for descending (default name)"
//	@Param			q			query		string	false	"Search term"
//	@Param			category	query		string	false	"Category filter"
//	@Success		200			{object}	ListPlantsResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/plants [get]
func (h *ListPlantsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Plant.List(r.Context(), ParseListParams(r.URL.Query()))
	if err != nil {
		h.errw.WriteError(w, r, err)
		return
	}

	items := make([]PlantResponse, len(page.Items))
	for i, p := range page.Items {
		items[i] = toPlantResponse(p)
	}
	httpx.JSON(w, http.StatusOK, ListPlantsResponse{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	})
}

// ParseListParams turns raw query parameters into a normalised ListQuery.
// page and limit are read from their leading digits ("2.5" is 2); missing,
// zero or non-numeric values fall back to their defaults.
func ParseListParams(v url.Values) models.ListQuery {
	filter := models.PlantFilter{
		Search:   strings.TrimSpace(v.Get("q")),
		Category: strings.TrimSpace(v.Get("category")),
	}
	return models.NewListQuery(
		filter,
		models.ParseSort(v.Get("sort")),
		atoiOr(v.Get("page"), models.DefaultPage),
		atoiOr(v.Get("limit"), models.DefaultLimit),
	)
}

func atoiOr(s string, fallback int) int {
	n, ok := leadingInt(s)
	if !ok || n == 0 {
		return fallback
	}
	return n
}

// leadingInt parses an optional sign followed by the leading decimal digits
// of s, ignoring the rest. Values outside the int range saturate.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}
