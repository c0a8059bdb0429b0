package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/plantcatalog/pkg/auth"
	"github.com/ghuser/plantcatalog/pkg/httpx"
	"github.com/ghuser/plantcatalog/pkg/logger"
	"github.com/ghuser/plantcatalog/services/catalog/application/api"
	appsvcs "github.com/ghuser/plantcatalog/services/catalog/application/services"
	"github.com/ghuser/plantcatalog/services/catalog/infrastructure/persistence/memory"
)

const testAdminKey = "test-admin-key"

type plantJSON struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Categories  []string `json:"categories"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	InStock     bool     `json:"inStock"`
	CreatedAt   string   `json:"createdAt"`
}

type pageJSON struct {
	Items      []plantJSON `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"totalPages"`
}

func newTestAPI(t *testing.T) http.Handler {
	t.Helper()
	svcs := &appsvcs.Services{
		Plant: appsvcs.NewPlantService(memory.NewPlantRepository(), nil, nil, nil, nil, logger.NewNop()),
	}
	r := chi.NewRouter()
	r.NotFound(httpx.NotFound)
	r.MethodNotAllowed(httpx.MethodNotAllowed)
	r.Route("/api", func(r chi.Router) {
		api.RegisterRoutes(r, svcs, testAdminKey, logger.NewNop(), false)
	})
	return r
}

func do(t *testing.T, h http.Handler, method, target, body, key string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(auth.HeaderAdminKey, key)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func addPlant(t *testing.T, h http.Handler, body string) plantJSON {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/plants", body, testAdminKey)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decode[struct {
		Message string    `json:"message"`
		Plant   plantJSON `json:"plant"`
	}](t, rec)
	assert.Equal(t, "Plant added successfully", resp.Message)
	return resp.Plant
}

func itemNames(p pageJSON) []string {
	out := make([]string, len(p.Items))
	for i, it := range p.Items {
		out[i] = it.Name
	}
	return out
}

func TestAPI_AddThenListSortedByPrice(t *testing.T) {
	h := newTestAPI(t)
	addPlant(t, h, `{"name":"Aloe","price":199}`)
	addPlant(t, h, `{"name":"Money","price":299}`)
	addPlant(t, h, `{"name":"Snake","price":399}`)

	rec := do(t, h, http.MethodGet, "/api/plants?sort=-price", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	page := decode[pageJSON](t, rec)
	assert.Equal(t, []string{"Snake", "Money", "Aloe"}, itemNames(page))
	assert.EqualValues(t, 3, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 12, page.Limit)
	assert.Equal(t, 1, page.TotalPages)
}

func TestAPI_EmptyListIsArray(t *testing.T) {
	h := newTestAPI(t)
	rec := do(t, h, http.MethodGet, "/api/plants?q=nothing", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
	assert.Contains(t, rec.Body.String(), `"totalPages":0`)
}

func TestAPI_SearchAndCategoryCombine(t *testing.T) {
	h := newTestAPI(t)
	addPlant(t, h, `{"name":"Snake Plant","price":499,"categories":["Indoor","Low Maintenance"]}`)
	addPlant(t, h, `{"name":"Money Plant","price":399,"categories":["Indoor","Air Purifying"]}`)
	addPlant(t, h, `{"name":"Rose Bush","price":599,"categories":["Outdoor","Flowering"]}`)

	page := decode[pageJSON](t, do(t, h, http.MethodGet, "/api/plants?q=plant&category=AIR", "", ""))
	assert.Equal(t, []string{"Money Plant"}, itemNames(page))

	page = decode[pageJSON](t, do(t, h, http.MethodGet, "/api/plants?q=flower", "", ""))
	assert.Equal(t, []string{"Rose Bush"}, itemNames(page))

	page = decode[pageJSON](t, do(t, h, http.MethodGet, "/api/plants?q=.*", "", ""))
	assert.Empty(t, page.Items)
}

func TestAPI_PaginationClamping(t *testing.T) {
	h := newTestAPI(t)
	for _, n := range []string{"A", "B", "C"} {
		addPlant(t, h, `{"name":"`+n+`","price":1}`)
	}

	page := decode[pageJSON](t, do(t, h, http.MethodGet, "/api/plants?page=-3&limit=0", "", ""))
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 12, page.Limit)
	assert.Len(t, page.Items, 3)

	page = decode[pageJSON](t, do(t, h, http.MethodGet, "/api/plants?limit=1000", "", ""))
	assert.Equal(t, 100, page.Limit)

	page = decode[pageJSON](t, do(t, h, http.MethodGet, "/api/plants?page=2&limit=2", "", ""))
	assert.Equal(t, []string{"C"}, itemNames(page))
	assert.Equal(t, 2, page.TotalPages)

	page = decode[pageJSON](t, do(t, h, http.MethodGet, "/api/plants?page=2.5&limit=2abc", "", ""))
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, []string{"C"}, itemNames(page))
}

func TestAPI_PageFarPastTheEnd(t *testing.T) {
	h := newTestAPI(t)
	addPlant(t, h, `{"name":"A","price":1}`)
	addPlant(t, h, `{"name":"B","price":2}`)

	for _, raw := range []string{"9223372036854775807", "99999999999999999999999"} {
		rec := do(t, h, http.MethodGet, "/api/plants?page="+raw+"&limit=2", "", "")
		require.Equal(t, http.StatusOK, rec.Code, raw)
		page := decode[pageJSON](t, rec)
		assert.NotNil(t, page.Items, raw)
		assert.Empty(t, page.Items, raw)
		assert.EqualValues(t, 2, page.Total, raw)
		assert.Equal(t, 1, page.TotalPages, raw)
	}
}

func TestAPI_GetPlant(t *testing.T) {
	h := newTestAPI(t)
	created := addPlant(t, h, `{"name":"Fern","price":"349","categories":["Indoor"]}`)

	rec := do(t, h, http.MethodGet, "/api/plants/"+created.ID, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[plantJSON](t, rec)
	assert.Equal(t, created, got)
	assert.Equal(t, "", got.Description)
	assert.False(t, got.InStock)

	for _, id := range []string{"not-an-id", "000000000000000000000000"} {
		rec := do(t, h, http.MethodGet, "/api/plants/"+id, "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code, id)
		assert.JSONEq(t, `{"error":"Plant not found"}`, rec.Body.String())
	}
}

func TestAPI_AddPlantDefaultsAndCoercion(t *testing.T) {
	h := newTestAPI(t)

	p := addPlant(t, h, `{"name":"  Cactus  ","price":0,"categories":"Succulent","inStock":0}`)
	assert.Len(t, p.ID, 24)
	assert.Equal(t, "Cactus", p.Name)
	assert.Equal(t, []string{}, p.Categories)
	assert.False(t, p.InStock)
	assert.Zero(t, p.Price)
	assert.NotEmpty(t, p.CreatedAt)

	p = addPlant(t, h, `{"name":"Lily","price":499,"inStock":null}`)
	assert.False(t, p.InStock)

	p = addPlant(t, h, `{"name":"Fern","price":10}`)
	assert.False(t, p.InStock, "absent inStock is falsy")

	p = addPlant(t, h, `{"name":"Ivy","price":10,"inStock":"yes"}`)
	assert.True(t, p.InStock)
}

func TestAPI_AddPlantRejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		key        string
		wantStatus int
		wantError  string
	}{
		{"missing key", `{"name":"Fern","price":1}`, "", http.StatusUnauthorized, "Unauthorized: Admin access required"},
		{"wrong key beats bad body", `{not json`, "wrong", http.StatusUnauthorized, "Unauthorized: Admin access required"},
		{"missing name", `{"price":1}`, testAdminKey, http.StatusBadRequest, "Plant name is required"},
		{"blank name", `{"name":"   ","price":1}`, testAdminKey, http.StatusBadRequest, "Plant name is required"},
		{"missing price", `{"name":"Fern"}`, testAdminKey, http.StatusBadRequest, "Price is required"},
		{"null price", `{"name":"Fern","price":null}`, testAdminKey, http.StatusBadRequest, "Price is required"},
		{"negative price", `{"name":"Fern","price":-1}`, testAdminKey, http.StatusBadRequest, "Price must not be negative"},
		{"text price", `{"name":"Fern","price":"cheap"}`, testAdminKey, http.StatusBadRequest, "Price must be a number"},
		{"array body", `[1,2]`, testAdminKey, http.StatusBadRequest, "Request body must be a JSON object"},
		{"malformed", `{not json`, testAdminKey, http.StatusBadRequest, "Invalid JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestAPI(t)
			rec := do(t, h, http.MethodPost, "/api/plants", tt.body, tt.key)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			resp := decode[struct {
				Error string `json:"error"`
			}](t, rec)
			assert.Equal(t, tt.wantError, resp.Error)

			page := decode[pageJSON](t, do(t, h, http.MethodGet, "/api/plants", "", ""))
			assert.Zero(t, page.Total)
		})
	}
}

func TestAPI_Categories(t *testing.T) {
	h := newTestAPI(t)

	rec := do(t, h, http.MethodGet, "/api/categories", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	addPlant(t, h, `{"name":"Fern","price":1,"categories":["Indoor","Shade Loving"]}`)
	addPlant(t, h, `{"name":"Cactus","price":1,"categories":["Indoor","Succulent"]}`)

	got := decode[[]string](t, do(t, h, http.MethodGet, "/api/categories", "", ""))
	assert.ElementsMatch(t, []string{"Indoor", "Shade Loving", "Succulent"}, got)
}

func TestAPI_SeedSamples(t *testing.T) {
	h := newTestAPI(t)

	rec := do(t, h, http.MethodPost, "/api/seed", "", testAdminKey)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"Database seeded successfully","count":14}`, rec.Body.String())

	page := decode[pageJSON](t, do(t, h, http.MethodGet, "/api/plants?limit=5", "", ""))
	assert.EqualValues(t, 14, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, "Aloe Vera", page.Items[0].Name)
}

func TestAPI_SeedBodyForms(t *testing.T) {
	for name, body := range map[string]string{
		"array":  `[{"name":"A","price":1},{"name":"B","price":"2"}]`,
		"object": `{"plants":[{"name":"A","price":1},{"name":"B","price":"2"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			h := newTestAPI(t)
			rec := do(t, h, http.MethodPost, "/api/seed", body, testAdminKey)
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			assert.JSONEq(t, `{"message":"Database seeded successfully","count":2}`, rec.Body.String())
		})
	}
}

func TestAPI_SeedRejectsWholeBatch(t *testing.T) {
	h := newTestAPI(t)

	rec := do(t, h, http.MethodPost, "/api/seed", `[{"name":"Good","price":1},{"name":"","price":1}]`, testAdminKey)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}](t, rec)
	assert.Equal(t, "plants[1]: Plant name is required", resp.Error)
	assert.Equal(t, "Plant name is required", resp.Fields["plants[1].name"])

	rec = do(t, h, http.MethodPost, "/api/seed", `[{"name":"Good","price":1},{"name":"Bad","price":-1}]`, testAdminKey)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"plants[1]: Price must not be negative"}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/seed", `[7]`, testAdminKey)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"plants[0]: Plant entry must be a JSON object"}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/seed", `"plants"`, testAdminKey)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	page := decode[pageJSON](t, do(t, h, http.MethodGet, "/api/plants", "", ""))
	assert.Zero(t, page.Total)
}

func TestAPI_SeedRequiresAdmin(t *testing.T) {
	h := newTestAPI(t)
	rec := do(t, h, http.MethodPost, "/api/seed", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_UnknownRouteAndMethod(t *testing.T) {
	h := newTestAPI(t)

	rec := do(t, h, http.MethodGet, "/api/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Route not found"}`, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/api/categories", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
}

func TestAPI_SeedManyEntries(t *testing.T) {
	h := newTestAPI(t)
	var buf bytes.Buffer
	buf.WriteString("[")
	for i := 0; i < 50; i++ {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString(`{"name":"Plant","price":1,"categories":["Indoor"]}`)
	}
	buf.WriteString("]")

	rec := do(t, h, http.MethodPost, "/api/seed", buf.String(), testAdminKey)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Database seeded successfully","count":50}`, rec.Body.String())
}
